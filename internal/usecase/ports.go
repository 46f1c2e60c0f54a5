package usecase

import (
	"context"

	"github.com/foliate-press/foliate/internal/adapters/fs"
)

type FileSystem = fs.FileSystem

// CLIOutput is the terminal surface the services report through.
type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

// Question is one entry of the automation queue.
type Question struct {
	ID        string
	Text      string
	Published bool
}

// QuestionStore hands out unpublished questions and records which ones
// made it into a post.
type QuestionStore interface {
	Pending(ctx context.Context) ([]Question, error)
	MarkPublished(ctx context.Context, id string) error
}

// ContentSource drafts the markdown body of a post for a question.
type ContentSource interface {
	Draft(ctx context.Context, question string) (string, error)
	Topic(question string) string
}
