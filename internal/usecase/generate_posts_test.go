package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/usecase"
)

type fakeStore struct {
	pending        []usecase.Question
	published      []string
	failPublishFor string
}

func (s *fakeStore) Pending(context.Context) ([]usecase.Question, error) {
	return s.pending, nil
}

func (s *fakeStore) MarkPublished(_ context.Context, id string) error {
	if id == s.failPublishFor {
		return errors.New("queue write failed")
	}
	s.published = append(s.published, id)
	return nil
}

type fakeSource struct {
	failFor string
}

func (s *fakeSource) Draft(_ context.Context, question string) (string, error) {
	if question == s.failFor {
		return "", errors.New("draft unavailable")
	}
	return "# The Question: " + question + "\n\ncontent\n", nil
}

func (s *fakeSource) Topic(string) string { return "Systems" }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func questions(texts ...string) []usecase.Question {
	out := make([]usecase.Question, len(texts))
	for i, text := range texts {
		out[i] = usecase.Question{ID: text, Text: text}
	}
	return out
}

// 2024-01-01 is a Monday, 2024-01-06 a Saturday.
var (
	monday   = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)
)

func newGenerateService(store usecase.QuestionStore, source usecase.ContentSource, day time.Time) *usecase.GenerateService {
	service := usecase.NewGenerateService(store, source, fs.NewOSFileSystem(), quietLogger())
	service.SetClock(func() time.Time { return day })
	return service
}

func TestGeneratePostsWeekdayTarget(t *testing.T) {
	store := &fakeStore{pending: questions("q1", "q2", "q3", "q4", "q5", "q6")}
	service := newGenerateService(store, &fakeSource{}, monday)
	postsDir := filepath.Join(t.TempDir(), "_posts")

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{PostsDir: postsDir})
	require.NoError(t, out.Error)
	require.Equal(t, 4, out.Target)
	require.Equal(t, 4, out.Generated)
	require.Equal(t, []string{"q1", "q2", "q3", "q4"}, store.published)

	entries, err := os.ReadDir(postsDir)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.True(t, strings.HasPrefix(entries[0].Name(), "2024-01-01-"))
}

func TestGeneratePostsWeekendTarget(t *testing.T) {
	store := &fakeStore{pending: questions("q1", "q2", "q3")}
	service := newGenerateService(store, &fakeSource{}, saturday)
	postsDir := filepath.Join(t.TempDir(), "_posts")

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{PostsDir: postsDir})
	require.NoError(t, out.Error)
	require.Equal(t, 8, out.Target)
	// Queue runs dry before the weekend target is met.
	require.Equal(t, 3, out.Generated)
}

func TestGeneratePostsContent(t *testing.T) {
	store := &fakeStore{pending: questions("How does DNS work?")}
	service := newGenerateService(store, &fakeSource{}, monday)
	postsDir := filepath.Join(t.TempDir(), "_posts")

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{PostsDir: postsDir})
	require.NoError(t, out.Error)
	require.Equal(t, 1, out.Generated)

	data, err := os.ReadFile(filepath.Join(postsDir, "2024-01-01-how-does-dns-work.md"))
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, "---\n"))
	require.Contains(t, content, "Daily Learning: How does DNS work?")
	require.Contains(t, content, "2024-01-01")
	require.Contains(t, content, "# The Question: How does DNS work?")
}

func TestGeneratePostsSkipsFailedDrafts(t *testing.T) {
	store := &fakeStore{pending: questions("good one", "bad one", "another good")}
	service := newGenerateService(store, &fakeSource{failFor: "bad one"}, monday)
	postsDir := filepath.Join(t.TempDir(), "_posts")

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{PostsDir: postsDir})
	require.NoError(t, out.Error)
	require.Equal(t, 2, out.Generated)
	require.NotContains(t, store.published, "bad one")
}

func TestGeneratePostsContinuesPastMarkPublishedFailure(t *testing.T) {
	store := &fakeStore{
		pending:        questions("q1", "q2", "q3"),
		failPublishFor: "q2",
	}
	service := newGenerateService(store, &fakeSource{}, monday)
	postsDir := filepath.Join(t.TempDir(), "_posts")

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{PostsDir: postsDir})
	require.NoError(t, out.Error)
	require.Equal(t, 2, out.Generated)
	require.Equal(t, []string{"q1", "q3"}, store.published)
}

func TestGeneratePostsEmptyQueue(t *testing.T) {
	store := &fakeStore{}
	service := newGenerateService(store, &fakeSource{}, monday)

	out := service.GeneratePosts(context.Background(), usecase.GenerateInput{
		PostsDir: filepath.Join(t.TempDir(), "_posts"),
	})
	require.NoError(t, out.Error)
	require.Zero(t, out.Generated)
	require.Zero(t, out.Pending)
}
