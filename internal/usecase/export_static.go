package usecase

import (
	"context"

	"github.com/foliate-press/foliate/internal/core"
)

type ExportInput struct {
	Pages []core.PageSpec
}

type ExportOutput struct {
	Entries []StaticPageEntry
	Error   error
}

// StaticPageEntry pairs a page's permalink with the file the build
// emits for it, for tooling that post-processes the output tree.
type StaticPageEntry struct {
	Permalink string
	Output    string
	Title     string
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	var entries []StaticPageEntry

	for _, page := range input.Pages {
		permalink := core.NormalizePermalink(page.Meta.Permalink)
		if err := core.ValidatePermalink(permalink); err != nil {
			return ExportOutput{Error: err}
		}

		entries = append(entries, StaticPageEntry{
			Permalink: permalink,
			Output:    core.OutputPathFor(permalink),
			Title:     page.Meta.Title,
		})
	}

	return ExportOutput{Entries: entries}
}
