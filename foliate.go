// Package foliate compiles a dated-post blog into a static site. Pages
// are registered against the site, posts live as markdown files in a
// posts directory, and Build writes the finished tree.
package foliate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foliate-press/foliate/internal/adapters/cli"
	"github.com/foliate-press/foliate/internal/adapters/fs"
	sitehttp "github.com/foliate-press/foliate/internal/adapters/http"
	"github.com/foliate-press/foliate/internal/core"
	"github.com/foliate-press/foliate/internal/logger"
	"github.com/foliate-press/foliate/internal/usecase"
)

type Post = core.Post

type ListOptions = core.ListOptions

// RenderPostList is the core projection: an ordered post collection in,
// an HTML list fragment out. Exposed for callers embedding the fragment
// into their own layouts.
func RenderPostList(posts []Post, opts ListOptions) string {
	return core.RenderPostList(posts, opts)
}

// Site is a configured blog: where posts live, where output goes, and
// which pages get compiled.
type Site struct {
	Title     string
	PostsDir  string
	OutputDir string
	PostsBase string
	CSSHref   string
	LogLevel  string

	pages      []core.PageSpec
	permalinks map[string]bool
}

func New(title string) *Site {
	return &Site{
		Title:      title,
		PostsDir:   "_posts",
		OutputDir:  "_site",
		PostsBase:  "/posts",
		LogLevel:   "info",
		permalinks: make(map[string]bool),
	}
}

// PageDef is a page registration before it is resolved against the
// site.
type PageDef struct {
	Title     string
	Permalink string
	Options   []PageOption
}

type PageOption func(*core.PageSpec)

// Page declares a site page at the given permalink.
func Page(title, permalink string, opts ...PageOption) PageDef {
	return PageDef{
		Title:     title,
		Permalink: permalink,
		Options:   opts,
	}
}

func WithLayout(layout string) PageOption {
	return func(spec *core.PageSpec) {
		spec.Meta.Layout = layout
	}
}

// WithIcon sets the sidebar icon identifier the page metadata carries.
func WithIcon(icon string) PageOption {
	return func(spec *core.PageSpec) {
		spec.Meta.Icon = icon
	}
}

// WithOrder sets the page's sidebar sort position.
func WithOrder(order int) PageOption {
	return func(spec *core.PageSpec) {
		spec.Meta.Order = order
	}
}

// WithListStyle selects the class the page's post list is rendered
// with.
func WithListStyle(style string) PageOption {
	return func(spec *core.PageSpec) {
		spec.List.ListStyle = style
	}
}

// WithCalendarIcon renders a calendar glyph before each list entry.
func WithCalendarIcon() PageOption {
	return func(spec *core.PageSpec) {
		spec.List.ShowCalendarIcon = true
	}
}

// AddPage resolves and registers a page. Registering two pages at the
// same permalink is an error; conflicting metadata for one page cannot
// be expressed.
func (s *Site) AddPage(def PageDef) error {
	permalink := core.NormalizePermalink(def.Permalink)
	if err := core.ValidatePermalink(permalink); err != nil {
		return fmt.Errorf("page %q: %w", def.Title, err)
	}
	if s.permalinks[permalink] {
		return fmt.Errorf("page %q: permalink %s already registered", def.Title, permalink)
	}

	spec := core.PageSpec{
		Meta: core.PageMeta{
			Layout:    "page",
			Title:     def.Title,
			Permalink: permalink,
		},
	}
	for _, opt := range def.Options {
		opt(&spec)
	}

	s.permalinks[permalink] = true
	s.pages = append(s.pages, spec)
	return nil
}

// Pages returns the registered page specs in registration order.
func (s *Site) Pages() []core.PageSpec {
	return s.pages
}

// Build compiles the site into the output directory.
func (s *Site) Build(ctx context.Context) error {
	output := cli.NewOutput()
	service := usecase.NewBuildService(fs.NewOSFileSystem(), output)

	result := service.BuildSite(ctx, usecase.BuildInput{
		PostsDir:  s.PostsDir,
		OutputDir: s.OutputDir,
		PostsBase: s.PostsBase,
		CSSHref:   s.CSSHref,
		Pages:     s.pages,
	})
	if result.Error != nil {
		return result.Error
	}

	output.RenderBuildSummary(cli.BuildSummary{
		Pages:     result.Pages,
		Written:   result.Written,
		Skipped:   result.Skipped,
		Removed:   result.Removed,
		Warnings:  buildWarnings(result.Warnings),
		Duration:  result.Duration,
		OutputDir: s.OutputDir,
	})
	return nil
}

// StaticPage pairs a registered page's permalink with the file Build
// emits for it.
type StaticPage struct {
	Title     string
	Permalink string
	Output    string
}

// Export enumerates the static page entries of the registered site, in
// registration order, for tooling that post-processes the output tree.
func (s *Site) Export(ctx context.Context) ([]StaticPage, error) {
	result := usecase.NewExportService().ExportStatic(ctx, usecase.ExportInput{Pages: s.pages})
	if result.Error != nil {
		return nil, result.Error
	}

	pages := make([]StaticPage, len(result.Entries))
	for i, entry := range result.Entries {
		pages[i] = StaticPage{
			Title:     entry.Title,
			Permalink: entry.Permalink,
			Output:    entry.Output,
		}
	}
	return pages, nil
}

// Handler serves the compiled output directory for local preview.
func (s *Site) Handler() http.Handler {
	log := logger.New("preview", s.LogLevel)
	return sitehttp.NewSiteHandler(s.OutputDir, log)
}

func buildWarnings(warnings []usecase.BuildWarning) []cli.BuildWarning {
	out := make([]cli.BuildWarning, len(warnings))
	for i, w := range warnings {
		out[i] = cli.BuildWarning{Page: w.Page, Message: w.Message}
	}
	return out
}
