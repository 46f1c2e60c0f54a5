package foliate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewCreatesSite(t *testing.T) {
	site := New("Daily Learning")

	if site.Title != "Daily Learning" {
		t.Errorf("Title = %q", site.Title)
	}
	if site.PostsDir != "_posts" {
		t.Errorf("PostsDir = %q", site.PostsDir)
	}
	if site.OutputDir != "_site" {
		t.Errorf("OutputDir = %q", site.OutputDir)
	}
}

func TestPageCreatesDefinition(t *testing.T) {
	def := Page("Roadmap", "/roadmap/", WithIcon("calendar"), WithOrder(3))

	if def.Title != "Roadmap" {
		t.Errorf("Title = %q", def.Title)
	}
	if def.Permalink != "/roadmap/" {
		t.Errorf("Permalink = %q", def.Permalink)
	}
	if len(def.Options) != 2 {
		t.Errorf("expected 2 options, got %d", len(def.Options))
	}
}

func TestAddPageAppliesOptions(t *testing.T) {
	site := New("Daily Learning")

	err := site.AddPage(Page("Roadmap", "/roadmap/",
		WithIcon("calendar"), WithOrder(3), WithListStyle("roadmap"), WithCalendarIcon()))
	if err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	pages := site.Pages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	page := pages[0]
	if page.Meta.Permalink != "/roadmap" {
		t.Errorf("permalink not normalized: %q", page.Meta.Permalink)
	}
	if page.Meta.Icon != "calendar" || page.Meta.Order != 3 {
		t.Errorf("metadata options not applied: %+v", page.Meta)
	}
	if page.List.ListStyle != "roadmap" || !page.List.ShowCalendarIcon {
		t.Errorf("list options not applied: %+v", page.List)
	}
}

func TestAddPageRejectsDuplicatePermalink(t *testing.T) {
	site := New("Daily Learning")

	if err := site.AddPage(Page("Roadmap", "/roadmap/")); err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	err := site.AddPage(Page("Roadmap Again", "/roadmap"))
	if err == nil {
		t.Fatal("expected duplicate permalink error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddPageRejectsInvalidPermalink(t *testing.T) {
	site := New("Daily Learning")

	if err := site.AddPage(Page("Bad", "/bad?page=1")); err == nil {
		t.Fatal("expected invalid permalink error")
	}
}

func TestSiteExport(t *testing.T) {
	site := New("Daily Learning")

	if err := site.AddPage(Page("Daily Learning", "/", WithLayout("home"))); err != nil {
		t.Fatal(err)
	}
	if err := site.AddPage(Page("Roadmap", "/roadmap/")); err != nil {
		t.Fatal(err)
	}

	pages, err := site.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(pages))
	}
	if pages[0].Permalink != "/" || pages[0].Output != "index.html" {
		t.Errorf("home entry = %+v", pages[0])
	}
	if pages[1].Permalink != "/roadmap" || pages[1].Output != "roadmap/index.html" {
		t.Errorf("roadmap entry = %+v", pages[1])
	}
	if pages[1].Title != "Roadmap" {
		t.Errorf("roadmap title = %q", pages[1].Title)
	}
}

func TestSiteBuildEndToEnd(t *testing.T) {
	root := t.TempDir()
	postsDir := filepath.Join(root, "_posts")
	if err := os.MkdirAll(postsDir, 0755); err != nil {
		t.Fatal(err)
	}

	post := "---\nlayout: post\ntitle: \"Caching\"\ndate: \"2024-01-12\"\n---\n\nbody\n"
	if err := os.WriteFile(filepath.Join(postsDir, "2024-01-12-caching.md"), []byte(post), 0644); err != nil {
		t.Fatal(err)
	}

	site := New("Daily Learning")
	site.PostsDir = postsDir
	site.OutputDir = filepath.Join(root, "_site")

	if err := site.AddPage(Page("Daily Learning", "/", WithLayout("home"))); err != nil {
		t.Fatal(err)
	}
	if err := site.AddPage(Page("Roadmap", "/roadmap/", WithCalendarIcon(), WithListStyle("roadmap"))); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := site.Build(ctx); err != nil {
		t.Fatalf("Build: %v", err)
	}

	home, err := os.ReadFile(filepath.Join(root, "_site", "index.html"))
	if err != nil {
		t.Fatalf("read home page: %v", err)
	}
	if !strings.Contains(string(home), `<a href="/posts/caching/">Caching</a>`) {
		t.Errorf("home page missing post entry:\n%s", home)
	}
}
