package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/usecase"
)

func TestInitSite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-study-blog")
	service := usecase.NewInitService(fs.NewOSFileSystem(), quietCLI{})

	require.NoError(t, service.InitSite(dir))

	expected := []string{
		"README.md",
		".gitignore",
		"data/questions.csv",
		"_posts/2024-01-10-load-balancing.md",
	}
	for _, file := range expected {
		_, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, "expected scaffold file %s", file)
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(readme), "# my-study-blog")
	require.NotContains(t, string(readme), "{{.Title}}")
}

func TestInitSiteRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0644))

	service := usecase.NewInitService(fs.NewOSFileSystem(), quietCLI{})
	err := service.InitSite(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not empty")
}

func TestInitSiteScaffoldBuilds(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scaffolded")
	require.NoError(t, usecase.NewInitService(fs.NewOSFileSystem(), quietCLI{}).InitSite(dir))

	// The scaffolded posts directory must be buildable as-is.
	out := usecase.NewBuildService(fs.NewOSFileSystem(), quietCLI{}).BuildSite(context.Background(), usecase.BuildInput{
		PostsDir:  filepath.Join(dir, "_posts"),
		OutputDir: filepath.Join(dir, "_site"),
		PostsBase: "/posts",
		Pages:     sitePages(),
	})
	require.NoError(t, out.Error)

	home, err := os.ReadFile(filepath.Join(dir, "_site", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(home), "Load Balancing")
}
