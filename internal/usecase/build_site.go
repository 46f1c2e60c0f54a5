package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/foliate-press/foliate/internal/core"
	"github.com/foliate-press/foliate/internal/scan"
)

type BuildInput struct {
	PostsDir  string
	OutputDir string
	PostsBase string
	CSSHref   string
	Pages     []core.PageSpec
}

type BuildOutput struct {
	Pages    int
	Written  []string
	Skipped  []string
	Removed  []string
	Warnings []BuildWarning
	Duration time.Duration
	Error    error
}

type BuildWarning struct {
	Page    string
	Message string
}

// BuildService compiles the registered pages against the scanned post
// collection and writes the output tree plus its manifest.
type BuildService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewBuildService(fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		fs:  fs,
		cli: cli,
	}
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	start := time.Now()

	s.cli.PrintHeader("Foliate Build")

	if len(input.Pages) == 0 {
		return BuildOutput{Error: fmt.Errorf("no pages registered")}
	}

	seen := make(map[string]bool)
	for _, page := range input.Pages {
		permalink := core.NormalizePermalink(page.Meta.Permalink)
		if err := core.ValidatePermalink(permalink); err != nil {
			return BuildOutput{Error: fmt.Errorf("page %q: %w", page.Meta.Title, err)}
		}
		if seen[permalink] {
			return BuildOutput{Error: fmt.Errorf("duplicate permalink %s", permalink)}
		}
		seen[permalink] = true
	}

	s.cli.PrintStep("Scanning %s", input.PostsDir)
	posts, err := scan.Posts(s.fs, input.PostsDir, input.PostsBase)
	if err != nil {
		return BuildOutput{Error: err}
	}
	s.cli.PrintSuccess("Found %d post(s)", len(posts))

	out := BuildOutput{Pages: len(input.Pages)}

	previous, warn := s.loadManifest(input.OutputDir)
	if warn != "" {
		s.cli.PrintWarning(warn)
		out.Warnings = append(out.Warnings, BuildWarning{Page: core.ManifestFile, Message: warn})
	}
	manifest := core.NewManifest()

	for _, page := range input.Pages {
		select {
		case <-ctx.Done():
			return BuildOutput{Error: ctx.Err()}
		default:
		}

		permalink := core.NormalizePermalink(page.Meta.Permalink)
		relPath := core.OutputPathFor(permalink)
		outPath := filepath.Join(input.OutputDir, filepath.FromSlash(relPath))

		body := core.RenderPostList(posts, page.List)
		doc := []byte(core.RenderPageShell(body, page.Meta, input.CSSHref))
		hash := core.HashContent(doc)

		manifest.Pages[permalink] = core.ManifestEntry{Output: relPath, Hash: hash}

		decision := core.DecideWrite(core.PreviousHash(previous, permalink), hash)
		if decision == core.SkipUnchanged && s.fs.FileExists(outPath) {
			out.Skipped = append(out.Skipped, relPath)
			continue
		}

		if err := s.fs.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return BuildOutput{Error: fmt.Errorf("create output dir for %s: %w", permalink, err)}
		}
		if err := s.fs.WriteFile(outPath, doc, 0644); err != nil {
			return BuildOutput{Error: fmt.Errorf("write %s: %w", outPath, err)}
		}
		out.Written = append(out.Written, relPath)
	}

	s.pruneStale(input.OutputDir, previous, manifest, &out)

	data, err := core.EncodeManifest(manifest)
	if err != nil {
		return BuildOutput{Error: fmt.Errorf("encode manifest: %w", err)}
	}
	manifestPath := filepath.Join(input.OutputDir, core.ManifestFile)
	if err := s.fs.WriteFile(manifestPath, data, 0644); err != nil {
		return BuildOutput{Error: fmt.Errorf("write manifest: %w", err)}
	}

	out.Duration = time.Since(start)
	return out
}

// loadManifest reads the previous build's manifest if one exists. A
// missing or corrupt manifest just means a full rewrite; corruption is
// reported as a build warning.
func (s *BuildService) loadManifest(outputDir string) (*core.Manifest, string) {
	path := filepath.Join(outputDir, core.ManifestFile)
	if !s.fs.FileExists(path) {
		return nil, ""
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, ""
	}

	manifest, err := core.ParseManifest(data)
	if err != nil {
		return nil, fmt.Sprintf("ignoring unreadable manifest, rebuilding all pages: %v", err)
	}
	return manifest, ""
}

// pruneStale removes output files the previous manifest lists for
// permalinks that are no longer registered. A failed removal is a
// warning, not a build failure.
func (s *BuildService) pruneStale(outputDir string, previous, manifest *core.Manifest, out *BuildOutput) {
	if previous == nil {
		return
	}

	for permalink, entry := range previous.Pages {
		if _, ok := manifest.Pages[permalink]; ok {
			continue
		}

		stale := filepath.Join(outputDir, filepath.FromSlash(entry.Output))
		if !s.fs.FileExists(stale) {
			continue
		}
		if err := s.fs.Remove(stale); err != nil {
			msg := fmt.Sprintf("remove stale output %s: %v", entry.Output, err)
			s.cli.PrintWarning(msg)
			out.Warnings = append(out.Warnings, BuildWarning{Page: permalink, Message: msg})
			continue
		}

		s.cli.PrintStep("Removed %s", entry.Output)
		out.Removed = append(out.Removed, entry.Output)
	}
}
