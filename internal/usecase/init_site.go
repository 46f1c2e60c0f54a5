package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/core"
	"github.com/foliate-press/foliate/internal/templates"
)

// InitService scaffolds a new blog directory from the embedded
// templates.
type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

func (s *InitService) InitSite(dir string) error {
	s.cli.PrintHeader("Foliate Init")

	if s.fs.FileExists(dir) {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read directory: %w", err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("directory %q already exists and is not empty", dir)
		}
	}

	scaffold, err := templates.Scaffold()
	if err != nil {
		return fmt.Errorf("load scaffold: %w", err)
	}
	source := fs.NewEmbedFileSystem(scaffold)

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create site directory: %w", err)
	}

	data := core.ScaffoldData{Title: core.DeriveSiteTitle(dir)}
	created := 0

	err = iofs.WalkDir(scaffold, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == "." {
				return nil
			}
			return s.fs.MkdirAll(filepath.Join(dir, path), 0755)
		}

		content, err := source.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read scaffold file %s: %w", path, err)
		}

		targetPath, isTemplate := core.ProcessScaffoldName(path)
		// Dotfiles cannot live in the embedded tree under their real
		// names, so the scaffold stores them undotted.
		if filepath.Base(targetPath) == "gitignore" {
			targetPath = filepath.Join(filepath.Dir(targetPath), ".gitignore")
		}
		targetPath = filepath.Join(dir, targetPath)

		processed := core.ProcessScaffoldContent(content, isTemplate, data)

		if err := s.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", targetPath, err)
		}
		if err := s.fs.WriteFile(targetPath, processed, 0644); err != nil {
			return fmt.Errorf("write %s: %w", targetPath, err)
		}

		s.cli.PrintFile(targetPath)
		created++
		return nil
	})
	if err != nil {
		return err
	}

	s.cli.PrintSuccess("Created %d file(s) in %s", created, dir)
	return nil
}
