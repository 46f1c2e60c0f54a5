// Package templates holds the embedded scaffold for new blog
// directories.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:scaffold
var scaffoldFS embed.FS

// Scaffold returns the scaffold file tree.
func Scaffold() (fs.FS, error) {
	return fs.Sub(scaffoldFS, "scaffold")
}
