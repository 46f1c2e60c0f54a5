package core

import (
	"path/filepath"
	"strings"
)

// ScaffoldData carries the substitutions applied to scaffold templates.
type ScaffoldData struct {
	Title string
}

// ProcessScaffoldName strips the .tmpl marker from scaffold filenames and
// reports whether the file's content should be templated.
func ProcessScaffoldName(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

// ProcessScaffoldContent applies scaffold substitutions to template files
// and passes others through untouched.
func ProcessScaffoldContent(content []byte, isTemplate bool, data ScaffoldData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Title}}", data.Title)

	return []byte(result)
}

// DeriveSiteTitle guesses a site title from the target directory name.
func DeriveSiteTitle(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == "/" || base == "" {
		return "My Blog"
	}
	return base
}
