package core

import (
	"fmt"
	"html"
	"strings"
)

// RenderPageShell wraps a rendered body fragment in a complete HTML
// document. The page title comes from the front matter; an untitled page
// falls back to the site default.
func RenderPageShell(bodyHTML string, meta PageMeta, cssHref string) string {
	title := meta.Title
	if title == "" {
		title = "Blog"
	}

	head := `<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`
	head += fmt.Sprintf("<title>%s</title>", html.EscapeString(title))
	if cssHref != "" {
		head += fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, cssHref)
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    %s
  </head>
  <body>
    <main>
      <h1>%s</h1>
%s    </main>
  </body>
</html>
`, head, html.EscapeString(title), indent(bodyHTML, "      "))
}

func indent(s, prefix string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(prefix + line + "\n")
	}
	return b.String()
}
