package core

import (
	"fmt"
	"strings"
)

// NormalizePermalink gives a permalink its canonical form: a leading
// slash and no trailing slash except for the site root.
func NormalizePermalink(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidatePermalink rejects permalinks the build cannot emit files for.
func ValidatePermalink(p string) error {
	if p == "" {
		return fmt.Errorf("permalink cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("permalink must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("permalink cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("permalink cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("permalink cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("permalink cannot contain wildcards")
	}

	return nil
}

// OutputPathFor maps a permalink to its file inside the output
// directory. Every page is written as a directory index so links need no
// extension.
func OutputPathFor(permalink string) string {
	p := NormalizePermalink(permalink)
	if p == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(p, "/") + "/index.html"
}

// ResolvePostURL combines the posts permalink base with a post slug. The
// result is what the list renderer receives; it treats it as opaque.
func ResolvePostURL(base, slug string) string {
	b := NormalizePermalink(base)
	if b == "/" {
		return "/" + slug + "/"
	}
	return b + "/" + slug + "/"
}
