package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const maxSlugLen = 50

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9 -]`)

// Slugify reduces a title to a filesystem-safe slug: special characters
// removed, spaces turned into dashes, lowercased, capped at 50 characters.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ToLower(s)
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	s = strings.Trim(s, "-")
	if s == "" {
		return "post"
	}
	return s
}

// PostFilename composes the canonical post filename for a publication
// date and title: YYYY-MM-DD-<slug>.md.
func PostFilename(date time.Time, title string) string {
	return fmt.Sprintf("%s-%s.md", date.Format(DateStampLayout), Slugify(title))
}

// ParsePostFilename recovers the date and slug encoded in a post
// filename. Files not matching the date-slug.md pattern are rejected.
func ParsePostFilename(name string) (time.Time, string, error) {
	base, ok := strings.CutSuffix(name, ".md")
	if !ok {
		return time.Time{}, "", fmt.Errorf("post filename %q must end in .md", name)
	}

	if len(base) < len(DateStampLayout)+2 || base[len(DateStampLayout)] != '-' {
		return time.Time{}, "", fmt.Errorf("post filename %q missing date prefix", name)
	}

	date, err := time.Parse(DateStampLayout, base[:len(DateStampLayout)])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("post filename %q has invalid date: %w", name, err)
	}

	return date, base[len(DateStampLayout)+1:], nil
}
