package core

import (
	"fmt"
	"html"
	"strings"
)

// DateStampLayout is the only date format the site uses: four-digit year,
// two-digit month, two-digit day, hyphen-separated. No locale variation.
const DateStampLayout = "2006-01-02"

// ListOptions selects the markup variant for a rendered post list. The two
// site pages differ only in styling, not behavior.
type ListOptions struct {
	// ListStyle is emitted as the class attribute of the list element.
	ListStyle string
	// ShowCalendarIcon prefixes each entry with a calendar glyph.
	ShowCalendarIcon bool
}

// RenderPostList renders an ordered post collection as an unordered list,
// one entry per post, pairing the formatted date with a link whose text is
// the post title. The output preserves input order exactly, an empty
// collection renders an empty list, and the same input always produces
// byte-identical output.
func RenderPostList(posts []Post, opts ListOptions) string {
	var b strings.Builder

	if opts.ListStyle != "" {
		fmt.Fprintf(&b, "<ul class=%q>\n", opts.ListStyle)
	} else {
		b.WriteString("<ul>\n")
	}

	for _, post := range posts {
		b.WriteString("  <li>")
		if opts.ShowCalendarIcon {
			b.WriteString(`<span class="cal">&#128197;</span> `)
		}
		fmt.Fprintf(&b, `<span class="date">%s</span> <a href="%s">%s</a>`,
			post.Date.Format(DateStampLayout),
			html.EscapeString(post.URL),
			html.EscapeString(post.Title))
		b.WriteString("</li>\n")
	}

	b.WriteString("</ul>\n")
	return b.String()
}
