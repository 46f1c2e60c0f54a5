package core

import (
	"bytes"
	"errors"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNoFrontMatter is returned when a document does not open with a
// front matter block. The document body is still returned alongside it.
var ErrNoFrontMatter = errors.New("no front matter block")

const frontMatterDelim = "---"

// PageMeta is the declarative metadata attached to a site page. It is
// consumed by the build when assembling output, never computed from.
type PageMeta struct {
	Layout    string `yaml:"layout"`
	Title     string `yaml:"title"`
	Icon      string `yaml:"icon,omitempty"`
	Order     int    `yaml:"order,omitempty"`
	Permalink string `yaml:"permalink"`
}

// PostMeta is the metadata block of a single post file. Date is kept in
// DateStampLayout form; an empty Date defers to the filename.
type PostMeta struct {
	Layout string `yaml:"layout"`
	Title  string `yaml:"title"`
	Date   string `yaml:"date,omitempty"`
	Topic  string `yaml:"topic,omitempty"`
}

// SplitFrontMatter separates a leading front matter block from the body.
// The block must start on the first line with a bare "---" and close with
// another. When no block is present the whole input is returned as body
// together with ErrNoFrontMatter.
func SplitFrontMatter(data []byte) (meta, body []byte, err error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 || strings.TrimRight(string(data[:nl]), "\r") != frontMatterDelim {
		return nil, data, ErrNoFrontMatter
	}

	rest := data[nl+1:]
	for i := 0; i < len(rest); {
		j := bytes.IndexByte(rest[i:], '\n')
		var line []byte
		var next int
		if j < 0 {
			line = rest[i:]
			next = len(rest)
		} else {
			line = rest[i : i+j]
			next = i + j + 1
		}
		if strings.TrimRight(string(line), "\r") == frontMatterDelim {
			return rest[:i], rest[next:], nil
		}
		i = next
	}

	return nil, data, ErrNoFrontMatter
}

// ParsePostMeta decodes a post front matter block.
func ParsePostMeta(meta []byte) (PostMeta, error) {
	var m PostMeta
	if err := yaml.Unmarshal(meta, &m); err != nil {
		return PostMeta{}, err
	}
	return m, nil
}

// ParsePageMeta decodes a page front matter block.
func ParsePageMeta(meta []byte) (PageMeta, error) {
	var m PageMeta
	if err := yaml.Unmarshal(meta, &m); err != nil {
		return PageMeta{}, err
	}
	return m, nil
}

// ComposePost assembles a complete post file: front matter block followed
// by the markdown body, ending with a single trailing newline.
func ComposePost(meta PostMeta, body string) ([]byte, error) {
	enc, err := yaml.Marshal(meta)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(frontMatterDelim + "\n")
	b.Write(enc)
	b.WriteString(frontMatterDelim + "\n\n")
	b.WriteString(strings.TrimLeft(body, "\n"))
	if !bytes.HasSuffix(b.Bytes(), []byte("\n")) {
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}
