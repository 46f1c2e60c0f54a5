// Package scan walks a posts directory and assembles the ordered post
// collection the page renderers consume.
package scan

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/core"
)

type scanned struct {
	post core.Post
	name string
}

// Posts reads every markdown file in postsDir and returns the collection
// in reverse chronological order. Ties on the same date break toward the
// lexicographically later filename, matching how the host generator
// ordered same-day posts. Each post's URL is resolved from baseURL and
// the filename slug before the collection is handed to any renderer.
func Posts(fsys fs.FileSystem, postsDir string, baseURL string) ([]core.Post, error) {
	entries, err := fsys.ReadDir(postsDir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir %s: %w", postsDir, err)
	}

	var found []scanned
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		post, err := readPost(fsys, postsDir, entry.Name(), baseURL)
		if err != nil {
			return nil, err
		}
		found = append(found, scanned{post: post, name: entry.Name()})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if !found[i].post.Date.Equal(found[j].post.Date) {
			return found[i].post.Date.After(found[j].post.Date)
		}
		return found[i].name > found[j].name
	})

	posts := make([]core.Post, len(found))
	for i, s := range found {
		posts[i] = s.post
	}
	return posts, nil
}

func readPost(fsys fs.FileSystem, postsDir, name, baseURL string) (core.Post, error) {
	path := filepath.Join(postsDir, name)

	date, slug, err := core.ParsePostFilename(name)
	if err != nil {
		return core.Post{}, fmt.Errorf("scan %s: %w", path, err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return core.Post{}, fmt.Errorf("scan %s: %w", path, err)
	}

	rawMeta, _, err := core.SplitFrontMatter(data)
	if err != nil && !errors.Is(err, core.ErrNoFrontMatter) {
		return core.Post{}, fmt.Errorf("scan %s: %w", path, err)
	}

	var meta core.PostMeta
	if len(rawMeta) > 0 {
		meta, err = core.ParsePostMeta(rawMeta)
		if err != nil {
			return core.Post{}, fmt.Errorf("scan %s: %w", path, err)
		}
	}

	if meta.Date != "" {
		date, err = time.Parse(core.DateStampLayout, meta.Date)
		if err != nil {
			return core.Post{}, fmt.Errorf("scan %s: invalid date %q: %w", path, meta.Date, err)
		}
	}

	title := meta.Title
	if title == "" {
		title = titleFromSlug(slug)
	}

	return core.Post{
		Title: title,
		Date:  date,
		URL:   core.ResolvePostURL(baseURL, slug),
		Slug:  slug,
		Topic: meta.Topic,
	}, nil
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
