package core

import "time"

// Post is a dated content record with a title and a resolved link.
// Posts are supplied to the renderer already ordered; nothing in this
// package reorders or filters them.
type Post struct {
	Title string
	Date  time.Time
	URL   string
	Slug  string
	Topic string
}
