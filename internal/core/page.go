package core

// PageSpec is a fully resolved page definition: its front matter plus
// the list rendering variant it uses.
type PageSpec struct {
	Meta PageMeta
	List ListOptions
}
