package core

// WriteDecision says what the build should do with a rendered page.
type WriteDecision int

const (
	WriteNew WriteDecision = iota
	WriteChanged
	SkipUnchanged
)

// DecideWrite compares the manifest hash from the previous build with
// the freshly rendered content hash.
func DecideWrite(prevHash, newHash string) WriteDecision {
	switch {
	case prevHash == "":
		return WriteNew
	case prevHash != newHash:
		return WriteChanged
	}
	return SkipUnchanged
}
