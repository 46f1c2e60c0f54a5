package core

import (
	"encoding/json"
)

// ManifestEntry records where a page was written and the hash of its
// content at the time.
type ManifestEntry struct {
	Output string `json:"output"`
	Hash   string `json:"hash,omitempty"`
}

// Manifest is the build record emitted next to the output pages, keyed
// by permalink. It drives the skip-unchanged decision on rebuilds.
type Manifest struct {
	Pages map[string]ManifestEntry `json:"pages"`
}

// ManifestFile is the manifest's filename inside the output directory.
const ManifestFile = "manifest.json"

func NewManifest() *Manifest {
	return &Manifest{Pages: make(map[string]ManifestEntry)}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Pages == nil {
		m.Pages = make(map[string]ManifestEntry)
	}
	return &m, nil
}

func EncodeManifest(m *Manifest) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// PreviousHash looks up the recorded hash for a permalink. A nil
// manifest or unknown permalink yields the empty string.
func PreviousHash(m *Manifest, permalink string) string {
	if m == nil {
		return ""
	}
	return m.Pages[NormalizePermalink(permalink)].Hash
}
