package export

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ImageRegistry resolves an outline image reference to raw image bytes.
type ImageRegistry interface {
	Lookup(key string) ([]byte, bool)
}

// MapRegistry is an in-memory image registry.
type MapRegistry map[string][]byte

func (m MapRegistry) Lookup(key string) ([]byte, bool) {
	data, ok := m[key]
	return data, ok
}

// DirRegistry resolves image references against a directory, trying the
// key verbatim and then with common raster extensions. Loaded files are
// cached for the life of the registry.
type DirRegistry struct {
	Dir string

	mu    sync.Mutex
	cache map[string][]byte
}

// NewDirRegistry creates a registry over dir.
func NewDirRegistry(dir string) *DirRegistry {
	return &DirRegistry{Dir: dir, cache: make(map[string][]byte)}
}

func (d *DirRegistry) Lookup(key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if data, ok := d.cache[key]; ok {
		return data, true
	}

	candidates := []string{key}
	if filepath.Ext(key) == "" {
		for _, ext := range []string{".png", ".jpg", ".jpeg"} {
			candidates = append(candidates, key+ext)
		}
	}
	for _, name := range candidates {
		data, err := os.ReadFile(filepath.Join(d.Dir, filepath.Clean(name)))
		if err == nil {
			d.cache[key] = data
			return data, true
		}
	}
	return nil, false
}

// MimeForImage guesses a MIME type from the reference name, defaulting to
// PNG.
func MimeForImage(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
