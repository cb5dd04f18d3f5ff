package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirRegistryLookup(t *testing.T) {
	dir := t.TempDir()
	png := []byte{0x89, 'P', 'N', 'G'}
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), png, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpg"), 0644); err != nil {
		t.Fatal(err)
	}

	reg := NewDirRegistry(dir)

	// Extensionless keys try the common raster extensions.
	data, ok := reg.Lookup("logo")
	if !ok || string(data) != string(png) {
		t.Errorf("Lookup(logo) = %q %v", data, ok)
	}
	if data, ok := reg.Lookup("photo.jpg"); !ok || string(data) != "jpg" {
		t.Errorf("Lookup(photo.jpg) = %q %v", data, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("missing key resolved")
	}
	if _, ok := reg.Lookup(""); ok {
		t.Error("empty key resolved")
	}

	// Cached entries survive the file going away.
	if err := os.Remove(filepath.Join(dir, "logo.png")); err != nil {
		t.Fatal(err)
	}
	if _, ok := reg.Lookup("logo"); !ok {
		t.Error("cache miss after file removal")
	}
}

func TestMimeForImage(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"a.png", "image/png"},
		{"a.JPG", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a.gif", "image/gif"},
		{"bare", "image/png"},
	}
	for _, tt := range tests {
		if got := MimeForImage(tt.name); got != tt.want {
			t.Errorf("MimeForImage(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
