// Package store persists rendered certificates as PNG files and publishes
// the active variant.
//
// Layout under the root directory:
//
//	<root>/variants/<name>/record-certificate.png
//	<root>/variants/<name>/first-prize-certificate.png
//	<root>/record-certificate.png          (active variant)
//	<root>/first-prize-certificate.png     (active variant)
package store

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/certgen/variant"
)

const filePerm = 0o644

// Store writes certificates below Root.
type Store struct {
	root string
	dpi  int
}

// New returns a Store rooted at root that tags images with dpi.
func New(root string, dpi int) *Store {
	return &Store{root: root, dpi: dpi}
}

// Root returns the published directory.
func (s *Store) Root() string { return s.root }

// Dir returns the directory holding a variant's certificates.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, "variants", name)
}

// Path returns the file a variant's certificate is saved to.
func (s *Store) Path(name string, kind variant.Kind) string {
	return filepath.Join(s.Dir(name), kind.Artifact()+".png")
}

// PublishedPath returns the file the active certificate of kind is copied to.
func (s *Store) PublishedPath(kind variant.Kind) string {
	return filepath.Join(s.root, kind.Artifact()+".png")
}

// Save encodes img and writes it atomically. Safe for concurrent use.
func (s *Store) Save(name string, kind variant.Kind, img image.Image) error {
	data, err := EncodePNG(img, s.dpi)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return writeAtomic(s.Path(name, kind), data)
}

// Activate copies both certificates of a saved variant to the root,
// byte for byte. Both are read and staged before either is replaced, so a
// missing or unwritable file publishes nothing.
func (s *Store) Activate(name string) error {
	files := make([]file, 0, len(variant.Kinds))
	for _, k := range variant.Kinds {
		data, err := os.ReadFile(s.Path(name, k))
		if err != nil {
			return fmt.Errorf("read %s: %w", k.Artifact(), err)
		}
		files = append(files, file{path: s.PublishedPath(k), data: data})
	}
	if err := publish(files); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}
