package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/booklog/internal/book"
	jsoniter "github.com/json-iterator/go"
)

// Key is the namespaced identifier the whole collection is persisted under.
// The on-disk blob lives at <dir>/<Key>.json.
const Key = "booklog_v1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Port is the persistence boundary. The collection is always written and read
// as a single unit.
type Port interface {
	// Load returns the persisted collection. Missing or corrupt data yields
	// an empty collection, not an error.
	Load() ([]book.Book, error)
	// Save overwrites the persisted collection.
	Save(books []book.Book) error
}

// File persists the collection as a single JSON blob on disk.
type File struct {
	dir string
}

// NewFile returns a Port rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path returns the blob location.
func (f *File) Path() string {
	return filepath.Join(f.dir, Key+".json")
}

// Load reads the blob. A missing file or undecodable contents count as an
// empty library — there is no schema version to migrate.
func (f *File) Load() ([]book.Book, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return []book.Book{}, nil
		}
		return []book.Book{}, fmt.Errorf("reading library: %w", err)
	}
	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return []book.Book{}, nil
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

// Save writes the whole collection, replacing any prior blob.
func (f *File) Save(books []book.Book) error {
	if books == nil {
		books = []book.Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	if err := os.MkdirAll(f.dir, 0750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(f.Path(), data, 0600); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}
	return nil
}
