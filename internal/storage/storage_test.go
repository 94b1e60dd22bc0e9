package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/storage"
)

func sampleBooks() []book.Book {
	return []book.Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Genre: "Fantasy", Status: book.StatusCompleted, ISBN: "9780441013593", Rating: 5, CreatedAt: 1700000000000},
		{ID: "2", Title: "Atomic Habits", Author: "James Clear", Genre: "Nonfiction", Status: book.StatusReading, Rating: 0, CreatedAt: 1700000000001},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := storage.NewFile(t.TempDir())
	want := sampleBooks()

	if err := f.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round-trip length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] mismatch:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestSaveLoad_EmptyCollection(t *testing.T) {
	f := storage.NewFile(t.TempDir())
	if err := f.Save([]book.Book{}); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d books, want 0", len(got))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	f := storage.NewFile(t.TempDir())
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	f := storage.NewFile(dir)
	if err := os.WriteFile(f.Path(), []byte("{not json["), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load corrupt: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt blob yielded %d books, want 0", len(got))
	}
}

func TestSave_Overwrites(t *testing.T) {
	f := storage.NewFile(t.TempDir())
	if err := f.Save(sampleBooks()); err != nil {
		t.Fatal(err)
	}
	if err := f.Save([]book.Book{{ID: "only", Title: "Solo", Author: "A", Genre: "Fiction", Status: book.StatusToRead}}); err != nil {
		t.Fatal(err)
	}
	got, _ := f.Load()
	if len(got) != 1 || got[0].ID != "only" {
		t.Errorf("second save did not overwrite: %v", got)
	}
}

func TestSave_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := storage.NewFile(dir)
	if err := f.Save(sampleBooks()); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if _, err := os.Stat(f.Path()); err != nil {
		t.Errorf("blob not created: %v", err)
	}
}

func TestPath_UsesNamespacedKey(t *testing.T) {
	f := storage.NewFile("/data")
	want := filepath.Join("/data", storage.Key+".json")
	if f.Path() != want {
		t.Errorf("Path = %q, want %q", f.Path(), want)
	}
}
