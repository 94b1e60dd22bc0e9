package library

import (
	"fmt"
	"testing"
	"time"

	"github.com/blackwell-systems/booklog/internal/book"
)

// fakePort records saves so tests can assert persistence behavior.
type fakePort struct {
	books   []book.Book
	saves   int
	loadErr error
	saveErr error
}

func (f *fakePort) Load() ([]book.Book, error) {
	return f.books, f.loadErr
}

func (f *fakePort) Save(books []book.Book) error {
	f.saves++
	f.books = append([]book.Book{}, books...)
	return f.saveErr
}

// newTestStore returns a store with a deterministic clock and id sequence.
func newTestStore(port *fakePort) *Store {
	s := New(port)
	var tick int64
	s.now = func() time.Time {
		tick++
		return time.UnixMilli(tick)
	}
	var n int
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

func draft(title string) Draft {
	return Draft{Title: title, Author: "Some Author", Genre: "Fiction", Status: book.StatusToRead}
}

// --- Add ---

func TestAdd_InsertsAtHead(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)

	first, err := s.Add(draft("First"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := s.Add(draft("Second"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	books := s.Books()
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != second.ID {
		t.Errorf("head = %q, want most recent %q", books[0].ID, second.ID)
	}
	if books[1].ID != first.ID {
		t.Errorf("tail = %q, want %q", books[1].ID, first.ID)
	}
	if port.saves != 2 {
		t.Errorf("saves = %d, want 2", port.saves)
	}
}

func TestAdd_TrimsTitleAndAuthor(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, err := s.Add(Draft{Title: "  Dune  ", Author: "  Frank Herbert ", Genre: "Fantasy", Status: book.StatusToRead, ISBN: " 9780441013593 "})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if b.Title != "Dune" || b.Author != "Frank Herbert" || b.ISBN != "9780441013593" {
		t.Errorf("fields not trimmed: %+v", b)
	}
	if b.Rating != 0 {
		t.Errorf("new book rating = %d, want 0", b.Rating)
	}
}

func TestAdd_BlankTitleRejected(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)

	_, err := s.Add(Draft{Title: "   ", Author: "Someone", Genre: "Fiction", Status: book.StatusToRead})
	if err != ErrInvalidDraft {
		t.Fatalf("err = %v, want ErrInvalidDraft", err)
	}
	if s.Len() != 0 {
		t.Errorf("collection size changed on invalid draft: %d", s.Len())
	}
	if port.saves != 0 {
		t.Errorf("invalid draft persisted: %d saves", port.saves)
	}
}

func TestAdd_BlankAuthorRejected(t *testing.T) {
	s := newTestStore(&fakePort{})
	if _, err := s.Add(Draft{Title: "Dune", Author: " ", Genre: "Fantasy", Status: book.StatusToRead}); err != ErrInvalidDraft {
		t.Fatalf("err = %v, want ErrInvalidDraft", err)
	}
}

func TestAdd_UnknownGenreRejected(t *testing.T) {
	s := newTestStore(&fakePort{})
	if _, err := s.Add(Draft{Title: "Dune", Author: "Frank Herbert", Genre: "Space Opera", Status: book.StatusToRead}); err == nil {
		t.Fatal("expected error for unknown genre")
	}
}

func TestAdd_InvalidStatusRejected(t *testing.T) {
	s := newTestStore(&fakePort{})
	if _, err := s.Add(Draft{Title: "Dune", Author: "Frank Herbert", Genre: "Fantasy", Status: "abandoned"}); err != ErrBadStatus {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	port := &fakePort{}
	s := New(port) // real uuid generator
	a, _ := s.Add(draft("A"))
	b, _ := s.Add(draft("B"))
	if a.ID == b.ID || a.ID == "" {
		t.Errorf("ids not unique: %q, %q", a.ID, b.ID)
	}
}

// --- Delete ---

func TestDelete_Existing(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	b, _ := s.Add(draft("Doomed"))

	if !s.Delete(b.ID) {
		t.Fatal("Delete returned false for existing book")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d after delete, want 0", s.Len())
	}
	if port.saves != 2 {
		t.Errorf("saves = %d, want 2 (add + delete)", port.saves)
	}
}

func TestDelete_MissingIsNoOp(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	s.Add(draft("Keeper"))
	savesBefore := port.saves

	if s.Delete("nope") {
		t.Error("Delete returned true for missing id")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
	if port.saves != savesBefore {
		t.Errorf("no-op delete persisted: %d saves", port.saves-savesBefore)
	}
}

// --- SetRating ---

func TestSetRating_Bounds(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	b, _ := s.Add(draft("Rated"))

	for _, bad := range []int{-1, 6} {
		if err := s.SetRating(b.ID, bad); err != ErrBadRating {
			t.Errorf("SetRating(%d) err = %v, want ErrBadRating", bad, err)
		}
	}
	got, _ := s.Get(b.ID)
	if got.Rating != 0 {
		t.Errorf("rating changed by rejected values: %d", got.Rating)
	}

	for _, good := range []int{0, 5} {
		if err := s.SetRating(b.ID, good); err != nil {
			t.Errorf("SetRating(%d): %v", good, err)
		}
		got, _ := s.Get(b.ID)
		if got.Rating != good {
			t.Errorf("rating = %d, want %d", got.Rating, good)
		}
	}
}

func TestSetRating_MissingIsNoOp(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	savesBefore := port.saves
	if err := s.SetRating("nope", 3); err != nil {
		t.Fatalf("SetRating on missing id: %v", err)
	}
	if port.saves != savesBefore {
		t.Error("no-op rating persisted")
	}
}

// --- SetStatus / completion events ---

func TestSetStatus_EmitsCompletionOnce(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, _ := s.Add(draft("Almost Done"))

	var events []Completion
	s.OnCompleted(func(c Completion) { events = append(events, c) })

	if err := s.SetStatus(b.ID, book.StatusCompleted); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.ID != b.ID || e.Title != "Almost Done" || e.From != book.StatusToRead || e.To != book.StatusCompleted {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestSetStatus_CompletedToCompletedEmitsNothing(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, _ := s.Add(draft("Done Twice"))
	_ = s.SetStatus(b.ID, book.StatusCompleted)

	count := 0
	s.OnCompleted(func(Completion) { count++ })
	_ = s.SetStatus(b.ID, book.StatusCompleted)
	if count != 0 {
		t.Errorf("completed→completed emitted %d events", count)
	}
}

func TestSetStatus_ReadingThenCompleted(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, _ := s.Add(draft("Two Steps"))

	count := 0
	s.OnCompleted(func(Completion) { count++ })

	_ = s.SetStatus(b.ID, book.StatusReading)
	if count != 0 {
		t.Fatalf("to-read→reading emitted %d events", count)
	}
	_ = s.SetStatus(b.ID, book.StatusCompleted)
	if count != 1 {
		t.Errorf("reading→completed emitted %d events, want 1", count)
	}
}

func TestSetStatus_InvalidRejected(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, _ := s.Add(draft("Stable"))
	if err := s.SetStatus(b.ID, "abandoned"); err != ErrBadStatus {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
	got, _ := s.Get(b.ID)
	if got.Status != book.StatusToRead {
		t.Errorf("status changed by rejected value: %s", got.Status)
	}
}

// --- Clear ---

func TestClear_EmptyIsNoOp(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	if s.Clear() {
		t.Error("Clear returned true on empty collection")
	}
	if port.saves != 0 {
		t.Errorf("clearing empty collection persisted: %d saves", port.saves)
	}
}

func TestClear_NonEmpty(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)
	s.Add(draft("A"))
	s.Add(draft("B"))

	if !s.Clear() {
		t.Fatal("Clear returned false on non-empty collection")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d after clear, want 0", s.Len())
	}
}

// --- snapshots and degradation ---

func TestBooks_ReturnsCopy(t *testing.T) {
	s := newTestStore(&fakePort{})
	s.Add(draft("Original"))

	snapshot := s.Books()
	snapshot[0].Title = "Mutated"

	got, _ := s.Get(snapshot[0].ID)
	if got.Title != "Original" {
		t.Errorf("mutating snapshot changed store state: %q", got.Title)
	}
}

func TestSaveFailureIsNonFatal(t *testing.T) {
	port := &fakePort{saveErr: fmt.Errorf("disk full")}
	s := newTestStore(port)

	b, err := s.Add(draft("Ephemeral"))
	if err != nil {
		t.Fatalf("Add with failing port: %v", err)
	}
	if got, found := s.Get(b.ID); !found || got.Title != "Ephemeral" {
		t.Error("in-memory state lost after save failure")
	}
}

func TestNew_LoadFailureMeansEmpty(t *testing.T) {
	s := New(&fakePort{loadErr: fmt.Errorf("corrupt")})
	if s.Len() != 0 {
		t.Errorf("len = %d with failing load, want 0", s.Len())
	}
}

// --- Seed ---

func TestSeed_AddsThreeSamples(t *testing.T) {
	port := &fakePort{}
	s := newTestStore(port)

	added := s.Seed()
	if len(added) != 3 {
		t.Fatalf("seeded %d books, want 3", len(added))
	}
	books := s.Books()
	if len(books) != 3 {
		t.Fatalf("len = %d after seed, want 3", len(books))
	}
	// Head is the most recently created sample.
	if books[0].Title != "Dune" {
		t.Errorf("head = %q, want %q", books[0].Title, "Dune")
	}
	if port.saves != 3 {
		t.Errorf("saves = %d, want 3", port.saves)
	}
}

// --- end-to-end: filter catches up with a status change ---

func TestCompletedBookBecomesVisible(t *testing.T) {
	s := newTestStore(&fakePort{})
	b, _ := s.Add(Draft{Title: "Dune", Author: "Frank Herbert", Genre: "Fantasy", Status: book.StatusToRead})

	criteria := Criteria{Search: "dune", Status: string(book.StatusCompleted), Sort: book.SortCreatedDesc}

	if got := criteria.Apply(s.Books()); len(got) != 0 {
		t.Fatalf("visible before completion = %d, want 0", len(got))
	}

	_ = s.SetStatus(b.ID, book.StatusCompleted)

	got := criteria.Apply(s.Books())
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("visible after completion = %v, want exactly the completed book", got)
	}
}
