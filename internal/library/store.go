package library

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrInvalidDraft is returned when a draft is missing a required field.
	ErrInvalidDraft = errors.New("title, author, genre and status are required")
	// ErrBadRating is returned when a rating falls outside 0..5.
	ErrBadRating = fmt.Errorf("rating must be between 0 and %d", book.MaxRating)
	// ErrBadStatus is returned when a status is not one of the known states.
	ErrBadStatus = errors.New("status must be to-read, reading or completed")
)

// Draft holds the raw, possibly untrimmed fields for a new book.
type Draft struct {
	Title  string
	Author string
	Genre  string
	Status book.Status
	ISBN   string
}

// Completion describes a book moving into the completed state.
type Completion struct {
	ID    string
	Title string
	From  book.Status
	To    book.Status
}

// Store is the sole owner and mutator of the book collection. Every mutation
// persists the whole collection through the injected Port before returning;
// a failed save leaves the in-memory state authoritative for the session.
type Store struct {
	port        storage.Port
	books       []book.Book
	onCompleted []func(Completion)

	now   func() time.Time
	newID func() string
}

// New creates a Store backed by port, loading whatever it holds.
func New(port storage.Port) *Store {
	s := &Store{
		port:  port,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	books, err := port.Load()
	if err != nil || books == nil {
		books = []book.Book{}
	}
	s.books = books
	return s
}

// OnCompleted registers fn to be called whenever a book transitions from a
// non-completed status into completed.
func (s *Store) OnCompleted(fn func(Completion)) {
	s.onCompleted = append(s.onCompleted, fn)
}

// Books returns a copy of the collection in insertion order, newest first.
// Callers must not treat the result as live state.
func (s *Store) Books() []book.Book {
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the collection size.
func (s *Store) Len() int {
	return len(s.books)
}

// Get returns the book with the given id.
func (s *Store) Get(id string) (book.Book, bool) {
	if b := s.find(id); b != nil {
		return *b, true
	}
	return book.Book{}, false
}

// Add validates the draft, assigns identity and creation time, and inserts
// the new book at the head of the collection.
func (s *Store) Add(d Draft) (book.Book, error) {
	title := strings.TrimSpace(d.Title)
	author := strings.TrimSpace(d.Author)
	if title == "" || author == "" || d.Genre == "" || d.Status == "" {
		return book.Book{}, ErrInvalidDraft
	}
	if !book.ValidGenre(d.Genre) {
		return book.Book{}, fmt.Errorf("unknown genre %q", d.Genre)
	}
	if !d.Status.Valid() {
		return book.Book{}, ErrBadStatus
	}

	b := book.Book{
		ID:        s.newID(),
		Title:     title,
		Author:    author,
		Genre:     d.Genre,
		Status:    d.Status,
		ISBN:      strings.TrimSpace(d.ISBN),
		Rating:    0,
		CreatedAt: s.now().UnixMilli(),
	}
	s.books = append([]book.Book{b}, s.books...)
	s.persist()
	return b, nil
}

// Delete removes the book with the given id. Removing an unknown id is a
// no-op and reports false.
func (s *Store) Delete(id string) bool {
	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// SetRating updates a book's rating in place. Unknown ids are a no-op.
func (s *Store) SetRating(id string, rating int) error {
	if rating < 0 || rating > book.MaxRating {
		return ErrBadRating
	}
	b := s.find(id)
	if b == nil {
		return nil
	}
	b.Rating = rating
	s.persist()
	return nil
}

// SetStatus updates a book's reading state in place. Unknown ids are a
// no-op. Moving into completed from any other state notifies the completion
// observers exactly once.
func (s *Store) SetStatus(id string, status book.Status) error {
	if !status.Valid() {
		return ErrBadStatus
	}
	b := s.find(id)
	if b == nil {
		return nil
	}
	from := b.Status
	b.Status = status
	s.persist()

	if from != book.StatusCompleted && status == book.StatusCompleted {
		c := Completion{ID: b.ID, Title: b.Title, From: from, To: status}
		for _, fn := range s.onCompleted {
			fn(c)
		}
	}
	return nil
}

// Clear empties the collection. Clearing an already-empty collection is a
// no-op and reports false.
func (s *Store) Clear() bool {
	if len(s.books) == 0 {
		return false
	}
	s.books = []book.Book{}
	s.persist()
	return true
}

// Replace swaps in an entire collection, e.g. from an import. The new books
// are persisted as-is.
func (s *Store) Replace(books []book.Book) {
	if books == nil {
		books = []book.Book{}
	}
	s.books = books
	s.persist()
}

func (s *Store) find(id string) *book.Book {
	for i := range s.books {
		if s.books[i].ID == id {
			return &s.books[i]
		}
	}
	return nil
}

// persist writes through the Port. Save failures are swallowed: persistence
// is best-effort and the in-memory collection stays authoritative.
func (s *Store) persist() {
	_ = s.port.Save(s.books)
}
