package book_test

import (
	"testing"

	"github.com/blackwell-systems/booklog/internal/book"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range book.Statuses {
		if !s.Valid() {
			t.Errorf("%q not valid", s)
		}
	}
	for _, s := range []book.Status{"", "done", "Completed", "abandoned"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestStatus_Label(t *testing.T) {
	cases := map[book.Status]string{
		book.StatusToRead:    "To Read",
		book.StatusReading:   "Reading",
		book.StatusCompleted: "Completed",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Errorf("%q label = %q, want %q", s, got, want)
		}
	}
}

func TestStatus_NextCycles(t *testing.T) {
	s := book.StatusToRead
	seen := map[book.Status]bool{}
	for i := 0; i < len(book.Statuses); i++ {
		seen[s] = true
		s = s.Next()
	}
	if len(seen) != len(book.Statuses) {
		t.Errorf("cycle visited %d states, want %d", len(seen), len(book.Statuses))
	}
	if s != book.StatusToRead {
		t.Errorf("full cycle ended at %q", s)
	}
}

func TestValidGenre(t *testing.T) {
	if !book.ValidGenre("Fantasy") {
		t.Error("Fantasy should be a known genre")
	}
	if book.ValidGenre("fantasy") {
		t.Error("genre matching is exact, lowercase should fail")
	}
	if book.ValidGenre("") {
		t.Error("empty genre should fail")
	}
}

func TestSortKey_Valid(t *testing.T) {
	for _, k := range book.SortKeys {
		if !k.Valid() {
			t.Errorf("%q not valid", k)
		}
	}
	if book.SortKey("rating-asc").Valid() {
		t.Error("rating-asc should not be valid")
	}
}

func TestSortKey_NextCycles(t *testing.T) {
	k := book.SortCreatedDesc
	for i := 0; i < len(book.SortKeys); i++ {
		k = k.Next()
	}
	if k != book.SortCreatedDesc {
		t.Errorf("full cycle ended at %q", k)
	}
}
