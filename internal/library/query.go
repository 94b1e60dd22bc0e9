package library

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/booklog/internal/book"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll matches every status in a Criteria.
const FilterAll = "all"

// Criteria selects and orders the visible subset of a collection.
// The zero value means "everything, insertion order untouched by search".
type Criteria struct {
	Search string       // substring match on title or author, case-insensitive
	Status string       // FilterAll or one of the three status values
	Sort   book.SortKey // ordering rule
}

// DefaultCriteria is the view shown on startup: everything, newest first.
func DefaultCriteria() Criteria {
	return Criteria{Status: FilterAll, Sort: book.SortCreatedDesc}
}

// collator gives locale-aware title/author ordering.
var collator = collate.New(language.English, collate.IgnoreCase)

// Apply runs the filter → search → sort pipeline over a snapshot and returns
// the visible subset as a fresh slice. The input and its elements are never
// mutated; ties under rating-desc keep their input order (the sort is stable
// on purpose — there is no secondary key).
func (c Criteria) Apply(books []book.Book) []book.Book {
	out := make([]book.Book, 0, len(books))

	status := book.Status(c.Status)
	query := normalize(c.Search)
	for _, b := range books {
		if c.Status != "" && c.Status != FilterAll && b.Status != status {
			continue
		}
		if query != "" && !matches(b, query) {
			continue
		}
		out = append(out, b)
	}

	less := lessFunc(c.Sort)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matches(b book.Book, query string) bool {
	return strings.Contains(strings.ToLower(b.Title), query) ||
		strings.Contains(strings.ToLower(b.Author), query)
}

func lessFunc(key book.SortKey) func(a, b book.Book) bool {
	switch key {
	case book.SortCreatedAsc:
		return func(a, b book.Book) bool { return a.CreatedAt < b.CreatedAt }
	case book.SortCreatedDesc:
		return func(a, b book.Book) bool { return a.CreatedAt > b.CreatedAt }
	case book.SortTitleAsc:
		return func(a, b book.Book) bool { return collator.CompareString(a.Title, b.Title) < 0 }
	case book.SortTitleDesc:
		return func(a, b book.Book) bool { return collator.CompareString(b.Title, a.Title) < 0 }
	case book.SortAuthorAsc:
		return func(a, b book.Book) bool { return collator.CompareString(a.Author, b.Author) < 0 }
	case book.SortRatingDesc:
		return func(a, b book.Book) bool { return a.Rating > b.Rating }
	}
	return nil
}
