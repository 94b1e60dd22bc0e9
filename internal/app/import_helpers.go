package app

import (
	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/library"
)

// addImported routes an imported record through the normal create path and
// restores the fields Add resets (rating survives an import, identity does
// not).
func addImported(b book.Book) (book.Book, error) {
	added, err := store.Add(library.Draft{
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		Status: b.Status,
		ISBN:   b.ISBN,
	})
	if err != nil {
		return book.Book{}, err
	}
	if b.Rating != 0 {
		if err := store.SetRating(added.ID, b.Rating); err == nil {
			added.Rating = b.Rating
		}
	}
	return added, nil
}
