package library

import "github.com/blackwell-systems/booklog/internal/book"

// sampleDrafts are the fixed starter records added by Seed.
var sampleDrafts = []Draft{
	{Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", Status: book.StatusToRead, ISBN: "9780061122415"},
	{Title: "Atomic Habits", Author: "James Clear", Genre: "Nonfiction", Status: book.StatusReading, ISBN: "9780735211292"},
	{Title: "Dune", Author: "Frank Herbert", Genre: "Fantasy", Status: book.StatusCompleted, ISBN: "9780441013593"},
}

// Seed adds the three sample books through the normal Add path and returns
// the records that were created.
func (s *Store) Seed() []book.Book {
	added := make([]book.Book, 0, len(sampleDrafts))
	for _, d := range sampleDrafts {
		b, err := s.Add(d)
		if err != nil {
			continue
		}
		added = append(added, b)
	}
	return added
}
