package app

import (
	"strings"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		author string
		genre  string
		status string
		isbn   string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to your reading list",
		Long: `Add a book to your reading list.

Title and author are required and must not be blank. Genre must be one of
the known genres (see 'booklog add --help'). Status defaults to to-read.

Examples:
  booklog add "Dune" --author "Frank Herbert" --genre Fantasy
  booklog add "Atomic Habits" -a "James Clear" -g Nonfiction -s reading --isbn 9780735211292`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := store.Add(library.Draft{
				Title:  args[0],
				Author: author,
				Genre:  genre,
				Status: book.Status(status),
				ISBN:   isbn,
			})
			if err != nil {
				return err
			}
			ok("Added %q (%s)", b.Title, b.ID)
			if b.ISBN != "" {
				if _, err := coverCache.Fetch(b.ISBN); err == nil {
					ok("Cover cached")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author name (required)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre: "+strings.Join(book.Genres, ", "))
	cmd.Flags().StringVarP(&status, "status", "s", string(book.StatusToRead), "Initial status: to-read, reading or completed")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN (optional, used for cover lookup)")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("genre")

	return cmd
}
