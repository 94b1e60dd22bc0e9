package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/spf13/cobra"
)

func newRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a book from 0 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number between 0 and %d", book.MaxRating)
			}
			b, found := store.Get(args[0])
			if !found {
				warn("No book with id %q — nothing to do.", args[0])
				return nil
			}
			if err := store.SetRating(b.ID, rating); err != nil {
				return err
			}
			ok("Rated %q %d/%d", b.Title, rating, book.MaxRating)
			return nil
		},
	}
	return cmd
}
