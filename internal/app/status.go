package app

import (
	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <to-read|reading|completed>",
		Short: "Change a book's reading status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, found := store.Get(args[0])
			if !found {
				warn("No book with id %q — nothing to do.", args[0])
				return nil
			}

			celebrated := false
			store.OnCompleted(func(c library.Completion) {
				celebrated = true
			})

			if err := store.SetStatus(b.ID, book.Status(args[1])); err != nil {
				return err
			}
			if celebrated {
				ok("Completed: %s 🎉", b.Title)
			} else {
				ok("Status of %q is now %s", b.Title, book.Status(args[1]).Label())
			}
			return nil
		},
	}
	return cmd
}
