package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a book from your reading list",
		Long: `Delete a book from your reading list.

This action is irreversible. You will be asked to confirm unless --yes
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, found := store.Get(args[0])
			if !found {
				warn("No book with id %q — nothing to do.", args[0])
				return nil
			}

			if !skipConfirm && !confirm(fmt.Sprintf("Delete %q?", b.Title)) {
				warn("Cancelled.")
				return nil
			}

			store.Delete(b.ID)
			ok("Deleted %q", b.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
