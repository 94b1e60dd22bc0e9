package app

import (
	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every book from your reading list",
		Long: `Remove every book from your reading list.

This action is irreversible. You will be asked to confirm unless --yes
is given. Clearing an already-empty list does nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if store.Len() == 0 {
				warn("Nothing to clear.")
				return nil
			}

			if !skipConfirm && !confirm("Clear ALL books? This cannot be undone.") {
				warn("Cancelled.")
				return nil
			}

			store.Clear()
			ok("Cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
