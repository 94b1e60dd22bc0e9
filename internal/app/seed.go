package app

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add three sample books to try booklog out",
		RunE: func(cmd *cobra.Command, args []string) error {
			added := store.Seed()
			for _, b := range added {
				ok("Added %q by %s", b.Title, b.Author)
			}
			return nil
		},
	}
	return cmd
}
