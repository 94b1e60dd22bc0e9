package app

import (
	"github.com/spf13/cobra"
)

func newCoversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covers",
		Short: "Prefetch cover images for the whole collection",
		Long: `Prefetch cover images for the whole collection.

Covers come from the configured cover service (Open Library by default),
keyed by ISBN. Books without a usable ISBN, and lookups that fail, are
skipped — the browser shows a placeholder for them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetched, skipped := 0, 0
			for _, b := range store.Books() {
				if _, err := coverCache.Fetch(b.ISBN); err != nil {
					skipped++
					continue
				}
				fetched++
			}
			ok("%d covers cached, %d without covers", fetched, skipped)
			return nil
		},
	}
	return cmd
}
