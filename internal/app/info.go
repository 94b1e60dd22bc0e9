package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/covers"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <id>",
		Short: "Show full details for one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, found := store.Get(args[0])
			if !found {
				return fmt.Errorf("no book with id %q", args[0])
			}

			header("%s", b.Title)
			fmt.Printf("  Author:  %s\n", b.Author)
			fmt.Printf("  Genre:   %s\n", b.Genre)
			fmt.Printf("  Status:  %s\n", b.Status.Label())
			fmt.Printf("  Rating:  %s (%d/%d)\n",
				strings.Repeat("★", b.Rating)+strings.Repeat("☆", book.MaxRating-b.Rating),
				b.Rating, book.MaxRating)
			fmt.Printf("  Added:   %s\n", time.UnixMilli(b.CreatedAt).Format("2006-01-02 15:04"))
			if b.ISBN != "" {
				fmt.Printf("  ISBN:    %s\n", b.ISBN)
				if url := covers.URL(cfg.Covers.BaseURL, b.ISBN); url != "" {
					fmt.Printf("  Cover:   %s\n", url)
				}
			}
			fmt.Printf("  ID:      %s\n", b.ID)
			return nil
		},
	}
	return cmd
}
