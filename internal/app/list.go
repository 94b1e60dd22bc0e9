package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		statusFilter string
		search       string
		sortKey      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your books (filtered, searched, sorted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if statusFilter != library.FilterAll && !book.Status(statusFilter).Valid() {
				return fmt.Errorf("unknown status filter %q", statusFilter)
			}
			key := book.SortKey(sortKey)
			if !key.Valid() {
				return fmt.Errorf("unknown sort key %q", sortKey)
			}

			criteria := library.Criteria{Search: search, Status: statusFilter, Sort: key}
			visible := criteria.Apply(store.Books())

			if len(visible) == 0 {
				warn("No books match.")
				return nil
			}

			header("%-24s %-20s %-11s %-10s %s", "TITLE", "AUTHOR", "GENRE", "STATUS", "RATING")
			for _, b := range visible {
				stars := strings.Repeat("★", b.Rating) + strings.Repeat("☆", book.MaxRating-b.Rating)
				fmt.Printf("%-24s %-20s %-11s %-10s %s\n",
					clip(b.Title, 24), clip(b.Author, 20), clip(b.Genre, 11),
					statusColored(b.Status), color.YellowString(stars))
			}
			fmt.Println()
			fmt.Printf("%d shown • %d total\n", len(visible), store.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFilter, "status", "s", library.FilterAll, "Filter by status: all, to-read, reading or completed")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Search title and author")
	cmd.Flags().StringVarP(&sortKey, "sort", "o", string(book.SortCreatedDesc), "Sort: created-asc, created-desc, title-asc, title-desc, author-asc or rating-desc")

	return cmd
}

func statusColored(s book.Status) string {
	switch s {
	case book.StatusCompleted:
		return color.GreenString("%-10s", s.Label())
	case book.StatusReading:
		return color.YellowString("%-10s", s.Label())
	}
	return fmt.Sprintf("%-10s", s.Label())
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
