package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the reading list as YAML",
		Long: `Export the reading list as YAML, to stdout or a file.

The output can be re-imported with 'booklog import'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(store.Books()); err != nil {
				return fmt.Errorf("encoding books: %w", err)
			}

			if outPath == "" {
				fmt.Print(buf.String())
				return nil
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			ok("Exported %d books to %s", store.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "f", "", "Write to file instead of stdout")
	return cmd
}

func newImportCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import books from a YAML export",
		Long: `Import books from a YAML export.

By default imported books are added through the normal create path, which
assigns fresh ids and creation times. With --replace the whole collection
is swapped for the file contents, ids included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import: %w", err)
			}
			var books []book.Book
			if err := yaml.Unmarshal(data, &books); err != nil {
				return fmt.Errorf("parsing import: %w", err)
			}

			if replace {
				store.Replace(books)
				ok("Replaced collection with %d books", len(books))
				return nil
			}

			imported := 0
			for i := len(books) - 1; i >= 0; i-- {
				b := books[i]
				if _, err := addImported(b); err != nil {
					warn("Skipping %q: %v", b.Title, err)
					continue
				}
				imported++
			}
			ok("Imported %d of %d books", imported, len(books))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the whole collection instead of merging")
	return cmd
}
