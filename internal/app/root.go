package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/booklog/internal/config"
	"github.com/blackwell-systems/booklog/internal/covers"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/blackwell-systems/booklog/internal/storage"
	"github.com/blackwell-systems/booklog/internal/tui"
	"github.com/blackwell-systems/booklog/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	store      *library.Store
	coverCache *covers.Cache

	flagNoColor       bool
	flagNoInteractive bool
	flagDataDir       string
)

var rootCmd = &cobra.Command{
	Use:   "booklog",
	Short: "Track your personal reading list",
	Long: `booklog is a local-only reading-list tracker.

Books live in a single JSON file under your data directory. Tag each book
with a status (to-read / reading / completed) and a 0-5 rating, then browse
the collection with free-text search, status filters and sorting.

Run 'booklog' with no arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.Interactive(flagNoInteractive) {
			return tui.RunBrowser(store, coverCache, cfg.Sound)
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: ~/.local/share/booklog)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = config.ExpandHome(flagDataDir)
		}

		store = library.New(storage.NewFile(cfg.DataDir))
		coverCache = covers.NewCache(cfg.Covers.CacheDir, cfg.Covers.BaseURL)
		return nil
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newInfoCmd(),
		newRateCmd(),
		newStatusCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newSeedCmd(),
		newExportCmd(),
		newImportCmd(),
		newCoversCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// confirm asks a yes/no question on the terminal. Anything but an explicit
// yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	return response == "y" || response == "Y" || response == "yes"
}
