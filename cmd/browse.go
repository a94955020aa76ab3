package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/catalog"
	"github.com/arcanaland/binder/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [collection_id]",
	Short: "Open a collection in the interactive album",
	Long: `Browse opens a collection as a paged album. Turn pages with the arrow
keys, flip cards with 1-6 and switch collections with tab.

Without a collection ID the default collection from your config is opened.
When stdout is not a terminal the first page is printed instead.

Examples:
  binder browse
  binder browse genesis
  binder browse --catalog ./catalog.toml tides`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		collectionID := cfg.DefaultCollection
		if len(args) == 1 {
			collectionID = args[0]
		}

		if !isTerminal(cmd.OutOrStdout()) {
			return printPage(cmd.OutOrStdout(), cat, collectionID)
		}

		model := ui.New(cat, ui.Options{
			Collection:   collectionID,
			FlipDuration: cfg.FlipDuration(),
			Logger:       logger,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("error running album: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printPage writes the first page of a collection as plain text
func printPage(w io.Writer, cat *catalog.Catalog, collectionID string) error {
	ctrl := album.New(cat, album.Options{Scheduler: album.Immediate, Logger: logger})

	if collectionID == "" {
		cols := cat.Collections()
		if len(cols) == 0 {
			return fmt.Errorf("catalog has no collections")
		}
		collectionID = cols[0].ID
	}
	if ctrl.SwitchCollection(collectionID) != album.SwitchOK {
		return fmt.Errorf("collection not found: %s", collectionID)
	}

	_, err := fmt.Fprint(w, ctrl.View().String())
	return err
}
