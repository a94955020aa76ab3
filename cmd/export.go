package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/export"
)

var exportRevealAll bool

var exportCmd = &cobra.Command{
	Use:   "export [collection_id] [page] [out.png]",
	Short: "Render an album page to a PNG",
	Long: `Export draws one page of a collection, as the album shows it, to a PNG
file. Pages are numbered from 1.

Examples:
  binder export genesis 1 genesis-1.png
  binder export --reveal genesis 2 traits.png`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		collectionID, out := args[0], args[2]
		page, err := strconv.Atoi(args[1])
		if err != nil || page < 1 {
			return fmt.Errorf("invalid page number: %s", args[1])
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		v, err := pageView(cat, collectionID, page-1, exportRevealAll)
		if err != nil {
			return err
		}
		if err := export.Page(v, out); err != nil {
			return err
		}

		logger.Info("page exported", "collection", collectionID, "page", page, "path", out)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s page %d/%d to %s\n", v.CollectionName, page, v.PageCount, out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportRevealAll, "reveal", false, "show every card's back")
}

// pageView turns the album to page through the controller, so the result
// matches what the interactive album shows after the same page turns
func pageView(src album.Source, collectionID string, page int, reveal bool) (album.View, error) {
	ctrl := album.New(src, album.Options{Scheduler: album.Immediate, Logger: logger})
	if ctrl.SwitchCollection(collectionID) != album.SwitchOK {
		return album.View{}, fmt.Errorf("collection not found: %s", collectionID)
	}

	if page >= ctrl.PageCount() {
		return album.View{}, fmt.Errorf("%w: page %d of %d", album.ErrPageOutOfRange, page+1, ctrl.PageCount())
	}
	for ctrl.State().Page < page {
		if !ctrl.NextPage() {
			return album.View{}, fmt.Errorf("could not turn to page %d", page+1)
		}
	}

	if reveal {
		for local := 0; local < album.PageCapacity; local++ {
			ctrl.ToggleCard(local)
		}
	}
	return ctrl.View(), nil
}
