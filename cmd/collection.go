package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/catalog"
	"github.com/arcanaland/binder/internal/config"
)

// collectionCmd represents the collection command group
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage the collections in your catalog",
	Long:  `Commands for listing collections and choosing the one the album opens by default.`,
}

// collectionListCmd represents the collection ls command
var collectionListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the collections in your catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		cols := cat.Collections()
		if len(cols) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No collections found in your catalog.")
			fmt.Fprintln(cmd.OutOrStdout(), "You can add collections to:", cat.Path)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), collectionTable(cols, cfg.DefaultCollection))
		return nil
	},
}

// collectionSetDefaultCmd represents the collection set-default command
var collectionSetDefaultCmd = &cobra.Command{
	Use:   "set-default [collection_id]",
	Short: "Set the collection the album opens with",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if _, err := cat.Collection(id); err != nil {
			return err
		}

		if err := config.SetDefaultCollection(id); err != nil {
			return fmt.Errorf("error setting default collection: %w", err)
		}
		logger.Info("default collection changed", "collection", id)

		fmt.Fprintf(cmd.OutOrStdout(), "Default collection set to: %s\n", id)
		return nil
	},
}

// collectionInitCmd represents the collection init command
var collectionInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the library with a starter catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating library: %w", err)
		}
		fmt.Fprintln(out, "Library initialized at:", libraryPath)

		catalogPath := config.GetCatalogPath()
		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			if err := writeStarterCatalog(catalogPath); err != nil {
				return err
			}
			fmt.Fprintln(out, "Starter catalog written to:", catalogPath)
		} else {
			fmt.Fprintln(out, "Catalog already exists at:", catalogPath)
		}

		// LoadConfig creates the config file on first run
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionSetDefaultCmd)
	collectionCmd.AddCommand(collectionInitCmd)
}

func collectionTable(cols []*catalog.Collection, defaultID string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "ID", "Name", "Cards", "Slots", "Pages"})

	for _, c := range cols {
		marker := ""
		if c.ID == defaultID {
			marker = "*"
		}
		tw.AppendRow(table.Row{
			marker,
			c.ID,
			c.Name,
			strconv.Itoa(c.CardCount()),
			strconv.Itoa(len(c.Slots)),
			strconv.Itoa(album.PageCount(c, album.PageCapacity)),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	return tw.Render() + "\n"
}

func starterCatalog() catalog.CatalogConfig {
	return catalog.CatalogConfig{
		Collections: []catalog.CollectionSection{{
			ID:          "starter",
			Name:        "Starter Binder",
			Description: "A first collection. Edit catalog.toml to add your own.",
			Slots:       []string{"spark", "", "glimmer"},
		}},
		Cards: []catalog.CardSection{
			{
				ID:     "spark",
				Name:   "Spark",
				Rarity: "Common",
				Attributes: []catalog.AttributeSection{
					{Trait: "element", Value: "Fire"},
				},
			},
			{
				ID:     "glimmer",
				Name:   "Glimmer",
				Rarity: "Rare",
				Attributes: []catalog.AttributeSection{
					{Trait: "element", Value: "Light"},
					{Trait: "background", Value: "Night Sky"},
				},
			},
		},
	}
}

func writeStarterCatalog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating catalog directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating catalog: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(starterCatalog()); err != nil {
		return fmt.Errorf("error encoding catalog: %w", err)
	}
	return nil
}
