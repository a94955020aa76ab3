package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/binder/internal/config"
	"github.com/arcanaland/binder/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog_path]",
	Short: "Validate a collection catalog",
	Long: `Validate checks a catalog.toml, or a directory holding one, for problems
the album would trip over: duplicate IDs, unknown rarities, slots that name
missing cards and card images that can't be read.

Without a path the configured catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveCatalogPath(catalogFlag, cfg)
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("catalog not found: %s", path)
		}

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		logger.Debug("validation finished", "path", path, "errors", len(results.Errors), "warnings", len(results.Warnings))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("Warnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
			fmt.Fprintln(out)
		}

		if len(results.Errors) > 0 {
			fmt.Fprintln(out, colorize.RedString("✗ Catalog '%s' has %d validation errors:", path, len(results.Errors)))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return fmt.Errorf("validation failed")
		}

		fmt.Fprintln(out, colorize.GreenString("✓ Catalog '%s' is valid.", path))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
