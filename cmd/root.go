package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/binder/internal/catalog"
	"github.com/arcanaland/binder/internal/config"
	"github.com/arcanaland/binder/internal/logging"
)

var (
	catalogFlag  string
	logLevelFlag string
	logFileFlag  string

	// Set up by PersistentPreRunE for every subcommand
	cfg      *config.Config
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "binder",
	Short: "Browse NFT card collections as a paged album",
	Long: `Binder is a command-line album for NFT card collections.
Collections are read from a TOML catalog and shown six cards per page,
with page turns and card flips in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(); err != nil {
			return err
		}

		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		cfg = c

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevelFlag
		}
		l, closeFn, err := logging.New(logging.Options{Level: level, Path: logFileFlag})
		if err != nil {
			return fmt.Errorf("error opening log: %w", err)
		}
		logger, closeLog = l, closeFn
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "", "catalog file or directory (defaults to the configured catalog)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", `write logs to a file, or "stderr"`)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadCatalog opens the catalog named by --catalog or the config
func loadCatalog() (*catalog.Catalog, error) {
	path := config.ResolveCatalogPath(catalogFlag, cfg)
	logger.Debug("loading catalog", "path", path)

	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	logger.Info("catalog loaded", "path", c.Path, "collections", len(c.Collections()), "cards", len(c.Cards()))
	return c, nil
}
