package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment overrides
const (
	EnvCatalog  = "BINDER_CATALOG"
	EnvLogLevel = "BINDER_LOG_LEVEL"
)

const defaultFlipDurationMS = 800

// Config represents the application configuration
type Config struct {
	Catalog           string `toml:"catalog"`
	DefaultCollection string `toml:"default_collection"`
	FlipDurationMS    int    `toml:"flip_duration_ms"`
	LogLevel          string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Catalog:        GetCatalogPath(),
		FlipDurationMS: defaultFlipDurationMS,
		LogLevel:       "info",
	}
}

// FlipDuration returns the page turn animation length
func (c *Config) FlipDuration() time.Duration {
	if c.FlipDurationMS <= 0 {
		return defaultFlipDurationMS * time.Millisecond
	}
	return time.Duration(c.FlipDurationMS) * time.Millisecond
}

// LoadEnvFile loads a .env file from the working directory if one exists
func LoadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetLibraryPath returns the directory catalogs live in by default
func GetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "binder")
}

// GetCatalogPath returns the default catalog file path
func GetCatalogPath() string {
	return filepath.Join(GetLibraryPath(), "catalog.toml")
}

// GetCacheDir returns the directory for generated artifacts
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "binder")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "binder", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first run.
// Environment overrides are applied on top and never written back.
func LoadConfig() (*Config, error) {
	config, err := readConfig()
	if err != nil {
		return nil, err
	}
	applyEnv(config)
	return config, nil
}

func readConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.Catalog = expandHome(config.Catalog)

	return config, nil
}

func applyEnv(config *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvCatalog)); v != "" {
		config.Catalog = expandHome(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		config.LogLevel = v
	}
}

// expandHome expands "~" and a leading "~/". Other users' homes ("~bob") are
// left alone.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// SetDefaultCollection sets the default collection in the config
func SetDefaultCollection(id string) error {
	config, err := readConfig()
	if err != nil {
		return err
	}
	config.DefaultCollection = id
	return writeConfig(config)
}

// ResolveCatalogPath picks the catalog to open: an explicit path wins over
// the configured one.
func ResolveCatalogPath(explicit string, config *Config) string {
	if explicit != "" {
		return expandHome(explicit)
	}
	if config != nil && config.Catalog != "" {
		return config.Catalog
	}
	return GetCatalogPath()
}
