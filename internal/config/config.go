package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Ledger   LedgerConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	// DisclosureGuard selects which activations may toggle an outline
	// parent row: "caret-only" or "ignore-buttons".
	DisclosureGuard string `mapstructure:"disclosure_guard"`
}

// LedgerConfig holds profit-sheet settings.
type LedgerConfig struct {
	// LabelColumns is how many leading columns the recalculation skips.
	LabelColumns int `mapstructure:"label_columns"`
}

// Load reads configuration from file and env. Env var overrides use prefix LEDGERDESK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "ledgerdesk", "ledgerdesk.db"))
	v.SetDefault("ui.currency_symbol", "¥")
	v.SetDefault("ui.disclosure_guard", "caret-only")
	v.SetDefault("ledger.label_columns", 1)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LEDGERDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ledgerdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LEDGERDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the accounts tab for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("LEDGERDESK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "ledgerdesk", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.disclosure_guard", cfg.UI.DisclosureGuard)
	v.Set("ledger.label_columns", cfg.Ledger.LabelColumns)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
