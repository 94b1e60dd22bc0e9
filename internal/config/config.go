package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the top-level booklog configuration.
type Config struct {
	DataDir string       `mapstructure:"data_dir" yaml:"data_dir"`
	Sound   bool         `mapstructure:"sound" yaml:"sound"`
	Covers  CoversConfig `mapstructure:"covers" yaml:"covers"`
}

// CoversConfig holds cover lookup settings.
type CoversConfig struct {
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "booklog", "config.yml")
}

// Load reads the config from disk (or env). A missing file yields the
// defaults — booklog works out of the box.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("sound", true)
	v.SetDefault("covers.base_url", "https://covers.openlibrary.org/b/isbn")
	v.SetDefault("covers.cache_dir", filepath.Join(defaultDataDir(), "covers"))

	v.SetEnvPrefix("BOOKLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("BOOKLOG_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DataDir = ExpandHome(cfg.DataDir)
	cfg.Covers.CacheDir = ExpandHome(cfg.Covers.CacheDir)
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "booklog")
}
