package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/spf13/viper"
)

const (
	dirName   = ".goanime-site"
	envPrefix = "GOANIME_SITE"
)

// Config holds all application configuration
type Config struct {
	// Language is the one persisted preference
	Language string `mapstructure:"language"`

	Release  ReleaseConfig  `mapstructure:"release"`
	UI       UIConfig       `mapstructure:"ui"`
	Download DownloadConfig `mapstructure:"download"`

	v *viper.Viper
}

// ReleaseConfig points at the repository whose releases are shown
type ReleaseConfig struct {
	Repo           string `mapstructure:"repo"`
	APIURL         string `mapstructure:"api_url"`
	DownloadBase   string `mapstructure:"download_base"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds UI-related configuration
type UIConfig struct {
	MouseEnabled bool `mapstructure:"mouse_enabled"`
	AltScreen    bool `mapstructure:"alt_screen"`
}

// DownloadConfig holds defaults for the get command
type DownloadConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from ~/.goanime-site and the environment
func Load() (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	primaryDir := ""
	if homeDir != "" {
		primaryDir = filepath.Join(homeDir, dirName)
	}
	configDir := primaryDir
	if configDir == "" || os.MkdirAll(configDir, 0755) != nil {
		_ = os.MkdirAll(dirName, 0755)
		configDir = dirName
	}
	return LoadFrom(configDir)
}

// LoadFrom reads (and on first run creates) config.yaml inside dir
func LoadFrom(dir string) (*Config, error) {
	configFile := filepath.Join(dir, "config.yaml")

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(configFile)

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
		// First run: write defaults and carry on even if that fails
		if werr := createDefaultConfig(configFile, v.GetString("language")); werr == nil {
			_ = v.ReadInConfig()
		}
	}

	cfg := &Config{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := i18n.ParseLanguage(cfg.Language); err != nil {
		cfg.Language = string(i18n.Default)
	}
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("language", string(i18n.Detect(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))))

	v.SetDefault("release.repo", release.DefaultRepo)
	v.SetDefault("release.api_url", release.DefaultAPI)
	v.SetDefault("release.download_base", release.DefaultDownloadBase)
	v.SetDefault("release.timeout_seconds", int(release.DefaultTimeout/time.Second))

	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("download.dir", ".")
}

// createDefaultConfig creates a default configuration file
func createDefaultConfig(configFile, lang string) error {
	defaultConfig := fmt.Sprintf(`# GoAnime Site Configuration

# UI language: pt, en or es
language: %s

# Release source
release:
  repo: %s
  api_url: %s
  download_base: %s
  timeout_seconds: %d

# UI Settings
ui:
  mouse_enabled: true
  alt_screen: true

# goanime-site get
download:
  dir: .
`, lang, release.DefaultRepo, release.DefaultAPI, release.DefaultDownloadBase, int(release.DefaultTimeout/time.Second))

	return os.WriteFile(configFile, []byte(defaultConfig), 0644)
}

// Lang returns the configured UI language
func (c *Config) Lang() i18n.Language {
	l, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return i18n.Default
	}
	return l
}

// Timeout is the release request timeout
func (c *Config) Timeout() time.Duration {
	if c.Release.TimeoutSeconds <= 0 {
		return release.DefaultTimeout
	}
	return time.Duration(c.Release.TimeoutSeconds) * time.Second
}

// SetLanguage records l and writes it back to the config file
func (c *Config) SetLanguage(l i18n.Language) error {
	c.Language = string(l)
	if c.v == nil {
		return nil
	}
	c.v.Set("language", string(l))
	return c.Save()
}

// Save saves the current configuration to file
func (c *Config) Save() error {
	if c.v == nil {
		return nil
	}
	return c.v.WriteConfig()
}

// Path is the config file in use
func (c *Config) Path() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
