/*
Package config manages the TOML configuration for docdex.
*/
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/mkarren/docdex/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Docs   DocsConfig   `toml:"docs"`
	Remote RemoteConfig `toml:"remote"`
	REPL   REPLConfig   `toml:"repl"`
}

// DocsConfig locates the documentation set and its cache.
type DocsConfig struct {
	Dir       string `toml:"dir"`
	CachePath string `toml:"cache_path"`
	Watch     bool   `toml:"watch"`
}

// RemoteConfig controls index synchronization with a remote source.
type RemoteConfig struct {
	URL             string `toml:"url"`
	SyncIntervalMin int    `toml:"sync_interval_min"`
	TimeoutSec      int    `toml:"timeout_sec"`
}

// REPLConfig holds interactive prompt options.
type REPLConfig struct {
	SuggestLimit int  `toml:"suggest_limit"`
	Render       bool `toml:"render"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/docdex
// 2. ~/Library/Application Support/docdex (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "docdex")
	if utils.CheckDirStatus(primaryPath).Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "docdex")
	if utils.CheckDirStatus(macOSPath).Writable {
		return macOSPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [config dir]/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Dir:       "docs/",
			CachePath: "cache/index.bin",
			Watch:     false,
		},
		Remote: RemoteConfig{
			URL:             "",
			SyncIntervalMin: 60 * 24,
			TimeoutSec:      15,
		},
		REPL: REPLConfig{
			SuggestLimit: 24,
			Render:       true,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Unset fields keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// SaveConfigTo writes the config as TOML to an arbitrary writer.
func SaveConfigTo(config *Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(config)
}

// GetActiveConfigPath returns the absolute path of loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
