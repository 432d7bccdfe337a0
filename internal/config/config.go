// ABOUTME: Carelog configuration management.
// ABOUTME: Handles data location, default person, and the storage factory.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/avakker/carelog/internal/models"
	"github.com/avakker/carelog/internal/storage"
)

// Config stores carelog configuration.
type Config struct {
	// DataDir is the root directory for data storage; carelog.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/carelog.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultPerson is the profile used when no --person flag is given.
	// Defaults to "Self".
	DefaultPerson string `json:"default_person,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultPerson returns the configured default profile.
func (c *Config) GetDefaultPerson() string {
	if strings.TrimSpace(c.DefaultPerson) == "" {
		return models.DefaultPerson
	}
	return strings.TrimSpace(c.DefaultPerson)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store under the configured data dir.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "carelog.db"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "carelog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
