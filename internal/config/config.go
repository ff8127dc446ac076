package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName         = "todo"
	configFile      = "config.yaml"
	defaultStoreDir = ".todo"
)

// Config holds user-tunable settings.
type Config struct {
	// StoreDir is the directory holding current.json. A leading "~/" is
	// expanded to the user's home directory.
	StoreDir string `yaml:"store_dir"`
}

// Path returns the config file location (~/.config/todo/config.yaml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}

// Load reads the config file, falling back to defaults when it is absent.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = filepath.Join(home, defaultStoreDir)
	} else if strings.HasPrefix(cfg.StoreDir, "~/") {
		cfg.StoreDir = filepath.Join(home, strings.TrimPrefix(cfg.StoreDir, "~/"))
	}
	return cfg, nil
}

// loadFile parses a config file. A missing file yields zero-value settings
// for Load to fill in; a present but invalid file is an error.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}
