package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	configDirName  = "mindfulaccess"
	configFileName = "config.json"

	// PathEnv overrides the location of the settings file.
	PathEnv = "MINDFULACCESS_CONFIG_PATH"
)

// Defaults describing where the configuration script ships and how it is invoked.
const (
	DefaultInstallPath = "/Applications/MindfulAccess.app"
	DefaultScriptPath  = "Contents/Resources/src/core/app_protector.sh"
	DefaultConfigFlag  = "--config"
	DefaultShell       = "/bin/sh"
)

// Config represents the optional settings file. Empty fields fall back to the
// package defaults.
type Config struct {
	InstallPath string `json:"installPath,omitempty"`
	ScriptPath  string `json:"scriptPath,omitempty"`
	ConfigFlag  string `json:"configFlag,omitempty"`
	Shell       string `json:"shell,omitempty"`
	Debug       bool   `json:"debug,omitempty"`
}

// Default returns a configuration populated with the built-in values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.InstallPath = orDefault(c.InstallPath, DefaultInstallPath)
	c.ScriptPath = orDefault(c.ScriptPath, DefaultScriptPath)
	c.ConfigFlag = orDefault(c.ConfigFlag, DefaultConfigFlag)
	c.Shell = orDefault(c.Shell, DefaultShell)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// Path returns the resolved settings file path.
func Path() (string, error) {
	if custom := strings.TrimSpace(os.Getenv(PathEnv)); custom != "" {
		if err := os.MkdirAll(filepath.Dir(custom), 0o700); err != nil {
			return "", fmt.Errorf("ensure custom config directory: %w", err)
		}
		return custom, nil
	}

	if xdg.ConfigHome == "" {
		return "", errors.New("determine user config dir: empty config home")
	}

	dir := filepath.Join(xdg.ConfigHome, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("ensure config directory: %w", err)
	}

	return filepath.Join(dir, configFileName), nil
}

// Load reads the settings file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the settings file atomically.
func Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil configuration")
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, raw, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return os.Rename(tempFile, path)
}
