// Package config handles klingnet-mnemonic configuration.
//
// Settings are resolved in this order, later sources winning:
//   - built-in defaults
//   - the config file (<datadir>/mnemonic.conf or --config)
//   - command-line flags
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ChecksumType names the hash used to derive mnemonic checksum bits.
type ChecksumType string

const (
	// ChecksumSHA256 is the BIP-39 checksum.
	ChecksumSHA256 ChecksumType = "sha256"
	// ChecksumBLAKE3 is a non-standard variant. Sentences made with it
	// only decode with the same setting and are rejected by other wallets.
	ChecksumBLAKE3 ChecksumType = "blake3"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ConfigFileName is the config file name inside the data directory.
const ConfigFileName = "mnemonic.conf"

// Config holds tool settings.
type Config struct {
	DataDir  string       `conf:"datadir"`
	Checksum ChecksumType `conf:"checksum"`
	Output   OutputFormat `conf:"output"`

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-mnemonic
//	macOS:   ~/Library/Application Support/KlingnetMnemonic
//	Windows: %APPDATA%\KlingnetMnemonic
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetMnemonic")
	default:
		return filepath.Join(home, ".klingnet-mnemonic")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, ConfigFileName)
}

// Load builds the configuration from defaults, the config file and flags.
// A missing config file is not an error.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// Flags have the highest precedence.
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// EnsureConfigFile creates the data directory and writes a default config
// file if none exists. It reports whether a file was written.
func EnsureConfigFile(cfg *Config) (bool, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", cfg.DataDir, err)
	}
	path := cfg.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := WriteDefaultConfig(path); err != nil {
		return false, fmt.Errorf("writing config file: %w", err)
	}
	return true, nil
}
