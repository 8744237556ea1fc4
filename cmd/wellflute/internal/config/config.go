// Package config provides the configuration layout for the wellflute CLI.
//
// Everything lives under os.UserConfigDir()/wellflute/:
//
//	wellflute/
//	├── credentials.yaml    # API keys for sheet recognition providers
//	├── songs/              # the song library (yaml/json files)
//	└── cache/              # recognition cache (badger)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const appDir = "wellflute"

// Environment variables that override credentials.yaml.
const (
	envGeminiKey = "GEMINI_API_KEY"
	envArkKey    = "ARK_API_KEY"
)

// Config holds the root configuration state.
type Config struct {
	// Dir is the root configuration directory.
	Dir string
}

// Credentials holds provider API keys.
type Credentials struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	ArkAPIKey    string `yaml:"ark_api_key"`
}

// Load locates the configuration in the default directory.
func Load() (*Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine config directory: %w", err)
	}
	return &Config{Dir: filepath.Join(base, appDir)}, nil
}

// SongsDir returns the library directory.
func (c *Config) SongsDir() string { return filepath.Join(c.Dir, "songs") }

// CacheDir returns the recognition cache directory.
func (c *Config) CacheDir() string { return filepath.Join(c.Dir, "cache") }

// Credentials reads credentials.yaml, then applies environment
// overrides. A missing file is not an error; env vars alone work.
func (c *Config) Credentials() (*Credentials, error) {
	creds := &Credentials{}
	data, err := os.ReadFile(filepath.Join(c.Dir, "credentials.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(data, creds); err != nil {
			return nil, fmt.Errorf("parse credentials.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if v := os.Getenv(envGeminiKey); v != "" {
		creds.GeminiAPIKey = v
	}
	if v := os.Getenv(envArkKey); v != "" {
		creds.ArkAPIKey = v
	}
	return creds, nil
}

// APIKey returns the key for a provider name, empty when unset.
func (creds *Credentials) APIKey(provider string) string {
	switch provider {
	case "gemini":
		return creds.GeminiAPIKey
	case "ark":
		return creds.ArkAPIKey
	}
	return ""
}
