// Package config handles the optional per-application configuration
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the configuration stored in
// $XDG_CONFIG_HOME/<app>/config.yml. Every field is optional.
type Config struct {
	DataFile string `yaml:"data_file,omitempty"` // default XML file for list/select
	LogFile  string `yaml:"log_file,omitempty"`  // overrides the state-dir log location
}

// ConfigFile is the config file name under the application directory.
const ConfigFile = "config.yml"

// cache holds loaded configs per application name.
var cache = map[string]*Config{}

// Path returns the config file path for the given application name.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/<app>/config.yml.
func Path(app string) string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, app, ConfigFile)
}

// Load reads the configuration for app. A missing file yields an
// empty config, not an error. The environment variables <APP>_DATA
// and <APP>_LOG override the file values.
func Load(app string) (*Config, error) {
	if cfg, ok := cache[app]; ok {
		return cfg, nil
	}

	cfg := &Config{}
	if path := Path(app); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	prefix := strings.ToUpper(app)
	if v := os.Getenv(prefix + "_DATA"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(prefix + "_LOG"); v != "" {
		cfg.LogFile = v
	}

	cache[app] = cfg
	return cfg, nil
}

// ResetCache clears the cached configs. Useful for testing.
func ResetCache() {
	cache = map[string]*Config{}
}
