package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pathed/internal/errors"
	"pathed/internal/logging"
)

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "PATHED_CONFIG"

// Config holds the user defaults. Command-line flags take precedence.
type Config struct {
	// Shell selects the output mode: raw, bash, zsh, sh, fish or powershell.
	Shell string `yaml:"shell,omitempty" toml:"shell,omitempty"`
	// History records the previous value on every edit, like -H.
	History bool `yaml:"history,omitempty" toml:"history,omitempty"`
	// HistoryFile replaces the default history location.
	HistoryFile string `yaml:"history_file,omitempty" toml:"history_file,omitempty"`
	Quiet       bool   `yaml:"quiet,omitempty" toml:"quiet,omitempty"`
}

// DefaultPaths lists the files probed when no config path is given.
func DefaultPaths() []string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return []string{p}
	}
	dir := filepath.Join(xdg.ConfigHome, "pathed")
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.toml"),
	}
}

// Load reads the config at path. With an empty path the default locations
// are probed and a missing file yields the zero Config. An explicit path
// that does not exist is an error.
func Load(path string) (Config, error) {
	logger := logging.GetLogger("config")

	candidates := []string{path}
	explicit := path != ""
	if !explicit {
		candidates = DefaultPaths()
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) && !explicit {
				continue
			}
			return Config{}, errors.Wrapf(err, errors.ErrConfig, "failed to read config %s", p)
		}
		cfg, err := parse(p, data)
		if err != nil {
			return Config{}, err
		}
		logger.Debug().Str("path", p).Msg("Loaded config")
		return cfg, nil
	}

	logger.Trace().Msg("No config file found, using defaults")
	return Config{}, nil
}

func parse(path string, data []byte) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfig, "failed to parse toml in %s", path)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfig, "failed to parse yaml in %s", path)
		}
	}
	return cfg, nil
}
