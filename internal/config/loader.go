package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".spelldigest"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .spelldigest configuration file.
// Zero values mean "not set" and leave the corresponding Config field alone.
type File struct {
	// DocumentURL overrides the document address.
	DocumentURL string `yaml:"documentUrl,omitempty"`

	// SpellCheckURL overrides the spell-check base URL.
	SpellCheckURL string `yaml:"spellCheckUrl,omitempty"`

	// Workers overrides the probe pool width.
	Workers int `yaml:"workers,omitempty"`

	// Timeout overrides the per-request timeout, e.g. "30s".
	Timeout string `yaml:"timeout,omitempty"`

	// Suffix overrides the answer suffix.
	Suffix string `yaml:"suffix,omitempty"`

	// Sort enables sorting before digesting.
	Sort bool `yaml:"sort,omitempty"`

	// Strict enables strict mode.
	Strict bool `yaml:"strict,omitempty"`

	// Hash overrides the digest algorithm.
	Hash string `yaml:"hash,omitempty"`

	// Proxy is a SOCKS5 proxy address.
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are extra HTTP headers for every request.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Headers == nil {
		cf.Headers = make(map[string]string)
	}

	return &cf, nil
}

// Apply overlays the values set in the file onto cfg.
func (cf *File) Apply(cfg *Config) error {
	if cf.DocumentURL != "" {
		cfg.DocumentURL = cf.DocumentURL
	}
	if cf.SpellCheckURL != "" {
		cfg.SpellCheckBaseURL = cf.SpellCheckURL
	}
	if cf.Workers != 0 {
		cfg.Workers = cf.Workers
	}
	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return errors.Join(ErrInvalidTimeout, err)
		}
		cfg.Timeout = d
	}
	if cf.Suffix != "" {
		cfg.Suffix = cf.Suffix
	}
	if cf.Sort {
		cfg.SortBeforeDigest = true
	}
	if cf.Strict {
		cfg.Strict = true
	}
	if cf.Hash != "" {
		cfg.HashAlgorithm = cf.Hash
	}
	if cf.Proxy != "" {
		cfg.ProxyAddress = cf.Proxy
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if len(cf.Headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		for k, v := range cf.Headers {
			cfg.Headers[k] = v
		}
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .spelldigest in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .spelldigest in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
