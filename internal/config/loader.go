package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".ao3list"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .ao3list configuration file.
// Every field is optional; zero values leave the corresponding default
// untouched.
type File struct {
	// BaseURL overrides the archive origin, e.g. for a mirror.
	BaseURL string `yaml:"baseURL,omitempty"`

	// MediaPath overrides the category index URL template.
	MediaPath string `yaml:"mediaPath,omitempty"`

	// MinWorks sets a default minimum work count applied when the
	// --min-works flag is not given.
	MinWorks int `yaml:"minWorks,omitempty"`
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the config file path was explicitly
// specified by the user.
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
	return &cf, nil
}

// Apply copies the file's non-zero overrides onto the configuration.
func (cf *File) Apply(cfg *Config) {
	if cf.BaseURL != "" {
		cfg.BaseURL = cf.BaseURL
	}
	if cf.MediaPath != "" {
		cfg.MediaPath = cf.MediaPath
	}
	if cf.MinWorks > 0 {
		cfg.MinWorks = cf.MinWorks
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .ao3list in the current directory
//  3. Look for .ao3list in the XDG config directory
//  4. Look for .ao3list in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
