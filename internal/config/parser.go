package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/widgetlab/pkg/errors"
)

const appDirName = "widgetlab"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns the location of the user's config file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, appDirName, "config.yaml")
}

// Load reads the configuration at path. A missing file yields the defaults;
// found reports whether a file was read.
func Load(path string) (cfg *Config, found bool, err error) {
	cfg, err = ParseFile(path)
	if err != nil {
		var parseErr *apperrors.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, false, err
	}
	return cfg, true, nil
}

// ParseFile reads, decodes and validates the configuration at path.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults and validates the result. path is only
// used in error messages.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Journal.Path = expandPath(cfg.Journal.Path)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
