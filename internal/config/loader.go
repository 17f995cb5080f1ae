package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.flabird/flabird.yaml -> ./configs/flabird.yaml -> embedded default
func Load(customPath string) (FlabirdConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flabird.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "flabird.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultFlabirdYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single configuration file. Files ending in .toml are
// decoded as TOML, everything else as YAML. Keys missing from the file keep
// their default values.
func LoadFile(path string) (FlabirdConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlabirdConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes configuration data on top of the defaults and validates it.
// ext selects the format (".toml", otherwise YAML).
func Parse(data []byte, ext string) (FlabirdConfig, error) {
	cfg := Default()

	if strings.EqualFold(ext, ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return FlabirdConfig{}, fmt.Errorf("config: failed to parse toml: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FlabirdConfig{}, fmt.Errorf("config: failed to parse yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return FlabirdConfig{}, err
	}
	return cfg, nil
}

// DataDir returns ~/.flabird, or an empty string if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flabird")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
