package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in every search location.
const FileName = "falldown.yaml"

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/falldown/falldown.yaml -> ./configs/falldown.yaml -> embedded default
func Load(customPath string) (FallConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// Source describes where a loaded configuration came from.
type Source struct {
	Path    string // File used; empty for the embedded default
	Skipped error  // Search-path files that exist but failed to load, joined
}

// Embedded reports whether the embedded default was used.
func (s Source) Embedded() bool {
	return s.Path == ""
}

// LoadWithSource is Load that also reports which file was used and which
// search-path files were passed over.
func LoadWithSource(customPath string) (FallConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, Source{}, err
		}
		return cfg, Source{Path: customPath}, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files here are not fatal; they are reported in Source.Skipped.
	var skipped []error
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, Source{Path: path, Skipped: errors.Join(skipped...)}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			skipped = append(skipped, err)
		}
	}

	src := Source{Skipped: errors.Join(skipped...)}
	cfg, err := parse(defaultFallYAML)
	if err != nil {
		return DefaultFallConfig(), src, nil // Fallback to hardcoded if embed fails
	}
	return cfg, src, nil
}

// loadFile reads, parses and validates one YAML file.
func loadFile(path string) (FallConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FallConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return FallConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse overlays YAML onto the defaults, so partial files are allowed.
func parse(data []byte) (FallConfig, error) {
	cfg := DefaultFallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FallConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FallConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the XDG config file path if it exists, or empty.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join("falldown", FileName))
	if err != nil {
		return ""
	}
	return path
}

// Marshal renders a config as YAML.
func Marshal(cfg FallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
