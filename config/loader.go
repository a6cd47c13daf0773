package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf picks the decoder from the file extension, TOML unless .yaml or .yml
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Parse decodes, normalizes and validates data
// Absent keys keep their defaults
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{Gap: DefaultGap, Margin: DefaultMargin}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path, an empty path yields Default
// Relative image paths are resolved against the directory of path
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	dir := filepath.Dir(path)
	for i := range cfg.Items {
		if img := cfg.Items[i].Image; img != "" && !filepath.IsAbs(img) {
			cfg.Items[i].Image = filepath.Join(dir, img)
		}
	}
	return cfg, nil
}
