// Package config loads the instrument configuration: the catalog set with
// per-catalog designator widths, the saved-lists directory, and an optional
// fixed observer site. The catalog set is configuration, never a hardcoded
// constant.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/validate"
)

// Observer is a fixed observing site for instruments without GPS.
type Observer struct {
	Lat      float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Altitude float64 `yaml:"altitude"`
}

// Config is the top-level application configuration.
type Config struct {
	Catalogs    []catalog.Catalog `yaml:"catalogs" validate:"required,min=1,dive"`
	ListsDir    string            `yaml:"lists_dir" validate:"required"`
	ObjectsFile string            `yaml:"objects_file,omitempty"`
	Observer    *Observer         `yaml:"observer,omitempty"`
}

// Default matches the original instrument: NGC and IC at four digits,
// Messier at three, lists under the user's home directory.
func Default() Config {
	return Config{
		Catalogs: []catalog.Catalog{
			{Code: "N", Name: "NGC", DesignatorWidth: 4},
			{Code: "I", Name: "IC", DesignatorWidth: 4},
			{Code: "M", Name: "Mes", DesignatorWidth: 3},
		},
		ListsDir: "~/.sightline/lists",
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalized returns the defaults with paths expanded and validated.
func Normalized() (Config, error) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	expanded, err := expandTilde(c.ListsDir)
	if err != nil {
		return err
	}
	c.ListsDir = expanded

	if c.ObjectsFile != "" {
		if expanded, err = expandTilde(c.ObjectsFile); err != nil {
			return err
		}
		c.ObjectsFile = expanded
	}
	return validate.Struct(*c)
}

// expandTilde expands a leading tilde to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
