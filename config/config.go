// Package config loads document preambles from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fwojciec/texdoc"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user configuration directory.
const AppName = "texdoc"

// preamble is the on-disk layout shared by the YAML and TOML formats.
type preamble struct {
	Class struct {
		Name    string   `yaml:"name" toml:"name"`
		Options []string `yaml:"options" toml:"options"`
	} `yaml:"class" toml:"class"`
	Packages []struct {
		Name    string   `yaml:"name" toml:"name"`
		Options []string `yaml:"options" toml:"options"`
	} `yaml:"packages" toml:"packages"`
	Commands []string `yaml:"commands" toml:"commands"`
}

func (p preamble) config() texdoc.Config {
	cfg := texdoc.Config{
		Class:    texdoc.Class{Kind: texdoc.ClassKind(p.Class.Name), Options: p.Class.Options},
		Commands: p.Commands,
	}
	for _, pkg := range p.Packages {
		cfg.Packages = append(cfg.Packages, texdoc.Package{Name: pkg.Name, Options: pkg.Options})
	}
	return cfg
}

// DefaultPath returns the per-user preamble location,
// $XDG_CONFIG_HOME/texdoc/preamble.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "preamble.toml")
}

// Load reads a preamble file. The format is chosen by extension: .yaml
// and .yml are YAML, .toml is TOML. A preamble may leave the class empty
// so that it can be merged over an importer's default; packages must be
// named.
func Load(path string) (texdoc.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return texdoc.Config{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a preamble in the format named by ext.
func Parse(data []byte, ext string) (texdoc.Config, error) {
	var p preamble
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return texdoc.Config{}, fmt.Errorf("parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return texdoc.Config{}, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		return texdoc.Config{}, fmt.Errorf("unsupported preamble format %q: %w", ext, texdoc.ErrValidation)
	}

	cfg := p.config()
	for i, pkg := range cfg.Packages {
		if pkg.Name == "" {
			return texdoc.Config{}, fmt.Errorf("package %d has no name: %w", i, texdoc.ErrValidation)
		}
	}
	return cfg, nil
}
