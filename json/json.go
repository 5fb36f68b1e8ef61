// Package json reads document descriptors: a versioned JSON envelope
// holding the preamble and a tree of type-discriminated node objects.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/texdoc"
)

// Version is the descriptor format version understood by this package.
const Version = 1

// envelope is the v1 wire format for a document descriptor.
type envelope struct {
	Version  int          `json:"version"`
	Class    classDTO     `json:"class"`
	Packages []packageDTO `json:"packages,omitempty"`
	Commands []string     `json:"commands,omitempty"`
	Nodes    []nodeDTO    `json:"nodes"`
}

type classDTO struct {
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}

type packageDTO struct {
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}

// UnmarshalDocument decodes a descriptor into a manifest. The preamble is
// validated; unknown node types fail with texdoc.ErrUnknownNode.
func UnmarshalDocument(data []byte) (texdoc.Manifest, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return texdoc.Manifest{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != Version {
		return texdoc.Manifest{}, fmt.Errorf("unsupported envelope version %d: %w", env.Version, texdoc.ErrValidation)
	}

	cfg := texdoc.Config{
		Class:    texdoc.Class{Kind: texdoc.ClassKind(env.Class.Name), Options: env.Class.Options},
		Commands: env.Commands,
	}
	for _, p := range env.Packages {
		cfg.Packages = append(cfg.Packages, texdoc.Package{Name: p.Name, Options: p.Options})
	}
	if err := cfg.Validate(); err != nil {
		return texdoc.Manifest{}, err
	}

	nodes, err := unmarshalNodes(env.Nodes)
	if err != nil {
		return texdoc.Manifest{}, err
	}
	return texdoc.Manifest{Config: cfg, Nodes: nodes}, nil
}

// Load reads a descriptor from a JSON file.
func Load(path string) (texdoc.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return texdoc.Manifest{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}
