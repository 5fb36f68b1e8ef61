package texdoc

import "fmt"

// Config is the document preamble: class, user packages and global
// commands.
type Config struct {
	Class    Class
	Packages []Package
	Commands []string
}

// Validate checks that the class and every package are named.
func (c Config) Validate() error {
	if c.Class.Kind == "" {
		return fmt.Errorf("document class is required: %w", ErrValidation)
	}
	for i, p := range c.Packages {
		if p.Name == "" {
			return fmt.Errorf("package %d has no name: %w", i, ErrValidation)
		}
	}
	return nil
}

// Merge returns c overlaid with other. A non-empty class in other
// replaces c's class; packages and commands are appended after c's.
func (c Config) Merge(other Config) Config {
	merged := Config{
		Class:    c.Class,
		Packages: append(append([]Package(nil), c.Packages...), other.Packages...),
		Commands: append(append([]string(nil), c.Commands...), other.Commands...),
	}
	if other.Class.Kind != "" {
		merged.Class = other.Class
	}
	return merged
}

// Manifest is a preamble plus top-level nodes, as produced by importers.
type Manifest struct {
	Config Config
	Nodes  []Node
}

// Document returns a document configured from the manifest that builds
// to sink.
func (m Manifest) Document(sink Sink, opts ...DocumentOption) *Document {
	d := NewDocument(sink, m.Config.Class, opts...)
	d.AddPackage(m.Config.Packages...)
	d.AddCommand(m.Config.Commands...)
	d.Add(m.Nodes...)
	return d
}
