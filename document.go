package texdoc

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClassKind is the semantic document type passed to \documentclass.
type ClassKind string

// Common document classes. Any other class name may be used as well.
const (
	ClassArticle ClassKind = "article"
	ClassReport  ClassKind = "report"
	ClassBook    ClassKind = "book"
	ClassLetter  ClassKind = "letter"
	ClassBeamer  ClassKind = "beamer"
)

// Class describes the \documentclass line.
type Class struct {
	Kind    ClassKind
	Options []string
}

// Package describes one \usepackage line.
type Package struct {
	Name    string
	Options []string
}

// Document is the root of the tree. It owns the preamble configuration,
// the top-level nodes and the sink the document is built to.
type Document struct {
	class    Class
	packages []Package
	commands []string
	children nodeList

	sink Sink
	log  zerolog.Logger
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(log zerolog.Logger) DocumentOption {
	return func(d *Document) { d.log = log }
}

// NewDocument returns an empty document of the given class that builds
// to sink.
func NewDocument(sink Sink, class Class, opts ...DocumentOption) *Document {
	d := &Document{
		class: class,
		sink:  sink,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Class returns the document class.
func (d *Document) Class() Class { return d.class }

// Packages returns the user packages in declaration order.
func (d *Document) Packages() []Package { return d.packages }

// Commands returns the global commands in declaration order.
func (d *Document) Commands() []string { return d.commands }

// AddPackage declares user packages.
func (d *Document) AddPackage(packages ...Package) {
	d.packages = append(d.packages, packages...)
}

// AddCommand declares raw preamble commands, e.g. \newcommand lines.
func (d *Document) AddCommand(commands ...string) {
	d.commands = append(d.commands, commands...)
}

// Add appends top-level nodes.
func (d *Document) Add(nodes ...Node) { d.children.add(nodes...) }

// Children returns the top-level nodes in insertion order.
func (d *Document) Children() []Node { return d.children }

// Build resolves the indentation of the whole tree and then writes the
// document to the sink: class line, packages, global commands and the
// document body. The first sink failure aborts the build; whatever was
// written before it stays written.
func (d *Document) Build() error {
	start := time.Now()

	d.children.assign(0)

	stages := []struct {
		name string
		fn   func() error
	}{
		{"document class", d.writeClass},
		{"packages", d.writePackages},
		{"commands", d.writeCommands},
		{"body", d.writeBody},
	}
	for _, stage := range stages {
		if err := stage.fn(); err != nil {
			return fmt.Errorf("build %s: %w", stage.name, err)
		}
	}

	d.log.Debug().
		Str("class", string(d.class.Kind)).
		Int("packages", len(d.packages)).
		Int("nodes", len(d.children)).
		Dur("duration", time.Since(start)).
		Msg("Document built")
	return nil
}

func (d *Document) writeClass() error {
	line := cmdDocumentClass + optionList(d.class.Options) + braces(string(d.class.Kind))
	if err := d.sink.WriteLine(0, line); err != nil {
		return err
	}
	return d.sink.WriteBlank()
}

func (d *Document) writePackages() error {
	if err := d.sink.WriteLine(0, commentDefaultPackages); err != nil {
		return err
	}
	for _, name := range defaultPackages {
		if err := d.sink.WriteLine(0, cmdUsePackage+braces(name)); err != nil {
			return err
		}
	}
	if err := d.sink.WriteLine(0, commentUserPackages); err != nil {
		return err
	}
	for _, p := range d.packages {
		if err := d.sink.WriteLine(0, cmdUsePackage+optionList(p.Options)+braces(p.Name)); err != nil {
			return err
		}
	}
	return d.sink.WriteBlank()
}

func (d *Document) writeCommands() error {
	if err := d.sink.WriteLine(0, commentUserCommands); err != nil {
		return err
	}
	for _, c := range d.commands {
		if err := d.sink.WriteLine(0, c); err != nil {
			return err
		}
	}
	return d.sink.WriteBlank()
}

func (d *Document) writeBody() error {
	if err := d.sink.WriteLine(0, cmdBeginDocument); err != nil {
		return err
	}
	if err := d.sink.WriteBlank(); err != nil {
		return err
	}
	if err := d.children.render(d.sink); err != nil {
		return err
	}
	return d.sink.WriteLine(0, cmdEndDocument)
}
