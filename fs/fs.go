// Package fs writes documents to the local filesystem and finds input
// files by pattern.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/texdoc"
)

// File is a sink backed by a file on disk. Writes go straight to the file.
type File struct {
	*texdoc.WriterSink
	f *os.File
}

// Create creates (or truncates) the file at path, creating parent
// directories as needed.
func Create(path string, opts ...texdoc.SinkOption) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return &File{WriterSink: texdoc.NewWriterSink(f, opts...), f: f}, nil
}

// Name returns the path of the file.
func (f *File) Name() string { return f.f.Name() }

// Close closes the file.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// OutputPath returns the .tex path for an input file: the input's
// extension replaced, placed in dir when dir is non-empty.
func OutputPath(input, dir string) string {
	base := filepath.Base(input)
	name := base[:len(base)-len(filepath.Ext(base))] + ".tex"
	if dir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(dir, name)
}

// Interface compliance check.
var _ texdoc.Sink = (*File)(nil)
