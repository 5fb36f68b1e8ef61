package texdoc

import (
	"fmt"
	"io"
	"strings"
)

// Sink is a line-oriented write destination. Lines are written in the
// order they are issued; depth is the number of indentation units that
// precede the line.
type Sink interface {
	WriteLine(depth int, line string) error
	WriteBlank() error
}

// DefaultIndentUnit is the whitespace written once per indentation level.
const DefaultIndentUnit = "\t"

// WriterSink writes lines to an io.Writer. Each write goes straight to the
// underlying writer so a failure surfaces on the call that caused it.
type WriterSink struct {
	w       io.Writer
	unit    string
	written int64
}

// SinkOption configures a WriterSink.
type SinkOption func(*WriterSink)

// WithIndentUnit sets the string repeated once per indentation level.
func WithIndentUnit(unit string) SinkOption {
	return func(s *WriterSink) {
		s.unit = unit
	}
}

// NewWriterSink returns a sink writing to w, indenting with tabs unless
// configured otherwise.
func NewWriterSink(w io.Writer, opts ...SinkOption) *WriterSink {
	s := &WriterSink{w: w, unit: DefaultIndentUnit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteLine writes line preceded by depth indentation units.
func (s *WriterSink) WriteLine(depth int, line string) error {
	if depth < 0 {
		depth = 0
	}
	return s.write(strings.Repeat(s.unit, depth) + line + "\n")
}

// WriteBlank writes an empty line.
func (s *WriterSink) WriteBlank() error {
	return s.write("\n")
}

// Written returns the number of bytes written so far.
func (s *WriterSink) Written() int64 {
	return s.written
}

func (s *WriterSink) write(text string) error {
	n, err := io.WriteString(s.w, text)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Interface compliance check.
var _ Sink = (*WriterSink)(nil)
