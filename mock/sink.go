// Package mock provides test doubles for texdoc interfaces using function fields.
package mock

import "github.com/fwojciec/texdoc"

// Interface compliance checks.
var (
	_ texdoc.Sink = (*Sink)(nil)
	_ texdoc.Node = (*Node)(nil)
)

// Sink is a test double for texdoc.Sink.
// Set the function fields for the methods you need.
type Sink struct {
	WriteLineFn  func(depth int, line string) error
	WriteBlankFn func() error
}

// WriteLine delegates to WriteLineFn.
func (s *Sink) WriteLine(depth int, line string) error {
	return s.WriteLineFn(depth, line)
}

// WriteBlank delegates to WriteBlankFn.
func (s *Sink) WriteBlank() error {
	return s.WriteBlankFn()
}

// Node is a test double for texdoc.Node.
// Set RenderFn and AssignIndentFn before use.
type Node struct {
	RenderFn       func(s texdoc.Sink) error
	AssignIndentFn func(parent int)
}

// Render delegates to RenderFn.
func (n *Node) Render(s texdoc.Sink) error {
	return n.RenderFn(s)
}

// AssignIndent delegates to AssignIndentFn.
func (n *Node) AssignIndent(parent int) {
	n.AssignIndentFn(parent)
}
