package texdoc

import "reflect"

// Node is a unit of content in the document tree.
//
// Indentation is resolved in a dedicated pass before rendering because a
// node is usually built before it is attached to its parent and cannot
// know its depth at construction time. AssignIndent computes the node's
// own level from its parent's level and, for containers, recurses into
// the children. Render writes the node at the level resolved by the most
// recent AssignIndent and must not change it.
type Node interface {
	Render(s Sink) error
	AssignIndent(parent int)
}

// Container is a Node that owns an ordered list of child nodes.
type Container interface {
	Node
	Add(nodes ...Node)
	Children() []Node
}

// nodeList is the ordered child list shared by the containers.
type nodeList []Node

func (l *nodeList) add(nodes ...Node) {
	for _, n := range nodes {
		if !isNil(n) {
			*l = append(*l, n)
		}
	}
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// such as a (*Paragraph)(nil) passed as a Node.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (l nodeList) assign(level int) {
	for _, n := range l {
		n.AssignIndent(level)
	}
}

func (l nodeList) render(s Sink) error {
	for _, n := range l {
		if err := n.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Block groups nodes without adding a nesting level. It is used where a
// single slot, such as one list item, holds several pieces of content.
type Block struct {
	children nodeList
	indent   int
}

// NewBlock returns a block holding nodes.
func NewBlock(nodes ...Node) *Block {
	b := &Block{}
	b.children.add(nodes...)
	return b
}

// Add appends nodes to the block.
func (b *Block) Add(nodes ...Node) { b.children.add(nodes...) }

// Children returns the block's nodes in insertion order.
func (b *Block) Children() []Node { return b.children }

// Indent returns the resolved indentation level.
func (b *Block) Indent() int { return b.indent }

// AssignIndent passes the parent's level through unchanged.
func (b *Block) AssignIndent(parent int) {
	b.indent = parent
	b.children.assign(b.indent)
}

// Render renders the children in order.
func (b *Block) Render(s Sink) error {
	return b.children.render(s)
}

// Interface compliance checks.
var (
	_ Container = (*Block)(nil)
	_ Container = (*Section)(nil)
	_ Container = (*List)(nil)

	_ Node = (*Table)(nil)
	_ Node = (*Paragraph)(nil)
	_ Node = (*Figure)(nil)
	_ Node = (*Command)(nil)
	_ Node = (*PageBreak)(nil)
	_ Node = (*Verbatim)(nil)

	_ TableComponent = (*TableRow)(nil)
	_ TableComponent = (*HorizontalLine)(nil)
)
