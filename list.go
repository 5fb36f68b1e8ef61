package texdoc

// List is an enumerate or itemize environment. Every child becomes one
// \item; group several nodes into a single item with a Block.
type List struct {
	Ordered bool

	children nodeList
	indent   int
}

// NewEnumerate returns a numbered list.
func NewEnumerate(items ...Node) *List {
	l := &List{Ordered: true}
	l.children.add(items...)
	return l
}

// NewItemize returns a bulleted list.
func NewItemize(items ...Node) *List {
	l := &List{}
	l.children.add(items...)
	return l
}

func (l *List) environment() string {
	if l.Ordered {
		return "enumerate"
	}
	return "itemize"
}

// Add appends items to the list.
func (l *List) Add(items ...Node) { l.children.add(items...) }

// Children returns the items in insertion order.
func (l *List) Children() []Node { return l.children }

// Indent returns the resolved indentation level.
func (l *List) Indent() int { return l.indent }

// AssignIndent places the list one level below its parent.
func (l *List) AssignIndent(parent int) {
	l.indent = parent + 1
	l.children.assign(l.indent)
}

// Render writes the environment with an \item marker before every child.
func (l *List) Render(s Sink) error {
	env := l.environment()
	if err := s.WriteLine(l.indent, begin(env)); err != nil {
		return err
	}
	if err := s.WriteBlank(); err != nil {
		return err
	}
	for _, item := range l.children {
		if err := s.WriteLine(l.indent+1, cmdItem); err != nil {
			return err
		}
		if err := item.Render(s); err != nil {
			return err
		}
	}
	if err := s.WriteLine(l.indent, end(env)); err != nil {
		return err
	}
	return s.WriteBlank()
}
