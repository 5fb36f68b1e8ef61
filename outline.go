package texdoc

// Outline nests content under sections from a flat sequence of headings
// and nodes, the way a Markdown or Word document is laid out.
type Outline struct {
	chapters bool
	numbered bool

	roots nodeList
	stack []outlineEntry
}

type outlineEntry struct {
	section *Section
	level   int
}

// OutlineOption configures an Outline.
type OutlineOption func(*Outline)

// WithChapters maps level-one headings to chapters instead of sections.
func WithChapters() OutlineOption {
	return func(o *Outline) { o.chapters = true }
}

// WithNumbering emits numbered sectioning commands.
func WithNumbering() OutlineOption {
	return func(o *Outline) { o.numbered = true }
}

// NewOutline returns an empty outline.
func NewOutline(opts ...OutlineOption) *Outline {
	o := &Outline{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Heading opens a section at level (1 is the outermost). Sections at the
// same or a deeper level are closed first.
func (o *Outline) Heading(level int, title string) *Section {
	if level < 1 {
		level = 1
	}
	for len(o.stack) > 0 && o.stack[len(o.stack)-1].level >= level {
		o.stack = o.stack[:len(o.stack)-1]
	}
	s := NewSection(o.kind(len(o.stack)), title, o.numbered)
	o.Add(s)
	o.stack = append(o.stack, outlineEntry{section: s, level: level})
	return s
}

// kind maps nesting depth to a section kind. Depths beyond the deepest
// kind are flattened into it.
func (o *Outline) kind(depth int) SectionKind {
	k := SectionKind(depth)
	if !o.chapters {
		k++
	}
	if k > KindSubsubsection {
		k = KindSubsubsection
	}
	return k
}

// Add appends nodes to the innermost open section, or to the top level
// before the first heading.
func (o *Outline) Add(nodes ...Node) {
	if len(o.stack) == 0 {
		o.roots.add(nodes...)
		return
	}
	o.stack[len(o.stack)-1].section.Add(nodes...)
}

// Nodes returns the top-level nodes.
func (o *Outline) Nodes() []Node { return o.roots }
