package texdoc

// SectionKind is a sectioning level.
type SectionKind int

const (
	KindChapter SectionKind = iota
	KindSection
	KindSubsection
	KindSubsubsection
)

// Command returns the LaTeX command of the kind.
func (k SectionKind) Command() string {
	switch k {
	case KindChapter:
		return `\chapter`
	case KindSubsection:
		return `\subsection`
	case KindSubsubsection:
		return `\subsubsection`
	default:
		return `\section`
	}
}

func (k SectionKind) String() string {
	return k.Command()[1:]
}

// Section is a titled sectioning container. Its children are nested one
// level deeper than the heading.
type Section struct {
	Kind     SectionKind
	Title    string
	Numbered bool
	Label    string

	children nodeList
	indent   int
}

// NewSection returns a container of the given kind. Unnumbered sections
// render with the starred command.
func NewSection(kind SectionKind, title string, numbered bool) *Section {
	return &Section{Kind: kind, Title: title, Numbered: numbered}
}

// NewChapter returns a chapter.
func NewChapter(title string, numbered bool) *Section {
	return NewSection(KindChapter, title, numbered)
}

// NewSubsection returns a subsection.
func NewSubsection(title string, numbered bool) *Section {
	return NewSection(KindSubsection, title, numbered)
}

// NewSubsubsection returns a subsubsection.
func NewSubsubsection(title string, numbered bool) *Section {
	return NewSection(KindSubsubsection, title, numbered)
}

// Add appends nodes to the section.
func (s *Section) Add(nodes ...Node) { s.children.add(nodes...) }

// Children returns the section's nodes in insertion order.
func (s *Section) Children() []Node { return s.children }

// Indent returns the resolved indentation level.
func (s *Section) Indent() int { return s.indent }

// AssignIndent places the section one level below its parent.
func (s *Section) AssignIndent(parent int) {
	s.indent = parent + 1
	s.children.assign(s.indent)
}

// Render writes the heading, an optional label, a blank line and the
// children.
func (s *Section) Render(out Sink) error {
	cmd := s.Kind.Command()
	if !s.Numbered {
		cmd += "*"
	}
	if err := out.WriteLine(s.indent, cmd+braces(Format(s.Title))); err != nil {
		return err
	}
	if s.Label != "" {
		if err := out.WriteLine(s.indent, cmdLabel+braces(s.Label)); err != nil {
			return err
		}
	}
	if err := out.WriteBlank(); err != nil {
		return err
	}
	return s.children.render(out)
}
