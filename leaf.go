package texdoc

import "strings"

// Paragraph is a run of text passed through Format.
type Paragraph struct {
	Text   string
	indent int
}

// NewParagraph returns a paragraph.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

// Indent returns the resolved indentation level.
func (p *Paragraph) Indent() int { return p.indent }

// AssignIndent places the paragraph one level below its parent.
func (p *Paragraph) AssignIndent(parent int) { p.indent = parent + 1 }

// Render writes the formatted text followed by a blank line.
func (p *Paragraph) Render(s Sink) error {
	if err := s.WriteLine(p.indent, Format(p.Text)); err != nil {
		return err
	}
	return s.WriteBlank()
}

// Command is a raw line written verbatim, without formatting.
type Command struct {
	Text   string
	indent int
}

// NewCommand returns a raw command line.
func NewCommand(text string) *Command {
	return &Command{Text: text}
}

// Indent returns the resolved indentation level.
func (c *Command) Indent() int { return c.indent }

// AssignIndent places the command one level below its parent.
func (c *Command) AssignIndent(parent int) { c.indent = parent + 1 }

// Render writes the command.
func (c *Command) Render(s Sink) error {
	return s.WriteLine(c.indent, c.Text)
}

// PageBreak starts a new page.
type PageBreak struct {
	indent int
}

// NewPageBreak returns a page break.
func NewPageBreak() *PageBreak { return &PageBreak{} }

// Indent returns the resolved indentation level.
func (p *PageBreak) Indent() int { return p.indent }

// AssignIndent places the break one level below its parent.
func (p *PageBreak) AssignIndent(parent int) { p.indent = parent + 1 }

// Render writes \newpage followed by a blank line.
func (p *PageBreak) Render(s Sink) error {
	if err := s.WriteLine(p.indent, cmdNewPage); err != nil {
		return err
	}
	return s.WriteBlank()
}

// Verbatim is preformatted text. The environment markers follow the
// tree's indentation; the body is written at column zero because
// whitespace inside verbatim is significant.
type Verbatim struct {
	Text   string
	indent int
}

// NewVerbatim returns a verbatim block.
func NewVerbatim(text string) *Verbatim {
	return &Verbatim{Text: text}
}

// Indent returns the resolved indentation level.
func (v *Verbatim) Indent() int { return v.indent }

// AssignIndent places the block one level below its parent.
func (v *Verbatim) AssignIndent(parent int) { v.indent = parent + 1 }

// Render writes the environment.
func (v *Verbatim) Render(s Sink) error {
	if err := s.WriteLine(v.indent, begin("verbatim")); err != nil {
		return err
	}
	body := strings.TrimRight(v.Text, "\n")
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			if err := s.WriteLine(0, line); err != nil {
				return err
			}
		}
	}
	if err := s.WriteLine(v.indent, end("verbatim")); err != nil {
		return err
	}
	return s.WriteBlank()
}
