package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/texdoc"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

type importer struct {
	source  []byte
	outline *texdoc.Outline
}

// walk feeds the top-level blocks into the outline. Only top-level
// headings open sections.
func (im *importer) walk(doc ast.Node) {
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if h, ok := c.(*ast.Heading); ok {
			im.outline.Heading(h.Level, im.inline(h))
			continue
		}
		im.outline.Add(im.block(c)...)
	}
}

func (im *importer) block(node ast.Node) []texdoc.Node {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if fig := im.figure(n); fig != nil {
			return []texdoc.Node{fig}
		}
		text := im.inline(n)
		if text == "" {
			return nil
		}
		return []texdoc.Node{texdoc.NewParagraph(text)}

	case *ast.Heading:
		// Headings nested in lists or quotes cannot open a section.
		return []texdoc.Node{texdoc.NewParagraph("**" + im.inline(n) + "**")}

	case *ast.List:
		return []texdoc.Node{im.list(n)}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return []texdoc.Node{texdoc.NewVerbatim(im.lines(n))}

	case *ast.ThematicBreak:
		return []texdoc.Node{texdoc.NewPageBreak()}

	case *east.Table:
		return []texdoc.Node{im.table(n)}

	case *ast.HTMLBlock:
		return nil

	default:
		// Blockquotes and other containers: import their content flat.
		var nodes []texdoc.Node
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			nodes = append(nodes, im.block(c)...)
		}
		return nodes
	}
}

// figure returns a figure when the paragraph holds a single image.
func (im *importer) figure(n ast.Node) *texdoc.Figure {
	img, ok := n.FirstChild().(*ast.Image)
	if !ok || n.FirstChild() != n.LastChild() {
		return nil
	}
	opts := []texdoc.FigureOption{
		texdoc.WithFigurePosition("H"),
		texdoc.WithFigureCentered(),
		texdoc.WithFigureOptions(`width=\linewidth`),
	}
	if caption := im.inline(img); caption != "" {
		opts = append(opts, texdoc.WithFigureCaption(caption))
	}
	return texdoc.NewFigure(string(img.Destination), opts...)
}

// list imports a list with one block per item, so an item holding several
// paragraphs stays a single \item.
func (im *importer) list(n *ast.List) *texdoc.List {
	l := texdoc.NewItemize()
	if n.IsOrdered() {
		l = texdoc.NewEnumerate()
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		b := texdoc.NewBlock()
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			b.Add(im.block(c)...)
		}
		l.Add(b)
	}
	return l
}

func (im *importer) table(n *east.Table) *texdoc.Table {
	t := texdoc.NewTable(columnSpec(n.Alignments),
		texdoc.WithTablePosition("H"),
		texdoc.WithTableCentered(),
		texdoc.WithAlignedColumns(),
	)
	t.Add(texdoc.NewHorizontalLine())
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, im.inline(cell))
		}
		t.Add(texdoc.NewTableRow(cells...))
		if _, ok := row.(*east.TableHeader); ok {
			t.Add(texdoc.NewHorizontalLine())
		}
	}
	t.Add(texdoc.NewHorizontalLine())
	return t
}

func columnSpec(alignments []east.Alignment) string {
	var b strings.Builder
	b.WriteByte('|')
	for _, a := range alignments {
		switch a {
		case east.AlignRight:
			b.WriteByte('r')
		case east.AlignCenter:
			b.WriteByte('c')
		default:
			b.WriteByte('l')
		}
		b.WriteByte('|')
	}
	return b.String()
}

// lines returns the raw source lines of a code block.
func (im *importer) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(im.source))
	}
	return buf.String()
}

// inline collects the inline content of node as texdoc.Format input.
func (im *importer) inline(node ast.Node) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		im.writeInline(&b, c)
	}
	return strings.TrimSpace(b.String())
}

func (im *importer) writeInline(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		b.WriteString(texdoc.Escape(string(n.Segment.Value(im.source))))
		if n.HardLineBreak() {
			b.WriteString(` \\`)
		}
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte('\n')
		}

	case *ast.String:
		b.WriteString(texdoc.Escape(string(n.Value)))

	case *ast.Emphasis:
		marker := "_"
		if n.Level >= 2 {
			marker = "**"
		}
		b.WriteString(marker)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			im.writeInline(b, c)
		}
		b.WriteString(marker)

	case *ast.CodeSpan:
		b.WriteString(`\texttt{` + texdoc.Escape(im.plain(n)) + `}`)

	case *ast.Link:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			im.writeInline(b, c)
		}
		b.WriteString(` (\texttt{` + texdoc.Escape(string(n.Destination)) + `})`)

	case *ast.AutoLink:
		b.WriteString(`\texttt{` + texdoc.Escape(string(n.URL(im.source))) + `}`)

	case *ast.RawHTML:
		// Dropped: there is no LaTeX equivalent.

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			im.writeInline(b, c)
		}
	}
}

// plain concatenates the text segments below node without markup.
func (im *importer) plain(node ast.Node) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(im.source))
			continue
		}
		b.WriteString(im.plain(c))
	}
	return b.String()
}
