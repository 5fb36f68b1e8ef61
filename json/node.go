package json

import (
	"fmt"

	"github.com/fwojciec/texdoc"
)

// nodeDTO is the JSON representation of a Node with a type discriminator.
// Only the fields relevant to the type are read.
type nodeDTO struct {
	Type     string    `json:"type"`
	Title    string    `json:"title,omitempty"`
	Numbered bool      `json:"numbered,omitempty"`
	Label    string    `json:"label,omitempty"`
	Text     string    `json:"text,omitempty"`
	Children []nodeDTO `json:"children,omitempty"`

	// table and figure
	Columns  string   `json:"columns,omitempty"`
	Position string   `json:"position,omitempty"`
	Centered bool     `json:"centered,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Aligned  bool     `json:"aligned,omitempty"`
	Rows     []rowDTO `json:"rows,omitempty"`
	Path     string   `json:"path,omitempty"`
	Options  string   `json:"options,omitempty"`
}

// rowDTO is a table component: "row" with cells, or "hline".
type rowDTO struct {
	Type  string   `json:"type"`
	Cells []string `json:"cells,omitempty"`
}

var sectionKinds = map[string]texdoc.SectionKind{
	"chapter":       texdoc.KindChapter,
	"section":       texdoc.KindSection,
	"subsection":    texdoc.KindSubsection,
	"subsubsection": texdoc.KindSubsubsection,
}

func unmarshalNodes(dtos []nodeDTO) ([]texdoc.Node, error) {
	nodes := make([]texdoc.Node, len(dtos))
	for i, dto := range dtos {
		n, err := unmarshalNode(dto)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes[i] = n
	}
	return nodes, nil
}

func unmarshalNode(dto nodeDTO) (texdoc.Node, error) {
	if kind, ok := sectionKinds[dto.Type]; ok {
		s := texdoc.NewSection(kind, dto.Title, dto.Numbered)
		s.Label = dto.Label
		return withChildren(s, dto.Children)
	}

	switch dto.Type {
	case "paragraph":
		return texdoc.NewParagraph(dto.Text), nil
	case "command":
		return texdoc.NewCommand(dto.Text), nil
	case "verbatim":
		return texdoc.NewVerbatim(dto.Text), nil
	case "pagebreak":
		return texdoc.NewPageBreak(), nil
	case "block":
		return withChildren(texdoc.NewBlock(), dto.Children)
	case "enumerate":
		return withChildren(texdoc.NewEnumerate(), dto.Children)
	case "itemize":
		return withChildren(texdoc.NewItemize(), dto.Children)
	case "figure":
		f := texdoc.NewFigure(dto.Path,
			texdoc.WithFigureOptions(dto.Options),
			texdoc.WithFigurePosition(dto.Position),
			texdoc.WithFigureCaption(dto.Caption),
			texdoc.WithFigureLabel(dto.Label),
		)
		f.Centered = dto.Centered
		return f, nil
	case "table":
		return unmarshalTable(dto)
	default:
		return nil, fmt.Errorf("%w: %q", texdoc.ErrUnknownNode, dto.Type)
	}
}

func withChildren(c texdoc.Container, dtos []nodeDTO) (texdoc.Node, error) {
	children, err := unmarshalNodes(dtos)
	if err != nil {
		return nil, err
	}
	c.Add(children...)
	return c, nil
}

func unmarshalTable(dto nodeDTO) (texdoc.Node, error) {
	t := texdoc.NewTable(dto.Columns,
		texdoc.WithTablePosition(dto.Position),
		texdoc.WithTableCaption(dto.Caption),
		texdoc.WithTableLabel(dto.Label),
	)
	t.Centered = dto.Centered
	t.Aligned = dto.Aligned
	for i, r := range dto.Rows {
		switch r.Type {
		case "row":
			t.Add(texdoc.NewTableRow(r.Cells...))
		case "hline":
			t.Add(texdoc.NewHorizontalLine())
		default:
			return nil, fmt.Errorf("row %d: %w: %q", i, texdoc.ErrUnknownNode, r.Type)
		}
	}
	return t, nil
}
