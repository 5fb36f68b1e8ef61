package texdoc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableComponent is a sealed interface for the nodes a Table may hold.
// The unexported marker method prevents external implementations.
type TableComponent interface {
	Node
	tableComponent()
}

// Table is a floating table around a tabular environment. It is a
// container of its own: its children are rows and horizontal lines rather
// than arbitrary nodes.
type Table struct {
	Columns  string // tabular column specification, e.g. "|c|c|"
	Position string
	Centered bool
	Caption  string
	Label    string
	// Aligned pads cells to the widest cell of their column so the
	// separators line up in the source.
	Aligned bool

	components []TableComponent
	indent     int
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithTablePosition sets the float placement specifier, e.g. "H".
func WithTablePosition(position string) TableOption {
	return func(t *Table) { t.Position = position }
}

// WithTableCentered centers the tabular.
func WithTableCentered() TableOption {
	return func(t *Table) { t.Centered = true }
}

// WithTableCaption sets the caption. The caption is passed through Format.
func WithTableCaption(caption string) TableOption {
	return func(t *Table) { t.Caption = caption }
}

// WithTableLabel sets the cross-reference label.
func WithTableLabel(label string) TableOption {
	return func(t *Table) { t.Label = label }
}

// WithAlignedColumns pads cells so column separators line up.
func WithAlignedColumns() TableOption {
	return func(t *Table) { t.Aligned = true }
}

// NewTable returns a table with the given column specification.
func NewTable(columns string, opts ...TableOption) *Table {
	t := &Table{Columns: columns}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add appends rows and lines to the table. Nil components, including
// typed nil pointers, are skipped.
func (t *Table) Add(components ...TableComponent) {
	for _, c := range components {
		if !isNil(c) {
			t.components = append(t.components, c)
		}
	}
}

// Components returns the rows and lines in insertion order.
func (t *Table) Components() []TableComponent { return t.components }

// Indent returns the resolved indentation level.
func (t *Table) Indent() int { return t.indent }

// AssignIndent places the table one level below its parent and forwards
// the tabular level to every component.
func (t *Table) AssignIndent(parent int) {
	t.indent = parent + 1
	inner := t.indent + 1
	for _, c := range t.components {
		c.AssignIndent(inner)
	}
}

// Render writes the table environment followed by a blank line.
func (t *Table) Render(s Sink) error {
	head := begin("table")
	if t.Position != "" {
		head += brackets(t.Position)
	}
	inner := t.indent + 1

	if err := s.WriteLine(t.indent, head); err != nil {
		return err
	}
	if t.Centered {
		if err := s.WriteLine(inner, cmdCentering); err != nil {
			return err
		}
	}
	if err := s.WriteLine(inner, begin("tabular")+braces(t.Columns)); err != nil {
		return err
	}
	if err := t.renderComponents(s); err != nil {
		return err
	}
	if err := s.WriteLine(inner, end("tabular")); err != nil {
		return err
	}
	if t.Caption != "" {
		if err := s.WriteLine(inner, cmdCaption+braces(Format(t.Caption))); err != nil {
			return err
		}
	}
	if t.Label != "" {
		if err := s.WriteLine(inner, cmdLabel+braces(t.Label)); err != nil {
			return err
		}
	}
	if err := s.WriteLine(t.indent, end("table")); err != nil {
		return err
	}
	return s.WriteBlank()
}

func (t *Table) renderComponents(s Sink) error {
	var widths []int
	if t.Aligned {
		widths = t.columnWidths()
	}
	for _, c := range t.components {
		var err error
		if row, ok := c.(*TableRow); ok && widths != nil {
			err = row.render(s, widths)
		} else {
			err = c.Render(s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns the display width of the widest formatted cell of
// every column.
func (t *Table) columnWidths() []int {
	var widths []int
	for _, c := range t.components {
		row, ok := c.(*TableRow)
		if !ok {
			continue
		}
		for i, cell := range row.formatted() {
			w := runewidth.StringWidth(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// TableRow is one row of cells. Each cell is passed through Format.
type TableRow struct {
	Cells  []string
	indent int
}

// NewTableRow returns a row holding cells.
func NewTableRow(cells ...string) *TableRow {
	return &TableRow{Cells: cells}
}

func (*TableRow) tableComponent() {}

// Indent returns the resolved indentation level.
func (r *TableRow) Indent() int { return r.indent }

// AssignIndent places the row one level below the tabular level it is
// given. A table passes its own level plus one, so rows sit inside the
// tabular environment two levels below the table itself.
func (r *TableRow) AssignIndent(parent int) { r.indent = parent + 1 }

// Render writes the cells joined by column separators and ended by a
// row break.
func (r *TableRow) Render(s Sink) error {
	return r.render(s, nil)
}

func (r *TableRow) formatted() []string {
	cells := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		cells[i] = Format(c)
	}
	return cells
}

func (r *TableRow) render(s Sink, widths []int) error {
	cells := r.formatted()
	if widths != nil {
		for i, c := range cells {
			if i < len(cells)-1 && i < len(widths) {
				cells[i] = runewidth.FillRight(c, widths[i])
			}
		}
	}
	return s.WriteLine(r.indent, strings.Join(cells, " & ")+` \\`)
}

// HorizontalLine is a \hline rule between rows.
type HorizontalLine struct {
	indent int
}

// NewHorizontalLine returns a rule.
func NewHorizontalLine() *HorizontalLine { return &HorizontalLine{} }

func (*HorizontalLine) tableComponent() {}

// Indent returns the resolved indentation level.
func (h *HorizontalLine) Indent() int { return h.indent }

// AssignIndent places the rule one level below the tabular level it is
// given.
func (h *HorizontalLine) AssignIndent(parent int) { h.indent = parent + 1 }

// Render writes \hline.
func (h *HorizontalLine) Render(s Sink) error {
	return s.WriteLine(h.indent, cmdHline)
}
