package texdoc

// Figure is a floating figure holding one included graphic.
type Figure struct {
	Path     string
	Options  string // \includegraphics options, e.g. "width=0.5\textwidth"
	Position string
	Centered bool
	Caption  string
	Label    string

	indent int
}

// FigureOption configures a Figure.
type FigureOption func(*Figure)

// WithFigureOptions sets the \includegraphics options.
func WithFigureOptions(options string) FigureOption {
	return func(f *Figure) { f.Options = options }
}

// WithFigurePosition sets the float placement specifier.
func WithFigurePosition(position string) FigureOption {
	return func(f *Figure) { f.Position = position }
}

// WithFigureCentered centers the graphic.
func WithFigureCentered() FigureOption {
	return func(f *Figure) { f.Centered = true }
}

// WithFigureCaption sets the caption. The caption is passed through Format.
func WithFigureCaption(caption string) FigureOption {
	return func(f *Figure) { f.Caption = caption }
}

// WithFigureLabel sets the cross-reference label.
func WithFigureLabel(label string) FigureOption {
	return func(f *Figure) { f.Label = label }
}

// NewFigure returns a figure including the graphic at path.
func NewFigure(path string, opts ...FigureOption) *Figure {
	f := &Figure{Path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Indent returns the resolved indentation level.
func (f *Figure) Indent() int { return f.indent }

// AssignIndent places the figure one level below its parent.
func (f *Figure) AssignIndent(parent int) { f.indent = parent + 1 }

// Render writes the figure environment followed by a blank line.
func (f *Figure) Render(s Sink) error {
	head := begin("figure")
	if f.Position != "" {
		head += brackets(f.Position)
	}
	inner := f.indent + 1

	lines := []struct {
		depth int
		text  string
		emit  bool
	}{
		{f.indent, head, true},
		{inner, cmdCentering, f.Centered},
		{inner, cmdGraphics + f.graphicOptions() + braces(f.Path), true},
		{inner, cmdCaption + braces(Format(f.Caption)), f.Caption != ""},
		{inner, cmdLabel + braces(f.Label), f.Label != ""},
		{f.indent, end("figure"), true},
	}
	for _, l := range lines {
		if !l.emit {
			continue
		}
		if err := s.WriteLine(l.depth, l.text); err != nil {
			return err
		}
	}
	return s.WriteBlank()
}

func (f *Figure) graphicOptions() string {
	if f.Options == "" {
		return ""
	}
	return brackets(f.Options)
}
