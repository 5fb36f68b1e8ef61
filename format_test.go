package texdoc_test

import (
	"testing"

	"github.com/fwojciec/texdoc"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text is unchanged", "hello world", "hello world"},
		{"bold", "**a**", `\textbf{a}`},
		{"italic", "_a_", `\textit{a}`},
		{"color", "#red{a}", `{\color{red}{a}}`},
		{"italic nested in bold", "**_a_**", `\textbf{\textit{a}}`},
		{"color nested in bold", "**#teal{x}**", `\textbf{{\color{teal}{x}}}`},
		{"consecutive bold spans stay separate", "**a** and **b**", `\textbf{a} and \textbf{b}`},
		{"consecutive italic spans stay separate", "_a_ _b_", `\textit{a} \textit{b}`},
		{"markers inside a sentence", "the **quick** _brown_ #brown{fox}", `the \textbf{quick} \textit{brown} {\color{brown}{fox}}`},
		{"unterminated bold", "**a", "**a"},
		{"unterminated italic", "_a", "_a"},
		{"unterminated color", "#red{a", "#red{a"},
		{"empty bold is not a span", "****", "****"},
		{"double space is removed", "a  b", "ab"},
		{"newline becomes a space", "a\nb", "a b"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, texdoc.Format(tt.in))
		})
	}
}

func TestFormat_MultiLineParagraph(t *testing.T) {
	t.Parallel()
	in := "First line\nsecond **line**\nthird"
	assert.Equal(t, `First line second \textbf{line} third`, texdoc.Format(in))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "plain text", "plain text"},
		{"percent ampersand dollar", "5% & $3", `5\% \& \$3`},
		{"braces", "{x}", `\{x\}`},
		{"backslash is not re-escaped", `a\b`, `a\textbackslash{}b`},
		{"tilde and caret", "~^", `\textasciitilde{}\textasciicircum{}`},
		{"markers are kept", "_a_ **b** #c", "_a_ **b** #c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, texdoc.Escape(tt.in))
		})
	}
}

func TestEscape_ThenFormat(t *testing.T) {
	t.Parallel()
	in := texdoc.Escape(`_path_ {C:\tmp} costs ~5%`)
	assert.Equal(t, `\textit{path} \{C:\textbackslash{}tmp\} costs \textasciitilde{}5\%`, texdoc.Format(in))
}
