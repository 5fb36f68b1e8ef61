package texdoc

import (
	"regexp"
	"strings"
)

// Inline markers, applied in this order. Each pass reads the output of the
// previous one, so italic and color markers inside a bold span are still
// rewritten. Spans are shortest-match: "**a** and **b**" is two spans.
var markers = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{
		pattern:     regexp.MustCompile(`\*\*(?P<text>[^*]+?)\*\*`),
		replacement: cmdBold + `{${text}}`,
	},
	{
		pattern:     regexp.MustCompile(`_(?P<text>[^_]+?)_`),
		replacement: cmdItalic + `{${text}}`,
	},
	{
		// The extra brace group keeps \color scoped to the span.
		pattern:     regexp.MustCompile(`#(?P<color>[^{} ]+)\{(?P<text>[^{}]+)\}`),
		replacement: `{` + cmdColor + `{${color}}{${text}}}`,
	},
}

// escaper protects the LaTeX special characters that are not Format
// markers. Underscores and hashes are markers and are left alone.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`%`, `\%`,
	`&`, `\&`,
	`$`, `\$`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes plain text safe to pass through Format: LaTeX special
// characters are escaped so they print literally. Underscores and hashes
// are kept, so imported text can still carry italic markers; a color
// marker loses its braces and prints as text.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Format rewrites the inline markers of raw into LaTeX:
//
//	**text**        \textbf{text}
//	_text_          \textit{text}
//	#color{text}    {\color{color}{text}}
//
// Unterminated markers are left as they are. After substitution every
// double space is removed and every newline becomes a single space, so a
// string authored over several indented lines renders as one line.
//
// Overlapping (rather than nested) spans such as "**a _b** c_" resolve by
// pass order and are not otherwise defined.
func Format(raw string) string {
	text := raw
	for _, m := range markers {
		text = m.pattern.ReplaceAllString(text, m.replacement)
	}
	text = strings.ReplaceAll(text, "  ", "")
	return strings.ReplaceAll(text, "\n", " ")
}
