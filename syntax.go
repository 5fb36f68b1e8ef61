package texdoc

import "strings"

// LaTeX keywords emitted by the nodes.
const (
	cmdDocumentClass = `\documentclass`
	cmdUsePackage    = `\usepackage`
	cmdBeginDocument = `\begin{document}`
	cmdEndDocument   = `\end{document}`

	commentDefaultPackages = `% Default packages`
	commentUserPackages    = `% Added packages`
	commentUserCommands    = `% Added commands`

	cmdItem      = `\item`
	cmdCentering = `\centering`
	cmdCaption   = `\caption`
	cmdLabel     = `\label`
	cmdHline     = `\hline`
	cmdNewPage   = `\newpage`
	cmdGraphics  = `\includegraphics`

	cmdBold   = `\textbf`
	cmdItalic = `\textit`
	cmdColor  = `\color`
)

// defaultPackages precede user packages so a user declaration can
// override them. xcolor backs the color marker of Format.
var defaultPackages = []string{"float", "graphicx", "xcolor"}

func braces(s string) string { return "{" + s + "}" }

func brackets(s string) string { return "[" + s + "]" }

// optionList renders options as a bracketed, comma-joined list, or
// nothing when there are none.
func optionList(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return brackets(strings.Join(options, ","))
}

func begin(env string) string { return `\begin` + braces(env) }

func end(env string) string { return `\end` + braces(env) }
