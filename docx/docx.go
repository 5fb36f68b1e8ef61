// Package docx imports Word documents into a texdoc node tree using
// go-docx for parsing.
package docx

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/fwojciec/texdoc"
)

// Option configures Import.
type Option func(*options)

type options struct {
	class   texdoc.Class
	outline []texdoc.OutlineOption
}

// WithClass sets the document class of the returned manifest.
// The default is article.
func WithClass(class texdoc.Class) Option {
	return func(o *options) { o.class = class }
}

// WithChapters maps level-one headings to chapters.
func WithChapters() Option {
	return func(o *options) { o.outline = append(o.outline, texdoc.WithChapters()) }
}

// WithNumbering emits numbered sections.
func WithNumbering() Option {
	return func(o *options) { o.outline = append(o.outline, texdoc.WithNumbering()) }
}

// paragraph is the part of a Word paragraph the importer uses.
type paragraph struct {
	style string
	text  string
}

// Import parses a .docx document. Paragraphs styled as headings open
// nested sections; every other non-empty paragraph becomes a Paragraph.
func Import(r io.ReaderAt, size int64, opts ...Option) (texdoc.Manifest, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return texdoc.Manifest{}, fmt.Errorf("parse docx: %w", err)
	}

	var paras []paragraph
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		paras = append(paras, paragraph{style: paragraphStyle(p), text: paragraphText(p)})
	}
	return build(paras, opts...), nil
}

// Load reads and imports the .docx file at path.
func Load(path string, opts ...Option) (texdoc.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return texdoc.Manifest{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return texdoc.Manifest{}, fmt.Errorf("stat file: %w", err)
	}
	return Import(f, info.Size(), opts...)
}

func build(paras []paragraph, opts ...Option) texdoc.Manifest {
	o := options{class: texdoc.Class{Kind: texdoc.ClassArticle}}
	for _, opt := range opts {
		opt(&o)
	}

	outline := texdoc.NewOutline(o.outline...)
	for _, p := range paras {
		if p.text == "" {
			continue
		}
		text := texdoc.Escape(p.text)
		if level := headingLevel(p.style); level > 0 {
			outline.Heading(level, text)
			continue
		}
		outline.Add(texdoc.NewParagraph(text))
	}

	return texdoc.Manifest{
		Config: texdoc.Config{Class: o.class},
		Nodes:  outline.Nodes(),
	}
}

// headingLevel returns the level of a heading style such as "Heading1" or
// "heading 2", or zero for any other style.
func headingLevel(style string) int {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if s == "title" {
		return 1
	}
	digits, ok := strings.CutPrefix(s, "heading")
	if !ok {
		return 0
	}
	level, err := strconv.Atoi(digits)
	if err != nil || level < 1 || level > 9 {
		return 0
	}
	return level
}

func paragraphStyle(p *docx.Paragraph) string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

func paragraphText(p *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
