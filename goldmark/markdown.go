// Package goldmark imports Markdown into a texdoc node tree using goldmark
// for parsing.
package goldmark

import (
	"github.com/fwojciec/texdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
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

// Import parses Markdown source and returns it as a manifest. Headings
// open nested sections, emphasis is re-expressed as texdoc.Format markers,
// and GitHub-style tables become tables.
func Import(source []byte, opts ...Option) texdoc.Manifest {
	o := options{class: texdoc.Class{Kind: texdoc.ClassArticle}}
	for _, opt := range opts {
		opt(&o)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	im := &importer{source: source, outline: texdoc.NewOutline(o.outline...)}
	im.walk(doc)

	return texdoc.Manifest{
		Config: texdoc.Config{Class: o.class},
		Nodes:  im.outline.Nodes(),
	}
}
