package docx

import (
	"bytes"
	"testing"

	"github.com/fwojciec/texdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 2", 2},
		{"HEADING3", 3},
		{"Title", 1},
		{"Heading9", 9},
		{"Heading10", 0},
		{"Heading", 0},
		{"Normal", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, headingLevel(tt.style))
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	paras := []paragraph{
		{style: "Normal", text: "Preface."},
		{style: "Heading1", text: "Results"},
		{style: "Normal", text: "Costs rose 5% & fell."},
		{style: "Normal", text: ""},
		{style: "Heading 2", text: "Detail"},
		{style: "Normal", text: "More."},
		{style: "Heading1", text: "Outlook"},
	}

	m := build(paras, WithNumbering())

	assert.Equal(t, texdoc.ClassArticle, m.Config.Class.Kind)
	require.Len(t, m.Nodes, 3)
	assert.Equal(t, "Preface.", m.Nodes[0].(*texdoc.Paragraph).Text)

	results := m.Nodes[1].(*texdoc.Section)
	assert.Equal(t, "Results", results.Title)
	assert.Equal(t, texdoc.KindSection, results.Kind)
	assert.True(t, results.Numbered)
	require.Len(t, results.Children(), 2)
	assert.Equal(t, `Costs rose 5\% \& fell.`, results.Children()[0].(*texdoc.Paragraph).Text)

	detail := results.Children()[1].(*texdoc.Section)
	assert.Equal(t, texdoc.KindSubsection, detail.Kind)
	assert.Equal(t, "More.", detail.Children()[0].(*texdoc.Paragraph).Text)

	assert.Equal(t, "Outlook", m.Nodes[2].(*texdoc.Section).Title)
}

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	class := texdoc.Class{Kind: texdoc.ClassBook}
	m := build([]paragraph{{style: "Heading1", text: "One"}}, WithClass(class), WithChapters())

	assert.Equal(t, class, m.Config.Class)
	require.Len(t, m.Nodes, 1)
	assert.Equal(t, texdoc.KindChapter, m.Nodes[0].(*texdoc.Section).Kind)
}

func TestImport_RejectsInvalidArchive(t *testing.T) {
	t.Parallel()

	data := []byte("not a zip archive")
	_, err := Import(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse docx")
}
