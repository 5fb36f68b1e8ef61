package texdoc_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/texdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriterSink(t *testing.T) {
	t.Parallel()

	t.Run("indents with tabs by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := texdoc.NewWriterSink(&buf)
		require.NoError(t, s.WriteLine(0, "a"))
		require.NoError(t, s.WriteLine(2, "b"))
		require.NoError(t, s.WriteBlank())
		assert.Equal(t, "a\n\t\tb\n\n", buf.String())
	})

	t.Run("custom indent unit", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := texdoc.NewWriterSink(&buf, texdoc.WithIndentUnit("  "))
		require.NoError(t, s.WriteLine(3, "x"))
		assert.Equal(t, "      x\n", buf.String())
	})

	t.Run("negative depth writes at column zero", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := texdoc.NewWriterSink(&buf)
		require.NoError(t, s.WriteLine(-1, "x"))
		assert.Equal(t, "x\n", buf.String())
	})

	t.Run("counts written bytes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := texdoc.NewWriterSink(&buf)
		require.NoError(t, s.WriteLine(1, "ab"))
		require.NoError(t, s.WriteBlank())
		assert.Equal(t, int64(5), s.Written())
		assert.Equal(t, int64(buf.Len()), s.Written())
	})

	t.Run("wraps writer failures", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("disk full")
		s := texdoc.NewWriterSink(failingWriter{err: cause})
		err := s.WriteLine(0, "x")
		assert.ErrorIs(t, err, texdoc.ErrWrite)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, s.WriteBlank(), texdoc.ErrWrite)
	})
}
