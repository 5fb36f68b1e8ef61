package minio_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/texdoc"
	"github.com/fwojciec/texdoc/minio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() minio.Config {
	return minio.Config{
		Endpoint:  "localhost:9000",
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "docs",
	}
}

func TestNewSink_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*minio.Config)
		want   string
	}{
		{"missing endpoint", func(c *minio.Config) { c.Endpoint = " " }, "endpoint is required"},
		{"missing access key", func(c *minio.Config) { c.AccessKey = "" }, "access key and secret key"},
		{"missing secret key", func(c *minio.Config) { c.SecretKey = "" }, "access key and secret key"},
		{"missing bucket", func(c *minio.Config) { c.Bucket = "" }, "bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := minio.NewSink(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, texdoc.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSink_BuffersDocument(t *testing.T) {
	t.Parallel()

	s, err := minio.NewSink(validConfig(), minio.WithSinkOptions(texdoc.WithIndentUnit("  ")))
	require.NoError(t, err)
	assert.Equal(t, "docs", s.Bucket())

	doc := texdoc.NewDocument(s, texdoc.Class{Kind: texdoc.ClassArticle})
	doc.Add(texdoc.NewParagraph("**Hi**"))
	require.NoError(t, doc.Build())

	assert.Contains(t, string(s.Bytes()), "  \\textbf{Hi}\n")
	assert.Equal(t, s.Len(), int(s.Written()))
}

func TestSink_FlushRequiresKey(t *testing.T) {
	t.Parallel()

	s, err := minio.NewSink(validConfig())
	require.NoError(t, err)

	_, err = s.Flush(context.Background(), "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, texdoc.ErrValidation)
}

// fakeStore is a minimal S3 endpoint. Bucket checks fail with 403 while
// denyChecks is positive; a missing bucket answers 404 until created.
type fakeStore struct {
	mu         sync.Mutex
	denyChecks int
	missing    bool
	requests   []string
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.Trim(r.URL.Path, "/")
	f.requests = append(f.requests, r.Method+" "+path)
	io.Copy(io.Discard, r.Body)

	switch {
	case r.Method == http.MethodHead && path == "docs":
		switch {
		case f.denyChecks > 0:
			f.denyChecks--
			w.WriteHeader(http.StatusForbidden)
		case f.missing:
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	case r.Method == http.MethodPut && path == "docs":
		f.missing = false
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (f *fakeStore) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func newStoreSink(t *testing.T, store *fakeStore) *minio.Sink {
	t.Helper()
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.Endpoint = strings.TrimPrefix(srv.URL, "http://")
	s, err := minio.NewSink(cfg)
	require.NoError(t, err)

	doc := texdoc.NewDocument(s, texdoc.Class{Kind: texdoc.ClassArticle})
	doc.Add(texdoc.NewParagraph("Hello"))
	require.NoError(t, doc.Build())
	return s
}

func TestSink_Flush(t *testing.T) {
	t.Parallel()

	t.Run("uploads to existing bucket", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{}
		s := newStoreSink(t, store)

		size, err := s.Flush(context.Background(), "reports/intro.tex")
		require.NoError(t, err)

		assert.Equal(t, int64(s.Len()), size)
		assert.Equal(t, []string{"HEAD docs", "PUT docs/reports/intro.tex"}, store.Requests())
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{missing: true}
		s := newStoreSink(t, store)

		_, err := s.Flush(context.Background(), "intro.tex")
		require.NoError(t, err)

		assert.Equal(t, []string{"HEAD docs", "PUT docs", "PUT docs/intro.tex"}, store.Requests())
	})

	t.Run("bucket is checked once after success", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{}
		s := newStoreSink(t, store)

		_, err := s.Flush(context.Background(), "a.tex")
		require.NoError(t, err)
		_, err = s.Flush(context.Background(), "b.tex")
		require.NoError(t, err)

		assert.Equal(t, []string{"HEAD docs", "PUT docs/a.tex", "PUT docs/b.tex"}, store.Requests())
	})

	t.Run("failed bucket check is retried", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{denyChecks: 1}
		s := newStoreSink(t, store)

		_, err := s.Flush(context.Background(), "intro.tex")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ensure bucket")

		size, err := s.Flush(context.Background(), "intro.tex")
		require.NoError(t, err)
		assert.Equal(t, int64(s.Len()), size)
		assert.Equal(t, []string{"HEAD docs", "HEAD docs", "PUT docs/intro.tex"}, store.Requests())
	})
}
