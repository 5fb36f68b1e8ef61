package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	texhttp "github.com/fwojciec/texdoc/http"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descriptor = `{
  "version": 1,
  "class": {"name": "article"},
  "nodes": [{"type": "section", "title": "Intro", "children": [{"type": "paragraph", "text": "Hello **world**"}]}]
}`

func newServer(t *testing.T, opts ...texhttp.Option) *texhttp.Server {
	t.Helper()
	s, err := texhttp.NewServer(opts...)
	require.NoError(t, err)
	return s
}

func do(s http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := do(newServer(t, texhttp.WithToken("secret")), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders descriptor", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/render", descriptor)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, texhttp.ContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\\documentclass{article}\n"))
		assert.Contains(t, rec.Body.String(), "\t\\section*{Intro}\n\n\t\tHello \\textbf{world}\n")
	})

	t.Run("indent unit", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t, texhttp.WithIndentUnit("  ")), http.MethodPost, "/render", descriptor)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "  \\section*{Intro}\n\n    Hello")
	})

	t.Run("unknown node is a bad request", func(t *testing.T) {
		t.Parallel()
		body := `{"version": 1, "class": {"name": "article"}, "nodes": [{"type": "poem"}]}`
		rec := do(newServer(t), http.MethodPost, "/render", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "unknown node type")
	})

	t.Run("invalid preamble is a bad request", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/render", `{"version": 1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/render", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "unmarshal envelope")
	})

	t.Run("wrong field type is a bad request", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/render", `{"version": "one"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t, texhttp.WithMaxBodySize(8)), http.MethodPost, "/render", descriptor)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodGet, "/render", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestRender_Cache(t *testing.T) {
	t.Parallel()
	s := newServer(t, texhttp.WithCacheSize(2))

	first := do(s, http.MethodPost, "/render", descriptor)
	second := do(s, http.MethodPost, "/render", descriptor)

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, s.CacheLen())

	do(s, http.MethodPost, "/markdown", "# A\n")
	do(s, http.MethodPost, "/markdown", "# B\n")
	assert.Equal(t, 2, s.CacheLen())
}

func TestRender_InvalidCacheSize(t *testing.T) {
	t.Parallel()
	_, err := texhttp.NewServer(texhttp.WithCacheSize(0))
	require.Error(t, err)
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/markdown", "# Intro\n\nSome *text*.\n")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "\\documentclass{article}\n")
		assert.Contains(t, rec.Body.String(), "\t\\section*{Intro}\n\n\t\tSome \\textit{text}.\n")
	})

	t.Run("query options", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/markdown?class=report&options=12pt,a4paper&chapters=true&numbered=1", "# Intro\n")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "\\documentclass[12pt,a4paper]{report}\n")
		assert.Contains(t, rec.Body.String(), "\t\\chapter{Intro}\n")
	})

	t.Run("query order does not split the cache", func(t *testing.T) {
		t.Parallel()
		s := newServer(t)
		do(s, http.MethodPost, "/markdown?chapters=true&numbered=true", "# A\n")
		rec := do(s, http.MethodPost, "/markdown?numbered=true&chapters=true", "# A\n")
		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	})

	t.Run("invalid flag", func(t *testing.T) {
		t.Parallel()
		rec := do(newServer(t), http.MethodPost, "/markdown?chapters=maybe", "# A\n")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "chapters")
	})
}

func TestAuth(t *testing.T) {
	t.Parallel()
	s := newServer(t, texhttp.WithToken("secret"))

	tests := []struct {
		name   string
		header []string
		want   int
	}{
		{"missing", nil, http.StatusUnauthorized},
		{"wrong scheme", []string{"Authorization", "Basic secret"}, http.StatusUnauthorized},
		{"wrong token", []string{"Authorization", "Bearer nope"}, http.StatusUnauthorized},
		{"valid", []string{"Authorization", "Bearer secret"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(s, http.MethodPost, "/render", descriptor, tt.header...)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := newServer(t, texhttp.WithLogger(zerolog.New(&buf)))

	do(s, http.MethodGet, "/health", "")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
