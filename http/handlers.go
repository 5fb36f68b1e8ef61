package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/texdoc"
	"github.com/fwojciec/texdoc/goldmark"
	texjson "github.com/fwojciec/texdoc/json"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/x-tex; charset=utf-8"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, func(body []byte) (texdoc.Manifest, error) {
		return texjson.UnmarshalDocument(body)
	})
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	opts, err := markdownOptions(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, r, func(body []byte) (texdoc.Manifest, error) {
		return goldmark.Import(body, opts...), nil
	})
}

// render reads the body, serves a cached document when one exists and
// otherwise imports and builds it.
func (s *Server) render(w http.ResponseWriter, r *http.Request, load func([]byte) (texdoc.Manifest, error)) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		s.fail(w, err)
		return
	}

	key := cacheKey(r, body)
	if out, ok := s.cache.Get(key); ok {
		writeDocument(w, out, "HIT")
		return
	}

	m, err := load(body)
	if err != nil {
		s.fail(w, err)
		return
	}
	var buf bytes.Buffer
	var sinkOpts []texdoc.SinkOption
	if s.indentUnit != "" {
		sinkOpts = append(sinkOpts, texdoc.WithIndentUnit(s.indentUnit))
	}
	if err := m.Document(texdoc.NewWriterSink(&buf, sinkOpts...), texdoc.WithLogger(s.log)).Build(); err != nil {
		s.fail(w, err)
		return
	}

	out := buf.Bytes()
	s.cache.Add(key, out)
	writeDocument(w, out, "MISS")
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	var (
		tooLarge  *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, texdoc.ErrValidation), errors.Is(err, texdoc.ErrUnknownNode),
		errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Msg("Render failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// markdownOptions reads class, options, chapters and numbered from the
// query string.
func markdownOptions(r *http.Request) ([]goldmark.Option, error) {
	q := r.URL.Query()
	var opts []goldmark.Option

	if name := strings.TrimSpace(q.Get("class")); name != "" {
		class := texdoc.Class{Kind: texdoc.ClassKind(name)}
		if o := q.Get("options"); o != "" {
			class.Options = strings.Split(o, ",")
		}
		opts = append(opts, goldmark.WithClass(class))
	}
	for _, flag := range []struct {
		name string
		opt  goldmark.Option
	}{
		{"chapters", goldmark.WithChapters()},
		{"numbered", goldmark.WithNumbering()},
	} {
		v := q.Get(flag.name)
		if v == "" {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("query parameter %s=%q: %w", flag.name, v, texdoc.ErrValidation)
		}
		if on {
			opts = append(opts, flag.opt)
		}
	}
	return opts, nil
}

func cacheKey(r *http.Request, body []byte) string {
	sum := sha256.Sum256(body)
	return r.URL.Path + "?" + r.URL.Query().Encode() + "#" + hex.EncodeToString(sum[:])
}

func writeDocument(w http.ResponseWriter, out []byte, cache string) {
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("X-Cache", cache)
	w.Write(out)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
