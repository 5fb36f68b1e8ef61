package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/texdoc"
	"github.com/fwojciec/texdoc/config"
	"github.com/fwojciec/texdoc/docx"
	"github.com/fwojciec/texdoc/fs"
	"github.com/fwojciec/texdoc/goldmark"
	texjson "github.com/fwojciec/texdoc/json"
	"github.com/fwojciec/texdoc/logging"
	"github.com/fwojciec/texdoc/minio"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// buildOptions are the flags shared by build and batch.
type buildOptions struct {
	preamble string
	out      string
	chapters bool
	numbered bool
	upload   bool
}

func (o *buildOptions) register(cmd *cobra.Command, outUsage string) {
	f := cmd.Flags()
	f.StringVar(&o.preamble, "preamble", "", "Preamble file (.yaml, .yml or .toml)")
	f.StringVarP(&o.out, "out", "o", "", outUsage)
	f.BoolVar(&o.chapters, "chapters", false, "Map top-level headings to chapters")
	f.BoolVar(&o.numbered, "numbered", false, "Emit numbered sections")
	f.BoolVar(&o.upload, "upload", false, "Upload to S3-compatible storage instead of writing files")
}

func (a *app) newBuildCmd() *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build a .tex file from a .json, .md or .docx input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			out := opts.out
			if out == "" {
				out = fs.OutputPath(input, "")
			}
			return a.build(cmd.Context(), input, out, objectKey(filepath.Base(out)), opts)
		},
	}
	opts.register(cmd, "Output file (default: input name with .tex extension)")
	return cmd
}

func (a *app) newBatchCmd() *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "batch <dir> <glob>",
		Short: "Build every input under dir matching glob (** matches recursively)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, pattern := args[0], args[1]
			matches, err := fs.Glob(root, pattern)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(a.out, a.styles.Muted.Render("no matches for "+pattern))
				return nil
			}

			var failed int
			for _, m := range matches {
				input := filepath.Join(root, m)
				out := fs.OutputPath(input, "")
				if opts.out != "" {
					out = fs.OutputPath(filepath.Join(opts.out, m), "")
				}
				if err := a.build(cmd.Context(), input, out, objectKey(m), opts); err != nil {
					failed++
					fmt.Fprintf(a.out, "%s %s: %v\n", a.styles.Error.Render("✗"), input, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(matches))
			}
			return nil
		},
	}
	opts.register(cmd, "Output directory mirroring the input tree (default: next to each input)")
	return cmd
}

// build loads input, applies the preamble and writes the built document to
// out, or uploads it under key with --upload.
func (a *app) build(ctx context.Context, input, out, key string, opts buildOptions) error {
	logger := logging.GetLogger("build").With().Str("input", input).Logger()

	m, err := loadManifest(input, opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	cfg, err := resolvePreamble(m.Config, opts.preamble)
	if err != nil {
		return err
	}
	m.Config = cfg

	if opts.upload {
		return a.upload(ctx, m, key)
	}

	f, err := fs.Create(out)
	if err != nil {
		return err
	}
	if err := m.Document(f, texdoc.WithLogger(logger)).Build(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s %s\n",
		a.styles.Success.Render("✓"),
		a.styles.Accent.Render(out),
		a.styles.Muted.Render("("+humanize.Bytes(uint64(f.Written()))+")"))
	return nil
}

func (a *app) upload(ctx context.Context, m texdoc.Manifest, key string) error {
	_ = godotenv.Load()
	sink, err := minio.NewSink(s3ConfigFromEnv(), minio.WithLogger(logging.GetLogger("minio")))
	if err != nil {
		return err
	}
	if err := m.Document(sink).Build(); err != nil {
		return err
	}
	size, err := sink.Flush(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s s3://%s/%s %s\n",
		a.styles.Success.Render("✓"),
		sink.Bucket(), key,
		a.styles.Muted.Render("("+humanize.Bytes(uint64(size))+")"))
	return nil
}

// objectKey returns the upload key for an input path relative to the
// build root: the extension replaced by .tex, with slash separators.
func objectKey(rel string) string {
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)) + ".tex")
}

// loadManifest imports input according to its extension.
func loadManifest(input string, opts buildOptions) (texdoc.Manifest, error) {
	switch ext := strings.ToLower(filepath.Ext(input)); ext {
	case ".json":
		return texjson.Load(input)
	case ".md", ".markdown":
		data, err := os.ReadFile(input)
		if err != nil {
			return texdoc.Manifest{}, fmt.Errorf("read file: %w", err)
		}
		var mdOpts []goldmark.Option
		if opts.chapters {
			mdOpts = append(mdOpts, goldmark.WithChapters(), goldmark.WithClass(texdoc.Class{Kind: texdoc.ClassReport}))
		}
		if opts.numbered {
			mdOpts = append(mdOpts, goldmark.WithNumbering())
		}
		return goldmark.Import(data, mdOpts...), nil
	case ".docx":
		var docxOpts []docx.Option
		if opts.chapters {
			docxOpts = append(docxOpts, docx.WithChapters(), docx.WithClass(texdoc.Class{Kind: texdoc.ClassReport}))
		}
		if opts.numbered {
			docxOpts = append(docxOpts, docx.WithNumbering())
		}
		return docx.Load(input, docxOpts...)
	default:
		return texdoc.Manifest{}, fmt.Errorf("unsupported input format %q: %w", ext, texdoc.ErrValidation)
	}
}

// resolvePreamble merges the preamble file over base. Without an explicit
// path the per-user default is used when it exists.
func resolvePreamble(base texdoc.Config, path string) (texdoc.Config, error) {
	if path == "" {
		path = config.DefaultPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return base, base.Validate()
		}
	}
	pre, err := config.Load(path)
	if err != nil {
		return texdoc.Config{}, fmt.Errorf("load preamble %s: %w", path, err)
	}
	merged := base.Merge(pre)
	if err := merged.Validate(); err != nil {
		return texdoc.Config{}, err
	}
	return merged, nil
}
