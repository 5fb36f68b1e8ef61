package main

import (
	"os"
	"os/signal"
	"strconv"
	"strings"

	texhttp "github.com/fwojciec/texdoc/http"
	"github.com/fwojciec/texdoc/logging"
	"github.com/fwojciec/texdoc/minio"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func (a *app) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /render and /markdown over HTTP",
		Long: `Serve document rendering over HTTP.

Environment (also read from .env):
  TEXDOC_ADDR        listen address (default :8080)
  TEXDOC_TOKEN       bearer token required on render routes
  TEXDOC_CACHE_SIZE  rendered documents kept in memory (default 256)
  TEXDOC_INDENT      indentation unit (default tab)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			if addr == "" {
				addr = envOr("TEXDOC_ADDR", ":8080")
			}

			opts := []texhttp.Option{
				texhttp.WithLogger(logging.GetLogger("http")),
				texhttp.WithCacheSize(envInt("TEXDOC_CACHE_SIZE", texhttp.DefaultCacheSize)),
			}
			if token := os.Getenv("TEXDOC_TOKEN"); token != "" {
				opts = append(opts, texhttp.WithToken(token))
			}
			if unit := os.Getenv("TEXDOC_INDENT"); unit != "" {
				opts = append(opts, texhttp.WithIndentUnit(unit))
			}
			srv, err := texhttp.NewServer(opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides TEXDOC_ADDR)")
	return cmd
}

// s3ConfigFromEnv reads object storage settings for --upload.
func s3ConfigFromEnv() minio.Config {
	return minio.Config{
		Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		Region:    envOr("S3_REGION", minio.DefaultRegion),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Bucket:    envOr("S3_BUCKET", "texdoc"),
		UseSSL:    envBool("S3_USE_SSL", false),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}
