// Package minio uploads built documents to S3-compatible object storage.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/texdoc"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// ContentType is the MIME type objects are stored with.
const ContentType = "application/x-tex"

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Sink buffers a document in memory and uploads it on Flush. The bucket is
// created on the first successful flush if it does not exist.
type Sink struct {
	*texdoc.WriterSink
	buf bytes.Buffer

	client *minio.Client
	bucket string
	region string
	log    zerolog.Logger

	mu    sync.Mutex
	ready bool
}

// Option configures a Sink.
type Option func(*Sink)

// WithLogger sets the logger used for upload diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Sink) { s.log = log }
}

// WithSinkOptions configures the indentation of the buffered document.
func WithSinkOptions(opts ...texdoc.SinkOption) Option {
	return func(s *Sink) { s.WriterSink = texdoc.NewWriterSink(&s.buf, opts...) }
}

// NewSink validates cfg and returns a sink for its bucket. No request is
// made until Flush.
func NewSink(cfg Config, opts ...Option) (*Sink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required: %w", texdoc.ErrValidation)
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required: %w", texdoc.ErrValidation)
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required: %w", texdoc.ErrValidation)
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	s := &Sink{
		client: client,
		bucket: bucket,
		region: region,
		log:    zerolog.Nop(),
	}
	s.WriterSink = texdoc.NewWriterSink(&s.buf)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Bucket returns the target bucket name.
func (s *Sink) Bucket() string { return s.bucket }

// Len returns the number of buffered bytes.
func (s *Sink) Len() int { return s.buf.Len() }

// Bytes returns the buffered document.
func (s *Sink) Bytes() []byte { return s.buf.Bytes() }

// Flush uploads the buffered document under key and returns its size.
// The buffer is kept so a failed upload can be retried.
func (s *Sink) Flush(ctx context.Context, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, fmt.Errorf("object key is required: %w", texdoc.ErrValidation)
	}
	if err := s.ensureBucket(ctx); err != nil {
		return 0, fmt.Errorf("ensure bucket: %w", err)
	}

	data := s.buf.Bytes()
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return 0, fmt.Errorf("put object: %w", err)
	}
	s.log.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int64("size", info.Size).
		Msg("Document uploaded")
	return info.Size, nil
}

// ensureBucket checks for the bucket and creates it when missing. Only a
// successful check is remembered; a failed one is repeated on the next call.
func (s *Sink) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		s.log.Debug().Str("bucket", s.bucket).Msg("Creating bucket")
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return err
		}
	}
	s.ready = true
	return nil
}

// Interface compliance check.
var _ texdoc.Sink = (*Sink)(nil)
