package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio-backend/internal/shared/storage/object"
	"portfolio-backend/internal/shared/telemetry"
)

// Options configures the MinIO-compatible store.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
}

// Store implements ObjectStore against any S3-compatible endpoint reachable
// through minio-go, such as MinIO or Supabase storage.
type Store struct {
	client *miniogo.Client
	bucket string
}

// New connects to the endpoint and makes sure the bucket exists.
func New(ctx context.Context, opts Options) (object.ObjectStore, error) {
	if strings.TrimSpace(opts.Endpoint) == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	client, err := miniogo.New(opts.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &Store{client: client, bucket: opts.Bucket}
	if err := s.ensureBucket(ctx, opts.Region); err != nil {
		return nil, err
	}
	telemetry.Info("object_store.minio.ready", map[string]any{"endpoint": opts.Endpoint, "bucket": opts.Bucket})
	return s, nil
}

func (s *Store) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, miniogo.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	telemetry.Info("object_store.minio.bucket_created", map[string]any{"bucket": s.bucket})
	return nil
}

// Open fetches an object. GetObject is lazy, so the object is stat'ed first to
// surface a missing key as object.ErrNotFound.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := strings.TrimLeft(storageKey, "/")
	obj, err := s.client.GetObject(ctx, s.bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, mapError(err, s.bucket, key)
	}
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, mapError(err, s.bucket, key)
	}
	return obj, nil
}

// SaveWithKey uploads the reader under storageKey with an upsert.
func (s *Store) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key := strings.TrimLeft(storageKey, "/")
	info, err := s.client.PutObject(ctx, s.bucket, key, r, -1, miniogo.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "no-cache",
	})
	if err != nil {
		return 0, fmt.Errorf("minio put object bucket=%s key=%s: %w", s.bucket, key, err)
	}
	return info.Size, nil
}

func mapError(err error, bucket, key string) error {
	if isNotFound(err) {
		return object.ErrNotFound
	}
	return fmt.Errorf("minio get object bucket=%s key=%s: %w", bucket, key, err)
}

func isNotFound(err error) bool {
	switch miniogo.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return true
	default:
		return false
	}
}

var _ object.ObjectStore = (*Store)(nil)
