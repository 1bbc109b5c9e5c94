package catalogsrc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

// ObjectConfig locates a catalog document in S3-compatible storage (R2, MinIO).
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Key       string
}

// ObjectSource reads the catalog document from object storage.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
	format Format
	logger *slog.Logger
}

// NewObjectSource constructs the storage-backed source.
func NewObjectSource(cfg ObjectConfig, logger *slog.Logger) (*ObjectSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	format, err := FormatFromPath(cfg.Key)
	if err != nil {
		return nil, err
	}
	useSSL := strings.HasPrefix(strings.ToLower(cfg.Endpoint), "https")
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectSource{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
		format: format,
		logger: logger.With("component", "catalogsrc.object"),
	}, nil
}

func (s *ObjectSource) Name() string { return fmt.Sprintf("object:%s/%s", s.bucket, s.key) }

func (s *ObjectSource) Load(ctx context.Context) ([]faq.Entry, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get catalog object: %w", err)
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat catalog object: %w", err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read catalog object: %w", err)
	}
	s.logger.Debug("catalog object fetched", "etag", info.ETag, "size", info.Size)
	return Decode(data, s.format)
}

// Publish uploads entries as the catalog document, creating the bucket when missing.
func (s *ObjectSource) Publish(ctx context.Context, entries []faq.Entry) error {
	data, err := Encode(entries, s.format)
	if err != nil {
		return err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      contentType(s.format),
		DisableMultipart: true,
	})
	if err != nil {
		return fmt.Errorf("put catalog object: %w", err)
	}
	s.logger.Info("catalog object published", "entries", len(entries))
	return nil
}

func (s *ObjectSource) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	return nil
}

func contentType(format Format) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/yaml"
	}
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

var _ faq.CatalogSource = (*ObjectSource)(nil)
