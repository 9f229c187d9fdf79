package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectClient is the slice of the object storage API the bucket source
// needs. Kept narrow so tests can mock it.
type ObjectClient interface {
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// BucketSource reads reader exports that were dropped into an object storage
// bucket, keyed by object name.
type BucketSource struct {
	client  ObjectClient
	bucket  string
	timeout time.Duration
}

// NewBucketSource creates a bucket source backed by a Minio client.
func NewBucketSource(cfg Config) (*BucketSource, error) {
	// Minio expects the endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &BucketSource{
		client:  &minioClientWrapper{Client: minioClient},
		bucket:  cfg.Bucket,
		timeout: time.Duration(timeout) * time.Second,
	}, nil
}

// NewBucketSourceWithClient wires an explicit object client. Used by tests.
func NewBucketSourceWithClient(client ObjectClient, bucket string, timeout time.Duration) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, timeout: timeout}
}

// Fetch implements Source.
func (s *BucketSource) Fetch(ctx context.Context, ref string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj, err := s.client.GetObject(ctx, s.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("fetch object %s: %w", ref, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", ref, err)
	}

	return string(data), nil
}

// minioClientWrapper adapts *minio.Client to the ObjectClient interface.
type minioClientWrapper struct {
	*minio.Client
}

func (w *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}
