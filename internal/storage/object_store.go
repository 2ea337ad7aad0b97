package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"storefront/api/internal/config"
)

const presignExpiry = 15 * time.Minute

// ObjectStore holds item images. Clients upload directly via presigned PUT
// URLs; the stored item keeps the public URL only.
type ObjectStore struct {
	client *minio.Client
	cfg    config.StorageConfig
}

func NewObjectStore(cfg config.StorageConfig) (*ObjectStore, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &ObjectStore{
		client: client,
		cfg:    cfg,
	}, nil
}

func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	bucket := s.cfg.BucketItems
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("bucket exists %s: %w", bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

// PresignItemUpload returns a short-lived PUT URL for the object and the
// stable public URL the item should store.
func (s *ObjectStore) PresignItemUpload(ctx context.Context, objectKey string) (uploadURL string, publicURL string, err error) {
	signed, err := s.client.PresignedPutObject(ctx, s.cfg.BucketItems, objectKey, presignExpiry)
	if err != nil {
		return "", "", fmt.Errorf("presign upload: %w", err)
	}

	base := s.cfg.PublicURL
	if base == "" {
		base = s.client.EndpointURL().String()
	}
	public := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), s.cfg.BucketItems, objectKey)

	return signed.String(), public, nil
}
