package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

// presignedURLTTL is how long generated download URLs remain valid.
const presignedURLTTL = 15 * time.Minute

// MinIOService implements Service using a MinIO (S3-compatible) backend.
type MinIOService struct {
	client        *minio.Client
	maxFileSize   int64
	publicBaseURL string
	useSSL        bool
	endpoint      string
	log           *logger.Logger
}

// NewMinIOService creates a storage service backed by MinIO.
func NewMinIOService(cfg config.MinIOConfig, log *logger.Logger) (*MinIOService, error) {
	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinIOService{
		client:        client,
		maxFileSize:   cfg.GetMinIOMaxFileSize(),
		publicBaseURL: strings.TrimRight(cfg.GetMinIOPublicBaseURL(), "/"),
		useSSL:        cfg.GetMinIOUseSSL(),
		endpoint:      cfg.GetMinIOEndpoint(),
		log:           log,
	}, nil
}

// UploadFile streams the file into the bucket under a unique key and returns
// the key.
func (s *MinIOService) UploadFile(ctx context.Context, bucket, folder, fileName, contentType string, reader io.Reader, size int64) (string, error) {
	if err := s.ValidateContentType(contentType); err != nil {
		return "", err
	}
	if err := s.ValidateFileSize(size); err != nil {
		return "", err
	}

	fileKey := buildFileKey(folder, fileName)

	_, err := s.client.PutObject(ctx, bucket, fileKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload object %s/%s: %w", bucket, fileKey, err)
	}

	s.log.Info("file uploaded", "bucket", bucket, "fileKey", fileKey, "size", size)
	return fileKey, nil
}

// GenerateDownloadURL creates a presigned GET URL for the object.
func (s *MinIOService) GenerateDownloadURL(ctx context.Context, bucket, fileKey string) (*PresignedURL, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, fileKey, presignedURLTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("presign download for %s/%s: %w", bucket, fileKey, err)
	}

	return &PresignedURL{
		URL:       u.String(),
		FileKey:   fileKey,
		ExpiresAt: time.Now().Add(presignedURLTTL),
	}, nil
}

// PublicURL returns a stable URL for an object. When a public base URL is
// configured it is used, otherwise the URL points at the MinIO endpoint
// directly (path-style).
func (s *MinIOService) PublicURL(bucket, fileKey string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, fileKey)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, fileKey)
}

// DeleteObject removes the object from the bucket.
func (s *MinIOService) DeleteObject(ctx context.Context, bucket, fileKey string) error {
	if err := s.client.RemoveObject(ctx, bucket, fileKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %s/%s: %w", bucket, fileKey, err)
	}
	s.log.Info("file deleted", "bucket", bucket, "fileKey", fileKey)
	return nil
}

// EnsureBucketExists creates the bucket when it is missing.
func (s *MinIOService) EnsureBucketExists(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	s.log.Info("bucket created", "bucket", bucket)
	return nil
}

// GetMaxFileSize returns the maximum allowed file size in bytes.
func (s *MinIOService) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// buildFileKey produces a unique object key: folder/base_xxxxxxxx.ext.
func buildFileKey(folder, fileName string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(filepath.Base(fileName), ext)
	base = strings.ReplaceAll(base, " ", "_")

	key := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)
	if folder != "" {
		key = strings.TrimRight(folder, "/") + "/" + key
	}
	return key
}

// Compile-time check that MinIOService implements Service
var _ Service = (*MinIOService)(nil)
