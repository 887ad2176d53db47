package storage

import (
	"strings"

	"brickworks_backend/platform/apperr"
)

// AllowedContentTypes lists the media types accepted for uploads.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/webm": true,
}

// ValidateContentType checks the content type against the allow list.
func (s *MinIOService) ValidateContentType(contentType string) error {
	if !AllowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))] {
		return apperr.Validation("unsupported file type")
	}
	return nil
}

// ValidateFileSize rejects empty files and files above the configured limit.
func (s *MinIOService) ValidateFileSize(sizeBytes int64) error {
	if sizeBytes <= 0 {
		return apperr.Validation("file is empty")
	}
	if sizeBytes > s.maxFileSize {
		return apperr.Validation("file exceeds the maximum allowed size")
	}
	return nil
}

// IsImageContentType reports whether the content type is an allowed image.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/") && AllowedContentTypes[strings.ToLower(contentType)]
}

// IsVideoContentType reports whether the content type is an allowed video.
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "video/") && AllowedContentTypes[strings.ToLower(contentType)]
}
