package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/gallery/repository"
	"brickworks_backend/internal/gallery/transport"
	"brickworks_backend/internal/storage"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/sanitize"
)

const (
	// TypeImage and TypeVideo are the accepted gallery media types.
	TypeImage = "image"
	TypeVideo = "video"
)

// Service provides business logic for the media gallery.
type Service struct {
	repo   repository.Repository
	store  storage.Service
	bucket string
	bus    events.Bus
	log    *logger.Logger
}

// New creates a new gallery service. store may be nil when object storage is
// not configured; uploads are rejected in that case.
func New(repo repository.Repository, store storage.Service, bucket string, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, store: store, bucket: bucket, bus: bus, log: log}
}

// List returns all gallery items, newest first.
func (s *Service) List(ctx context.Context) ([]transport.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		results = append(results, toResponse(item))
	}
	return results, nil
}

// Upload stores a media file in object storage and records the gallery item.
// The declared type must match the uploaded content type.
func (s *Service) Upload(ctx context.Context, mediaType string, title, description *string, file multipart.File, header *multipart.FileHeader) (transport.ItemResponse, error) {
	if s.store == nil {
		return transport.ItemResponse{}, apperr.Internal("media storage is not configured")
	}

	mediaType = strings.TrimSpace(mediaType)
	if mediaType != TypeImage && mediaType != TypeVideo {
		return transport.ItemResponse{}, apperr.Validation(`invalid media type, must be "image" or "video"`)
	}

	contentType := header.Header.Get("Content-Type")
	switch mediaType {
	case TypeImage:
		if !storage.IsImageContentType(contentType) {
			return transport.ItemResponse{}, apperr.Validation("file is not a supported image format")
		}
	case TypeVideo:
		if !storage.IsVideoContentType(contentType) {
			return transport.ItemResponse{}, apperr.Validation("file is not a supported video format")
		}
	}

	fileKey, err := s.store.UploadFile(ctx, s.bucket, mediaType+"s", header.Filename, contentType, file, header.Size)
	if err != nil {
		return transport.ItemResponse{}, err
	}

	item, err := s.repo.Create(ctx, repository.CreateParams{
		Type:        mediaType,
		Title:       sanitize.TextPtr(title),
		Description: sanitize.TextPtr(description),
		MediaURL:    s.store.PublicURL(s.bucket, fileKey),
		FileKey:     fileKey,
	})
	if err != nil {
		// The object is already stored; remove it so it does not leak.
		if delErr := s.store.DeleteObject(ctx, s.bucket, fileKey); delErr != nil {
			s.log.Error("failed to clean up orphaned gallery object", "fileKey", fileKey, "error", delErr)
		}
		return transport.ItemResponse{}, err
	}

	s.publishChange(ctx, item.ID, "uploaded")
	s.log.Info("gallery media uploaded", "itemId", item.ID, "type", item.Type, "fileKey", fileKey)

	return toResponse(item), nil
}

// Update applies metadata edits to a gallery item.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateItemRequest) (transport.ItemResponse, error) {
	item, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:          id,
		Title:       sanitize.TextPtr(req.Title),
		Description: sanitize.TextPtr(req.Description),
	})
	if err != nil {
		return transport.ItemResponse{}, err
	}

	s.publishChange(ctx, item.ID, "updated")
	return toResponse(item), nil
}

// Delete removes a gallery item and, best-effort, its stored object.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (transport.ItemResponse, error) {
	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return transport.ItemResponse{}, err
	}

	if s.store != nil {
		if err := s.store.DeleteObject(ctx, s.bucket, item.FileKey); err != nil {
			s.log.Error("failed to delete gallery object", "fileKey", item.FileKey, "error", err)
		}
	}

	s.publishChange(ctx, item.ID, "deleted")
	s.log.Info("gallery item deleted", "itemId", item.ID)

	return toResponse(item), nil
}

func (s *Service) publishChange(ctx context.Context, itemID uuid.UUID, change string) {
	s.bus.Publish(ctx, events.GalleryChanged{
		BaseEvent: events.NewBaseEvent(),
		ItemID:    itemID,
		Change:    change,
	})
}

func toResponse(item repository.Item) transport.ItemResponse {
	return transport.ItemResponse{
		ID:          item.ID,
		Type:        item.Type,
		Title:       item.Title,
		Description: item.Description,
		MediaURL:    item.MediaURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
