package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/google/uuid"

	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/catalog/repository"
	"brickworks_backend/internal/catalog/transport"
	"brickworks_backend/internal/events"
	"brickworks_backend/internal/storage"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/sanitize"
)

const (
	archivedEditMessage   = "archived product cannot be edited, restore it first"
	archivedToggleMessage = "archived product cannot be activated, restore it first"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Service provides business logic for the product catalog.
type Service struct {
	repo        repository.Repository
	store       storage.Service
	imageBucket string
	audit       *activitylog.Service
	bus         events.Bus
	log         *logger.Logger
}

// New creates a new catalog service. store may be nil when object storage is
// not configured; image uploads are rejected in that case.
func New(repo repository.Repository, store storage.Service, imageBucket string, audit *activitylog.Service, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		imageBucket: imageBucket,
		audit:       audit,
		bus:         bus,
		log:         log,
	}
}

// Slugify derives a URL slug from a product name: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, edges trimmed.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ListPublic returns the storefront projection of active products.
func (s *Service) ListPublic(ctx context.Context) ([]transport.PublicProductResponse, error) {
	products, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]transport.PublicProductResponse, 0, len(products))
	for _, p := range products {
		results = append(results, transport.PublicProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			Slug:            p.Slug,
			Description:     p.Description,
			ImageURL:        p.ImageURL,
			Type:            p.Type,
			PricePer1000:    p.PricePer1000,
			PricePerTrolley: p.PricePerTrolley,
			UsageTags:       p.UsageTags,
			QualityGrade:    p.QualityGrade,
			Availability:    p.Availability,
		})
	}
	return results, nil
}

// ListAdmin returns all products for the admin portal.
func (s *Service) ListAdmin(ctx context.Context, includeArchived bool) ([]transport.ProductResponse, error) {
	products, err := s.repo.ListAdmin(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	results := make([]transport.ProductResponse, 0, len(products))
	for _, p := range products {
		results = append(results, toResponse(p))
	}
	return results, nil
}

// Get retrieves a single product by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.ProductResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toResponse(p), nil
}

// Create adds a new catalog entry. The slug is derived from the name when
// not provided; a duplicate slug is rejected.
func (s *Service) Create(ctx context.Context, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	name := strings.TrimSpace(sanitize.Text(req.Name))

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return transport.ProductResponse{}, apperr.Validation("product slug could not be derived from the name")
	}

	if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
		return transport.ProductResponse{}, apperr.Validation("product with this slug already exists")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return transport.ProductResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := s.repo.Create(ctx, repository.CreateParams{
		Name:            name,
		Slug:            slug,
		Description:     sanitize.TextPtr(req.Description),
		Type:            strings.TrimSpace(req.Type),
		PricePer1000:    *req.PricePer1000,
		PricePerTrolley: *req.PricePerTrolley,
		UsageTags:       req.UsageTags,
		QualityGrade:    req.QualityGrade,
		IsActive:        isActive,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.publishChange(ctx, p.ID, "created")
	s.log.Info("product created", "productId", p.ID, "slug", p.Slug)

	return toResponse(p), nil
}

// Update applies partial edits. Archived products reject all edits until
// restored. A price change appends an audit entry with before/after values.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest, actor activitylog.Actor) (transport.ProductResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if existing.IsArchived {
		return transport.ProductResponse{}, apperr.Validation(archivedEditMessage)
	}

	var slug *string
	if req.Slug != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Slug))
		if normalized != "" && normalized != existing.Slug {
			if _, err := s.repo.GetBySlug(ctx, normalized); err == nil {
				return transport.ProductResponse{}, apperr.Validation("product with this slug already exists")
			} else if !apperr.Is(err, apperr.KindNotFound) {
				return transport.ProductResponse{}, err
			}
			slug = &normalized
		}
	}

	if req.RemoveImage && existing.ImageKey != nil {
		s.deleteImageObject(ctx, *existing.ImageKey)
		if _, err := s.repo.SetImage(ctx, id, nil, nil); err != nil {
			return transport.ProductResponse{}, err
		}
	}

	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(sanitize.Text(*req.Name))
		name = &trimmed
	}

	p, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:              id,
		Name:            name,
		Slug:            slug,
		Description:     sanitize.TextPtr(req.Description),
		Type:            req.Type,
		PricePer1000:    req.PricePer1000,
		PricePerTrolley: req.PricePerTrolley,
		UsageTags:       req.UsageTags,
		QualityGrade:    req.QualityGrade,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.recordPriceChange(ctx, existing, p, actor)
	s.publishChange(ctx, p.ID, "updated")

	return toResponse(p), nil
}

// ToggleActive flips the active flag, keeping availability in sync.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (transport.ProductResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if existing.IsArchived {
		return transport.ProductResponse{}, apperr.Validation(archivedToggleMessage)
	}

	p, err := s.repo.SetActive(ctx, id, !existing.IsActive)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.publishChange(ctx, p.ID, "toggled")
	s.log.Info("product active toggled", "productId", p.ID, "isActive", p.IsActive)

	return toResponse(p), nil
}

// Archive soft-deletes the product and records an audit entry.
func (s *Service) Archive(ctx context.Context, id uuid.UUID, actor activitylog.Actor, actorID uuid.UUID) (transport.ProductResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if existing.IsArchived {
		return transport.ProductResponse{}, apperr.Validation("product is already archived")
	}

	p, err := s.repo.Archive(ctx, id, actorID)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.audit.Record(ctx, "product_archived", "product", p.ID.String(),
		"Product archived", actor, map[string]interface{}{"productName": p.Name})
	s.publishChange(ctx, p.ID, "archived")
	s.log.Info("product archived", "productId", p.ID)

	return toResponse(p), nil
}

// Restore reverses an archive. The product remains inactive until toggled.
func (s *Service) Restore(ctx context.Context, id uuid.UUID, actor activitylog.Actor) (transport.ProductResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if !existing.IsArchived {
		return transport.ProductResponse{}, apperr.Validation("product is not archived")
	}

	p, err := s.repo.Restore(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.audit.Record(ctx, "product_restored", "product", p.ID.String(),
		"Product restored", actor, map[string]interface{}{"productName": p.Name})
	s.publishChange(ctx, p.ID, "restored")
	s.log.Info("product restored", "productId", p.ID)

	return toResponse(p), nil
}

// UpdatePricing is the legacy pricing-only endpoint. A changed price appends
// a before/after audit entry.
func (s *Service) UpdatePricing(ctx context.Context, id uuid.UUID, req transport.UpdatePricingRequest, actor activitylog.Actor) (transport.ProductResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	p, err := s.repo.UpdatePricing(ctx, repository.PricingParams{
		ID:              id,
		PricePer1000:    *req.PricePer1000,
		PricePerTrolley: *req.PricePerTrolley,
		Availability:    req.Availability,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.recordPriceChange(ctx, existing, p, actor)
	s.publishChange(ctx, p.ID, "updated")

	return toResponse(p), nil
}

// UploadImage stores a new product image, replacing any previous object.
func (s *Service) UploadImage(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (transport.ProductResponse, error) {
	if s.store == nil {
		return transport.ProductResponse{}, apperr.Internal("media storage is not configured")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if existing.IsArchived {
		return transport.ProductResponse{}, apperr.Validation(archivedEditMessage)
	}

	contentType := header.Header.Get("Content-Type")
	if !storage.IsImageContentType(contentType) {
		return transport.ProductResponse{}, apperr.Validation("product image must be an image file")
	}

	fileKey, err := s.store.UploadFile(ctx, s.imageBucket, "products", header.Filename, contentType, file, header.Size)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	if existing.ImageKey != nil {
		s.deleteImageObject(ctx, *existing.ImageKey)
	}

	imageURL := s.store.PublicURL(s.imageBucket, fileKey)
	p, err := s.repo.SetImage(ctx, id, &imageURL, &fileKey)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.publishChange(ctx, p.ID, "updated")
	s.log.Info("product image uploaded", "productId", p.ID, "fileKey", fileKey)

	return toResponse(p), nil
}

// CountAll returns the total number of products.
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

// CountAvailable returns the number of products currently marked available.
func (s *Service) CountAvailable(ctx context.Context) (int64, error) {
	return s.repo.CountAvailable(ctx)
}

// SeedDefaults creates the standard brick catalog when the table is empty.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count products for seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []repository.CreateParams{
		{
			Name: "First Class Bricks", Slug: "first-class-bricks",
			Type: "Avval", PricePer1000: 9000, PricePerTrolley: 27000,
			UsageTags: []string{"House", "Boundary"}, QualityGrade: "First", IsActive: true,
		},
		{
			Name: "Second Class Bricks", Slug: "second-class-bricks",
			Type: "Second", PricePer1000: 7000, PricePerTrolley: 21000,
			UsageTags: []string{"Boundary", "Filling"}, QualityGrade: "Second", IsActive: true,
		},
		{
			Name: "Rora Bricks", Slug: "rora-bricks",
			Type: "Rora", PricePer1000: 4000, PricePerTrolley: 12000,
			UsageTags: []string{"Filling"}, QualityGrade: "Rora", IsActive: true,
		},
	}

	for _, params := range defaults {
		if _, err := s.repo.Create(ctx, params); err != nil {
			return fmt.Errorf("seed product %s: %w", params.Slug, err)
		}
	}

	s.log.Info("default products seeded", "count", len(defaults))
	return nil
}

func (s *Service) recordPriceChange(ctx context.Context, before, after repository.Product, actor activitylog.Actor) {
	if before.PricePer1000 == after.PricePer1000 && before.PricePerTrolley == after.PricePerTrolley {
		return
	}

	s.audit.Record(ctx, "price_change", "product", after.ID.String(), "Price updated", actor,
		map[string]interface{}{
			"productName": after.Name,
			"previous": map[string]float64{
				"pricePer1000":    before.PricePer1000,
				"pricePerTrolley": before.PricePerTrolley,
			},
			"next": map[string]float64{
				"pricePer1000":    after.PricePer1000,
				"pricePerTrolley": after.PricePerTrolley,
			},
		})

	s.bus.Publish(ctx, events.PriceChanged{
		BaseEvent:       events.NewBaseEvent(),
		ProductID:       after.ID,
		OldPricePer1000: before.PricePer1000,
		NewPricePer1000: after.PricePer1000,
		ActorName:       actor.Name,
	})
}

func (s *Service) publishChange(ctx context.Context, productID uuid.UUID, change string) {
	s.bus.Publish(ctx, events.ProductChanged{
		BaseEvent: events.NewBaseEvent(),
		ProductID: productID,
		Change:    change,
	})
}

// deleteImageObject removes a stored image, logging failures. Object cleanup
// is best-effort: the database stays authoritative.
func (s *Service) deleteImageObject(ctx context.Context, fileKey string) {
	if s.store == nil {
		return
	}
	if err := s.store.DeleteObject(ctx, s.imageBucket, fileKey); err != nil {
		s.log.Error("failed to delete product image object", "fileKey", fileKey, "error", err)
	}
}

func toResponse(p repository.Product) transport.ProductResponse {
	return transport.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		Type:            p.Type,
		PricePer1000:    p.PricePer1000,
		PricePerTrolley: p.PricePerTrolley,
		UsageTags:       p.UsageTags,
		QualityGrade:    p.QualityGrade,
		IsActive:        p.IsActive,
		Availability:    p.Availability,
		IsArchived:      p.IsArchived,
		ArchivedAt:      p.ArchivedAt,
		ArchivedBy:      p.ArchivedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
