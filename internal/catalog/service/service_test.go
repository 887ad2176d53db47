package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	auditrepo "brickworks_backend/internal/activitylog/repository"
	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/catalog/repository"
	"brickworks_backend/internal/catalog/transport"
	"brickworks_backend/internal/events"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"First Class Bricks", "first-class-bricks"},
		{"First Class Bricks!!", "first-class-bricks"},
		{"  Rora  Bricks  ", "rora-bricks"},
		{"AVVAL 9000", "avval-9000"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

type fakeProductRepo struct {
	products map[uuid.UUID]repository.Product
}

func newFakeProductRepo(products ...repository.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]repository.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) ListPublic(context.Context) ([]repository.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListAdmin(context.Context, bool) ([]repository.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return repository.Product{}, apperr.NotFound("product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) GetBySlug(_ context.Context, slug string) (repository.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return repository.Product{}, apperr.NotFound("product not found")
}

func (f *fakeProductRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountAvailable(context.Context) (int64, error) {
	var count int64
	for _, p := range f.products {
		if p.Availability {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) Create(_ context.Context, params repository.CreateParams) (repository.Product, error) {
	p := repository.Product{ID: uuid.New(), Name: params.Name, Slug: params.Slug}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Update(_ context.Context, params repository.UpdateParams) (repository.Product, error) {
	p := f.products[params.ID]
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Slug != nil {
		p.Slug = *params.Slug
	}
	if params.Description != nil {
		p.Description = params.Description
	}
	if params.Type != nil {
		p.Type = *params.Type
	}
	if params.PricePer1000 != nil {
		p.PricePer1000 = *params.PricePer1000
	}
	if params.PricePerTrolley != nil {
		p.PricePerTrolley = *params.PricePerTrolley
	}
	if params.UsageTags != nil {
		p.UsageTags = params.UsageTags
	}
	if params.QualityGrade != nil {
		p.QualityGrade = *params.QualityGrade
	}
	if params.IsActive != nil {
		p.IsActive = *params.IsActive
		p.Availability = *params.IsActive
	}
	f.products[params.ID] = p
	return p, nil
}

func (f *fakeProductRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (repository.Product, error) {
	p := f.products[id]
	p.IsActive = active
	p.Availability = active
	f.products[id] = p
	return p, nil
}

func (f *fakeProductRepo) Archive(_ context.Context, id uuid.UUID, archivedBy uuid.UUID) (repository.Product, error) {
	p := f.products[id]
	p.IsArchived = true
	p.IsActive = false
	p.Availability = false
	p.ArchivedBy = &archivedBy
	f.products[id] = p
	return p, nil
}

func (f *fakeProductRepo) Restore(_ context.Context, id uuid.UUID) (repository.Product, error) {
	p := f.products[id]
	p.IsArchived = false
	p.ArchivedBy = nil
	f.products[id] = p
	return p, nil
}

func (f *fakeProductRepo) UpdatePricing(_ context.Context, params repository.PricingParams) (repository.Product, error) {
	p := f.products[params.ID]
	p.PricePer1000 = params.PricePer1000
	p.PricePerTrolley = params.PricePerTrolley
	if params.Availability != nil {
		p.Availability = *params.Availability
	}
	f.products[params.ID] = p
	return p, nil
}

func (f *fakeProductRepo) SetImage(_ context.Context, id uuid.UUID, _, _ *string) (repository.Product, error) {
	return f.products[id], nil
}

var _ repository.Repository = (*fakeProductRepo)(nil)

type fakeAuditRepo struct {
	entries []auditrepo.CreateParams
}

func (f *fakeAuditRepo) Create(_ context.Context, params auditrepo.CreateParams) error {
	f.entries = append(f.entries, params)
	return nil
}

func (f *fakeAuditRepo) List(context.Context, int) ([]auditrepo.Entry, error) {
	return nil, nil
}

var _ auditrepo.Repository = (*fakeAuditRepo)(nil)

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

var _ events.Bus = (*recordingBus)(nil)

func TestUpdateRejectsArchivedProduct(t *testing.T) {
	archived := repository.Product{
		ID:         uuid.New(),
		Name:       "First Class Bricks",
		Slug:       "first-class-bricks",
		IsArchived: true,
	}
	svc := New(newFakeProductRepo(archived), nil, "", nil, nil, logger.New("test"))

	newName := "Renamed"
	actor := activitylog.Actor{ID: uuid.NewString(), Name: "Admin", Role: "admin"}
	_, err := svc.Update(context.Background(), archived.ID, transport.UpdateProductRequest{Name: &newName}, actor)
	if err == nil {
		t.Fatal("expected archived product edit to be rejected")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestToggleActiveRejectsArchivedProduct(t *testing.T) {
	archived := repository.Product{
		ID:         uuid.New(),
		Slug:       "second-class-bricks",
		IsArchived: true,
	}
	svc := New(newFakeProductRepo(archived), nil, "", nil, nil, logger.New("test"))

	_, err := svc.ToggleActive(context.Background(), archived.ID)
	if err == nil {
		t.Fatal("expected archived product toggle to be rejected")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRecordsPriceChangeAudit(t *testing.T) {
	existing := repository.Product{
		ID:              uuid.New(),
		Name:            "First Class Bricks",
		Slug:            "first-class-bricks",
		PricePer1000:    9000,
		PricePerTrolley: 27000,
		IsActive:        true,
		Availability:    true,
	}
	auditRepo := &fakeAuditRepo{}
	bus := &recordingBus{}
	log := logger.New("test")
	svc := New(newFakeProductRepo(existing), nil, "", activitylog.New(auditRepo, log), bus, log)

	newPrice := 9500.0
	newTrolleyPrice := 28500.0
	actor := activitylog.Actor{ID: uuid.NewString(), Name: "Admin", Role: "admin"}
	resp, err := svc.Update(context.Background(), existing.ID, transport.UpdateProductRequest{
		PricePer1000:    &newPrice,
		PricePerTrolley: &newTrolleyPrice,
	}, actor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PricePer1000 != 9500 || resp.PricePerTrolley != 28500 {
		t.Fatalf("expected updated prices, got %v/%v", resp.PricePer1000, resp.PricePerTrolley)
	}

	if len(auditRepo.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(auditRepo.entries))
	}
	entry := auditRepo.entries[0]
	if entry.ActionType != "price_change" || entry.ActorName != "Admin" {
		t.Fatalf("unexpected audit entry %+v", entry)
	}
	previous, ok := entry.Metadata["previous"].(map[string]float64)
	if !ok || previous["pricePer1000"] != 9000 || previous["pricePerTrolley"] != 27000 {
		t.Fatalf("unexpected previous prices in audit metadata: %v", entry.Metadata["previous"])
	}
	next, ok := entry.Metadata["next"].(map[string]float64)
	if !ok || next["pricePer1000"] != 9500 || next["pricePerTrolley"] != 28500 {
		t.Fatalf("unexpected next prices in audit metadata: %v", entry.Metadata["next"])
	}

	if len(bus.published) != 2 {
		t.Fatalf("expected PriceChanged and ProductChanged events, got %d", len(bus.published))
	}
	priceEvent, ok := bus.published[0].(events.PriceChanged)
	if !ok || priceEvent.OldPricePer1000 != 9000 || priceEvent.NewPricePer1000 != 9500 {
		t.Fatalf("unexpected price event %+v", bus.published[0])
	}
	changeEvent, ok := bus.published[1].(events.ProductChanged)
	if !ok || changeEvent.Change != "updated" {
		t.Fatalf("unexpected change event %+v", bus.published[1])
	}
}

func TestUpdateWithoutPriceChangeSkipsAudit(t *testing.T) {
	existing := repository.Product{
		ID:              uuid.New(),
		Name:            "First Class Bricks",
		Slug:            "first-class-bricks",
		PricePer1000:    9000,
		PricePerTrolley: 27000,
	}
	auditRepo := &fakeAuditRepo{}
	log := logger.New("test")
	svc := New(newFakeProductRepo(existing), nil, "", activitylog.New(auditRepo, log), &recordingBus{}, log)

	newName := "Premium First Class Bricks"
	actor := activitylog.Actor{ID: uuid.NewString(), Name: "Admin", Role: "admin"}
	resp, err := svc.Update(context.Background(), existing.ID, transport.UpdateProductRequest{Name: &newName}, actor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != newName {
		t.Fatalf("expected renamed product, got %q", resp.Name)
	}
	if len(auditRepo.entries) != 0 {
		t.Fatalf("expected no audit entry for a name-only edit, got %d", len(auditRepo.entries))
	}
}

func TestToggleActiveSyncsAvailability(t *testing.T) {
	product := repository.Product{
		ID:           uuid.New(),
		Slug:         "rora-bricks",
		IsActive:     true,
		Availability: true,
	}
	repo := newFakeProductRepo(product)
	svc := New(repo, nil, "", nil, &recordingBus{}, logger.New("test"))

	resp, err := svc.ToggleActive(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsActive || resp.Availability {
		t.Fatalf("expected inactive and unavailable after toggle, got %+v", resp)
	}

	resp, err = svc.ToggleActive(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsActive || !resp.Availability {
		t.Fatalf("expected active and available after second toggle, got %+v", resp)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	existing := repository.Product{
		ID:   uuid.New(),
		Name: "Rora Bricks",
		Slug: "rora-bricks",
	}
	svc := New(newFakeProductRepo(existing), nil, "", nil, nil, logger.New("test"))

	price := 4000.0
	trolleyPrice := 12000.0
	_, err := svc.Create(context.Background(), transport.CreateProductRequest{
		Name:            "Rora   Bricks",
		Type:            "Rora",
		PricePer1000:    &price,
		PricePerTrolley: &trolleyPrice,
		QualityGrade:    "Rora",
	})
	if err == nil {
		t.Fatal("expected duplicate slug to be rejected")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
