package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/orders/domain"
	"brickworks_backend/internal/orders/repository"
	"brickworks_backend/internal/orders/transport"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/sanitize"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// StockReader reports current stock for the advisory check. A missing
// snapshot reads as zero.
type StockReader interface {
	AvailableBricks(ctx context.Context) int64
}

// Service provides business logic for order intake and admin management.
type Service struct {
	repo  repository.Repository
	stock StockReader
	cfg   config.BusinessConfig
	bus   events.Bus
	log   *logger.Logger
}

// New creates a new orders service.
func New(repo repository.Repository, stock StockReader, cfg config.BusinessConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, stock: stock, cfg: cfg, bus: bus, log: log}
}

// Submit runs the order intake pipeline: normalize quantity, classify the
// lead, check stock (advisory), estimate price, build the WhatsApp link, and
// persist everything atomically.
func (s *Service) Submit(ctx context.Context, req transport.SubmitOrderRequest) (transport.SubmitOrderResponse, error) {
	name := strings.TrimSpace(sanitize.Text(req.Name))
	phoneNumber := strings.TrimSpace(req.PhoneNumber)
	deliveryArea := strings.TrimSpace(sanitize.Text(req.DeliveryArea))

	whatsapp := strings.TrimSpace(req.WhatsAppNumber)
	if req.IsWhatsAppSame {
		whatsapp = phoneNumber
	}
	if whatsapp == "" {
		return transport.SubmitOrderResponse{}, apperr.Validation("valid WhatsApp number is required")
	}

	requiredDate, err := parseDeliveryDate(req.RequiredDeliveryDate)
	if err != nil {
		return transport.SubmitOrderResponse{}, err
	}

	quantityBricks, quantityTrolleys, err := domain.NormalizeQuantity(
		req.QuantityUnit, req.QuantityValue, s.cfg.GetBricksPerTrolley())
	if err != nil {
		return transport.SubmitOrderResponse{}, err
	}

	leadPriority := domain.ClassifyPriority(req.BrickType, quantityBricks, req.Urgency)

	availableBricks := s.stock.AvailableBricks(ctx)
	limited := quantityBricks > availableBricks

	estimateMin, estimateMax, err := domain.Estimate(req.BrickType, quantityBricks)
	if err != nil {
		return transport.SubmitOrderResponse{}, err
	}

	whatsappURL := domain.AdminWhatsAppURL(domain.WhatsAppParams{
		AdminNumber:    s.cfg.GetWhatsAppNumber(),
		CustomerName:   name,
		PhoneNumber:    phoneNumber,
		BrickType:      req.BrickType,
		QuantityBricks: quantityBricks,
		DeliveryArea:   deliveryArea,
		LeadPriority:   leadPriority,
	})

	var landmark *string
	if req.Landmark != nil {
		if trimmed := strings.TrimSpace(sanitize.Text(*req.Landmark)); trimmed != "" {
			landmark = &trimmed
		}
	}

	order, err := s.repo.Create(ctx, repository.CreateParams{
		Name:                 name,
		PhoneNumber:          phoneNumber,
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		WhatsAppNumber:       whatsapp,
		IsWhatsAppSame:       req.IsWhatsAppSame,
		BrickType:            req.BrickType,
		UsagePurpose:         req.UsagePurpose,
		QuantityUnit:         req.QuantityUnit,
		QuantityBricks:       quantityBricks,
		QuantityTrolleys:     quantityTrolleys,
		DeliveryArea:         deliveryArea,
		Landmark:             landmark,
		DistanceRange:        req.DistanceRange,
		RequiredDeliveryDate: requiredDate,
		Urgency:              req.Urgency,
		LeadPriority:         leadPriority,
		WhatsAppMessageURL:   whatsappURL,
		TotalPrice:           float64(estimateMin),
	})
	if err != nil {
		return transport.SubmitOrderResponse{}, apperr.Wrap(apperr.KindInternal, "failed to save order", err)
	}

	s.bus.Publish(ctx, events.OrderCreated{
		BaseEvent:      events.NewBaseEvent(),
		OrderID:        order.ID,
		CustomerName:   order.Name,
		Phone:          order.PhoneNumber,
		BrickType:      order.BrickType,
		QuantityBricks: order.QuantityBricks,
		DeliveryArea:   order.DeliveryArea,
		LeadPriority:   order.LeadPriority,
		WhatsAppURL:    whatsappURL,
	})

	s.log.Info("order submitted",
		"orderId", order.ID, "brickType", order.BrickType,
		"quantityBricks", order.QuantityBricks, "leadPriority", order.LeadPriority,
		"stockLimited", limited)

	return transport.SubmitOrderResponse{
		Order:        toResponse(order),
		LeadPriority: leadPriority,
		Stock: transport.StockAdvisory{
			AvailableBricks: availableBricks,
			RequestedBricks: quantityBricks,
			Limited:         limited,
		},
		Estimate:         transport.PriceEstimate{Min: estimateMin, Max: estimateMax},
		AdminWhatsAppURL: whatsappURL,
	}, nil
}

// List retrieves the newest orders. Limit is clamped to 1..500, default 100.
func (s *Service) List(ctx context.Context, limit int) ([]transport.OrderResponse, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	orders, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]transport.OrderResponse, 0, len(orders))
	for _, o := range orders {
		results = append(results, toResponse(o))
	}
	return results, nil
}

// Update applies admin edits (status, notes). Lead priority is never
// recomputed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateOrderRequest, actorID uuid.UUID) (transport.OrderResponse, error) {
	var notes *string
	if req.Notes != nil {
		trimmed := strings.TrimSpace(sanitize.Text(*req.Notes))
		notes = &trimmed
	}

	var oldStatus string
	if req.Status != nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return transport.OrderResponse{}, err
		}
		oldStatus = existing.Status
	}

	order, err := s.repo.Update(ctx, repository.UpdateParams{ID: id, Status: req.Status, Notes: notes})
	if err != nil {
		return transport.OrderResponse{}, err
	}

	if req.Status != nil && oldStatus != order.Status {
		s.bus.Publish(ctx, events.OrderStatusChanged{
			BaseEvent: events.NewBaseEvent(),
			OrderID:   order.ID,
			OldStatus: oldStatus,
			NewStatus: order.Status,
			ActorID:   actorID,
		})
	}

	return toResponse(order), nil
}

// Delete removes an order and returns the deleted record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (transport.OrderResponse, error) {
	order, err := s.repo.Delete(ctx, id)
	if err != nil {
		return transport.OrderResponse{}, err
	}

	s.log.Info("order deleted", "orderId", order.ID)
	return toResponse(order), nil
}

func parseDeliveryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperr.Validation("valid required delivery date is required")
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("valid required delivery date is required")
}

func toResponse(o repository.Order) transport.OrderResponse {
	return transport.OrderResponse{
		ID:                   o.ID,
		Name:                 o.Name,
		PhoneNumber:          o.PhoneNumber,
		Email:                o.Email,
		WhatsAppNumber:       o.WhatsAppNumber,
		IsWhatsAppSame:       o.IsWhatsAppSame,
		BrickType:            o.BrickType,
		UsagePurpose:         o.UsagePurpose,
		QuantityUnit:         o.QuantityUnit,
		QuantityBricks:       o.QuantityBricks,
		QuantityTrolleys:     o.QuantityTrolleys,
		Quantity:             o.Quantity,
		DeliveryArea:         o.DeliveryArea,
		Landmark:             o.Landmark,
		DistanceRange:        o.DistanceRange,
		RequiredDeliveryDate: o.RequiredDeliveryDate.Format("2006-01-02"),
		Urgency:              o.Urgency,
		LeadPriority:         o.LeadPriority,
		Notes:                o.Notes,
		Status:               o.Status,
		WhatsAppMessageURL:   o.WhatsAppMessageURL,
		FullName:             o.FullName,
		MobileNumber:         o.MobileNumber,
		CustomerName:         o.CustomerName,
		Phone:                o.Phone,
		Address:              o.Address,
		Product:              o.Product,
		TotalPrice:           o.TotalPrice,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
