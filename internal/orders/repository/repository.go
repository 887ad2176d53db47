package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/platform/apperr"
)

const orderNotFoundMessage = "order not found"

const orderColumns = `
	id, name, phone_number, email, whatsapp_number, is_whatsapp_same,
	brick_type, usage_purpose, quantity_unit, quantity_bricks, quantity_trolleys, quantity,
	delivery_area, landmark, distance_range, required_delivery_date, urgency,
	lead_priority, notes, status, whatsapp_message_url,
	full_name, mobile_number, customer_name, phone, address, product, total_price,
	created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new orders repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts an order with its raw, derived, and legacy mirror fields in
// a single statement.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Order, error) {
	query := `
		INSERT INTO orders (
			name, phone_number, email, whatsapp_number, is_whatsapp_same,
			brick_type, usage_purpose, quantity_unit, quantity_bricks, quantity_trolleys, quantity,
			delivery_area, landmark, distance_range, required_delivery_date, urgency,
			lead_priority, status, whatsapp_message_url,
			full_name, mobile_number, customer_name, phone, address, product, total_price
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $9,
			$11, $12, $13, $14, $15,
			$16, 'pending', $17,
			$1, $2, $1, $2, $11, $6, $18
		)
		RETURNING` + orderColumns

	row := r.pool.QueryRow(ctx, query,
		params.Name, params.PhoneNumber, params.Email, params.WhatsAppNumber, params.IsWhatsAppSame,
		params.BrickType, params.UsagePurpose, params.QuantityUnit, params.QuantityBricks, params.QuantityTrolleys,
		params.DeliveryArea, params.Landmark, params.DistanceRange, params.RequiredDeliveryDate, params.Urgency,
		params.LeadPriority, params.WhatsAppMessageURL, params.TotalPrice,
	)

	order, err := scanOrder(row)
	if err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// GetByID retrieves an order by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound(orderNotFoundMessage)
		}
		return Order{}, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// List retrieves the newest orders, up to limit.
func (r *Repo) List(ctx context.Context, limit int) ([]Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var results []Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		results = append(results, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return results, nil
}

// Update applies the admin-editable fields (status, notes).
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Order, error) {
	query := `
		UPDATE orders SET
			status = COALESCE($2, status),
			notes = COALESCE($3, notes),
			updated_at = now()
		WHERE id = $1
		RETURNING` + orderColumns

	order, err := scanOrder(r.pool.QueryRow(ctx, query, params.ID, params.Status, params.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound(orderNotFoundMessage)
		}
		return Order{}, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// Delete removes an order and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (Order, error) {
	query := `DELETE FROM orders WHERE id = $1 RETURNING` + orderColumns

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound(orderNotFoundMessage)
		}
		return Order{}, fmt.Errorf("delete order: %w", err)
	}
	return order, nil
}

// CountAll returns the total number of orders.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// CountSince returns the number of orders created at or after the given time.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders since: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of orders in the given status.
func (r *Repo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return count, nil
}

// CountWithStatuses returns the number of orders in any of the given statuses.
func (r *Repo) CountWithStatuses(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = ANY($1)`, statuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders with statuses: %w", err)
	}
	return count, nil
}

// MostOrderedBrickType returns the grade with the highest total brick
// quantity, cancelled orders excluded.
func (r *Repo) MostOrderedBrickType(ctx context.Context) (BrickTypeStat, error) {
	query := `
		SELECT brick_type, SUM(quantity_bricks) AS total, COUNT(*) AS n
		FROM orders
		WHERE status <> 'cancelled'
		GROUP BY brick_type
		ORDER BY total DESC
		LIMIT 1`

	var result BrickTypeStat
	err := r.pool.QueryRow(ctx, query).Scan(&result.BrickType, &result.TotalBricks, &result.Orders)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BrickTypeStat{}, nil
		}
		return BrickTypeStat{}, fmt.Errorf("most ordered brick type: %w", err)
	}
	return result, nil
}

// AverageQuantity returns the mean brick quantity, cancelled orders excluded.
func (r *Repo) AverageQuantity(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.pool.QueryRow(ctx,
		`SELECT AVG(quantity_bricks) FROM orders WHERE status <> 'cancelled'`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("average order quantity: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var requiredDate, createdAt, updatedAt time.Time

	err := row.Scan(
		&o.ID, &o.Name, &o.PhoneNumber, &o.Email, &o.WhatsAppNumber, &o.IsWhatsAppSame,
		&o.BrickType, &o.UsagePurpose, &o.QuantityUnit, &o.QuantityBricks, &o.QuantityTrolleys, &o.Quantity,
		&o.DeliveryArea, &o.Landmark, &o.DistanceRange, &requiredDate, &o.Urgency,
		&o.LeadPriority, &o.Notes, &o.Status, &o.WhatsAppMessageURL,
		&o.FullName, &o.MobileNumber, &o.CustomerName, &o.Phone, &o.Address, &o.Product, &o.TotalPrice,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return Order{}, err
	}

	o.RequiredDeliveryDate = requiredDate
	o.CreatedAt = createdAt.Format(time.RFC3339)
	o.UpdatedAt = updatedAt.Format(time.RFC3339)

	return o, nil
}
