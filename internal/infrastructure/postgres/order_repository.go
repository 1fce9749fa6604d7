package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

// OrderRepository reads the host shop's order records. The gateway never
// writes them.
type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `
		SELECT o.number, o.currency, o.total_cents,
		       a.first_name, a.last_name
		FROM orders o
		LEFT JOIN addresses a ON a.id = o.ship_address_id
		WHERE o.number = $1
	`

	var (
		order     domain.Order
		firstName *string
		lastName  *string
	)
	err := r.db.Pool.QueryRow(ctx, query, number).Scan(
		&order.Number,
		&order.Currency,
		&order.TotalCents,
		&firstName,
		&lastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if firstName != nil && lastName != nil {
		order.ShipAddress = &domain.Address{
			FirstName: *firstName,
			LastName:  *lastName,
		}
	}
	return &order, nil
}
