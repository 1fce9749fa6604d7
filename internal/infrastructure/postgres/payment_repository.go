package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

// PaymentRepository reads the host shop's payment records.
type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindByNumber(ctx context.Context, number string) (*domain.Payment, error) {
	query := `
		SELECT number, currency
		FROM payments
		WHERE number = $1
	`

	var payment domain.Payment
	err := r.db.Pool.QueryRow(ctx, query, number).Scan(
		&payment.Number,
		&payment.Currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return &payment, nil
}
