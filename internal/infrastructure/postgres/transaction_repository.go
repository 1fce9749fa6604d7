package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

// TransactionRepository stores the gateway-owned per-order provider state.
type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	id, order_number, payment_number, order_reference_id,
	authorization_id, capture_id, created_at, updated_at
`

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.AmazonTransaction) error {
	query := `
		INSERT INTO amazon_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	tx.CreatedAt = now
	tx.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, query,
		tx.ID,
		tx.OrderNumber,
		tx.PaymentNumber,
		tx.OrderReferenceID,
		tx.AuthorizationID,
		tx.CaptureID,
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create amazon transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.AmazonTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM amazon_transactions
		WHERE order_number = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanTransaction(r.db.Pool.QueryRow(ctx, query, orderNumber))
}

func (r *TransactionRepository) FindByPaymentNumber(ctx context.Context, paymentNumber string) (*domain.AmazonTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM amazon_transactions
		WHERE payment_number = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanTransaction(r.db.Pool.QueryRow(ctx, query, paymentNumber))
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.AmazonTransaction) error {
	query := `
		UPDATE amazon_transactions
		SET authorization_id = $2, capture_id = $3, updated_at = $4
		WHERE id = $1
	`
	tx.UpdatedAt = time.Now()

	tag, err := r.db.Pool.Exec(ctx, query, tx.ID, tx.AuthorizationID, tx.CaptureID, tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update amazon transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.AmazonTransaction, error) {
	var tx domain.AmazonTransaction
	err := row.Scan(
		&tx.ID,
		&tx.OrderNumber,
		&tx.PaymentNumber,
		&tx.OrderReferenceID,
		&tx.AuthorizationID,
		&tx.CaptureID,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to scan amazon transaction: %w", err)
	}
	return &tx, nil
}
