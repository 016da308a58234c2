// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	List(ctx context.Context, email string) ([]Payment, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, email, class_id, cart_id, class_name, amount_cents,
	transaction_id, created_at`

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	query := `
		INSERT INTO payments (id, email, class_id, cart_id, class_name,
			amount_cents, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		payment.ID,
		payment.Email,
		payment.ClassID,
		payment.CartID,
		payment.ClassName,
		payment.AmountCents,
		payment.TransactionID,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

// List returns every payment, or only those owned by email when it is set.
func (r *repository) List(ctx context.Context, email string) ([]Payment, error) {
	payments := []Payment{}

	if email == "" {
		query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &payments, query); err != nil {
			return nil, fmt.Errorf("list payments: %w", err)
		}
		return payments, nil
	}

	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE email = $1
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &payments, query, email); err != nil {
		return nil, fmt.Errorf("list payments by email: %w", err)
	}

	return payments, nil
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS revenue_cents
		FROM payments`

	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("payment stats: %w", err)
	}

	return &stats, nil
}
