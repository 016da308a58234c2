// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	ListByEmail(ctx context.Context, email string) ([]Entry, error)
	Delete(ctx context.Context, id string) error
	DeleteOwned(ctx context.Context, id, email, classID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const entryColumns = `id, email, class_id, class_name, image_url, price_cents, created_at`

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO carts (id, email, class_id, class_name, image_url, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		entry.ID,
		entry.Email,
		entry.ClassID,
		entry.ClassName,
		entry.ImageURL,
		entry.PriceCents,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("create cart entry: %w", err)
	}

	return nil
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	query := `SELECT ` + entryColumns + `
		FROM carts
		WHERE email = $1
		ORDER BY created_at ASC`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, email); err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}

	return entries, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	return expectOneRow(result, "delete cart entry")
}

// DeleteOwned removes the entry only when it belongs to email and holds
// classID. Any other entry counts as not found.
func (r *repository) DeleteOwned(ctx context.Context, id, email, classID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM carts WHERE id = $1 AND email = $2 AND class_id = $3`,
		id,
		email,
		classID,
	)
	if err != nil {
		return fmt.Errorf("delete owned cart entry: %w", err)
	}

	return expectOneRow(result, "delete owned cart entry")
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectOneRow(result rowsAffecter, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}
