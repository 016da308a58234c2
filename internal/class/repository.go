// AngelaMos | 2026
// repository.go

package class

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Repository interface {
	Create(ctx context.Context, class *Class) error
	List(ctx context.Context, email string) ([]Class, error)
	DecrementSeat(ctx context.Context, id string) (*Class, error)
	Enroll(ctx context.Context, id string) (*SeatCount, error)
	SetStatus(ctx context.Context, id string, status Status) (*Class, error)
	SetFeedback(ctx context.Context, id, feedback string) (*Class, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

type repository struct {
	db core.DBTX
}

// NewRepository binds the repository to db, which may be the pool or an
// open transaction.
func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const classColumns = `id, name, image_url, instructor_name, email, price_cents,
	available_seats, enrolled, status, feedback, created_at, updated_at`

func (r *repository) Create(ctx context.Context, class *Class) error {
	query := `
		INSERT INTO classes (id, name, image_url, instructor_name, email,
			price_cents, available_seats, enrolled, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		class.ID,
		class.Name,
		class.ImageURL,
		class.InstructorName,
		class.Email,
		class.PriceCents,
		class.AvailableSeats,
		class.Enrolled,
		string(class.Status),
	).Scan(&class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context, email string) ([]Class, error) {
	classes := []Class{}

	if email == "" {
		query := `SELECT ` + classColumns + ` FROM classes ORDER BY created_at ASC`
		if err := r.db.SelectContext(ctx, &classes, query); err != nil {
			return nil, fmt.Errorf("list classes: %w", err)
		}
		return classes, nil
	}

	query := `SELECT ` + classColumns + `
		FROM classes
		WHERE email = $1
		ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &classes, query, email); err != nil {
		return nil, fmt.Errorf("list classes by email: %w", err)
	}

	return classes, nil
}

// DecrementSeat takes one seat without touching the enrolled count. A class
// with no seats left yields core.ErrCapacityExhausted and stays unchanged.
func (r *repository) DecrementSeat(ctx context.Context, id string) (*Class, error) {
	query := `
		UPDATE classes
		SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE id = $1 AND available_seats > 0
		RETURNING ` + classColumns

	var class Class
	err := r.db.GetContext(ctx, &class, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.seatUpdateMiss(ctx, "decrement seat", id)
	}
	if err != nil {
		return nil, fmt.Errorf("decrement seat: %w", err)
	}

	return &class, nil
}

// Enroll moves one seat from available to enrolled under the same guard as
// DecrementSeat.
func (r *repository) Enroll(ctx context.Context, id string) (*SeatCount, error) {
	query := `
		UPDATE classes
		SET available_seats = available_seats - 1,
			enrolled = enrolled + 1,
			updated_at = NOW()
		WHERE id = $1 AND available_seats > 0
		RETURNING id, available_seats, enrolled`

	var seats SeatCount
	err := r.db.GetContext(ctx, &seats, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.seatUpdateMiss(ctx, "enroll", id)
	}
	if err != nil {
		return nil, fmt.Errorf("enroll: %w", err)
	}

	return &seats, nil
}

func (r *repository) seatUpdateMiss(ctx context.Context, op, id string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if exists {
		return fmt.Errorf("%s: %w", op, core.ErrCapacityExhausted)
	}
	return fmt.Errorf("%s: %w", op, core.ErrNotFound)
}

func (r *repository) SetStatus(
	ctx context.Context,
	id string,
	status Status,
) (*Class, error) {
	query := `
		UPDATE classes
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + classColumns

	var class Class
	err := r.db.GetContext(ctx, &class, query, id, string(status))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	return &class, nil
}

func (r *repository) SetFeedback(
	ctx context.Context,
	id, feedback string,
) (*Class, error) {
	query := `
		UPDATE classes
		SET feedback = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + classColumns

	var class Class
	err := r.db.GetContext(ctx, &class, query, id, feedback)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set feedback: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set feedback: %w", err)
	}

	return &class, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	query := `SELECT status, COUNT(*) AS count FROM classes GROUP BY status`

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count classes by status: %w", err)
	}

	counts := make(map[Status]int, len(rows))
	for _, row := range rows {
		counts[ParseStatus(row.Status)] += row.Count
	}

	return counts, nil
}
