// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Repository interface {
	CreateIfAbsent(ctx context.Context, user *User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	CountByRole(ctx context.Context) (map[Role]int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, name, photo_url, password_hash, role, created_at, updated_at`

// CreateIfAbsent inserts the user unless the email is already taken. The
// unique index on email makes the check and the insert a single statement.
func (r *repository) CreateIfAbsent(
	ctx context.Context,
	user *User,
) (bool, error) {
	query := `
		INSERT INTO users (id, email, name, photo_url, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
		RETURNING created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PhotoURL,
		user.PasswordHash,
		string(user.Role),
	)

	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	return true, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) ListByRole(ctx context.Context, role Role) ([]User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at ASC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, string(role)); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	return users, nil
}

func (r *repository) UpdateRole(
	ctx context.Context,
	id string,
	role Role,
) (*User, error) {
	query := `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user User
	err := r.db.GetContext(ctx, &user, query, id, string(role))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update role: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountByRole(ctx context.Context) (map[Role]int, error) {
	query := `SELECT role, COUNT(*) AS count FROM users GROUP BY role`

	var rows []struct {
		Role  string `db:"role"`
		Count int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}

	counts := make(map[Role]int, len(rows))
	for _, row := range rows {
		counts[ParseRole(row.Role)] += row.Count
	}

	return counts, nil
}
