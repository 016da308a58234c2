// AngelaMos | 2026
// mocks_test.go

package user

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type mockRepository struct {
	createIfAbsentFunc func(ctx context.Context, user *User) (bool, error)
	getByEmailFunc     func(ctx context.Context, email string) (*User, error)
	listFunc           func(ctx context.Context) ([]User, error)
	listByRoleFunc     func(ctx context.Context, role Role) ([]User, error)
	updateRoleFunc     func(ctx context.Context, id string, role Role) (*User, error)
}

func (m *mockRepository) CreateIfAbsent(ctx context.Context, user *User) (bool, error) {
	if m.createIfAbsentFunc != nil {
		return m.createIfAbsentFunc(ctx, user)
	}
	return true, nil
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *mockRepository) List(ctx context.Context) ([]User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []User{}, nil
}

func (m *mockRepository) ListByRole(ctx context.Context, role Role) ([]User, error) {
	if m.listByRoleFunc != nil {
		return m.listByRoleFunc(ctx, role)
	}
	return []User{}, nil
}

func (m *mockRepository) UpdateRole(ctx context.Context, id string, role Role) (*User, error) {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, id, role)
	}
	return nil, fmt.Errorf("update role: %w", core.ErrNotFound)
}

func (m *mockRepository) UpdatePassword(context.Context, string, string) error {
	return nil
}

func (m *mockRepository) CountByRole(context.Context) (map[Role]int, error) {
	return map[Role]int{}, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// usersByEmail backs GetByEmail with a fixed directory.
func usersByEmail(users ...User) func(context.Context, string) (*User, error) {
	return func(_ context.Context, email string) (*User, error) {
		for i := range users {
			if users[i].Email == email {
				u := users[i]
				return &u, nil
			}
		}
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
}
