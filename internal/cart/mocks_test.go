// AngelaMos | 2026
// mocks_test.go

package cart

import (
	"context"
)

type mockRepository struct {
	createFunc      func(ctx context.Context, entry *Entry) error
	listByEmailFunc func(ctx context.Context, email string) ([]Entry, error)
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockRepository) Create(ctx context.Context, entry *Entry) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, entry)
	}
	return nil
}

func (m *mockRepository) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	if m.listByEmailFunc != nil {
		return m.listByEmailFunc(ctx, email)
	}
	return []Entry{}, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) DeleteOwned(context.Context, string, string, string) error {
	return nil
}
