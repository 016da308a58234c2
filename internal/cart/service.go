// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, req CreateEntryRequest) (*Entry, error) {
	entry := &Entry{
		ID:         uuid.New().String(),
		Email:      normalizeEmail(req.Email),
		ClassID:    req.ClassID,
		ClassName:  strings.TrimSpace(req.ClassName),
		ImageURL:   req.ImageURL,
		PriceCents: core.ToMinorUnits(req.Price),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListFor returns the entries owned by email when the caller is that owner.
// An empty email yields no entries; a different owner yields core.ErrForbidden.
func (s *Service) ListFor(
	ctx context.Context,
	callerEmail, email string,
) ([]Entry, error) {
	email = normalizeEmail(email)
	if email == "" {
		return []Entry{}, nil
	}

	if email != normalizeEmail(callerEmail) {
		return nil, fmt.Errorf("list cart: %w", core.ErrForbidden)
	}

	return s.repo.ListByEmail(ctx, email)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if !core.IsValidID(id) {
		return fmt.Errorf("remove cart entry: %w", core.ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
