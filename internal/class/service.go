// AngelaMos | 2026
// service.go

package class

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

// Create stores a new class awaiting review.
func (s *Service) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	class := &Class{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(req.Name),
		ImageURL:       req.ImageURL,
		InstructorName: strings.TrimSpace(req.InstructorName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PriceCents:     core.ToMinorUnits(req.Price),
		AvailableSeats: req.AvailableSeats,
		Status:         StatusPending,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

func (s *Service) List(ctx context.Context, email string) ([]Class, error) {
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) DecrementSeat(ctx context.Context, id string) (*Class, error) {
	if !core.IsValidID(id) {
		return nil, fmt.Errorf("decrement seat: %w", core.ErrNotFound)
	}
	return s.repo.DecrementSeat(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id string) (*Class, error) {
	return s.setStatus(ctx, id, StatusApproved)
}

func (s *Service) Deny(ctx context.Context, id string) (*Class, error) {
	return s.setStatus(ctx, id, StatusDenied)
}

func (s *Service) setStatus(ctx context.Context, id string, status Status) (*Class, error) {
	if !core.IsValidID(id) {
		return nil, fmt.Errorf("set status: %w", core.ErrNotFound)
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *Service) SetFeedback(ctx context.Context, id, feedback string) (*Class, error) {
	if !core.IsValidID(id) {
		return nil, fmt.Errorf("set feedback: %w", core.ErrNotFound)
	}
	return s.repo.SetFeedback(ctx, id, feedback)
}

func (s *Service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}
