// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Service struct {
	repo     Repository
	gateway  Gateway
	currency string
}

func NewService(repo Repository, gateway Gateway, currency string) *Service {
	return &Service{repo: repo, gateway: gateway, currency: currency}
}

// CreateIntent asks the gateway to authorize price, given in decimal units.
func (s *Service) CreateIntent(ctx context.Context, price float64) (*Intent, error) {
	amount := core.ToMinorUnits(price)
	if amount <= 0 {
		return nil, fmt.Errorf("create intent: %w", core.ErrInvalidInput)
	}

	ctx, span := core.StartSpan(ctx, "payment.create_intent",
		attribute.String("payment.provider", s.gateway.Name()),
		attribute.Int64("payment.amount_cents", amount),
		attribute.String("payment.currency", s.currency),
	)
	defer span.End()

	intent, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return intent, nil
}

func (s *Service) List(ctx context.Context, email string) ([]Payment, error) {
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
