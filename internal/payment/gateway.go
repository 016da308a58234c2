// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/sports-academy/internal/config"
)

const (
	ProviderStripe = "stripe"
	ProviderOmise  = "omise"
)

// Intent is a provider-side payment authorization the client completes.
type Intent struct {
	ID           string
	ClientSecret string
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)
	Name() string
}

func NewGateway(cfg config.PaymentConfig) (Gateway, error) {
	switch cfg.Provider {
	case ProviderStripe, "":
		return NewStripeGateway(cfg.SecretKey), nil
	case ProviderOmise:
		return NewOmiseGateway(cfg.PublicKey, cfg.SecretKey)
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}
