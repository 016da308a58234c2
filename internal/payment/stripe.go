// AngelaMos | 2026
// stripe.go

package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) Name() string { return ProviderStripe }

// CreateIntent opens a card-only PaymentIntent. Failures are not retried.
func (g *StripeGateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w: %w", core.ErrGateway, err)
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
