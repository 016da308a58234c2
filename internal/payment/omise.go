// AngelaMos | 2026
// omise.go

package payment

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

const omiseSourceType = "promptpay"

// OmiseGateway authorizes payments as Omise sources. The source id is the
// client reference the frontend charges against.
type OmiseGateway struct {
	client *omise.Client
}

func NewOmiseGateway(publicKey, secretKey string) (*OmiseGateway, error) {
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("omise client: %w", err)
	}
	c.SetDebug(false)
	return &OmiseGateway{client: c}, nil
}

func (g *OmiseGateway) Name() string { return ProviderOmise }

func (g *OmiseGateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
) (*Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := &omise.Source{}
	err := g.client.Do(src, &operations.CreateSource{
		Type:     omiseSourceType,
		Amount:   amountCents,
		Currency: currency,
	})
	if err != nil {
		return nil, fmt.Errorf("omise source: %w: %w", core.ErrGateway, err)
	}

	return &Intent{ID: src.ID, ClientSecret: src.ID}, nil
}
