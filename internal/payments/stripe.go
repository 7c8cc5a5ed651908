package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Gateway creates a payment intent for the given amount (smallest currency
// unit) and returns the provider's client secret.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(
	ctx context.Context,
	amount int64,
) (string, error) {

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return pi.ClientSecret, nil
}

var _ Gateway = (*StripeGateway)(nil)
