package payments

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const Currency = "usd"

// MinorUnits converts a decimal price into integer minor-currency units.
// Rounding absorbs float64 representation error: 19.99*100 is
// 1998.999... and must still charge 1999, never 1998.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeClient creates card-only payment intents. Failures from Stripe are
// returned unchanged; the caller surfaces them without retry.
type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

func (s *StripeClient) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
