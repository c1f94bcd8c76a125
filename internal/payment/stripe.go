// Package payment creates Stripe payment intents for checkout.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNotConfigured = errors.New("stripe secret key not configured")
)

type Client struct {
	intents  *paymentintent.Client
	currency string
}

// NewClient builds a client for the given secret key. A nil backend uses
// stripe-go's default API backend.
func NewClient(secretKey, currency string, backend stripe.Backend) *Client {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &Client{
		intents:  &paymentintent.Client{B: backend, Key: secretKey},
		currency: currency,
	}
}

// MinorUnits converts an amount in major units (dollars) to the integer
// minor units (cents) Stripe expects, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// CreateIntent creates a card payment intent and returns its client secret.
func (c *Client) CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error) {
	if c.intents.Key == "" {
		return "", ErrNotConfigured
	}
	cents := MinorUnits(amount)
	if cents <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := c.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
