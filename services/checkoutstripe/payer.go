package checkoutstripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/MarcGrol/storyfunnel/lib/myerrors"
)

//go:generate mockgen -source=payer.go -package checkoutstripe -destination payer_mock.go Payer
type Payer interface {
	FindCustomerByEmail(c context.Context, email string) (string, bool, error)
	CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
}

// PayerFactory builds a payer for a single invocation.
type PayerFactory func(secretKey string) Payer

type stripePayer struct {
	api *client.API
}

// NewPayer builds a dedicated client; the package-global stripe.Key is never touched.
func NewPayer(secretKey string) Payer {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripePayer{
		api: api,
	}
}

// FindCustomerByEmail returns the first customer with exactly this email; which one is first is up to Stripe.
func (p *stripePayer) FindCustomerByEmail(c context.Context, email string) (string, bool, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = c
	params.Limit = stripe.Int64(1)

	iter := p.api.Customers.List(params)
	if iter.Next() {
		return iter.Customer().ID, true, nil
	}
	if err := iter.Err(); err != nil {
		return "", false, myerrors.NewInternalError(processorError(err))
	}

	return "", false, nil
}

func (p *stripePayer) CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = c
	session, err := p.api.CheckoutSessions.New(&params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInternalError(processorError(err))
	}

	return *session, nil
}

// processorError keeps the human readable part of a Stripe API error.
func processorError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.New(stripeErr.Msg)
	}
	return fmt.Errorf("%s", err)
}
