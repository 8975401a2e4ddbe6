package checkoutstripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/mylog"
	"github.com/MarcGrol/storyfunnel/lib/mypublisher"
	"github.com/MarcGrol/storyfunnel/services/checkoutevents"
)

var ErrEmailRequired = errors.New("Email is required")

type service struct {
	logger     mylog.Logger
	loadConfig func() Config
	newPayer   PayerFactory
	publisher  mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, loadConfig func() Config, newPayer PayerFactory, publisher mypublisher.Publisher) *service {
	return &service{
		logger:     logger,
		loadConfig: loadConfig,
		newPayer:   newPayer,
		publisher:  publisher,
	}
}

// createCheckoutSession creates exactly one one-time-payment session and returns its redirect url.
// Nothing is remembered between calls: the same email twice gives two sessions.
func (s *service) createCheckoutSession(c context.Context, origin string, email string) (string, error) {
	if email == "" {
		// reported as 500, like every other failure of this call
		return "", myerrors.NewInternalError(ErrEmailRequired)
	}

	cfg := s.loadConfig()
	if missing := cfg.Missing(); len(missing) > 0 {
		s.logger.Log(c, "", mylog.SeverityWarn, "Configuration incomplete, missing %v", missing)
	}
	payer := s.newPayer(cfg.StripeSecretKey)

	customerID, found, err := payer.FindCustomerByEmail(c, email)
	if err != nil {
		return "", err
	}

	session, err := payer.CreateCheckoutSession(c, newSessionParams(cfg.PriceID, origin, email, customerID, found))
	if err != nil {
		return "", err
	}

	s.logger.Log(c, session.ID, mylog.SeverityInfo, "Created checkout session %s (existing customer: %t)", session.ID, found)

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutSessionCreated{
		ProviderName:  "stripe",
		SessionID:     session.ID,
		CustomerID:    customerID,
		GuestCheckout: !found,
		PriceID:       cfg.PriceID,
		Origin:        origin,
	})
	if err != nil {
		s.logger.Log(c, session.ID, mylog.SeverityWarn, "Error publishing session-created event: %s", err)
	}

	return session.URL, nil
}

// newSessionParams sets exactly one of Customer and CustomerEmail.
func newSessionParams(priceID string, origin string, email string, customerID string, customerFound bool) stripe.CheckoutSessionParams {
	params := stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-success", origin)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/", origin)),
	}

	if customerFound {
		params.Customer = stripe.String(customerID)
	} else {
		params.CustomerEmail = stripe.String(email)
	}

	return params
}
