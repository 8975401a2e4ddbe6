package contracttests

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"

	"github.com/MarcGrol/storyfunnel/lib/myhttpclient"
	"github.com/MarcGrol/storyfunnel/lib/mypublisher"
	"github.com/MarcGrol/storyfunnel/lib/mypubsub"
	"github.com/MarcGrol/storyfunnel/lib/mytime"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
	"github.com/MarcGrol/storyfunnel/services/checkoutclient"
	"github.com/MarcGrol/storyfunnel/services/checkoutstripe"
)

func TestInMemorySessionCreator(t *testing.T) {
	SessionCreatorContract{
		creator: func(t *testing.T) checkoutclient.SessionCreator {
			return NewFakeSessionCreator(myuuid.RealUUIDer{})
		},
	}.Test(t)
}

func TestRemoteSessionCreator(t *testing.T) {
	SessionCreatorContract{
		creator: func(t *testing.T) checkoutclient.SessionCreator {
			server := httptest.NewServer(newCheckoutRouter(t))
			t.Cleanup(server.Close)

			cfg := checkoutclient.Config{
				FunctionsURL:        server.URL + "/functions/v1",
				BackingStoreAnonKey: "anon_123",
			}
			return checkoutclient.NewRemoteSessionCreator(cfg, myhttpclient.New(time.Second))
		},
	}.Test(t)
}

type SessionCreatorContract struct {
	creator func(t *testing.T) checkoutclient.SessionCreator
}

func (c SessionCreatorContract) Test(t *testing.T) {
	t.Run("returns a checkout url for a valid email", func(t *testing.T) {
		var (
			sut = c.creator(t)
			ctx = context.Background()
		)

		url, err := sut.CreateSession(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://"), url)
	})

	t.Run("every call yields a new session", func(t *testing.T) {
		var (
			sut = c.creator(t)
			ctx = context.Background()
		)

		first, err := sut.CreateSession(ctx, "a@x.com")
		require.NoError(t, err)
		second, err := sut.CreateSession(ctx, "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("an empty email is refused", func(t *testing.T) {
		var (
			sut = c.creator(t)
			ctx = context.Background()
		)

		_, err := sut.CreateSession(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email is required")
	})
}

func newCheckoutRouter(t *testing.T) *mux.Router {
	c := context.Background()

	pubsub, cleanup, err := mypubsub.New(c)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	router := mux.NewRouter()
	sut := checkoutstripe.NewWebService(
		func() checkoutstripe.Config {
			return checkoutstripe.Config{StripeSecretKey: "sk_test_123", PriceID: "price_123"}
		},
		func(secretKey string) checkoutstripe.Payer {
			return &fakePayer{}
		},
		mypublisher.New(pubsub, mytime.RealNower{}, myuuid.RealUUIDer{}),
	)
	err = sut.RegisterEndpoints(c, router)
	require.NoError(t, err)

	return router
}

// fakePayer knows no customers and numbers its sessions.
type fakePayer struct {
	sessionCount int
}

func (p *fakePayer) FindCustomerByEmail(c context.Context, email string) (string, bool, error) {
	return "", false, nil
}

func (p *fakePayer) CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	p.sessionCount++
	id := fmt.Sprintf("cs_test_%d_%s", p.sessionCount, myuuid.RealUUIDer{}.Create())
	return stripe.CheckoutSession{
		ID:  id,
		URL: "https://checkout.stripe.com/c/pay/" + id,
	}, nil
}
