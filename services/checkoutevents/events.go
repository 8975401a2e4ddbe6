package checkoutevents

const (
	TopicName                  = "checkout"
	checkoutSessionCreatedName = TopicName + ".sessionCreated"
)

// CheckoutSessionCreated is published once per session handed out to a visitor.
type CheckoutSessionCreated struct {
	ProviderName  string
	SessionID     string
	CustomerID    string
	GuestCheckout bool
	PriceID       string
	Origin        string
}

func (e CheckoutSessionCreated) GetEventTypeName() string {
	return checkoutSessionCreatedName
}

func (e CheckoutSessionCreated) GetAggregateName() string {
	return e.SessionID
}
