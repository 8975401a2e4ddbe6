package checkoutclient

import "context"

//go:generate mockgen -source=api.go -package checkoutclient -destination api_mock.go

// SessionCreator asks the remote service for a checkout session and returns its redirect url.
// An empty url with a nil error means the service answered without one.
type SessionCreator interface {
	CreateSession(c context.Context, email string) (string, error)
}

// Opener navigates a new browsing context to url.
type Opener interface {
	Open(url string) error
}

// Notifier surfaces a message to the visitor.
type Notifier interface {
	Notify(c context.Context, title string, message string)
}
