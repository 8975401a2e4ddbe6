// Package contracttests holds the behaviour every checkout session creator must show, and an
// in-memory fake that satisfies it.
package contracttests

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MarcGrol/storyfunnel/lib/myuuid"
)

var (
	ErrEmailRequired = errors.New("Email is required")
)

type FakeSessionCreator struct {
	uuider myuuid.UUIDer

	mu       sync.Mutex
	Sessions map[string]string
}

func NewFakeSessionCreator(uuider myuuid.UUIDer) *FakeSessionCreator {
	return &FakeSessionCreator{
		uuider:   uuider,
		Sessions: map[string]string{},
	}
}

// CreateSession remembers the email per session url.
func (f *FakeSessionCreator) CreateSession(c context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}

	url := fmt.Sprintf("https://checkout.stripe.com/c/pay/cs_test_%s", f.uuider.Create())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sessions[url] = email

	return url, nil
}
