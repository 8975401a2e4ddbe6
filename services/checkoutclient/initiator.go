// Package checkoutclient starts a checkout on behalf of a visitor: it validates the email,
// guards against double submission and hands the visitor over to the payment page.
package checkoutclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MarcGrol/storyfunnel/lib/mylog"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
)

const (
	failureTitle   = "Payment error"
	failureMessage = "Something went wrong starting your checkout. Please try again."
)

var (
	ErrEmailRequired  = errors.New("please enter your email address")
	ErrBusy           = errors.New("a checkout is already in progress")
	ErrCheckoutFailed = errors.New("checkout failed")
)

// FailureError matches ErrCheckoutFailed and the underlying cause with errors.Is.
type FailureError struct {
	Cause error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCheckoutFailed, e.Cause)
}

func (e *FailureError) Unwrap() []error {
	return []error{ErrCheckoutFailed, e.Cause}
}

type Status int

const (
	StatusRedirected Status = iota + 1
	StatusNoRedirect
)

func (s Status) String() string {
	switch s {
	case StatusRedirected:
		return "redirected"
	case StatusNoRedirect:
		return "no-redirect"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Status Status
	URL    string
}

type Initiator struct {
	logger   mylog.Logger
	uuider   myuuid.UUIDer
	creator  SessionCreator
	opener   Opener
	notifier Notifier
	busy     atomic.Bool
}

func NewInitiator(creator SessionCreator, opener Opener, notifier Notifier, uuider myuuid.UUIDer) *Initiator {
	return &Initiator{
		logger:   mylog.New("checkoutclient"),
		uuider:   uuider,
		creator:  creator,
		opener:   opener,
		notifier: notifier,
	}
}

// Busy reports whether a submission is in flight.
func (i *Initiator) Busy() bool {
	return i.busy.Load()
}

// Submit issues at most one session request at a time. A call made while another is in
// flight is dropped with ErrBusy.
func (i *Initiator) Submit(c context.Context, email string) (Outcome, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Outcome{}, ErrEmailRequired
	}

	if !i.busy.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}
	defer i.busy.Store(false)

	attemptUID := i.uuider.Create()
	i.logger.Log(c, attemptUID, mylog.SeverityInfo, "Start checkout")

	redirectURL, err := i.creator.CreateSession(c, email)
	if err != nil {
		return Outcome{}, i.fail(c, attemptUID, err)
	}

	if redirectURL == "" {
		// TODO: decide with product whether this should notify the visitor instead of doing nothing
		i.logger.Log(c, attemptUID, mylog.SeverityWarn, "Checkout session created without redirect url")
		return Outcome{Status: StatusNoRedirect}, nil
	}

	err = i.opener.Open(redirectURL)
	if err != nil {
		return Outcome{}, i.fail(c, attemptUID, fmt.Errorf("error opening %s: %w", redirectURL, err))
	}

	i.logger.Log(c, attemptUID, mylog.SeverityInfo, "Opened checkout page %s", redirectURL)

	return Outcome{Status: StatusRedirected, URL: redirectURL}, nil
}

// fail keeps the cause in the log; the visitor only sees a generic message.
func (i *Initiator) fail(c context.Context, attemptUID string, cause error) error {
	i.logger.Log(c, attemptUID, mylog.SeverityError, "Checkout failed: %s", cause)
	i.notifier.Notify(c, failureTitle, failureMessage)
	return &FailureError{Cause: cause}
}
