package checkoutclient

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

type browserOpener struct{}

// NewBrowserOpener opens urls in the default system browser.
func NewBrowserOpener() Opener {
	return browserOpener{}
}

func (o browserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

type writerOpener struct {
	w io.Writer
}

// NewWriterOpener prints the url instead of opening it.
func NewWriterOpener(w io.Writer) Opener {
	return writerOpener{w: w}
}

func (o writerOpener) Open(url string) error {
	_, err := fmt.Fprintf(o.w, "Open %s\n", url)
	return err
}

type writerNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) Notifier {
	return writerNotifier{w: w}
}

func (n writerNotifier) Notify(c context.Context, title string, message string) {
	fmt.Fprintf(n.w, "%s: %s\n", title, message)
}
