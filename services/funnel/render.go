package funnel

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/storyfunnel/services/reveal"
)

const (
	revealClass = "story-reveal"
	inViewClass = "in-view"
)

// firstScreen is the viewport assumed for the initial render; each section fills one screen.
var firstScreen = reveal.Rect{Width: 1280, Height: 800}

type sectionView struct {
	Section
	Classes string
}

type pageData struct {
	Sections     []sectionView
	Threshold    float64
	RootMargin   string
	CheckoutPath string
	FormPath     string
}

func newPageData(state reveal.State, opts reveal.Options, checkoutPath string, formPath string) pageData {
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, sectionView{
			Section: s,
			Classes: sectionClasses(state, s.Index),
		})
	}
	return pageData{
		Sections:     views,
		Threshold:    opts.Threshold,
		RootMargin:   cssMargin(opts.RootMargin),
		CheckoutPath: checkoutPath,
		FormPath:     formPath,
	}
}

func sectionClasses(state reveal.State, index int) string {
	if state.IsRevealed(index) {
		return revealClass + " " + inViewClass
	}
	return revealClass
}

// cssMargin renders the margin in IntersectionObserver rootMargin syntax.
func cssMargin(m reveal.Margin) string {
	parts := []string{}
	for _, v := range []float64{m.Top, m.Right, m.Bottom, m.Left} {
		parts = append(parts, fmt.Sprintf("%gpx", v))
	}
	return strings.Join(parts, " ")
}

// initialState is the reveal state of a fresh page view before the visitor scrolls.
func initialState(opts reveal.Options, screen reveal.Rect) (*reveal.Tracker, error) {
	tracker := reveal.NewTracker(len(sections), opts)
	for _, s := range sections {
		tracker.Register(s.Index, reveal.Rect{
			Top:    float64(s.Index) * screen.Height,
			Width:  screen.Width,
			Height: screen.Height,
		})
	}

	stop, err := tracker.Start(reveal.NewViewport(screen).NewObserver)
	if err != nil {
		return nil, fmt.Errorf("error starting reveal tracker: %s", err)
	}
	defer stop()

	return tracker, nil
}
