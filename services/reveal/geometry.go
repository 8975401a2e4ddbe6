package reveal

// Rect is an axis-aligned box in page pixels.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

func (r Rect) area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Bounds makes a plain Rect usable as a Region.
func (r Rect) Bounds() Rect {
	return r
}

// Margin grows (positive) or shrinks (negative) the viewport before intersecting, like a CSS rootMargin.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

type Options struct {
	// Threshold is the visible fraction of a region, in [0,1], at which it counts as intersecting.
	Threshold  float64
	RootMargin Margin
}

func DefaultOptions() Options {
	return Options{
		Threshold: 0.3,
		RootMargin: Margin{
			Top:    -50,
			Bottom: -50,
		},
	}
}

func (o Options) root(viewport Rect) Rect {
	top := viewport.Top - o.RootMargin.Top
	left := viewport.Left - o.RootMargin.Left
	return Rect{
		Top:    top,
		Left:   left,
		Width:  viewport.Right() + o.RootMargin.Right - left,
		Height: viewport.Bottom() + o.RootMargin.Bottom - top,
	}
}

// intersecting reports whether at least Threshold of the target lies within the margin-adjusted viewport.
func (o Options) intersecting(viewport Rect, target Rect) bool {
	ratio := intersectionRatio(o.root(viewport), target)
	if o.Threshold <= 0 {
		return ratio > 0
	}
	return ratio >= o.Threshold
}

func intersectionRatio(root Rect, target Rect) float64 {
	top := max(root.Top, target.Top)
	bottom := min(root.Bottom(), target.Bottom())
	left := max(root.Left, target.Left)
	right := min(root.Right(), target.Right())
	if bottom < top || right < left {
		return 0
	}

	targetArea := target.area()
	if targetArea == 0 {
		// a degenerate target touching the root counts as fully visible
		return 1
	}
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}.area() / targetArea
}
