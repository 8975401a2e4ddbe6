package reveal

import "sync"

// Viewport is an in-process viewport-observation facility: it reports threshold crossings of
// observed regions whenever the visible window moves.
type Viewport struct {
	mu        sync.Mutex
	rect      Rect
	observers map[*viewportObserver]struct{}
}

func NewViewport(rect Rect) *Viewport {
	return &Viewport{
		rect:      rect,
		observers: map[*viewportObserver]struct{}{},
	}
}

type notification struct {
	observer       *viewportObserver
	index          int
	isIntersecting bool
}

// deliver skips notifications of observers disconnected since they were collected.
func deliver(notifications []notification) {
	for _, n := range notifications {
		if n.observer.isDisconnected() {
			continue
		}
		n.observer.callback(n.index, n.isIntersecting)
	}
}

// NewObserver has the ObserverFactory signature.
func (v *Viewport) NewObserver(opts Options, callback Callback) Observer {
	o := &viewportObserver{
		viewport: v,
		opts:     opts,
		callback: callback,
	}

	v.mu.Lock()
	v.observers[o] = struct{}{}
	v.mu.Unlock()

	return o
}

// ScrollTo moves the top edge of the viewport.
func (v *Viewport) ScrollTo(top float64) {
	v.mu.Lock()
	v.rect.Top = top
	v.mu.Unlock()

	v.evaluate()
}

func (v *Viewport) Resize(width float64, height float64) {
	v.mu.Lock()
	v.rect.Width = width
	v.rect.Height = height
	v.mu.Unlock()

	v.evaluate()
}

func (v *Viewport) current() Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rect
}

func (v *Viewport) evaluate() {
	v.mu.Lock()
	rect := v.rect
	observers := make([]*viewportObserver, 0, len(v.observers))
	for o := range v.observers {
		observers = append(observers, o)
	}
	v.mu.Unlock()

	notifications := []notification{}
	for _, o := range observers {
		notifications = append(notifications, o.changes(rect)...)
	}
	deliver(notifications)
}

func (v *Viewport) remove(o *viewportObserver) {
	v.mu.Lock()
	delete(v.observers, o)
	v.mu.Unlock()
}

type target struct {
	index          int
	region         Region
	isIntersecting bool
}

type viewportObserver struct {
	viewport *Viewport
	opts     Options
	callback Callback

	mu           sync.Mutex
	targets      []*target
	disconnected bool
}

// Observe reports the current state of the region right away, as the browser facility does.
func (o *viewportObserver) Observe(index int, region Region) {
	if region == nil {
		return
	}
	rect := o.viewport.current()

	o.mu.Lock()
	if o.disconnected {
		o.mu.Unlock()
		return
	}
	t := &target{
		index:          index,
		region:         region,
		isIntersecting: o.opts.intersecting(rect, region.Bounds()),
	}
	o.targets = append(o.targets, t)
	o.mu.Unlock()

	deliver([]notification{{observer: o, index: t.index, isIntersecting: t.isIntersecting}})
}

func (o *viewportObserver) changes(rect Rect) []notification {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected {
		return nil
	}

	notifications := []notification{}
	for _, t := range o.targets {
		now := o.opts.intersecting(rect, t.region.Bounds())
		if now == t.isIntersecting {
			continue
		}
		t.isIntersecting = now
		notifications = append(notifications, notification{observer: o, index: t.index, isIntersecting: now})
	}
	return notifications
}

func (o *viewportObserver) isDisconnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disconnected
}

func (o *viewportObserver) Disconnect() {
	o.mu.Lock()
	o.disconnected = true
	o.targets = nil
	o.mu.Unlock()

	o.viewport.remove(o)
}
