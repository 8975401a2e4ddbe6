// Package reveal turns viewport-intersection signals into a one-way "revealed" state per section.
package reveal

import (
	"fmt"
	"sort"
	"sync"
)

// Region is a renderable area that can be observed.
type Region interface {
	Bounds() Rect
}

// Callback receives intersection changes for an observed section.
type Callback func(index int, isIntersecting bool)

// Observer is the viewport-observation facility.
type Observer interface {
	Observe(index int, region Region)
	Disconnect()
}

type ObserverFactory func(opts Options, callback Callback) Observer

// State is the read side used by rendering.
type State interface {
	IsRevealed(index int) bool
}

// Tracker owns the revealed set of one page view.
type Tracker struct {
	sectionCount int
	opts         Options

	mu       sync.RWMutex
	regions  map[int]Region
	revealed map[int]struct{}
	observer Observer
	started  bool
	stopped  bool
}

func NewTracker(sectionCount int, opts Options) *Tracker {
	return &Tracker{
		sectionCount: sectionCount,
		opts:         opts,
		regions:      map[int]Region{},
		revealed:     map[int]struct{}{},
	}
}

func (t *Tracker) validIndex(index int) bool {
	return index >= 0 && index < t.sectionCount
}

// Register associates a region with a section index. Absent regions, unknown indices and
// second registrations are ignored.
func (t *Tracker) Register(index int, region Region) {
	if region == nil || !t.validIndex(index) {
		return
	}

	t.mu.Lock()
	if _, exists := t.regions[index]; exists || t.stopped {
		t.mu.Unlock()
		return
	}
	t.regions[index] = region
	observer := t.observer
	t.mu.Unlock()

	if observer != nil {
		observer.Observe(index, region)
	}
}

// OnIntersection only ever grows the revealed set.
func (t *Tracker) OnIntersection(index int, isIntersecting bool) {
	if !isIntersecting || !t.validIndex(index) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.revealed[index] = struct{}{}
}

func (t *Tracker) IsRevealed(index int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, found := t.revealed[index]
	return found
}

// Revealed returns the revealed indices in ascending order.
func (t *Tracker) Revealed() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]int, 0, len(t.revealed))
	for index := range t.revealed {
		result = append(result, index)
	}
	sort.Ints(result)
	return result
}

// Start begins observation of every registered region. The returned func is the only way to
// stop observing; it is safe to call more than once.
func (t *Tracker) Start(factory ObserverFactory) (func(), error) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return nil, fmt.Errorf("tracker already stopped")
	}
	if t.started {
		t.mu.Unlock()
		return nil, fmt.Errorf("tracker already started")
	}
	t.started = true

	observer := factory(t.opts, t.OnIntersection)
	t.observer = observer

	indices := make([]int, 0, len(t.regions))
	for index := range t.regions {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	regions := make([]Region, 0, len(indices))
	for _, index := range indices {
		regions = append(regions, t.regions[index])
	}
	t.mu.Unlock()

	// observing may call back synchronously, so no lock is held here
	for i, index := range indices {
		observer.Observe(index, regions[i])
	}

	return t.Stop, nil
}

// Stop disconnects the observer; callbacks arriving afterwards are dropped.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	observer := t.observer
	t.observer = nil
	t.mu.Unlock()

	if observer != nil {
		observer.Disconnect()
	}
}
