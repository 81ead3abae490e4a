// Package selection owns the carousel state: which destination is current and
// which overlays (details panel, menu, booking modal) are visible.
//
// Every method applies one intent atomically and then notifies subscribers if
// the state actually changed. Navigation always collapses the details panel.
package selection

import (
	"errors"
	"fmt"

	"github.com/jask/wildroam/internal/catalog"
)

var ErrIndexOutOfRange = errors.New("destination index out of range")

// Transition names passed to subscribers.
const (
	TransitionPrevious     = "select_previous"
	TransitionNext         = "select_next"
	TransitionIndex        = "select_index"
	TransitionToggleMenu   = "toggle_menu"
	TransitionCloseMenu    = "close_menu"
	TransitionOpenBooking  = "open_booking"
	TransitionCloseBooking = "close_booking"
	TransitionToggleInfo   = "toggle_info"
)

// Snapshot is a value copy of the coordinator state.
type Snapshot struct {
	Index       int
	Count       int
	MenuVisible bool
	BookingOpen bool
	ShowInfo    bool
	Current     catalog.Destination
}

// Listener receives the committed state after each transition.
type Listener func(transition string, s Snapshot)

type Coordinator struct {
	catalog     *catalog.Catalog
	index       int
	menuVisible bool
	bookingOpen bool
	showInfo    bool

	nextID    int
	listeners map[int]Listener
	order     []int
}

func New(c *catalog.Catalog) *Coordinator {
	return &Coordinator{catalog: c, listeners: map[int]Listener{}}
}

func (c *Coordinator) SelectPrevious() {
	n := c.catalog.Len()
	c.index = (c.index - 1 + n) % n
	c.showInfo = false
	c.notify(TransitionPrevious)
}

func (c *Coordinator) SelectNext() {
	c.index = (c.index + 1) % c.catalog.Len()
	c.showInfo = false
	c.notify(TransitionNext)
}

// SelectIndex jumps to i. An out-of-range index leaves the state untouched.
func (c *Coordinator) SelectIndex(i int) error {
	if i < 0 || i >= c.catalog.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, c.catalog.Len())
	}
	if i == c.index && !c.showInfo {
		return nil
	}
	c.index = i
	c.showInfo = false
	c.notify(TransitionIndex)
	return nil
}

func (c *Coordinator) ToggleMenu() {
	c.menuVisible = !c.menuVisible
	c.notify(TransitionToggleMenu)
}

func (c *Coordinator) CloseMenu() {
	if !c.menuVisible {
		return
	}
	c.menuVisible = false
	c.notify(TransitionCloseMenu)
}

func (c *Coordinator) OpenBooking() {
	if c.bookingOpen {
		return
	}
	c.bookingOpen = true
	c.notify(TransitionOpenBooking)
}

func (c *Coordinator) CloseBooking() {
	if !c.bookingOpen {
		return
	}
	c.bookingOpen = false
	c.notify(TransitionCloseBooking)
}

func (c *Coordinator) ToggleInfo() {
	c.showInfo = !c.showInfo
	c.notify(TransitionToggleInfo)
}

// Current is derived from the index on every call.
func (c *Coordinator) Current() catalog.Destination {
	return c.catalog.At(c.index)
}

func (c *Coordinator) Index() int        { return c.index }
func (c *Coordinator) MenuVisible() bool { return c.menuVisible }
func (c *Coordinator) BookingOpen() bool { return c.bookingOpen }
func (c *Coordinator) ShowInfo() bool    { return c.showInfo }

func (c *Coordinator) Catalog() *catalog.Catalog { return c.catalog }

func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{
		Index:       c.index,
		Count:       c.catalog.Len(),
		MenuVisible: c.menuVisible,
		BookingOpen: c.bookingOpen,
		ShowInfo:    c.showInfo,
		Current:     c.Current(),
	}
}

// Subscribe registers fn and returns a function that removes it. Listeners run
// synchronously in registration order.
func (c *Coordinator) Subscribe(fn Listener) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.order = append(c.order, id)
	return func() {
		if _, ok := c.listeners[id]; !ok {
			return
		}
		delete(c.listeners, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Coordinator) notify(transition string) {
	if len(c.order) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, id := range append([]int(nil), c.order...) {
		if fn, ok := c.listeners[id]; ok {
			fn(transition, snap)
		}
	}
}
