package widget

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownWidget is returned when a handle no longer resolves.
var ErrUnknownWidget = errors.New("widget: unknown widget id")

// ID identifies a widget's state within an Arena.
type ID uint32

// Arena owns the display state of every widget. All reads and writes go
// through the arena lock, which is held only for the duration of a single
// access.
type Arena struct {
	mu   sync.RWMutex
	data map[ID]*Data
	next ID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{data: make(map[ID]*Data)}
}

// Alloc stores d and returns a handle to it.
func (a *Arena) Alloc(d Data) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.next++
	id := a.next
	stored := d
	a.data[id] = &stored
	return Handle{arena: a, id: id}
}

// Release drops the state for id. Handles to it stop resolving.
func (a *Arena) Release(id ID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.data, id)
}

// Len returns the number of live entries.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.data)
}

func (a *Arena) get(id ID) (Data, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	d, ok := a.data[id]
	if !ok {
		return Data{}, fmt.Errorf("%w: %d", ErrUnknownWidget, id)
	}
	return *d, nil
}

func (a *Arena) update(id ID, fn func(*Data)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.data[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownWidget, id)
	}
	fn(d)
	return nil
}

// Handle is a sharable reference to one widget's Data. The zero Handle
// resolves to nothing.
type Handle struct {
	arena *Arena
	id    ID
}

// ID returns the arena identifier.
func (h Handle) ID() ID {
	return h.id
}

// Valid reports whether the handle is bound to an arena.
func (h Handle) Valid() bool {
	return h.arena != nil
}

// Get returns a snapshot of the data.
func (h Handle) Get() (Data, error) {
	if h.arena == nil {
		return Data{}, ErrUnknownWidget
	}
	return h.arena.get(h.id)
}

// Update mutates the data in place under the arena's write lock.
// fn must not call back into the arena.
func (h Handle) Update(fn func(*Data)) error {
	if h.arena == nil {
		return ErrUnknownWidget
	}
	return h.arena.update(h.id, fn)
}
