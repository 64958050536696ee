package widget

import (
	"errors"

	"github.com/dshills/chessterm/internal/dispatcher"
	"github.com/dshills/chessterm/internal/renderer/backend"
)

// Widget errors.
var (
	// ErrNoOperation is returned by every operation on a Null widget.
	ErrNoOperation = errors.New("widget: no operation possible")

	// ErrGeometry is returned when a window is too small for its frame
	// and title.
	ErrGeometry = errors.New("widget: geometry too small")
)

// Widget is the contract the frame loop drives. The set of
// implementations is closed to this package.
type Widget interface {
	// Type returns the variant tag the widget was built with.
	Type() Type

	// HandleEvent offers ev to the attached dispatcher. Without one the
	// event is ignored.
	HandleEvent(ev dispatcher.Event) error

	// AttachDispatcher replaces the current dispatcher.
	AttachDispatcher(d *dispatcher.Dispatcher)

	// DataHandle returns the handle to the widget's state, if it has any.
	DataHandle() (Handle, bool)

	// Render draws the widget onto b.
	Render(b backend.Backend) error

	sealed()
}

// base holds what every stateful variant shares.
type base struct {
	handle     Handle
	dispatcher *dispatcher.Dispatcher
}

func (w *base) HandleEvent(ev dispatcher.Event) error {
	if w.dispatcher == nil {
		return nil
	}
	return w.dispatcher.Dispatch(ev)
}

func (w *base) AttachDispatcher(d *dispatcher.Dispatcher) {
	w.dispatcher = d
}

func (w *base) DataHandle() (Handle, bool) {
	return w.handle, true
}

// Dispatcher returns the attached dispatcher, or nil.
func (w *base) Dispatcher() *dispatcher.Dispatcher {
	return w.dispatcher
}

func (w *base) sealed() {}

// GlobalInput receives every event but has no visual representation.
type GlobalInput struct {
	base
}

// Type implements Widget.
func (w *GlobalInput) Type() Type { return TypeGlobalInput }

// Render implements Widget. It draws nothing.
func (w *GlobalInput) Render(backend.Backend) error { return nil }

// Null is a placeholder for a widget that was never configured.
type Null struct{}

// Type implements Widget.
func (Null) Type() Type { return TypeNone }

// HandleEvent implements Widget.
func (Null) HandleEvent(dispatcher.Event) error { return ErrNoOperation }

// AttachDispatcher implements Widget. The dispatcher is discarded.
func (Null) AttachDispatcher(*dispatcher.Dispatcher) {}

// DataHandle implements Widget.
func (Null) DataHandle() (Handle, bool) { return Handle{}, false }

// Render implements Widget.
func (Null) Render(backend.Backend) error { return ErrNoOperation }

func (Null) sealed() {}
