package dispatcher

import "github.com/dshills/chessterm/internal/input/key"

// Action is the body of a binding. It runs at most once per dispatch.
type Action func() error

// EventAction is an Action that receives the event it matched.
type EventAction func(Event) error

// Result is the outcome of offering an event to one binding.
type Result uint8

const (
	// Unhandled means the predicate did not match.
	Unhandled Result = iota
	// Handled means an exclusive binding ran; dispatch stops.
	Handled
	// Fallthrough means a fallthrough binding ran; dispatch may continue.
	Fallthrough
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Handled:
		return "Handled"
	case Fallthrough:
		return "Fallthrough"
	default:
		return "Unhandled"
	}
}

// Binding is one registered handler. It pairs a predicate with an action
// and carries the fallthrough flag.
type Binding struct {
	name         string
	match        func(Event) bool
	fallsThrough bool
	action       EventAction
}

// NewBinding creates a binding with a custom predicate.
func NewBinding(name string, match func(Event) bool, fallsThrough bool, action Action) *Binding {
	var run EventAction
	if action != nil {
		run = func(Event) error { return action() }
	}
	return NewEventBinding(name, match, fallsThrough, run)
}

// NewEventBinding creates a binding whose action receives the matched event.
func NewEventBinding(name string, match func(Event) bool, fallsThrough bool, action EventAction) *Binding {
	return &Binding{
		name:         name,
		match:        match,
		fallsThrough: fallsThrough,
		action:       action,
	}
}

// OnKey creates a binding matching exactly ev's code, modifiers and kind.
// The binding is named after the key spec.
func OnKey(ev key.Event, fallsThrough bool, action Action) *Binding {
	return NewBinding(ev.String(), func(e Event) bool {
		return e.Type == EventKey && e.Key.Matches(ev)
	}, fallsThrough, action)
}

// OnUpdate creates a binding matching every update event.
func OnUpdate(fallsThrough bool, action Action) *Binding {
	return NewBinding("update", func(e Event) bool {
		return e.Type == EventUpdate
	}, fallsThrough, action)
}

// Named returns the binding with its name replaced.
func (b *Binding) Named(name string) *Binding {
	b.name = name
	return b
}

// Name returns the binding name used for metrics and diagnostics.
func (b *Binding) Name() string {
	return b.name
}

// Fallthrough reports whether dispatch may continue after this binding.
func (b *Binding) Fallthrough() bool {
	return b.fallsThrough
}

// Matches evaluates the binding's predicate.
func (b *Binding) Matches(ev Event) bool {
	return b.match != nil && b.match(ev)
}

// Dispatch offers ev to this binding, running the action on a match.
func (b *Binding) Dispatch(ev Event) (Result, error) {
	if !b.Matches(ev) {
		return Unhandled, nil
	}
	return b.run(ev)
}

// run executes the action without consulting the predicate.
func (b *Binding) run(ev Event) (Result, error) {
	var err error
	if b.action == nil {
		err = ErrNilAction
	} else {
		err = b.action(ev)
	}

	if b.fallsThrough {
		return Fallthrough, err
	}
	return Handled, err
}
