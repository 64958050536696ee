package dispatcher

import (
	"runtime"
	"time"

	"github.com/dshills/chessterm/internal/input/key"
)

// Dispatcher is an insertion-ordered chain of bindings owned by one widget.
// It is not safe for concurrent use; the frame loop drives it from a
// single goroutine.
type Dispatcher struct {
	bindings []*Binding
	config   Config
	metrics  *Metrics
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{config: config}

	switch {
	case config.Metrics != nil:
		d.metrics = config.Metrics
	case config.EnableMetrics:
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Bind appends a binding. Bindings are tried in the order they were bound.
func (d *Dispatcher) Bind(b *Binding) *Dispatcher {
	d.bindings = append(d.bindings, b)
	return d
}

// BindKey appends a key binding.
func (d *Dispatcher) BindKey(ev key.Event, fallsThrough bool, action Action) *Binding {
	b := OnKey(ev, fallsThrough, action)
	d.Bind(b)
	return b
}

// BindUpdate appends an update binding.
func (d *Dispatcher) BindUpdate(fallsThrough bool, action Action) *Binding {
	b := OnUpdate(fallsThrough, action)
	d.Bind(b)
	return b
}

// Len returns the number of bindings.
func (d *Dispatcher) Len() int {
	return len(d.bindings)
}

// Bindings returns a copy of the bindings in dispatch order.
func (d *Dispatcher) Bindings() []*Binding {
	out := make([]*Binding, len(d.bindings))
	copy(out, d.bindings)
	return out
}

// Dispatch offers ev to the bindings in registration order.
func (d *Dispatcher) Dispatch(ev Event) error {
	for _, b := range d.bindings {
		result, err := d.offer(b, ev)
		switch result {
		case Unhandled:
			continue
		case Handled:
			return err
		case Fallthrough:
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// offer runs one binding, with panic recovery and metrics as configured.
func (d *Dispatcher) offer(b *Binding, ev Event) (result Result, err error) {
	if !b.Matches(ev) {
		return Unhandled, nil
	}

	start := time.Now()
	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)

				err = &PanicError{Binding: b.Name(), Value: r, Stack: string(stack[:n])}
				result = Handled
				if b.Fallthrough() {
					result = Fallthrough
				}

				if d.metrics != nil {
					d.metrics.RecordPanic(b.Name())
				}
			}
		}()
	}

	result, err = b.run(ev)

	if d.metrics != nil {
		d.metrics.RecordInvoke(b.Name(), time.Since(start), err)
	}
	return result, err
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
