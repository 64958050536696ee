// Package backend provides the terminal I/O service used by the frame loop.
//
// A Backend owns raw mode, the alternate screen, the cursor and the cell
// grid, and is the single blocking input source. Terminal implements it on
// tcell; NullBackend is an in-memory implementation for tests.
package backend

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
)

// Backend errors.
var (
	// ErrClosed indicates the backend has been shut down.
	ErrClosed = errors.New("backend: closed")

	// ErrNotTerminal indicates stdin or stdout is not a terminal.
	ErrNotTerminal = errors.New("backend: not a terminal")

	// ErrNotInitialized indicates Init has not been called.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// EventType identifies the type of terminal event.
type EventType int

const (
	// EventNone is an event with no input-device meaning.
	EventNone EventType = iota
	// EventKey is a keyboard event.
	EventKey
	// EventResize reports new terminal dimensions.
	EventResize
	// EventInterrupt is a synthetic wake-up posted with PostEvent.
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent returns an EventKey wrapping ev.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// Backend defines the terminal I/O service.
type Backend interface {
	// Init enters raw mode and the alternate screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal: shows the cursor, leaves the
	// alternate screen and disables raw mode.
	Shutdown() error

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the drawing surface.
	Clear()

	// Show flushes pending drawing to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent blocks until the next terminal event is available.
	PollEvent() (Event, error)

	// PostEvent queues a synthetic event, waking a blocked PollEvent.
	PostEvent(ev Event) error
}

// DrawString writes s starting at (x, y) and returns the number of columns
// used. Wide runes occupy two columns.
func DrawString(b Backend, x, y int, s string, style core.Style) int {
	col := x
	for _, r := range s {
		cell := core.NewStyledCell(r, style)
		b.SetCell(col, y, cell)
		col += max(cell.Width, 1)
	}
	return col - x
}

type pollResult struct {
	ev  Event
	err error
}

// NullBackend is an in-memory backend for testing. Events are scripted with
// QueueEvent and QueueError and consumed in order by PollEvent, which blocks
// when the script is exhausted.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool

	initErr     error
	shutdownErr error

	initCalls     int
	shutdownCalls int
	showCalls     int
	clearCalls    int

	events chan pollResult
	closed chan struct{}
	once   sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan pollResult, 256),
		closed: make(chan struct{}),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

// FailInit makes the next Init return err.
func (b *NullBackend) FailInit(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initErr = err
}

// FailShutdown makes Shutdown return err.
func (b *NullBackend) FailShutdown(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdownErr = err
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initCalls++
	if b.initErr != nil {
		return b.initErr
	}
	b.cursorVisible = false
	return nil
}

func (b *NullBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shutdownCalls++
	b.cursorVisible = true
	b.once.Do(func() { close(b.closed) })
	return b.shutdownErr
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
// Returns an empty cell for positions outside the screen.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearCalls++
	b.allocate()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.showCalls++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() (Event, error) {
	select {
	case r := <-b.events:
		return r.ev, r.err
	case <-b.closed:
		return Event{}, ErrClosed
	}
}

func (b *NullBackend) PostEvent(ev Event) error {
	select {
	case b.events <- pollResult{ev: ev}:
		return nil
	case <-b.closed:
		return ErrClosed
	default:
		return errors.New("backend: event queue full")
	}
}

// QueueEvent scripts an event for PollEvent.
func (b *NullBackend) QueueEvent(ev Event) {
	b.events <- pollResult{ev: ev}
}

// QueueKey scripts a key press for PollEvent.
func (b *NullBackend) QueueKey(ev key.Event) {
	b.QueueEvent(KeyEvent(ev))
}

// QueueError scripts an input failure for PollEvent.
func (b *NullBackend) QueueError(err error) {
	b.events <- pollResult{err: err}
}

// Lines returns the screen contents as one string per row.
func (b *NullBackend) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, b.height)
	var sb strings.Builder
	for y, row := range b.cells {
		sb.Reset()
		for _, c := range row {
			if c.Width == 0 && c.Rune == 0 {
				continue
			}
			sb.WriteRune(c.Rune)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Calls reports how many times Init, Shutdown and Show have been called.
func (b *NullBackend) Calls() (inits, shutdowns, shows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initCalls, b.shutdownCalls, b.showCalls
}

// ClearCalls reports how many times Clear has been called.
func (b *NullBackend) ClearCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clearCalls
}

// CursorPosition returns the current cursor state.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}
