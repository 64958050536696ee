package backend

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal I/O.
type Terminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTerminal creates a terminal backend on the process's controlling tty.
// Returns ErrNotTerminal when stdin or stdout is redirected.
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a backend over an existing tcell screen
// (for example a tcell.SimulationScreen in tests).
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init enters raw mode and the alternate screen and hides the cursor.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.initialized = true
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Shutdown clears the screen, shows the cursor and restores the terminal.
func (t *Terminal) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return ErrNotInitialized
	}
	if t.finalized {
		return ErrClosed
	}
	t.finalized = true

	t.screen.Clear()
	t.screen.Show()
	t.screen.Fini()
	return nil
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// PollEvent blocks for the next tcell event. Mouse, paste and focus events
// are reported as EventNone.
func (t *Terminal) PollEvent() (Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{}, ErrClosed
	}

	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e)
		if k.Key == key.KeyNone {
			return Event{Type: EventNone}, nil
		}
		return KeyEvent(k), nil

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, nil

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}, nil

	case *tcell.EventError:
		return Event{}, fmt.Errorf("terminal input: %w", e)

	default:
		return Event{Type: EventNone}, nil
	}
}

// PostEvent posts a synthetic event. Key events are converted back to tcell
// keys; every other type is posted as an interrupt.
func (t *Terminal) PostEvent(ev Event) error {
	if ev.Type == EventKey {
		k, r, m := convertToTcellKey(ev.Key)
		return t.screen.PostEvent(tcell.NewEventKey(k, r, m))
	}
	return t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// convertStyle converts a core.Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if fg := convertColor(s.Foreground); fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg := convertColor(s.Background); bg != tcell.ColorDefault {
		style = style.Background(bg)
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey converts a tcell key event. tcell reports Ctrl+letter as the
// ASCII control codes; those become the lowercase rune with ModCtrl.
// Unknown keys convert to KeyNone.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift))
	}

	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods)
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent(rune('a'+int(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	}
	return key.Event{}
}

// convertToTcellKey is the inverse of convertKey.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mods := convertToTcellMod(ev.Modifiers)

	if ev.Key == key.KeyRune {
		if ev.Modifiers.Has(key.ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mods
		}
		return tcell.KeyRune, ev.Rune, mods
	}

	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace2 {
			return tk, 0, mods
		}
	}
	return tcell.KeyRune, 0, mods
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts a modifier set to a tcell modifier mask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}
