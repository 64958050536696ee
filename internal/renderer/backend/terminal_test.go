package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(screen)
	require.NoError(t, term.Init())
	screen.SetSize(w, h)
	return term, screen
}

// nextKey polls past resize and other non-key events.
func nextKey(t *testing.T, term *Terminal) key.Event {
	t.Helper()
	for i := 0; i < 10; i++ {
		ev, err := term.PollEvent()
		require.NoError(t, err)
		if ev.Type == EventKey {
			return ev.Key
		}
	}
	t.Fatal("no key event received")
	return key.Event{}
}

func TestTerminalRendersCells(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 3)
	defer term.Shutdown()

	DrawString(term, 2, 1, "ok", core.DefaultStyle().Bold())
	term.Show()

	cells, w, _ := screen.GetContents()
	require.Equal(t, 10, w)
	assert.Equal(t, []rune{'o'}, cells[1*w+2].Runes)
	assert.Equal(t, []rune{'k'}, cells[1*w+3].Runes)
}

func TestTerminalPollKey(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 3)
	defer term.Shutdown()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.Equal(t, key.NewRuneEvent('q', key.ModNone), nextKey(t, term))

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	assert.Equal(t, key.NewSpecialEvent(key.KeyLeft, key.ModNone), nextKey(t, term))
}

func TestTerminalPostEvent(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 3)
	defer term.Shutdown()

	require.NoError(t, term.PostEvent(Event{Type: EventInterrupt}))
	for i := 0; i < 10; i++ {
		ev, err := term.PollEvent()
		require.NoError(t, err)
		if ev.Type == EventInterrupt {
			return
		}
	}
	t.Fatal("interrupt not received")
}

func TestTerminalShutdownOnce(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 3)
	require.NoError(t, term.Shutdown())
	assert.ErrorIs(t, term.Shutdown(), ErrClosed)
}

func TestTerminalShutdownBeforeInit(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen(""))
	assert.ErrorIs(t, term.Shutdown(), ErrNotInitialized)
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), key.NewRuneEvent('c', key.ModCtrl)},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModShift)},
		{"alt arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt), key.NewSpecialEvent(key.KeyUp, key.ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertKey(tt.ev))
		})
	}
}

func TestConvertToTcellKeyRoundTrip(t *testing.T) {
	for _, ev := range []key.Event{
		key.NewRuneEvent('q', key.ModNone),
		key.NewRuneEvent('c', key.ModCtrl),
		key.NewSpecialEvent(key.KeyF5, key.ModNone),
		key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
	} {
		t.Run(ev.String(), func(t *testing.T) {
			k, r, m := convertToTcellKey(ev)
			assert.Equal(t, ev, convertKey(tcell.NewEventKey(k, r, m)))
		})
	}
}

func TestConvertStyle(t *testing.T) {
	s := convertStyle(core.DefaultStyle().WithForeground(core.ColorFromIndex(2)).Bold())
	fg, bg, attrs := s.Decompose()
	assert.Equal(t, tcell.PaletteColor(2), fg)
	assert.Equal(t, tcell.ColorDefault, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
}
