package widget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chessterm/internal/dispatcher"
	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/backend"
	"github.com/dshills/chessterm/internal/renderer/core"
)

func TestBuilderDefaults(t *testing.T) {
	for _, typ := range []Type{TypeGlobalInput, TypeBoard} {
		t.Run(typ.String(), func(t *testing.T) {
			w := NewBuilder(typ).Build(NewArena())
			assert.Equal(t, typ, w.Type())

			h, ok := w.DataHandle()
			require.True(t, ok)
			d, err := h.Get()
			require.NoError(t, err)
			assert.Equal(t, Data{}, d)
		})
	}
}

func TestBuilderConfigured(t *testing.T) {
	w := NewBuilder(TypeBoard).
		Size(12, 6).
		Position(3, 4).
		Title("Board").
		Visible(true).
		Build(NewArena())

	h, ok := w.DataHandle()
	require.True(t, ok)
	d, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, Data{
		Size:     Size{W: 12, H: 6},
		Position: Position{X: 3, Y: 4},
		Title:    "Board",
		Visible:  true,
	}, d)
}

func TestBuilderIsReusable(t *testing.T) {
	arena := NewArena()
	b := NewBuilder(TypeBoard).Size(10, 4)
	w1 := b.Title("one").Build(arena)
	w2 := b.Title("two").Build(arena)

	h1, _ := w1.DataHandle()
	h2, _ := w2.DataHandle()
	d1, _ := h1.Get()
	d2, _ := h2.Get()
	assert.Equal(t, "one", d1.Title)
	assert.Equal(t, "two", d2.Title)
	assert.NotEqual(t, h1.ID(), h2.ID())
	assert.Equal(t, 2, arena.Len())
}

func TestNullWidget(t *testing.T) {
	w := NewBuilder(TypeNone).Size(10, 5).Build(NewArena())
	assert.Equal(t, TypeNone, w.Type())

	_, ok := w.DataHandle()
	assert.False(t, ok)

	w.AttachDispatcher(dispatcher.NewWithDefaults())
	assert.ErrorIs(t, w.HandleEvent(dispatcher.UpdateEvent()), ErrNoOperation)
	assert.ErrorIs(t, w.Render(backend.NewNullBackend(10, 5)), ErrNoOperation)
}

func TestHandleEventWithoutDispatcher(t *testing.T) {
	for _, typ := range []Type{TypeGlobalInput, TypeBoard} {
		w := NewBuilder(typ).Build(NewArena())
		assert.NoError(t, w.HandleEvent(dispatcher.UpdateEvent()))
		assert.NoError(t, w.HandleEvent(dispatcher.KeyEvent(key.NewRuneEvent('q', key.ModNone))))
	}
}

func TestAttachDispatcherReplaces(t *testing.T) {
	w := NewBuilder(TypeGlobalInput).Build(NewArena())

	var calls []string
	first := dispatcher.NewWithDefaults()
	first.BindUpdate(false, func() error { calls = append(calls, "first"); return nil })
	second := dispatcher.NewWithDefaults()
	second.BindUpdate(false, func() error { calls = append(calls, "second"); return nil })

	w.AttachDispatcher(first)
	w.AttachDispatcher(second)
	require.NoError(t, w.HandleEvent(dispatcher.UpdateEvent()))
	assert.Equal(t, []string{"second"}, calls)
}

func TestHandleEventPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	w := NewBuilder(TypeBoard).Build(NewArena())
	d := dispatcher.NewWithDefaults()
	d.BindUpdate(false, func() error { return boom })
	w.AttachDispatcher(d)

	assert.ErrorIs(t, w.HandleEvent(dispatcher.UpdateEvent()), boom)
}

func TestWidgetIsolation(t *testing.T) {
	arena := NewArena()
	left := NewBuilder(TypeBoard).Size(10, 4).Position(0, 0).Build(arena)
	right := NewBuilder(TypeBoard).Size(10, 4).Position(20, 0).Build(arena)

	right2, _ := right.DataHandle()
	before, err := right2.Get()
	require.NoError(t, err)

	lh, _ := left.DataHandle()
	d := dispatcher.NewWithDefaults()
	d.BindKey(key.NewSpecialEvent(key.KeyDown, key.ModNone), false, func() error {
		return lh.Update(func(data *Data) {
			data.Position.Y++
			data.Title = "moved"
		})
	})
	left.AttachDispatcher(d)

	ev := dispatcher.KeyEvent(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	require.NoError(t, left.HandleEvent(ev))
	require.NoError(t, right.HandleEvent(ev))

	ld, _ := lh.Get()
	assert.Equal(t, 1, ld.Position.Y)
	assert.Equal(t, "moved", ld.Title)

	after, _ := right2.Get()
	assert.Equal(t, before, after)
}

func TestRenderGeometry(t *testing.T) {
	b := backend.NewNullBackend(10, 5)
	w := NewBuilder(TypeBoard).Size(10, 5).Position(0, 0).Title("Hi").Visible(true).Build(NewArena())

	require.NoError(t, w.Render(b))

	lines := b.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "┌Hi──────┐", lines[0])
	for _, line := range lines[1:4] {
		assert.Equal(t, "│        │", line)
	}
	assert.Equal(t, "└────────┘", lines[4])

	for _, line := range lines {
		assert.Equal(t, 10, core.StringWidth(line))
	}
}

func TestRenderAtPosition(t *testing.T) {
	b := backend.NewNullBackend(8, 5)
	w := NewBuilder(TypeBoard).Size(4, 3).Position(2, 1).Visible(true).Build(NewArena())

	require.NoError(t, w.Render(b))

	lines := b.Lines()
	assert.Equal(t, "        ", lines[0])
	assert.Equal(t, "  ┌──┐  ", lines[1])
	assert.Equal(t, "  │  │  ", lines[2])
	assert.Equal(t, "  └──┘  ", lines[3])
	assert.Equal(t, "        ", lines[4])
}

func TestRenderMinimalFrame(t *testing.T) {
	b := backend.NewNullBackend(2, 2)
	w := NewBuilder(TypeBoard).Size(2, 2).Visible(true).Build(NewArena())

	require.NoError(t, w.Render(b))
	assert.Equal(t, []string{"┌┐", "└┘"}, b.Lines())
}

func TestRenderGeometryErrors(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		title string
	}{
		{"title too wide", 3, 5, "Hi"},
		{"too short", 10, 1, ""},
		{"zero", 0, 0, ""},
		{"wide runes", 5, 3, "棋盘"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := backend.NewNullBackend(10, 5)
			w := NewBuilder(TypeBoard).Size(tt.w, tt.h).Title(tt.title).Visible(true).Build(NewArena())
			assert.ErrorIs(t, w.Render(b), ErrGeometry)
		})
	}
}

func TestRenderInvisible(t *testing.T) {
	b := backend.NewNullBackend(10, 5)
	w := NewBuilder(TypeBoard).Size(1, 1).Title("too long").Build(NewArena())

	require.NoError(t, w.Render(b))
	for _, line := range b.Lines() {
		assert.Equal(t, "          ", line)
	}
}

func TestRenderTitleStyle(t *testing.T) {
	red := core.DefaultStyle().WithForeground(core.ColorFromRGB(255, 0, 0))
	b := backend.NewNullBackend(10, 3)
	w := NewBuilder(TypeBoard).Size(10, 3).Title("Hi").TitleStyle(red).Visible(true).Build(NewArena())

	require.NoError(t, w.Render(b))
	assert.Equal(t, red, b.GetCell(1, 0).Style)
	assert.Equal(t, core.DefaultStyle(), b.GetCell(0, 0).Style)
}

func TestGlobalInputRendersNothing(t *testing.T) {
	b := backend.NewNullBackend(4, 2)
	w := NewBuilder(TypeGlobalInput).Size(4, 2).Visible(true).Build(NewArena())

	require.NoError(t, w.Render(b))
	assert.Equal(t, []string{"    ", "    "}, b.Lines())
}
