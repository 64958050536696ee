package widget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocAndUpdate(t *testing.T) {
	a := NewArena()
	h := a.Alloc(Data{Title: "x"})
	assert.True(t, h.Valid())

	require.NoError(t, h.Update(func(d *Data) { d.Size.W = 7 }))
	d, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, Data{Title: "x", Size: Size{W: 7}}, d)
}

func TestArenaGetIsSnapshot(t *testing.T) {
	h := NewArena().Alloc(Data{Title: "a"})
	d, _ := h.Get()
	d.Title = "b"

	again, _ := h.Get()
	assert.Equal(t, "a", again.Title)
}

func TestArenaRelease(t *testing.T) {
	a := NewArena()
	h := a.Alloc(Data{})
	a.Release(h.ID())

	_, err := h.Get()
	assert.ErrorIs(t, err, ErrUnknownWidget)
	assert.ErrorIs(t, h.Update(func(*Data) {}), ErrUnknownWidget)
	assert.Zero(t, a.Len())
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	assert.False(t, h.Valid())
	_, err := h.Get()
	assert.ErrorIs(t, err, ErrUnknownWidget)
	assert.ErrorIs(t, h.Update(func(*Data) {}), ErrUnknownWidget)
}

func TestArenaUnlocksAfterPanic(t *testing.T) {
	h := NewArena().Alloc(Data{})

	assert.Panics(t, func() {
		_ = h.Update(func(*Data) { panic("fault") })
	})

	require.NoError(t, h.Update(func(d *Data) { d.Title = "ok" }))
	d, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", d.Title)
}

func TestArenaConcurrentAccess(t *testing.T) {
	h := NewArena().Alloc(Data{})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = h.Update(func(d *Data) { d.Position.X++ })
		}()
		go func() {
			defer wg.Done()
			_, _ = h.Get()
		}()
	}
	wg.Wait()

	d, _ := h.Get()
	assert.Equal(t, 50, d.Position.X)
}
