package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dshills/chessterm/internal/board"
	"github.com/dshills/chessterm/internal/renderer/backend"
)

func TestRunMainSuccess(t *testing.T) {
	b := backend.NewNullBackend(40, 20)
	b.QueueKey(keyQ)

	var out bytes.Buffer
	ok := RunMain(Options{Local: true, Backend: b}, &out, nil)

	assert.True(t, ok)
	assert.Equal(t, "chessterm: starting local session\n", out.String())
}

func TestRunMainNotLocal(t *testing.T) {
	b := backend.NewNullBackend(40, 20)
	b.QueueKey(keyQ)

	var out bytes.Buffer
	assert.True(t, RunMain(Options{Backend: b}, &out, nil))
	assert.Empty(t, out.String())
}

func TestRunMainBoardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mb := NewMockModule(ctrl)
	mb.EXPECT().Initialize().Return(false)

	var out bytes.Buffer
	ok := RunMain(Options{Board: mb, Backend: backend.NewNullBackend(40, 20)}, &out, nil)

	assert.False(t, ok)
	assert.Equal(t, "[ERROR] Board initialization failed\n", out.String())
}

func TestRunMainTerminalFailure(t *testing.T) {
	var deinit int
	b := backend.NewNullBackend(40, 20)
	b.FailInit(backend.ErrNotTerminal)

	var out bytes.Buffer
	ok := RunMain(Options{
		Board:   board.Funcs{Deinit: func() { deinit++ }},
		Backend: b,
	}, &out, nil)

	assert.False(t, ok)
	assert.Equal(t, 1, deinit)
	assert.Equal(t, "[ERROR] Terminal initialization failed: backend: not a terminal\n", out.String())
}

func TestRunMainReadyHook(t *testing.T) {
	b := backend.NewNullBackend(40, 20)

	var got *Application
	ok := RunMain(Options{Backend: b}, &bytes.Buffer{}, func(a *Application) {
		got = a
		a.Stop()
	})

	assert.True(t, ok)
	assert.NotNil(t, got)
}

func TestRunMainConfigError(t *testing.T) {
	var out bytes.Buffer
	ok := RunMain(Options{ConfigPath: "chessterm.json"}, &out, nil)

	assert.False(t, ok)
	assert.Contains(t, out.String(), "[ERROR] config initialization failed")
}
