package app

import (
	"errors"
	"fmt"

	"github.com/dshills/chessterm/internal/renderer/backend"
)

// initBoard brings up the board module. Nothing has been touched when it
// fails, so there is nothing to tear down.
func (app *Application) initBoard() error {
	log := app.logger.WithComponent("board")
	if !app.board.Initialize() {
		log.Error("board refused to initialize")
		return &InitError{Component: "board", Err: ErrBoardInit}
	}
	log.Debug("board initialized")
	return nil
}

// initTerminal enters raw mode and the alternate screen. The board is
// already up; the caller's teardown still deinitializes it on failure.
func (app *Application) initTerminal() error {
	log := app.logger.WithComponent("terminal")

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.backend == nil {
		b, err := app.newBackend()
		if err != nil {
			log.Error("terminal unavailable: %v", err)
			return &InitError{Component: "terminal", Err: err}
		}
		app.backend = b
	}

	if err := app.backend.Init(); err != nil {
		log.Error("terminal init failed: %v", err)
		return &InitError{Component: "terminal", Err: err}
	}

	app.terminalUp = true
	w, h := app.backend.Size()
	log.Debug("terminal initialized %dx%d", w, h)
	return nil
}

// teardown deinitializes the board and restores the terminal, each at most
// once. A terminal that cannot be restored leaves the process in an
// unusable state, so that failure panics.
func (app *Application) teardown() {
	app.boardOnce.Do(func() {
		app.board.Deinitialize()
		app.logger.WithComponent("board").Debug("board deinitialized")
	})

	app.mu.Lock()
	up := app.terminalUp
	app.terminalUp = false
	app.mu.Unlock()

	if !up {
		return
	}

	app.backendOnce.Do(func() {
		if err := app.backend.Shutdown(); err != nil && !errors.Is(err, backend.ErrClosed) {
			app.logger.WithComponent("terminal").Error("restore failed: %v", err)
			panic(fmt.Errorf("failed to clean up application: %w", NewComponentError("terminal", "restore", err)))
		}
		app.logger.WithComponent("terminal").Debug("terminal restored")
	})

	app.logStats()
}

func (app *Application) logStats() {
	s := app.metrics.Snapshot()
	app.logger.Info("loop finished: %d frames, %d inputs, avg frame %s, max frame %s",
		s.Frames, s.Inputs, s.AvgFrameTime, s.MaxFrameTime)

	if app.dispatchMetrics == nil {
		return
	}
	for _, bm := range app.dispatchMetrics.TopBindings(5) {
		app.logger.Debug("binding %s: %d runs, %d errors, %d panics, avg %s",
			bm.Name, bm.Invocations, bm.Errors, bm.Panics, bm.AverageDuration())
	}
}
