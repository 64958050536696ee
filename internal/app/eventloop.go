package app

import (
	"errors"
	"runtime"
	"time"

	"github.com/dshills/chessterm/internal/dispatcher"
	"github.com/dshills/chessterm/internal/renderer/backend"
)

// eventLoop repeats render, poll and broadcast until the run-state is
// cleared. A panic outside a binding aborts the loop as an error.
func (app *Application) eventLoop() (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			err = NewRecoveredPanicError("frame loop", r, string(stack[:n]))
			app.logger.Error("%v", err)
		}
	}()

	log := app.logger.WithComponent("loop")
	if !app.runState.Running() {
		log.Info("stopped before first frame")
		return nil
	}

	for {
		if err := app.renderFrame(); err != nil {
			log.Error("render: %v", err)
			return err
		}

		ev, err := app.backend.PollEvent()
		if err != nil {
			log.Error("read event: %v", err)
			return NewComponentError("terminal", "read event", err)
		}

		if err := app.handleBackendEvent(ev); err != nil {
			log.Error("dispatch: %v", err)
			return err
		}

		if !app.runState.Running() {
			app.backend.Show()
			log.Info("run-state cleared, leaving loop")
			return nil
		}
	}
}

// renderFrame clears the surface, renders every widget and flushes.
func (app *Application) renderFrame() error {
	start := time.Now()
	defer func() { app.metrics.RecordFrame(time.Since(start)) }()

	app.backend.Clear()
	for _, w := range app.widgets {
		if err := w.Render(app.backend); err != nil {
			return NewComponentError("widget", "render "+w.Type().String(), err)
		}
	}
	app.backend.Show()
	return nil
}

// handleBackendEvent broadcasts Update, then the key if there is one.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	start := time.Now()
	defer func() { app.metrics.RecordInput(time.Since(start)) }()

	switch ev.Type {
	case backend.EventResize:
		app.logger.WithComponent("loop").Debug("resize %dx%d", ev.Width, ev.Height)
	case backend.EventInterrupt:
		app.logger.WithComponent("loop").Debug("wake-up")
	}

	if err := app.broadcast(dispatcher.UpdateEvent()); err != nil {
		return err
	}

	if ev.Type != backend.EventKey {
		return nil
	}
	return app.broadcast(dispatcher.KeyEvent(ev.Key))
}

// broadcast offers ev to every widget in order. The first error stops the
// broadcast.
func (app *Application) broadcast(ev dispatcher.Event) error {
	for _, w := range app.widgets {
		if err := w.HandleEvent(ev); err != nil {
			var pe *dispatcher.PanicError
			if errors.As(err, &pe) {
				return &RecoveredPanicError{
					Source: "binding " + pe.Binding,
					Value:  pe.Value,
					Stack:  pe.Stack,
					Cause:  err,
				}
			}
			return NewComponentError("dispatcher", ev.String()+" to "+w.Type().String(), err)
		}
	}
	return nil
}
