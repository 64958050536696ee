package app

import (
	"github.com/dshills/chessterm/internal/dispatcher"
	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
	"github.com/dshills/chessterm/internal/widget"
)

// buildWidgets creates the global-input widget and the board window, in
// that broadcast order, and binds their default keys.
func (app *Application) buildWidgets() {
	cfg := dispatcher.DefaultConfig()
	if app.opts.Debug || app.logger.Level() == LogLevelDebug {
		app.dispatchMetrics = dispatcher.NewMetrics()
		cfg = cfg.WithSharedMetrics(app.dispatchMetrics)
	}

	app.global = widget.NewBuilder(widget.TypeGlobalInput).Build(app.arena)
	app.globalDispatcher = dispatcher.New(cfg)
	app.bindGlobal(app.globalDispatcher)
	app.global.AttachDispatcher(app.globalDispatcher)

	bc := app.config.Board
	app.boardWin = widget.NewBuilder(widget.TypeBoard).
		Size(bc.Width, bc.Height).
		Position(bc.X, bc.Y).
		Title(bc.Title).
		Visible(bc.Visible).
		TitleStyle(core.DefaultStyle().WithForeground(app.config.TitleColor()).Bold()).
		Build(app.arena)
	app.boardDispatcher = dispatcher.New(cfg)
	if app.config.Keys.MoveEnabled {
		h, _ := app.boardWin.DataHandle()
		app.bindMoves(app.boardDispatcher, h)
	}
	app.boardWin.AttachDispatcher(app.boardDispatcher)

	app.widgets = []widget.Widget{app.global, app.boardWin}
}

// bindGlobal registers the key trace, the frame counter and the quit key.
func (app *Application) bindGlobal(d *dispatcher.Dispatcher) {
	log := app.logger.WithComponent("input")

	d.Bind(dispatcher.NewEventBinding("key-trace", func(e dispatcher.Event) bool {
		return e.Type == dispatcher.EventKey
	}, true, func(e dispatcher.Event) error {
		log.Debug("key %s", e.Key)
		return nil
	}))

	quit := app.config.QuitKey()
	runState := app.runState
	d.BindKey(quit, false, func() error {
		if runState.Stop() {
			log.Info("quit key %s pressed", quit)
		}
		return nil
	}).Named("quit")
}

// bindMoves binds the arrow keys to move the board window by one cell.
// The window stays on screen when it fits.
func (app *Application) bindMoves(d *dispatcher.Dispatcher, h widget.Handle) {
	moves := []struct {
		name   string
		k      key.Key
		dx, dy int
	}{
		{"move-up", key.KeyUp, 0, -1},
		{"move-down", key.KeyDown, 0, 1},
		{"move-left", key.KeyLeft, -1, 0},
		{"move-right", key.KeyRight, 1, 0},
	}

	for _, m := range moves {
		dx, dy := m.dx, m.dy
		d.BindKey(key.NewSpecialEvent(m.k, key.ModNone), true, func() error {
			return app.moveBoard(h, dx, dy)
		}).Named(m.name)
	}
}

// moveBoard shifts the window, keeping it inside the screen when it fits.
func (app *Application) moveBoard(h widget.Handle, dx, dy int) error {
	sw, sh := app.backend.Size()
	return h.Update(func(d *widget.Data) {
		d.Position.X = clamp(d.Position.X+dx, 0, sw-d.Size.W)
		d.Position.Y = clamp(d.Position.Y+dy, 0, sh-d.Size.H)
	})
}

// clamp limits v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
