// Package app runs the chessterm frame loop. It owns the board module and
// terminal lifecycles, the widget set and the run-state, and converts every
// failure into a diagnostic for the embedding caller.
package app

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/chessterm/internal/board"
	"github.com/dshills/chessterm/internal/config"
	"github.com/dshills/chessterm/internal/dispatcher"
	"github.com/dshills/chessterm/internal/renderer/backend"
	"github.com/dshills/chessterm/internal/widget"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config

	// Local marks a local session. It only changes the startup banner.
	Local bool

	// Debug enables debug logging to a file in the temp directory and
	// dispatch metrics.
	Debug bool

	// LogLevel overrides log.level from the config.
	LogLevel string

	// LogOutput overrides log.file.
	LogOutput io.Writer

	// Board is the board module. Defaults to an in-process board.
	Board board.Module

	// Backend is the terminal service. Defaults to a tcell terminal,
	// created when the loop starts.
	Backend backend.Backend
}

// Application is the frame loop and everything it drives.
type Application struct {
	mu sync.Mutex

	opts    Options
	config  *config.Config
	logger  *Logger
	logFile io.Closer
	session string

	board      board.Module
	backend    backend.Backend
	newBackend func() (backend.Backend, error)

	arena    *widget.Arena
	widgets  []widget.Widget
	global   widget.Widget
	boardWin widget.Widget

	globalDispatcher *dispatcher.Dispatcher
	boardDispatcher  *dispatcher.Dispatcher
	dispatchMetrics  *dispatcher.Metrics

	runState *RunState
	metrics  *Metrics

	running     atomic.Bool
	started     atomic.Bool
	terminalUp  bool
	boardOnce   sync.Once
	backendOnce sync.Once
}

// New creates an Application. It loads configuration, opens the log and
// builds the widget set; neither the board nor the terminal is touched.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:     opts,
		config:   cfg,
		session:  uuid.NewString(),
		board:    opts.Board,
		backend:  opts.Backend,
		arena:    widget.NewArena(),
		runState: NewRunState(),
		metrics:  NewMetrics(),
		newBackend: func() (backend.Backend, error) {
			t, err := backend.NewTerminal()
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}

	if app.board == nil {
		app.board = board.NewLocal()
	}

	if err := app.setupLogger(); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	app.buildWidgets()

	return app, nil
}

// setupLogger picks the log destination: explicit output, then log.file,
// then a temp file in debug mode, otherwise nowhere.
func (app *Application) setupLogger() error {
	level := ParseLogLevel(app.config.Log.Level)
	if app.opts.LogLevel != "" {
		level = ParseLogLevel(app.opts.LogLevel)
	}
	if app.opts.Debug {
		level = LogLevelDebug
	}

	output := app.opts.LogOutput
	if output == nil {
		path := app.config.Log.File
		if path == "" && app.opts.Debug {
			path = filepath.Join(os.TempDir(), "chessterm.log")
		}
		if path != "" {
			f, err := OpenLogFile(path)
			if err != nil {
				return err
			}
			app.logFile = f
			output = f
		}
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = output
	app.logger = NewLogger(cfg).WithField("session", app.session)
	return nil
}

// Run executes the frame loop until the run-state is cleared or an error
// aborts it. Teardown has completed when Run returns. An Application runs
// at most once; later calls return ErrAlreadyRan.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if !app.started.CompareAndSwap(false, true) {
		return ErrAlreadyRan
	}

	if err := app.initBoard(); err != nil {
		return err
	}
	defer app.teardown()

	if err := app.initTerminal(); err != nil {
		return err
	}

	return app.eventLoop()
}

// Stop clears the run-state and wakes a loop blocked on input. Safe to
// call from any goroutine, including signal handlers.
func (app *Application) Stop() {
	if app.runState.Stop() {
		app.logger.Info("stop requested")
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.terminalUp {
		if err := app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt}); err != nil {
			app.logger.Debug("wake-up not delivered: %v", err)
		}
	}
}

// Close releases the widgets' display state and the log file. Call it
// after Run has returned.
func (app *Application) Close() error {
	for _, w := range app.widgets {
		if h, ok := w.DataHandle(); ok && h.Valid() {
			app.arena.Release(h.ID())
		}
	}

	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the per-run session identifier.
func (app *Application) Session() string {
	return app.session
}

// Config returns the configuration in use.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// RunState returns the loop's run-state.
func (app *Application) RunState() *RunState {
	return app.runState
}

// Widgets returns the widget set in broadcast order.
func (app *Application) Widgets() []widget.Widget {
	out := make([]widget.Widget, len(app.widgets))
	copy(out, app.widgets)
	return out
}

// BoardHandle returns the handle to the board window's state.
func (app *Application) BoardHandle() widget.Handle {
	h, _ := app.boardWin.DataHandle()
	return h
}

// GlobalDispatcher returns the global-input widget's dispatcher.
func (app *Application) GlobalDispatcher() *dispatcher.Dispatcher {
	return app.globalDispatcher
}

// BoardDispatcher returns the board window's dispatcher.
func (app *Application) BoardDispatcher() *dispatcher.Dispatcher {
	return app.boardDispatcher
}

// Metrics returns the frame loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// DispatchMetrics returns the binding metrics, or nil when disabled.
func (app *Application) DispatchMetrics() *dispatcher.Metrics {
	return app.dispatchMetrics
}
