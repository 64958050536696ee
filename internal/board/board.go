// Package board is the boundary to the chess board module. The frame loop
// initializes it before touching the terminal and deinitializes it exactly
// once on every exit path.
package board

//go:generate mockgen -package=app -destination=../app/mock_board_test.go github.com/dshills/chessterm/internal/board Module

// Module is the board module's lifecycle surface. Implementations are not
// reentrant and must be driven from the frame loop's goroutine.
type Module interface {
	// Initialize prepares the board. It reports false when the board
	// cannot be brought up.
	Initialize() bool

	// Deinitialize releases the board.
	Deinitialize()
}

// Funcs adapts a pair of functions to Module.
type Funcs struct {
	Init   func() bool
	Deinit func()
}

// Initialize calls Init. A nil Init succeeds.
func (f Funcs) Initialize() bool {
	if f.Init == nil {
		return true
	}
	return f.Init()
}

// Deinitialize calls Deinit if set.
func (f Funcs) Deinitialize() {
	if f.Deinit != nil {
		f.Deinit()
	}
}
