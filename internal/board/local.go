package board

import (
	"strconv"
	"strings"
	"sync"
)

// Size is the number of ranks and files.
const Size = 8

// Piece is a board square's occupant in FEN notation; 0 is empty.
type Piece byte

// Local is an in-process board module holding the current position.
type Local struct {
	mu          sync.Mutex
	squares     [Size][Size]Piece
	initialized bool
}

// NewLocal creates an uninitialized local board.
func NewLocal() *Local {
	return &Local{}
}

var backRank = [Size]Piece{'r', 'n', 'b', 'q', 'k', 'b', 'n', 'r'}

// Initialize sets up the starting position. It reports false if the board
// is already initialized.
func (l *Local) Initialize() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return false
	}

	l.squares = [Size][Size]Piece{}
	for file := range Size {
		l.squares[0][file] = backRank[file]
		l.squares[1][file] = 'p'
		l.squares[6][file] = 'P'
		l.squares[7][file] = backRank[file] - 'a' + 'A'
	}
	l.initialized = true
	return true
}

// Deinitialize clears the board.
func (l *Local) Deinitialize() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.squares = [Size][Size]Piece{}
	l.initialized = false
}

// Initialized reports whether the board is up.
func (l *Local) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

// At returns the piece on the given rank row (0 is rank 8) and file.
func (l *Local) At(row, file int) Piece {
	l.mu.Lock()
	defer l.mu.Unlock()

	if row < 0 || row >= Size || file < 0 || file >= Size {
		return 0
	}
	return l.squares[row][file]
}

// Placement returns the piece placement field of the position's FEN.
func (l *Local) Placement() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := range Size {
			p := l.squares[row][file]
			if p == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(byte(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}
