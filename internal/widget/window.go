package widget

import (
	"fmt"

	"github.com/dshills/chessterm/internal/renderer/backend"
	"github.com/dshills/chessterm/internal/renderer/core"
)

// Frame characters.
const (
	cornerTopLeft     = '┌'
	cornerTopRight    = '┐'
	cornerBottomLeft  = '└'
	cornerBottomRight = '┘'
	edgeHorizontal    = '─'
	edgeVertical      = '│'
	fill              = ' '
)

// Window is a rectangular surface with a titled frame. The chess board is
// a Window.
type Window struct {
	base
	frameStyle core.Style
	titleStyle core.Style
}

// Type implements Widget.
func (w *Window) Type() Type { return TypeBoard }

// Render implements Widget. The top edge carries the title left-justified
// after the corner; the body is Size.H-2 rows of blank interior.
func (w *Window) Render(b backend.Backend) error {
	d, err := w.handle.Get()
	if err != nil {
		return err
	}
	if !d.Visible {
		return nil
	}

	width, height := d.Size.W, d.Size.H
	titleWidth := core.StringWidth(d.Title)
	if width < titleWidth+2 || height < 2 {
		return fmt.Errorf("%w: %dx%d cannot hold title %q", ErrGeometry, width, height, d.Title)
	}

	x, y := d.Position.X, d.Position.Y
	right := x + width - 1
	bottom := y + height - 1

	b.SetCell(x, y, core.NewStyledCell(cornerTopLeft, w.frameStyle))
	col := x + 1 + backend.DrawString(b, x+1, y, d.Title, w.titleStyle)
	for ; col < right; col++ {
		b.SetCell(col, y, core.NewStyledCell(edgeHorizontal, w.frameStyle))
	}
	b.SetCell(right, y, core.NewStyledCell(cornerTopRight, w.frameStyle))

	for row := y + 1; row < bottom; row++ {
		b.SetCell(x, row, core.NewStyledCell(edgeVertical, w.frameStyle))
		for col := x + 1; col < right; col++ {
			b.SetCell(col, row, core.NewStyledCell(fill, w.frameStyle))
		}
		b.SetCell(right, row, core.NewStyledCell(edgeVertical, w.frameStyle))
	}

	b.SetCell(x, bottom, core.NewStyledCell(cornerBottomLeft, w.frameStyle))
	for col := x + 1; col < right; col++ {
		b.SetCell(col, bottom, core.NewStyledCell(edgeHorizontal, w.frameStyle))
	}
	b.SetCell(right, bottom, core.NewStyledCell(cornerBottomRight, w.frameStyle))

	return nil
}
