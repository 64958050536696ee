package widget

import "github.com/dshills/chessterm/internal/renderer/core"

// Type tags the widget variant a Builder produces.
type Type uint8

const (
	// TypeNone builds a Null widget.
	TypeNone Type = iota
	// TypeGlobalInput builds a GlobalInput widget.
	TypeGlobalInput
	// TypeBoard builds a Window.
	TypeBoard
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeGlobalInput:
		return "GlobalInput"
	case TypeBoard:
		return "Board"
	default:
		return "None"
	}
}

// Builder accumulates widget configuration. Each setter returns a new
// Builder, so a partially configured builder can be reused.
type Builder struct {
	typ        Type
	data       Data
	frameStyle core.Style
	titleStyle core.Style
}

// NewBuilder starts a builder for the given variant. Without further
// calls the widget has size (0,0), position (0,0), no title and is hidden.
func NewBuilder(t Type) Builder {
	return Builder{
		typ:        t,
		frameStyle: core.DefaultStyle(),
		titleStyle: core.DefaultStyle(),
	}
}

// Size sets the width and height.
func (b Builder) Size(w, h int) Builder {
	b.data.Size = Size{W: w, H: h}
	return b
}

// Position sets the screen origin.
func (b Builder) Position(x, y int) Builder {
	b.data.Position = Position{X: x, Y: y}
	return b
}

// Title sets the title shown in the top edge.
func (b Builder) Title(title string) Builder {
	b.data.Title = title
	return b
}

// Visible sets whether the widget is drawn.
func (b Builder) Visible(visible bool) Builder {
	b.data.Visible = visible
	return b
}

// TitleStyle sets the style used for the title text.
func (b Builder) TitleStyle(s core.Style) Builder {
	b.titleStyle = s
	return b
}

// FrameStyle sets the style used for the frame.
func (b Builder) FrameStyle(s core.Style) Builder {
	b.frameStyle = s
	return b
}

// Build allocates the widget's state in arena and returns the widget.
// Geometry is not checked here; a window too small for its title fails
// at render time with ErrGeometry.
func (b Builder) Build(arena *Arena) Widget {
	switch b.typ {
	case TypeGlobalInput:
		return &GlobalInput{base: base{handle: arena.Alloc(b.data)}}
	case TypeBoard:
		return &Window{
			base:       base{handle: arena.Alloc(b.data)},
			frameStyle: b.frameStyle,
			titleStyle: b.titleStyle,
		}
	default:
		return Null{}
	}
}
