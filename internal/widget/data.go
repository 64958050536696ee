package widget

// Size is a width and height in terminal cells.
type Size struct {
	W, H int
}

// Position is a screen origin in terminal cells.
type Position struct {
	X, Y int
}

// Data is the mutable display state of one widget.
type Data struct {
	Size     Size
	Position Position
	Title    string
	Visible  bool
}
