// Package widget provides the UI elements composed by the frame loop.
//
// Every widget keeps its display state (size, position, title, visibility)
// in a shared Arena and refers to it through a Handle. Closures bound into
// a widget's dispatcher capture the Handle, not the Data, and resolve it on
// each access:
//
//	arena := widget.NewArena()
//	board := widget.NewBuilder(widget.TypeBoard).
//		Size(10, 5).
//		Title("Hi").
//		Visible(true).
//		Build(arena)
//
//	h, _ := board.DataHandle()
//	d := dispatcher.NewWithDefaults()
//	d.BindKey(key.NewSpecialEvent(key.KeyRight, key.ModNone), true, func() error {
//		return h.Update(func(data *widget.Data) { data.Position.X++ })
//	})
//	board.AttachDispatcher(d)
//
// The variants are a closed set: GlobalInput receives events but draws
// nothing, Window draws a titled frame, and Null rejects every operation.
package widget
