// Package key provides the keyboard event model used by the dispatcher.
//
// An Event identifies one keyboard action by its key code (a special key or
// a rune), the active modifiers and the press kind. Bindings match on the
// exact triple, so events are plain comparable values.
//
// # Key Specifications
//
// Bindings loaded from configuration are written as key specs:
//
//   - Simple keys: "q", "?", "Enter", "Escape", "F5"
//   - With modifiers: "Ctrl+C", "Alt+Left"
//   - Vim-style: "<C-c>", "<A-Left>", "<CR>", "<Esc>"
//
// For rune keys Shift is never part of the event; the rune carries the case.
package key
