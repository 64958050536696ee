package key

import (
	"fmt"
	"strings"
)

// Kind is the press kind of a key event.
type Kind uint8

const (
	// KindPress is an initial key press.
	KindPress Kind = iota
	// KindRepeat is an auto-repeat while the key is held.
	KindRepeat
	// KindRelease is a key release. Most terminals never report it.
	KindRelease
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "Press"
	case KindRepeat:
		return "Repeat"
	case KindRelease:
		return "Release"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event is a single keyboard event. Events are comparable; two events are
// the same key exactly when they are equal.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Kind is the press kind.
	Kind Kind
}

// NewRuneEvent creates a press event for a character.
// Shift is dropped because the rune already carries the case.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods.Without(ModShift),
		Kind:      KindPress,
	}
}

// NewSpecialEvent creates a press event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{
		Key:       k,
		Modifiers: mods,
		Kind:      KindPress,
	}
}

// WithKind returns a copy of the event with the given press kind.
func (e Event) WithKind(kind Kind) Event {
	e.Kind = kind
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Matches reports whether e has the same code, modifiers and kind as other.
func (e Event) Matches(other Event) bool {
	if e.Key != other.Key || e.Modifiers != other.Modifiers || e.Kind != other.Kind {
		return false
	}
	return e.Key != KeyRune || e.Rune == other.Rune
}

// String returns a canonical spec such as "q", "<C-c>" or "<Left>".
// Non-press kinds are appended, e.g. "q:Release".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			name = "Space"
		case '<':
			name = "lt"
		default:
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	var mods []string
	if e.Modifiers.Has(ModCtrl) {
		mods = append(mods, "C")
	}
	if e.Modifiers.Has(ModAlt) {
		mods = append(mods, "A")
	}
	if e.Modifiers.Has(ModMeta) {
		mods = append(mods, "M")
	}
	if e.Modifiers.Has(ModShift) {
		mods = append(mods, "S")
	}

	var s string
	switch {
	case len(mods) > 0:
		s = "<" + strings.Join(mods, "-") + "-" + name + ">"
	case e.Key == KeyRune && len([]rune(name)) == 1:
		s = name
	default:
		s = "<" + name + ">"
	}

	if e.Kind != KindPress {
		s += ":" + e.Kind.String()
	}
	return s
}

// controlAliases are Ctrl chords that share an ASCII control code with a
// special key. Terminals deliver them as the special key.
var controlAliases = map[rune]Key{
	'h': KeyBackspace,
	'i': KeyTab,
	'm': KeyEnter,
}

// TerminalAlias returns the event a terminal reports in place of e, if the
// two are indistinguishable on the wire. Ctrl+H arrives as Backspace.
func TerminalAlias(e Event) (Event, bool) {
	if e.Key != KeyRune || e.Modifiers != ModCtrl {
		return Event{}, false
	}
	k, ok := controlAliases[e.Rune]
	if !ok {
		return Event{}, false
	}
	return NewSpecialEvent(k, ModNone).WithKind(e.Kind), true
}
