package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRuneEventDropsShift(t *testing.T) {
	ev := NewRuneEvent('Q', ModShift|ModAlt)
	assert.Equal(t, ModAlt, ev.Modifiers)
	assert.Equal(t, KindPress, ev.Kind)
	assert.True(t, ev.IsRune())
}

func TestEventMatches(t *testing.T) {
	q := NewRuneEvent('q', ModNone)

	tests := []struct {
		name  string
		other Event
		want  bool
	}{
		{"same", NewRuneEvent('q', ModNone), true},
		{"different rune", NewRuneEvent('w', ModNone), false},
		{"different modifiers", NewRuneEvent('q', ModCtrl), false},
		{"different kind", q.WithKind(KindRelease), false},
		{"special key", NewSpecialEvent(KeyEnter, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Matches(tt.other))
		})
	}
}

func TestEventMatchesIgnoresRuneForSpecialKeys(t *testing.T) {
	a := Event{Key: KeyLeft, Rune: 'x'}
	b := Event{Key: KeyLeft}
	assert.True(t, a.Matches(b))
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('q', ModNone), "q"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('c', ModCtrl), "<C-c>"},
		{NewSpecialEvent(KeyLeft, ModNone), "<Left>"},
		{NewSpecialEvent(KeyF4, ModAlt), "<A-F4>"},
		{NewRuneEvent('q', ModNone).WithKind(KindRelease), "q:Release"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Press", KindPress.String())
	assert.Equal(t, "Repeat", KindRepeat.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestTerminalAlias(t *testing.T) {
	tests := []struct {
		ev    Event
		want  Event
		alias bool
	}{
		{NewRuneEvent('h', ModCtrl), NewSpecialEvent(KeyBackspace, ModNone), true},
		{NewRuneEvent('i', ModCtrl), NewSpecialEvent(KeyTab, ModNone), true},
		{NewRuneEvent('m', ModCtrl), NewSpecialEvent(KeyEnter, ModNone), true},
		{NewRuneEvent('c', ModCtrl), Event{}, false},
		{NewRuneEvent('h', ModNone), Event{}, false},
		{NewRuneEvent('h', ModCtrl|ModAlt), Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			got, ok := TerminalAlias(tt.ev)
			assert.Equal(t, tt.alias, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
