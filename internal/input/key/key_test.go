package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyLeft, "Left"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestKeyClassification(t *testing.T) {
	assert.False(t, KeyNone.IsSpecial())
	assert.False(t, KeyRune.IsSpecial())
	assert.True(t, KeyEscape.IsSpecial())
	assert.True(t, KeyF6.IsFunctionKey())
	assert.False(t, KeyEnter.IsFunctionKey())
	assert.True(t, KeyDown.IsArrowKey())
	assert.False(t, KeyHome.IsArrowKey())
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, KeyEscape, KeyFromName("ESC"))
	assert.Equal(t, KeyPageDown, KeyFromName(" pgdn "))
	assert.Equal(t, KeyNone, KeyFromName("nope"))
}

func TestModifier(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModAlt)
	assert.True(t, mod.Has(ModCtrl))
	assert.True(t, mod.Has(ModAlt))
	assert.False(t, mod.Has(ModShift))
	assert.Equal(t, "Ctrl+Alt", mod.String())
	assert.Equal(t, ModAlt, mod.Without(ModCtrl))
	assert.Equal(t, "", ModNone.String())
	assert.Equal(t, ModMeta, ModifierFromName("Cmd"))
	assert.Equal(t, ModNone, ModifierFromName("hyper"))
}
