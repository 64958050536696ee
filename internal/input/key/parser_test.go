package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"q", NewRuneEvent('q', ModNone)},
		{"Q", NewRuneEvent('Q', ModNone)},
		{"<", NewRuneEvent('<', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+C", NewRuneEvent('c', ModCtrl)},
		{"Alt+Left", NewSpecialEvent(KeyLeft, ModAlt)},
		{"<C-c>", NewRuneEvent('c', ModCtrl)},
		{"<C-S-Up>", NewSpecialEvent(KeyUp, ModCtrl|ModShift)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
		{"<C-->", NewRuneEvent('-', ModCtrl)},
		{"+", NewRuneEvent('+', ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmptySpec)

	for _, spec := range []string{"qq", "Hyper+x", "<X-a>", "Ctrl+"} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, spec := range []string{"q", "<C-c>", "<Left>", "<A-F4>", "<Space>"} {
		t.Run(spec, func(t *testing.T) {
			ev, err := Parse(spec)
			require.NoError(t, err)
			assert.Equal(t, spec, ev.String())
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
	assert.Equal(t, NewRuneEvent('q', ModNone), MustParse("q"))
}
