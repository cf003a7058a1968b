package scratch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestPrintf(t *testing.T) {
	b := New(64)

	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"FPS: %.1f", []any{59.94}, "FPS: 59.9"},
		{"Mouse: (%.0f, %.0f)", []any{float32(120.4), 33.6}, "Mouse: (120, 34)"},
		{"Foreground: %s", []any{"Notepad"}, "Foreground: Notepad"},
		{"action: %s", []any{stringer("behind target")}, "action: behind target"},
		{"hwnd %x", []any{uintptr(0x1a2b)}, "hwnd 1a2b"},
		{"%d%% of %d", []any{50, int64(8)}, "50% of 8"},
		{"enabled=%t", []any{true}, "enabled=true"},
		{"default %f", []any{1.5}, "default 1.500"},
		{"missing %d and %d", []any{1}, "missing 1 and "},
		{"odd %q", []any{1}, "odd %q"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			require.Equal(t, tt.want, b.Printf(tt.format, tt.args...))
		})
	}
}

func TestViewsSurviveGrowth(t *testing.T) {
	b := New(4)
	first := b.Printf("abc%d", 1)
	second := b.Printf("%s", "a much longer string that forces a grow")

	require.Equal(t, "abc1", first)
	require.Equal(t, "a much longer string that forces a grow", second)
	require.Greater(t, b.Cap(), 4)
}

func TestResetReusesMemory(t *testing.T) {
	b := New(32)
	b.S("hello").R(' ').R('é').I(-3)
	require.Equal(t, "hello é-3", b.String(0))

	c := b.Cap()
	b.Reset()
	require.Zero(t, b.Len())
	require.Equal(t, c, b.Cap())

	m := b.Mark()
	b.F64(2.3456, 2).S(" ").Hex(255)
	require.Equal(t, "2.35 ff", b.View(m))
	require.Equal(t, "", b.View(b.Mark()))
}
