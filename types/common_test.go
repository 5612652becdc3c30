package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		spec   string
		want   Bounds
		wantOk bool
	}{
		{"0", Bounds{0, 0}, true},
		{"1", Bounds{1, 1}, true},
		{"12", Bounds{12, 12}, true},
		{"*", Bounds{0, Unbounded}, true},
		{"+", Bounds{1, Unbounded}, true},
		{"?", Bounds{0, 1}, true},
		{"2-5", Bounds{2, 5}, true},
		{"3-3", Bounds{3, 3}, true},
		{"2+", Bounds{2, Unbounded}, true},
		{" 1 ", Bounds{1, 1}, true},
		{"", Bounds{}, false},
		{"-1", Bounds{}, false},
		{"5-2", Bounds{}, false},
		{"a", Bounds{}, false},
		{"1-", Bounds{}, false},
		{"-", Bounds{}, false},
		{"++", Bounds{}, false},
		{"1-2-3", Bounds{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := ParseBounds(tt.spec)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
				assert.LessOrEqual(t, got.Min, got.Max)
				assert.GreaterOrEqual(t, got.Min, 0)
			}
		})
	}
}

func TestBounds_String(t *testing.T) {
	for _, spec := range []string{"*", "+", "?", "3", "0", "2+", "1-4"} {
		b, ok := ParseBounds(spec)
		assert.True(t, ok)
		assert.Equal(t, spec, b.String())
	}
}

func TestBounds_IsUnbounded(t *testing.T) {
	for spec, want := range map[string]bool{"*": true, "+": true, "3+": true, "?": false, "2": false, "1-9": false} {
		b, ok := ParseBounds(spec)
		assert.True(t, ok)
		assert.Equal(t, want, b.IsUnbounded(), "specifier %q", spec)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "argument", KindArgument.String())
	assert.Equal(t, "option", KindOption.String())
	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
