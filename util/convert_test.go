package util

import (
	"testing"
	"time"

	"github.com/napalu/argparse/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString_Scalars(t *testing.T) {
	var s string
	require.NoError(t, ConvertString("hello", &s, nil))
	assert.Equal(t, "hello", s)

	var b bool
	require.NoError(t, ConvertString("true", &b, nil))
	assert.True(t, b)

	var i int
	require.NoError(t, ConvertString("-42", &i, nil))
	assert.Equal(t, -42, i)

	var i8 int8
	assert.ErrorIs(t, ConvertString("300", &i8, nil), errs.ErrParseInt)

	var u16 uint16
	require.NoError(t, ConvertString("65535", &u16, nil))
	assert.Equal(t, uint16(65535), u16)
	assert.ErrorIs(t, ConvertString("-1", &u16, nil), errs.ErrParseUint)

	var f float64
	require.NoError(t, ConvertString("3.25", &f, nil))
	assert.Equal(t, 3.25, f)

	var d time.Duration
	require.NoError(t, ConvertString("1m30s", &d, nil))
	assert.Equal(t, 90*time.Second, d)
	assert.ErrorIs(t, ConvertString("soon", &d, nil), errs.ErrParseDuration)

	var ts time.Time
	require.NoError(t, ConvertString("2024-03-01", &ts, nil))
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())
	assert.ErrorIs(t, ConvertString("not a date", &ts, nil), errs.ErrParseTime)
}

func TestConvertString_Slices(t *testing.T) {
	var ss []string
	require.NoError(t, ConvertString("a,b|c d", &ss, nil))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ss)

	var is []int
	require.NoError(t, ConvertString("1,2,3", &is, nil))
	assert.Equal(t, []int{1, 2, 3}, is)
	assert.ErrorIs(t, ConvertString("1,x", &is, nil), errs.ErrParseInt)

	var fs []float32
	require.NoError(t, ConvertString("1.5;2.5", &fs, func(r rune) bool { return r == ';' }))
	assert.Equal(t, []float32{1.5, 2.5}, fs)

	var bs []bool
	require.NoError(t, ConvertString("true false", &bs, nil))
	assert.Equal(t, []bool{true, false}, bs)
}

func TestConvertString_Unsupported(t *testing.T) {
	var c complex64
	err := ConvertString("1+2i", &c, nil)
	assert.ErrorIs(t, err, errs.ErrUnsupportedTypeConversion)
	assert.False(t, CanConvert(&c))
	assert.False(t, CanConvert("not a pointer"))
	assert.True(t, CanConvert(new([]time.Time)))
}
