// Package util converts raw command-line strings into typed Go values.
package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/argparse/errs"
	"github.com/napalu/argparse/types"
)

// Signed is the set of signed integer types ConvertString decodes
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types ConvertString decodes
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DefaultListDelimiter splits list values on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ConvertString decodes value into data, which must be a pointer to one of the
// supported types (string, bool, signed and unsigned integers, floats,
// time.Duration, time.Time, or a slice of any of these). Slice values are split
// with delimiterFunc, or DefaultListDelimiter when it is nil.
func ConvertString(value string, data any, delimiterFunc types.ListDelimiterFunc) error {
	if delimiterFunc == nil {
		delimiterFunc = DefaultListDelimiter
	}

	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *bool:
		return into(t, value, parseBool)
	case *[]bool:
		return intoSlice(t, value, delimiterFunc, parseBool)
	case *int:
		return into(t, value, signed[int](strconv.IntSize))
	case *[]int:
		return intoSlice(t, value, delimiterFunc, signed[int](strconv.IntSize))
	case *int8:
		return into(t, value, signed[int8](8))
	case *[]int8:
		return intoSlice(t, value, delimiterFunc, signed[int8](8))
	case *int16:
		return into(t, value, signed[int16](16))
	case *[]int16:
		return intoSlice(t, value, delimiterFunc, signed[int16](16))
	case *int32:
		return into(t, value, signed[int32](32))
	case *[]int32:
		return intoSlice(t, value, delimiterFunc, signed[int32](32))
	case *int64:
		return into(t, value, signed[int64](64))
	case *[]int64:
		return intoSlice(t, value, delimiterFunc, signed[int64](64))
	case *uint:
		return into(t, value, unsigned[uint](strconv.IntSize))
	case *[]uint:
		return intoSlice(t, value, delimiterFunc, unsigned[uint](strconv.IntSize))
	case *uint8:
		return into(t, value, unsigned[uint8](8))
	case *[]uint8:
		return intoSlice(t, value, delimiterFunc, unsigned[uint8](8))
	case *uint16:
		return into(t, value, unsigned[uint16](16))
	case *[]uint16:
		return intoSlice(t, value, delimiterFunc, unsigned[uint16](16))
	case *uint32:
		return into(t, value, unsigned[uint32](32))
	case *[]uint32:
		return intoSlice(t, value, delimiterFunc, unsigned[uint32](32))
	case *uint64:
		return into(t, value, unsigned[uint64](64))
	case *[]uint64:
		return intoSlice(t, value, delimiterFunc, unsigned[uint64](64))
	case *float32:
		return into(t, value, float[float32](32))
	case *[]float32:
		return intoSlice(t, value, delimiterFunc, float[float32](32))
	case *float64:
		return into(t, value, float[float64](64))
	case *[]float64:
		return intoSlice(t, value, delimiterFunc, float[float64](64))
	case *time.Duration:
		return into(t, value, parseDuration)
	case *[]time.Duration:
		return intoSlice(t, value, delimiterFunc, parseDuration)
	case *time.Time:
		return into(t, value, parseTime)
	case *[]time.Time:
		return intoSlice(t, value, delimiterFunc, parseTime)
	default:
		return errs.ErrUnsupportedTypeConversion.WithArgs(data)
	}

	return nil
}

// CanConvert returns true when ConvertString knows how to decode into data
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string, *bool, *[]bool,
		*int, *[]int, *int8, *[]int8, *int16, *[]int16, *int32, *[]int32, *int64, *[]int64,
		*uint, *[]uint, *uint8, *[]uint8, *uint16, *[]uint16, *uint32, *[]uint32, *uint64, *[]uint64,
		*float32, *[]float32, *float64, *[]float64,
		*time.Duration, *[]time.Duration, *time.Time, *[]time.Time:
		return true
	}

	return false
}

func into[T any](dst *T, value string, parse func(string) (T, error)) error {
	v, err := parse(value)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

func intoSlice[T any](dst *[]T, value string, delimiterFunc types.ListDelimiterFunc, parse func(string) (T, error)) error {
	fields := strings.FieldsFunc(value, delimiterFunc)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(f)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*dst = out

	return nil
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(s)
	}
	return v, nil
}

func signed[T Signed](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			return 0, errs.ErrParseInt.WithArgs(s)
		}
		return T(v), nil
	}
}

func unsigned[T Unsigned](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return 0, errs.ErrParseUint.WithArgs(s)
		}
		return T(v), nil
	}
}

func float[T ~float32 | ~float64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return 0, errs.ErrParseFloat.WithArgs(s)
		}
		return T(v), nil
	}
}

func parseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(s)
	}
	return v, nil
}

func parseTime(s string) (time.Time, error) {
	v, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(s)
	}
	return v, nil
}
