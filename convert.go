package argparse

import (
	"fmt"
	"time"

	"github.com/napalu/argparse/util"
)

// Converter returns a ConvertFunc storing values as T. T may be any type supported by
// util.ConvertString, including slices which split a single token on list delimiters.
func Converter[T any]() ConvertFunc {
	return func(value string) (any, error) {
		var v T
		if err := util.ConvertString(value, &v, nil); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Predefined converters
var (
	AsInt      = Converter[int]()
	AsInt64    = Converter[int64]()
	AsUint     = Converter[uint]()
	AsFloat    = Converter[float64]()
	AsBool     = Converter[bool]()
	AsDuration = Converter[time.Duration]()
	AsTime     = Converter[time.Time]()
)

func stringify(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}

	return fmt.Sprint(v)
}
