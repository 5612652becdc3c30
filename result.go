package argparse

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/napalu/argparse/errs"
	"github.com/napalu/argparse/types/orderedmap"
	"github.com/napalu/argparse/util"
)

// Result maps targets to parsed values in the order they were stored. Value shapes:
//
//	count max 1, args max 0      true
//	count max 1, args exactly 1  the value
//	count max 1, otherwise       []any of values
//	count max > 1, args max 0    int, the number of invocations
//	count max > 1, args exactly 1 []any, one value per invocation
//	count max > 1, otherwise     [][]any, the values of each invocation
//
// Elements with count max 1 which were never used are absent. Invoked commands are
// stored as true under their target.
type Result struct {
	values *orderedmap.OrderedMap[string, any]
}

func newResult() *Result {
	return &Result{values: orderedmap.NewOrderedMap[string, any]()}
}

// Get returns the value stored under target
func (r *Result) Get(target string) (any, bool) {
	return r.values.Get(target)
}

// Has returns true when a value is stored under target
func (r *Result) Has(target string) bool {
	return r.values.Has(target)
}

// Len returns the number of stored targets
func (r *Result) Len() int {
	return r.values.Count()
}

// Keys returns the stored targets in insertion order
func (r *Result) Keys() []string {
	return r.values.Keys()
}

// Map returns a copy of the stored values
func (r *Result) Map() map[string]any {
	m := make(map[string]any, r.values.Count())
	for k, v := range r.values.All() {
		m[k] = v
	}

	return m
}

// Bool returns true when target holds true or a positive invocation count
func (r *Result) Bool(target string) bool {
	switch v := r.lookup(target).(type) {
	case bool:
		return v
	case int:
		return v > 0
	}

	return false
}

// Count returns the invocation count stored under target. A flag limited to one use
// counts as 1 when present.
func (r *Result) Count(target string) int {
	switch v := r.lookup(target).(type) {
	case int:
		return v
	case bool:
		if v {
			return 1
		}
	}

	return 0
}

// String returns the single value stored under target
func (r *Result) String(target string) (string, bool) {
	v, ok := r.lookup(target).(string)

	return v, ok
}

// Strings flattens the values stored under target into a list of strings.
// Converted values are formatted with their default representation.
func (r *Result) Strings(target string) []string {
	var out []string
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case nil:
		case []any:
			for _, item := range t {
				walk(item)
			}
		case [][]any:
			for _, inv := range t {
				walk(inv)
			}
		case string:
			out = append(out, t)
		default:
			out = append(out, stringify(t))
		}
	}
	walk(r.lookup(target))

	return out
}

// Invocations returns the values of each invocation stored under target
func (r *Result) Invocations(target string) [][]any {
	switch v := r.lookup(target).(type) {
	case [][]any:
		return v
	case []any:
		out := make([][]any, len(v))
		for i, item := range v {
			out[i] = []any{item}
		}
		return out
	case nil:
		return nil
	default:
		return [][]any{{v}}
	}
}

// Bind converts the unconverted value stored under target into data, which must be
// a pointer to a supported type such as *int, *[]string or *time.Duration
func (r *Result) Bind(target string, data any) error {
	if reflect.ValueOf(data).Kind() != reflect.Pointer {
		return errs.ErrPointerExpected.WithArgs(data)
	}
	if !util.CanConvert(data) {
		return errs.ErrUnsupportedTypeConversion.WithArgs(data)
	}
	v, ok := r.values.Get(target)
	if !ok {
		return errs.ErrTargetNotFound.WithArgs(target)
	}

	switch t := v.(type) {
	case string:
		return util.ConvertString(t, data, nil)
	case bool:
		if p, ok := data.(*bool); ok {
			*p = t
			return nil
		}
	case int:
		if p, ok := data.(*int); ok {
			*p = t
			return nil
		}
	case []any:
		values := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return errs.ErrUnsupportedTypeConversion.WithArgs(data)
			}
			values = append(values, s)
		}
		return util.ConvertString(strings.Join(values, unitSeparator), data, func(r rune) bool {
			return string(r) == unitSeparator
		})
	}

	return errs.ErrUnsupportedTypeConversion.WithArgs(data)
}

// MarshalJSON encodes the result as a JSON object preserving insertion order
func (r *Result) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	for k, v := range r.values.All() {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
		i++
	}
	b.WriteByte('}')

	return []byte(b.String()), nil
}

const unitSeparator = "\x1f"

func (r *Result) lookup(target string) any {
	v, _ := r.values.Get(target)

	return v
}

func (r *Result) set(target string, value any) {
	r.values.Set(target, value)
}

// shape checks invocation counts and converts the collected invocations of every
// entered parser into a Result. Later parsers overwrite colliding targets.
func (s *parseState) shape() (*Result, error) {
	var err error
	s.contexts.ForEach(func(ctx *parseContext, _ int) bool {
		for _, e := range elementsOf(ctx.parser) {
			if n := s.invocations[e].Len(); n < e.count.Min {
				err = errs.ErrTooFewInvocations.WithArgs(e.String(), e.count.Min)
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	res := newResult()
	s.contexts.ForEach(func(ctx *parseContext, _ int) bool {
		if ctx.command != nil {
			res.set(ctx.command.target, true)
		}
		for _, e := range elementsOf(ctx.parser) {
			if err = s.shapeElement(res, e); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *parseState) shapeElement(res *Result, e *Element) error {
	invocations := s.invocations[e]
	converted := make([][]any, 0, invocations.Len())
	for invocations.Len() > 0 {
		front, _ := invocations.PopFront()
		inv := front.(*invocation)
		values := make([]any, len(inv.values))
		for i, raw := range inv.values {
			v, err := e.convert(raw)
			if err != nil {
				return err
			}
			values[i] = v
		}
		converted = append(converted, values)
	}

	single := e.args.Min == 1 && e.args.Max == 1
	if e.count.Max <= 1 {
		if len(converted) == 0 {
			return nil
		}
		switch {
		case e.args.Max == 0:
			res.set(e.Target, true)
		case single:
			res.set(e.Target, converted[0][0])
		default:
			res.set(e.Target, converted[0])
		}
		return nil
	}

	switch {
	case e.args.Max == 0:
		res.set(e.Target, len(converted))
	case single:
		values := make([]any, len(converted))
		for i, inv := range converted {
			values[i] = inv[0]
		}
		res.set(e.Target, values)
	default:
		res.set(e.Target, converted)
	}

	return nil
}

func (e *Element) convert(raw string) (any, error) {
	if e.Convert == nil {
		return raw, nil
	}
	v, err := e.Convert(raw)
	if err != nil {
		return nil, errs.ErrMalformedValue.WithArgs(raw, e.String()).Wrap(err)
	}

	return v, nil
}

func elementsOf(p *Parser) []*Element {
	elements := make([]*Element, 0, len(p.arguments)+len(p.options))
	elements = append(elements, p.arguments...)

	return append(elements, p.options...)
}
