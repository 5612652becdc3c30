// Package types provides common type definitions for the argparse library.
package types

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies the variant of a declared element
type Kind int

const (
	KindArgument Kind = iota // KindArgument denotes a positional argument
	KindOption               // KindOption denotes an option taking values
	KindFlag                 // KindFlag denotes an option which never takes values
	KindCommand              // KindCommand denotes a subcommand
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindOption:
		return "option"
	case KindFlag:
		return "flag"
	case KindCommand:
		return "command"
	}
	return "unknown"
}

// Unbounded is the upper boundary of "*", "+" and "a+" specifiers
const Unbounded = math.MaxInt

// Bounds is a normalized (min, max) pair. Both ends are inclusive.
type Bounds struct {
	Min int
	Max int
}

// String returns the canonical specifier form of b
func (b Bounds) String() string {
	switch {
	case b.Min == 0 && b.IsUnbounded():
		return "*"
	case b.Min == 1 && b.IsUnbounded():
		return "+"
	case b.Min == 0 && b.Max == 1:
		return "?"
	case b.IsUnbounded():
		return strconv.Itoa(b.Min) + "+"
	case b.Min == b.Max:
		return strconv.Itoa(b.Min)
	}
	return strconv.Itoa(b.Min) + "-" + strconv.Itoa(b.Max)
}

// IsUnbounded returns true when b has no upper boundary
func (b Bounds) IsUnbounded() bool {
	return b.Max == Unbounded
}

// ParseBounds converts a boundary specifier into a Bounds pair. Accepted forms:
//
//	N    exactly N
//	*    zero or more
//	+    one or more
//	?    zero or one
//	a-b  between a and b
//	a+   a or more
//
// The second return value is false when the specifier is malformed or when
// its lower boundary exceeds its upper boundary.
func ParseBounds(spec string) (Bounds, bool) {
	spec = strings.TrimSpace(spec)
	switch spec {
	case "":
		return Bounds{}, false
	case "*":
		return Bounds{Min: 0, Max: Unbounded}, true
	case "+":
		return Bounds{Min: 1, Max: Unbounded}, true
	case "?":
		return Bounds{Min: 0, Max: 1}, true
	}

	if n, ok := parseCount(spec); ok {
		return Bounds{Min: n, Max: n}, true
	}

	if head, ok := strings.CutSuffix(spec, "+"); ok {
		n, ok := parseCount(head)
		if !ok {
			return Bounds{}, false
		}
		return Bounds{Min: n, Max: Unbounded}, true
	}

	lo, hi, found := strings.Cut(spec, "-")
	if !found {
		return Bounds{}, false
	}
	a, okA := parseCount(lo)
	b, okB := parseCount(hi)
	if !okA || !okB || a > b {
		return Bounds{}, false
	}

	return Bounds{Min: a, Max: b}, true
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool
