package argparse

import (
	"fmt"
	"unicode/utf8"

	"github.com/napalu/argparse/types"
)

// Element describes an Argument, an Option or a Flag. Use NewArgument,
// NewOption or NewFlag to obtain an Element with the defaults of its kind.
//
// Args and Count are boundary specifiers: "N", "*", "+", "?", "a-b" or "a+".
// Args bounds the number of values one invocation consumes, Count bounds
// how many times the element may be invoked.
type Element struct {
	Name        string
	Aliases     []string
	Target      string
	Description string
	Convert     ConvertFunc
	Default     string
	Args        string
	Count       string
	Overwrite   bool

	kind       types.Kind
	hasDefault bool
	args       types.Bounds
	count      types.Bounds
}

// NewArgument creates a positional argument consuming exactly one value
func NewArgument(configs ...ConfigureElementFunc) *Element {
	return newElement(types.KindArgument, DefaultArgumentArgs, DefaultArgumentCount, configs)
}

// NewOption creates an option taking one value which may be used at most once
func NewOption(configs ...ConfigureElementFunc) *Element {
	return newElement(types.KindOption, DefaultOptionArgs, DefaultOptionCount, configs)
}

// NewFlag creates an option which never takes values. Any Args configured
// through configs is ignored.
func NewFlag(configs ...ConfigureElementFunc) *Element {
	e := newElement(types.KindFlag, FlagArgs, DefaultFlagCount, configs)
	e.Args = FlagArgs

	return e
}

func newElement(kind types.Kind, args, count string, configs []ConfigureElementFunc) *Element {
	e := &Element{
		kind:  kind,
		Args:  args,
		Count: count,
	}
	for _, config := range configs {
		config(e)
	}

	return e
}

// Kind returns the variant of the element
func (e *Element) Kind() types.Kind {
	return e.kind
}

// HasDefault returns true when a default value pads short invocations
func (e *Element) HasDefault() bool {
	return e.hasDefault || e.Default != ""
}

// ArgsBounds returns the normalized args boundaries. Valid once the owning parser is prepared.
func (e *Element) ArgsBounds() types.Bounds {
	return e.args
}

// CountBounds returns the normalized count boundaries. Valid once the owning parser is prepared.
func (e *Element) CountBounds() types.Bounds {
	return e.count
}

// String returns a short description such as "option '--number'"
func (e *Element) String() string {
	return fmt.Sprintf("%s '%s'", e.kind, e.displayName())
}

func (e *Element) displayName() string {
	if e.Name != "" {
		return e.Name
	}
	if len(e.Aliases) > 0 {
		return e.Aliases[0]
	}

	return e.Target
}

// longAlias returns the first alias using the doubled-prefix convention ("--name")
func (e *Element) longAlias() (string, bool) {
	for _, alias := range e.Aliases {
		if isLongForm(alias) {
			return alias, true
		}
	}

	return "", false
}

func isLongForm(alias string) bool {
	first, size := utf8.DecodeRuneInString(alias)
	second, _ := utf8.DecodeRuneInString(alias[size:])

	return utf8.RuneCountInString(alias) > 2 && first == second
}

// inferTarget derives the result key from the aliases: the first long alias
// without its two-rune prefix, else the first alias without its prefix rune
func (e *Element) inferTarget() string {
	if long, ok := e.longAlias(); ok {
		return trimRunes(long, 2)
	}
	if len(e.Aliases) > 0 {
		return trimRunes(e.Aliases[0], 1)
	}

	return ""
}

func trimRunes(s string, n int) string {
	for i := 0; i < n && s != ""; i++ {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}

	return s
}
