package argparse

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/argparse/errs"
	"github.com/napalu/argparse/types"
)

// prepare normalizes the parser's own declarations. It runs at most once per
// parser; commands are qualified but not prepared themselves.
func (s *Parser) prepare(converter NameConversionFunc) error {
	if s.prepared {
		return nil
	}
	if converter == nil {
		converter = DefaultTargetConverter
	}

	s.optionIndex = make(map[string]*Element, len(s.options))
	for _, option := range s.options {
		if err := validateAliases(option); err != nil {
			return err
		}
		if option.Name == "" {
			if long, ok := option.longAlias(); ok {
				option.Name = long
			} else {
				option.Name = option.Aliases[0]
			}
		}
		if option.Target == "" {
			option.Target = converter(option.inferTarget())
		}
		if err := option.normalize(); err != nil {
			return err
		}
		for _, alias := range option.Aliases {
			if _, found := s.optionIndex[alias]; !found {
				s.optionIndex[alias] = option
			}
		}
	}

	for _, argument := range s.arguments {
		if argument.Name == "" {
			return errs.ErrEmptyName.WithArgs(types.KindArgument)
		}
		if argument.Target == "" {
			argument.Target = argument.Name
		}
		if err := argument.normalize(); err != nil {
			return err
		}
	}

	if err := s.checkTargets(); err != nil {
		return err
	}

	s.commandIndex = make(map[string]*Command, len(s.commands))
	for _, cmd := range s.commands {
		if cmd.ownName() == "" {
			return errs.ErrEmptyName.WithArgs(types.KindCommand)
		}
		if cmd.target == "" {
			cmd.target = cmd.ownName()
		}
		if !cmd.qualified {
			if s.name != "" {
				cmd.name = s.name + " " + cmd.ownName()
			} else {
				cmd.name = cmd.ownName()
			}
			// a provisional name is redone once the parent's name is final
			cmd.qualified = s.nameFinal()
			cmd.prepared = false
		}
		for _, alias := range cmd.aliases {
			if _, found := s.commandIndex[alias]; !found {
				s.commandIndex[alias] = cmd
			}
		}
	}

	s.prepared = true

	return nil
}

// prepareTree prepares s and every command below it
func (s *Parser) prepareTree(converter NameConversionFunc) error {
	if err := s.prepare(converter); err != nil {
		return err
	}
	for _, cmd := range s.commands {
		if err := cmd.prepareTree(converter); err != nil {
			return err
		}
	}

	return nil
}

// checkTargets rejects arguments and options of the same parser sharing a target
func (s *Parser) checkTargets() error {
	seen := make(map[string]struct{}, len(s.arguments)+len(s.options))
	for _, elements := range [][]*Element{s.arguments, s.options} {
		for _, e := range elements {
			if _, found := seen[e.Target]; found {
				return errs.ErrDuplicateTarget.WithArgs(e.Target, s.displayName())
			}
			seen[e.Target] = struct{}{}
		}
	}

	return nil
}

// nameFinal reports whether s's name can no longer change: a named root or a qualified command
func (s *Parser) nameFinal() bool {
	return s.qualified || (s.parent == nil && s.name != "")
}

func (s *Parser) displayName() string {
	if s.name == "" {
		return "parser"
	}

	return s.name
}

// normalize parses the boundary specifiers of e, falling back on the defaults of its kind
func (e *Element) normalize() error {
	argsSpec, countSpec := e.Args, e.Count
	switch e.kind {
	case types.KindArgument:
		argsSpec = orDefault(argsSpec, DefaultArgumentArgs)
		countSpec = orDefault(countSpec, DefaultArgumentCount)
	case types.KindFlag:
		argsSpec = FlagArgs
		countSpec = orDefault(countSpec, DefaultFlagCount)
	default:
		argsSpec = orDefault(argsSpec, DefaultOptionArgs)
		countSpec = orDefault(countSpec, DefaultOptionCount)
	}

	args, ok := types.ParseBounds(argsSpec)
	if !ok {
		return errs.ErrInvalidBounds.WithArgs("args", argsSpec, e.String())
	}
	count, ok := types.ParseBounds(countSpec)
	if !ok {
		return errs.ErrInvalidBounds.WithArgs("count", countSpec, e.String())
	}
	e.args, e.count = args, count

	return nil
}

func orDefault(spec, def string) string {
	if strings.TrimSpace(spec) == "" {
		return def
	}

	return spec
}

// Charset returns the characters which may start an option token in this parser or any
// command below it, sorted. '-' is always included.
func (s *Parser) Charset() string {
	set := s.charsetOf()
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	return string(runes)
}

// charsetOf computes and memoizes the option character set of s and its descendants
func (s *Parser) charsetOf() map[rune]struct{} {
	if s.charset != nil {
		return s.charset
	}

	set := map[rune]struct{}{defaultCharset: {}}
	for _, option := range s.options {
		for _, alias := range option.Aliases {
			if r, _ := utf8.DecodeRuneInString(alias); r != utf8.RuneError {
				set[r] = struct{}{}
			}
		}
	}
	for _, cmd := range s.commands {
		for r := range cmd.charsetOf() {
			set[r] = struct{}{}
		}
	}
	s.charset = set

	return set
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
