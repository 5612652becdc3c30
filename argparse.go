// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argparse provides declarative command-line parsing.
//
// A Parser declares three kinds of elements:
//
//  1. Arguments - positional values filled in declaration order
//  2. Options - aliased elements such as -n or --number which take values
//  3. Flags - options which never take values
//
// and may declare nested Commands, each of which is itself a parser. Every element
// carries two boundary specifiers: Args bounds how many values one invocation consumes
// and Count bounds how many times the element may be invoked. Both accept "N", "*",
// "+", "?", "a-b" and "a+".
//
// Options may be placed before, after or mixed in with arguments. Short aliases can be
// clustered (-vvx) and long aliases accept an attached value (--output=file). A bare "--"
// ends option processing for the rest of the command line. Once a command is entered,
// only its own elements are recognized.
//
// Parse returns a Result keyed by element targets. Parse errors are handed to the
// parser's Reporter: by default the message is printed to stderr and the process exits.
package argparse

import (
	"io"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/napalu/argparse/errs"
	"github.com/napalu/argparse/parse"
	"github.com/napalu/argparse/types"
)

// Parser is the root of a declaration tree. Commands embed a Parser.
type Parser struct {
	name        string
	description string
	arguments   []*Element
	options     []*Element
	commands    []*Command

	parent       *Parser
	charset      map[rune]struct{}
	optionIndex  map[string]*Element
	commandIndex map[string]*Command
	prepared     bool
	qualified    bool

	reporter        Reporter
	logger          *slog.Logger
	targetConverter NameConversionFunc
}

// NewParser creates a parser for the program called name. Use NewParserWith to
// configure it using option functions.
func NewParser(name string) *Parser {
	return newParser(name)
}

func newParser(name string) *Parser {
	return &Parser{
		name:            name,
		arguments:       []*Element{},
		options:         []*Element{},
		commands:        []*Command{},
		reporter:        NewTerminatingReporter(nil),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		targetConverter: DefaultTargetConverter,
	}
}

// Name returns the program name, or the qualified name of a command
func (s *Parser) Name() string {
	return s.name
}

// Description returns the description of the program or command
func (s *Parser) Description() string {
	return s.description
}

// Arguments returns the declared positional arguments in declaration order
func (s *Parser) Arguments() []*Element {
	return s.arguments
}

// Options returns the declared options and flags in declaration order
func (s *Parser) Options() []*Element {
	return s.options
}

// Commands returns the declared commands in declaration order
func (s *Parser) Commands() []*Command {
	return s.commands
}

// SetReporter replaces the Reporter receiving parse errors
func (s *Parser) SetReporter(reporter Reporter) {
	s.reporter = reporter
}

// SetLogger replaces the logger receiving debug traces of the parse
func (s *Parser) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// AddArgument declares a positional argument. Arguments are filled in the order they are added.
func (s *Parser) AddArgument(argument *Element) error {
	if argument == nil {
		return errs.ErrEmptyName.WithArgs(types.KindArgument)
	}
	argument.kind = types.KindArgument
	s.arguments = append(s.arguments, argument)
	s.invalidate()

	return nil
}

// AddOption declares an option or a flag. Every alias must be at least two characters
// long and start with a prefix character such as '-' or '+'.
func (s *Parser) AddOption(option *Element) error {
	if option == nil {
		return errs.ErrEmptyName.WithArgs(types.KindOption)
	}
	if option.kind == types.KindArgument {
		option.kind = types.KindOption
	}
	if err := validateAliases(option); err != nil {
		return err
	}
	s.options = append(s.options, option)
	s.invalidate()

	return nil
}

// AddCommand declares a nested command
func (s *Parser) AddCommand(cmd *Command) error {
	if cmd == nil || cmd.ownName() == "" {
		return errs.ErrEmptyName.WithArgs(types.KindCommand)
	}
	cmd.parent = s
	s.commands = append(s.commands, cmd)
	s.invalidate()

	return nil
}

// Validate prepares the whole declaration tree and returns the first specification
// error found. Parse prepares commands lazily, only once they are entered.
func (s *Parser) Validate() error {
	return s.prepareTree(s.targetConverter)
}

// Parse processes args. args[0] is the program name and also becomes the parser's
// name when none was configured.
//
// Specification errors, caused by a malformed declaration, are returned directly.
// Parse errors are passed to the Reporter; with the default TerminatingReporter the
// process exits, with a RaisingReporter a *ParseError is returned.
func (s *Parser) Parse(args []string) (*Result, error) {
	var tokens []string
	if len(args) > 0 {
		if s.name == "" && args[0] != "" {
			s.name = filepath.Base(args[0])
			s.prepared = false
		}
		tokens = args[1:]
	}

	state := newParseState(s)
	res, err := state.run(tokens)
	if err == nil {
		return res, nil
	}
	if errs.IsSpecificationError(err) {
		return nil, err
	}

	return nil, s.report(err)
}

// ParseString splits line into tokens following shell quoting rules and parses them.
// line must not contain the program name.
func (s *Parser) ParseString(line string) (*Result, error) {
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, s.report(err)
	}

	return s.Parse(append([]string{s.name}, tokens...))
}

func (s *Parser) report(err error) error {
	pe := &ParseError{Prog: s.name, Err: err}
	if s.reporter == nil {
		return pe
	}
	if rerr := s.reporter.Report(pe); rerr != nil {
		return rerr
	}

	return pe
}

// invalidate drops memoized preparation results after a declaration change.
// Ancestor charsets include this parser's prefixes so they are dropped as well.
func (s *Parser) invalidate() {
	s.prepared = false
	for p := s; p != nil; p = p.parent {
		p.charset = nil
	}
}

func validateAliases(option *Element) error {
	if len(option.Aliases) == 0 {
		return errs.ErrInvalidAlias.WithArgs("", option.String())
	}
	for _, alias := range option.Aliases {
		first, _ := utf8.DecodeRuneInString(alias)
		if utf8.RuneCountInString(alias) < 2 || isWordRune(first) {
			return errs.ErrInvalidAlias.WithArgs(alias, option.String())
		}
	}

	return nil
}
