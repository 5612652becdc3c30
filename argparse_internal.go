package argparse

import (
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/napalu/argparse/errs"
	"github.com/napalu/argparse/parse"
	"github.com/napalu/argparse/types/queue"
)

// invocation collects the values of one use of an element
type invocation struct {
	values []string
}

// parseContext is a parser entered during the parse together with the command which entered it
type parseContext struct {
	parser  *Parser
	command *Command
}

// parseState tracks one run of the token state machine
type parseState struct {
	root           *Parser
	active         *Parser
	openOption     *Element
	cursor         int
	optionsEnabled bool
	invocations    map[*Element]*deque.Deque
	contexts       *queue.Q[*parseContext]
	logger         *slog.Logger
}

func newParseState(root *Parser) *parseState {
	logger := root.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &parseState{
		root:           root,
		optionsEnabled: true,
		invocations:    map[*Element]*deque.Deque{},
		contexts:       queue.New[*parseContext](),
		logger:         logger,
	}
}

// run feeds tokens through the state machine and shapes the result
func (s *parseState) run(tokens []string) (*Result, error) {
	if err := s.enter(s.root, nil); err != nil {
		return nil, err
	}

	state := parse.NewState(tokens)
	for state.Advance() {
		if err := s.handle(state.CurrentArg()); err != nil {
			return nil, err
		}
	}

	if err := s.finish(); err != nil {
		return nil, err
	}

	return s.shape()
}

// enter makes p the active parser: its options and arguments replace the previous sets
func (s *parseState) enter(p *Parser, cmd *Command) error {
	if err := p.prepare(s.root.targetConverter); err != nil {
		return err
	}
	s.logger.Debug("entering parser", "name", p.name, "charset", p.Charset())

	s.active = p
	s.openOption = nil
	s.cursor = 0
	s.contexts.Push(&parseContext{parser: p, command: cmd})
	for _, e := range p.arguments {
		s.invocations[e] = deque.New()
	}
	for _, e := range p.options {
		s.invocations[e] = deque.New()
	}

	if len(p.arguments) > 0 {
		return s.open(p.arguments[0])
	}

	return nil
}

func (s *parseState) handle(token string) error {
	if !s.optionsEnabled || !s.isOptionLike(token) {
		return s.plain(token)
	}

	first, size := utf8.DecodeRuneInString(token)
	second, secondSize := utf8.DecodeRuneInString(token[size:])
	switch {
	case second == first:
		rest := token[size+secondSize:]
		if rest == "" {
			s.logger.Debug("options disabled", "token", token)
			s.optionsEnabled = false
			return nil
		}
		third, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(third) {
			return s.plain(token)
		}
		return s.long(token)
	case unicode.IsLetter(second):
		return s.cluster(token, first)
	}

	return s.plain(token)
}

func (s *parseState) isOptionLike(token string) bool {
	if utf8.RuneCountInString(token) < 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(token)
	_, ok := s.active.charsetOf()[first]

	return ok
}

// long handles "--name" and "--name=value"
func (s *parseState) long(token string) error {
	alias, value, attached := strings.Cut(token, "=")
	option, ok := s.active.optionIndex[alias]
	if !ok {
		return errs.ErrUnknownOption.WithArgs(alias)
	}
	s.logger.Debug("long option", "alias", alias, "attached", attached)

	if attached && option.args.Max == 0 {
		return errs.ErrOptionTakesNoValue.WithArgs(alias)
	}
	if err := s.invoke(option); err != nil {
		return err
	}
	if attached {
		return s.accept(option, value)
	}

	return nil
}

// cluster handles "-x", "-xyz" and "-nVALUE"
func (s *parseState) cluster(token string, prefix rune) error {
	body := token[utf8.RuneLen(prefix):]
	for body != "" {
		r, size := utf8.DecodeRuneInString(body)
		body = body[size:]
		alias := string(prefix) + string(r)
		option, ok := s.active.optionIndex[alias]
		if !ok {
			return errs.ErrUnknownOption.WithArgs(alias)
		}
		if err := s.invoke(option); err != nil {
			return err
		}

		if body != "" && option.args.Max >= 1 {
			s.logger.Debug("short option with attached value", "alias", alias)
			return s.accept(option, body)
		}
	}

	return nil
}

// plain routes a token which is not an option to the open option, the positional
// cursor or command dispatch, in that order
func (s *parseState) plain(token string) error {
	if s.openOption != nil {
		return s.accept(s.openOption, token)
	}
	if s.cursor < len(s.active.arguments) {
		return s.accept(s.active.arguments[s.cursor], token)
	}
	if cmd, ok := s.active.commandIndex[token]; ok {
		s.logger.Debug("dispatching command", "name", cmd.ownName())
		return s.enter(&cmd.Parser, cmd)
	}
	if len(s.active.commands) > 0 {
		return errs.ErrWrongCommand.WithArgs(token)
	}

	return errs.ErrTooManyArguments.WithArgs(token)
}

// invoke opens a new invocation of option, closing the option left open before it
func (s *parseState) invoke(option *Element) error {
	if s.openOption != nil {
		if err := s.close(s.openOption); err != nil {
			return err
		}
	}
	s.openOption = option

	return s.open(option)
}

// open starts a new invocation of e. Elements which take no values are closed at once.
func (s *parseState) open(e *Element) error {
	invocations := s.invocations[e]
	if invocations.Len() >= e.count.Max {
		if !e.Overwrite {
			return errs.ErrTooManyInvocations.WithArgs(e.String(), e.count.Max)
		}
		if invocations.Len() > 0 {
			invocations.PopFront()
		}
	}
	invocations.PushBack(&invocation{})

	if e.args.Max == 0 {
		return s.close(e)
	}

	return nil
}

// accept appends value to the current invocation of e and closes it once full
func (s *parseState) accept(e *Element, value string) error {
	inv := s.current(e)
	inv.values = append(inv.values, value)
	if len(inv.values) >= e.args.Max {
		return s.close(e)
	}

	return nil
}

// close completes the current invocation of e, padding it with e's default. Closing the
// argument under the cursor moves the cursor on and opens the next argument.
func (s *parseState) close(e *Element) error {
	inv := s.current(e)
	if len(inv.values) < e.args.Min {
		if !e.HasDefault() {
			return errs.ErrTooFewArguments.WithArgs(e.String())
		}
		for len(inv.values) < e.args.Min {
			inv.values = append(inv.values, e.Default)
		}
	}

	if e == s.openOption {
		s.openOption = nil
		return nil
	}
	if s.cursor < len(s.active.arguments) && s.active.arguments[s.cursor] == e {
		return s.advance()
	}

	return nil
}

// advance moves the positional cursor to the next argument and opens it
func (s *parseState) advance() error {
	s.cursor++
	if s.cursor < len(s.active.arguments) {
		return s.open(s.active.arguments[s.cursor])
	}

	return nil
}

// finish closes whatever is still open once the tokens are exhausted
func (s *parseState) finish() error {
	if s.openOption != nil {
		if err := s.close(s.openOption); err != nil {
			return err
		}
	}
	for s.cursor < len(s.active.arguments) {
		argument := s.active.arguments[s.cursor]
		if argument.count.Min == 0 && !argument.HasDefault() && len(s.current(argument).values) == 0 {
			// an optional argument which received nothing is not counted as used
			s.invocations[argument].PopBack()
			if err := s.advance(); err != nil {
				return err
			}
			continue
		}
		if err := s.close(argument); err != nil {
			return err
		}
	}

	return nil
}

func (s *parseState) current(e *Element) *invocation {
	back, _ := s.invocations[e].Back()

	return back.(*invocation)
}
