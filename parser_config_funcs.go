package argparse

import (
	"log/slog"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProg("git"),
//		WithOption(NewFlag(WithAliases("-v", "--verbose"), WithCount("*"))),
//		WithCommand("remote",
//			WithSubcommand("add",
//				WithCommandArgument(NewArgument(WithName("name"))),
//				WithCommandArgument(NewArgument(WithName("url"))))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser("")

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithProg sets the program name. When empty, Parse takes it from args[0].
func WithProg(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.name = name
	}
}

// WithParserDescription sets the description of the program
func WithParserDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.description = description
	}
}

// WithArgument is a wrapper for AddArgument
func WithArgument(argument *Element) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddArgument(argument)
	}
}

// WithOption is a wrapper for AddOption. Options and flags share it.
func WithOption(option *Element) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(option)
	}
}

// WithCommand declares a command named name configured by configs
func WithCommand(name string, configs ...ConfigureCommandFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		var cmd *Command
		if cmd, *err = NewCommand(name, configs...); *err == nil {
			*err = parser.AddCommand(cmd)
		}
	}
}

// WithCommands adds already constructed commands
func WithCommands(commands ...*Command) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		for _, cmd := range commands {
			if *err = parser.AddCommand(cmd); *err != nil {
				return
			}
		}
	}
}

// WithReporter replaces the default TerminatingReporter
func WithReporter(reporter Reporter) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.reporter = reporter
	}
}

// WithRaisingErrors makes Parse return errors instead of printing them and exiting
func WithRaisingErrors() ConfigureParserFunc {
	return WithReporter(RaisingReporter{})
}

// WithLogger sets the logger receiving debug traces of the parse
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.logger = logger
	}
}

// WithTargetConverter sets the conversion applied to targets inferred from option aliases
func WithTargetConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.targetConverter = converter
	}
}
