package argparse

import (
	"github.com/napalu/argparse/errs"
)

// Command is a named sub-parser. Its first alias is its own name; once its parent
// has been prepared, Name returns the name qualified by the parent's name
// (e.g. "git remote add").
type Command struct {
	Parser
	aliases []string
	target  string
}

// NewCommand creates a Command invoked by name and any further aliases configured
func NewCommand(name string, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := &Command{
		Parser:  *newParser(name),
		aliases: []string{name},
	}

	var err error
	for _, config := range configs {
		config(cmd, &err)
		if err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

// Aliases returns the tokens which invoke the command. The first one is its own name.
func (c *Command) Aliases() []string {
	return c.aliases
}

// Target returns the key under which the command's presence is recorded
func (c *Command) Target() string {
	return c.target
}

// ownName is the unqualified name of the command
func (c *Command) ownName() string {
	if len(c.aliases) == 0 {
		return ""
	}

	return c.aliases[0]
}

// WithCommandAliases adds further tokens invoking the command
func WithCommandAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, alias := range aliases {
			if alias == "" {
				*err = errs.ErrEmptyName.WithArgs("command alias")
				return
			}
		}
		command.aliases = append(command.aliases, aliases...)
	}
}

// WithCommandTarget sets the key under which the command's presence is recorded.
// Defaults to the command's own name.
func WithCommandTarget(target string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.target = target
	}
}

// WithCommandDescription sets the description of a command
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.description = description
	}
}

// WithCommandArgument declares a positional argument of the command
func WithCommandArgument(argument *Element) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddArgument(argument)
	}
}

// WithCommandOption declares an option or flag of the command
func WithCommandOption(option *Element) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddOption(option)
	}
}

// WithSubcommand declares a nested command
func WithSubcommand(name string, configs ...ConfigureCommandFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		var sub *Command
		if sub, *err = NewCommand(name, configs...); *err == nil {
			*err = command.AddCommand(sub)
		}
	}
}

// WithSubcommands adds already constructed commands
func WithSubcommands(commands ...*Command) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, sub := range commands {
			if *err = command.AddCommand(sub); *err != nil {
				return
			}
		}
	}
}
