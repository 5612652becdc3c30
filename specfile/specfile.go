// Package specfile builds argparse parsers from YAML declarations.
//
//	name: git
//	flags:
//	  - aliases: [-v, --verbose]
//	    count: "*"
//	commands:
//	  - name: remote
//	    commands:
//	      - name: add
//	        arguments:
//	          - name: name
//	          - name: url
package specfile

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/napalu/argparse"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownConverter = errors.New("unknown converter")
	ErrEmptySpec        = errors.New("empty specification")
	ErrInvalidSpecifier = errors.New("boundary specifier must be a scalar")
)

// Spec is the root of a YAML declaration
type Spec struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Arguments   []Element `yaml:"arguments"`
	Options     []Element `yaml:"options"`
	Flags       []Element `yaml:"flags"`
	Commands    []Command `yaml:"commands"`
}

// Command declares a nested command
type Command struct {
	Name        string    `yaml:"name"`
	Aliases     []string  `yaml:"aliases"`
	Target      string    `yaml:"target"`
	Description string    `yaml:"description"`
	Arguments   []Element `yaml:"arguments"`
	Options     []Element `yaml:"options"`
	Flags       []Element `yaml:"flags"`
	Commands    []Command `yaml:"commands"`
}

// Element declares an argument, option or flag
type Element struct {
	Name        string    `yaml:"name"`
	Aliases     []string  `yaml:"aliases"`
	Target      string    `yaml:"target"`
	Description string    `yaml:"description"`
	Default     *string   `yaml:"default"`
	Args        Specifier `yaml:"args"`
	Count       Specifier `yaml:"count"`
	Overwrite   bool      `yaml:"overwrite"`
	Convert     string    `yaml:"convert"`

	line int
}

// Specifier is a boundary specifier written either as an integer or a string
type Specifier string

// UnmarshalYAML accepts any scalar
func (s *Specifier) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrInvalidSpecifier)
	}
	*s = Specifier(node.Value)

	return nil
}

// UnmarshalYAML records the line of the element for error messages
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	type plain Element
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Element(p)
	e.line = node.Line

	return nil
}

var converters = map[string]argparse.ConvertFunc{
	"string":   nil,
	"int":      argparse.AsInt,
	"int64":    argparse.AsInt64,
	"uint":     argparse.AsUint,
	"float":    argparse.AsFloat,
	"bool":     argparse.AsBool,
	"duration": argparse.AsDuration,
	"time":     argparse.AsTime,
}

// Converters returns the names accepted by the convert field, sorted
func Converters() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Load reads and decodes the YAML declaration at path
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML declaration
func Parse(data []byte) (*Spec, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, ErrEmptySpec
	}

	var spec Spec
	if err := node.Decode(&spec); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Build creates the parser described by s. configs are applied after the declaration,
// e.g. to install a Reporter or a logger.
func (s *Spec) Build(configs ...argparse.ConfigureParserFunc) (*argparse.Parser, error) {
	all := []argparse.ConfigureParserFunc{
		argparse.WithProg(s.Name),
		argparse.WithParserDescription(s.Description),
	}

	elements, err := buildElements(s.Arguments, s.Options, s.Flags)
	if err != nil {
		return nil, err
	}
	for _, e := range elements.arguments {
		all = append(all, argparse.WithArgument(e))
	}
	for _, e := range elements.options {
		all = append(all, argparse.WithOption(e))
	}
	for _, c := range s.Commands {
		cmdConfigs, err := c.configs()
		if err != nil {
			return nil, err
		}
		all = append(all, argparse.WithCommand(c.Name, cmdConfigs...))
	}

	return argparse.NewParserWith(append(all, configs...)...)
}

func (c Command) configs() ([]argparse.ConfigureCommandFunc, error) {
	configs := []argparse.ConfigureCommandFunc{argparse.WithCommandDescription(c.Description)}
	if len(c.Aliases) > 0 {
		configs = append(configs, argparse.WithCommandAliases(c.Aliases...))
	}
	if c.Target != "" {
		configs = append(configs, argparse.WithCommandTarget(c.Target))
	}

	elements, err := buildElements(c.Arguments, c.Options, c.Flags)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", c.Name, err)
	}
	for _, e := range elements.arguments {
		configs = append(configs, argparse.WithCommandArgument(e))
	}
	for _, e := range elements.options {
		configs = append(configs, argparse.WithCommandOption(e))
	}
	for _, sub := range c.Commands {
		subConfigs, err := sub.configs()
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", c.Name, err)
		}
		configs = append(configs, argparse.WithSubcommand(sub.Name, subConfigs...))
	}

	return configs, nil
}

type builtElements struct {
	arguments []*argparse.Element
	options   []*argparse.Element
}

// buildElements keeps options and flags in declaration order, options first
func buildElements(arguments, options, flags []Element) (builtElements, error) {
	var out builtElements
	for _, group := range []struct {
		declared []Element
		factory  func(...argparse.ConfigureElementFunc) *argparse.Element
		into     *[]*argparse.Element
	}{
		{arguments, argparse.NewArgument, &out.arguments},
		{options, argparse.NewOption, &out.options},
		{flags, argparse.NewFlag, &out.options},
	} {
		for _, declared := range group.declared {
			e, err := declared.build(group.factory)
			if err != nil {
				return out, err
			}
			*group.into = append(*group.into, e)
		}
	}

	return out, nil
}

func (e Element) build(factory func(...argparse.ConfigureElementFunc) *argparse.Element) (*argparse.Element, error) {
	configs := []argparse.ConfigureElementFunc{
		argparse.WithName(e.Name),
		argparse.WithAliases(e.Aliases...),
		argparse.WithTarget(e.Target),
		argparse.WithDescription(e.Description),
		argparse.WithOverwrite(e.Overwrite),
	}
	if e.Args != "" {
		configs = append(configs, argparse.WithArgs(string(e.Args)))
	}
	if e.Count != "" {
		configs = append(configs, argparse.WithCount(string(e.Count)))
	}
	if e.Default != nil {
		configs = append(configs, argparse.WithDefault(*e.Default))
	}
	if e.Convert != "" {
		convert, ok := converters[strings.ToLower(e.Convert)]
		if !ok {
			return nil, fmt.Errorf("line %d: %w '%s' (expected one of %s)",
				e.line, ErrUnknownConverter, e.Convert, strings.Join(Converters(), ", "))
		}
		configs = append(configs, argparse.WithConvert(convert))
	}

	return factory(configs...), nil
}
