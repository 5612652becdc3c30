package argparse

import (
	"testing"

	"github.com/napalu/argparse/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_PrepareIdempotent(t *testing.T) {
	p, err := NewParserWith(
		WithProg("app"),
		WithOption(NewOption(WithAliases("-o", "--output-file"), WithArgs("1-3"), WithCount("+"))),
		WithArgument(NewArgument(WithName("input"))),
		WithCommand("deploy",
			WithCommandOption(NewFlag(WithAliases("+f"))),
			WithSubcommand("prod")))
	require.NoError(t, err)

	require.NoError(t, p.Validate())
	snapshot := func() []any {
		o := p.Options()[0]
		deploy := p.Commands()[0]
		return []any{
			p.Charset(), deploy.Charset(),
			o.Target, o.Name, o.ArgsBounds(), o.CountBounds(),
			p.Arguments()[0].Target,
			deploy.Name(), deploy.Target(), deploy.Commands()[0].Name(),
		}
	}
	first := snapshot()

	p.prepared = false
	deploy := p.Commands()[0]
	deploy.prepared = false
	require.NoError(t, p.Validate())
	assert.Equal(t, first, snapshot())

	assert.Equal(t, "+-", p.Charset(), "root charset includes descendant prefixes")
	assert.Equal(t, "output-file", p.Options()[0].Target)
	assert.Equal(t, types.Bounds{Min: 1, Max: 3}, p.Options()[0].ArgsBounds())
	assert.Equal(t, types.Bounds{Min: 1, Max: types.Unbounded}, p.Options()[0].CountBounds())
	assert.Equal(t, "app deploy", deploy.Name())
	assert.Equal(t, "app deploy prod", deploy.Commands()[0].Name())
}

func TestParser_TargetInference(t *testing.T) {
	tests := []struct {
		aliases []string
		want    string
	}{
		{[]string{"-n", "--number"}, "number"},
		{[]string{"--number", "-n"}, "number"},
		{[]string{"-n"}, "n"},
		{[]string{"/n", "//name"}, "name"},
		{[]string{"-x", "+y"}, "x"},
	}
	for _, tt := range tests {
		o := NewOption(WithAliases(tt.aliases...))
		p, err := NewParserWith(WithOption(o))
		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, tt.want, o.Target, "aliases %v", tt.aliases)
	}
}

func TestElement_DefaultBounds(t *testing.T) {
	p := NewParser("p")
	arg := NewArgument(WithName("a"))
	opt := NewOption(WithAliases("-o"))
	flag := NewFlag(WithAliases("-f"), WithArgs("3"))
	literal := &Element{Aliases: []string{"--literal"}}
	require.NoError(t, p.AddArgument(arg))
	require.NoError(t, p.AddOption(opt))
	require.NoError(t, p.AddOption(flag))
	require.NoError(t, p.AddOption(literal))
	require.NoError(t, p.Validate())

	assert.Equal(t, types.Bounds{Min: 1, Max: 1}, arg.ArgsBounds())
	assert.Equal(t, types.Bounds{Min: 1, Max: 1}, arg.CountBounds())
	assert.Equal(t, types.Bounds{Min: 1, Max: 1}, opt.ArgsBounds())
	assert.Equal(t, types.Bounds{Min: 0, Max: 1}, opt.CountBounds())
	assert.Equal(t, types.Bounds{Min: 0, Max: 0}, flag.ArgsBounds(), "flags never take values")
	assert.Equal(t, types.KindOption, literal.Kind())
	assert.Equal(t, types.Bounds{Min: 1, Max: 1}, literal.ArgsBounds())
	assert.Equal(t, "literal", literal.Target)
}

func TestCommand_DefaultTargetAndAliases(t *testing.T) {
	cmd, err := NewCommand("checkout", WithCommandAliases("co"), WithCommandDescription("switch branches"))
	require.NoError(t, err)
	p := NewParser("git")
	require.NoError(t, p.AddCommand(cmd))
	require.NoError(t, p.Validate())

	assert.Equal(t, []string{"checkout", "co"}, cmd.Aliases())
	assert.Equal(t, "checkout", cmd.Target())
	assert.Equal(t, "switch branches", cmd.Description())
	assert.Equal(t, "git checkout", cmd.Name())

	_, err = NewCommand("x", WithCommandAliases(""))
	assert.Error(t, err)
	assert.Error(t, p.AddCommand(nil))
}
