package specfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/napalu/argparse"
	"github.com/napalu/argparse/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitSpec = `
name: git
description: the stupid content tracker
flags:
  - aliases: [-v, --verbose]
    count: "*"
options:
  - aliases: [-C]
    target: directory
    default: "."
commands:
  - name: remote
    aliases: [r]
    commands:
      - name: add
        target: remote_add
        options:
          - aliases: [-t, --track]
            count: "*"
        arguments:
          - name: name
          - name: url
  - name: log
    options:
      - aliases: [-n, --max-count]
        convert: int
      - aliases: [--since]
        convert: duration
    arguments:
      - name: paths
        args: "*"
        count: "?"
`

func TestParse_Build(t *testing.T) {
	spec, err := Parse([]byte(gitSpec))
	require.NoError(t, err)
	assert.Equal(t, "git", spec.Name)
	require.Len(t, spec.Commands, 2)
	assert.Equal(t, []string{"r"}, spec.Commands[0].Aliases)

	p, err := spec.Build(argparse.WithRaisingErrors())
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	res, err := p.Parse([]string{"git", "-vv", "r", "add", "-t", "main", "origin", "git@example.com:x.git"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"verbose":    2,
		"remote":     true,
		"remote_add": true,
		"name":       "origin",
		"url":        "git@example.com:x.git",
		"track":      []any{"main"},
	}, res.Map())

	res, err = p.Parse([]string{"git", "-C", "/tmp", "log", "-n3", "--since", "2h", "a.go", "b.go"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"directory": "/tmp",
		"verbose":   0,
		"log":       true,
		"max-count": 3,
		"since":     2 * time.Hour,
		"paths":     []any{"a.go", "b.go"},
	}, res.Map())

	_, err = p.Parse([]string{"git", "log", "-n", "many"})
	assert.ErrorIs(t, err, errs.ErrMalformedValue)
}

func TestParse_IntegerSpecifiers(t *testing.T) {
	spec, err := Parse([]byte(`
name: tool
options:
  - aliases: [--point]
    args: 2
    count: 0-3
`))
	require.NoError(t, err)
	assert.Equal(t, Specifier("2"), spec.Options[0].Args)
	assert.Equal(t, Specifier("0-3"), spec.Options[0].Count)

	p, err := spec.Build(argparse.WithRaisingErrors())
	require.NoError(t, err)
	res, err := p.Parse([]string{"tool", "--point", "1", "2", "--point", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"1", "2"}, {"3", "4"}}, res.Invocations("point"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "", ErrEmptySpec},
		{"sequence specifier", "options:\n  - aliases: [-x]\n    args: [1, 2]\n", ErrInvalidSpecifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	spec, err := Parse([]byte("name: x\noptions:\n  - aliases: [--n]\n    convert: complex\n"))
	require.NoError(t, err)
	_, err = spec.Build()
	assert.ErrorIs(t, err, ErrUnknownConverter)
	assert.Contains(t, err.Error(), "line 3")

	spec, err = Parse([]byte("name: x\ncommands:\n  - name: c\n    flags:\n      - aliases: [v]\n"))
	require.NoError(t, err)
	_, err = spec.Build()
	assert.ErrorIs(t, err, errs.ErrInvalidAlias)

	spec, err = Parse([]byte("name: x\noptions:\n  - aliases: [--n]\n    args: lots\n"))
	require.NoError(t, err)
	p, err := spec.Build()
	require.NoError(t, err)
	assert.ErrorIs(t, p.Validate(), errs.ErrInvalidBounds)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gitSpec), 0o600))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "the stupid content tracker", spec.Description)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConverters(t *testing.T) {
	assert.Equal(t, []string{"bool", "duration", "float", "int", "int64", "string", "time", "uint"}, Converters())
}
