// Command argspec parses a command line against a parser declared in YAML and
// prints the result as JSON.
//
//	argspec -s git.yaml -- remote add origin https://example.com/x.git
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/napalu/argparse"
	"github.com/napalu/argparse/specfile"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// errors are printed as the process would print them; the exit status is returned to main
	reporter := argparse.NewTerminatingReporter(stderr).WithExitFunc(func(int) {})
	cli, err := argparse.NewParserWith(
		argparse.WithProg("argspec"),
		argparse.WithParserDescription("parse ARGS with the parser declared in a YAML file"),
		argparse.WithReporter(reporter),
		argparse.WithOption(argparse.NewOption(
			argparse.WithAliases("-s", "--spec"),
			argparse.WithCount("1"),
			argparse.WithDescription("YAML declaration of the parser"))),
		argparse.WithOption(argparse.NewFlag(
			argparse.WithAliases("-v", "--verbose"),
			argparse.WithCount("*"),
			argparse.WithDescription("log parser decisions to stderr, repeat for more detail"))),
		argparse.WithOption(argparse.NewFlag(
			argparse.WithAliases("--compact"),
			argparse.WithDescription("print JSON on a single line"))),
		argparse.WithArgument(argparse.NewArgument(
			argparse.WithName("args"),
			argparse.WithArgs("*"),
			argparse.WithDescription("command line to parse, use -- before options"))))
	if err != nil {
		fmt.Fprintf(stderr, "argspec: %v\n", err)
		return 1
	}

	opts, err := cli.Parse(args)
	if err != nil {
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel(opts.Count("verbose"))}))
	specPath, _ := opts.String("spec")
	spec, err := specfile.Load(specPath)
	if err != nil {
		logger.Error("failed to load specification", "path", specPath, "error", err)
		return 1
	}
	logger.Info("specification loaded", "path", specPath, "name", spec.Name)

	parser, err := spec.Build(argparse.WithReporter(reporter), argparse.WithLogger(logger))
	if err != nil {
		logger.Error("invalid specification", "path", specPath, "error", err)
		return 1
	}

	prog := spec.Name
	if prog == "" {
		prog = filepath.Base(specPath)
	}
	res, err := parser.Parse(append([]string{prog}, opts.Strings("args")...))
	if err != nil {
		if !isReported(err) {
			logger.Error("invalid specification", "path", specPath, "error", err)
		}
		return 1
	}

	var out []byte
	if opts.Bool("compact") {
		out, err = json.Marshal(res)
	} else {
		out, err = json.MarshalIndent(res, "", "  ")
	}
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))

	return 0
}

func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	}

	return slog.LevelWarn
}

func isReported(err error) bool {
	var pe *argparse.ParseError

	return errors.As(err, &pe)
}
