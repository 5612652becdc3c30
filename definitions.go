package argparse

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ConvertFunc transforms a raw token into the value stored in the Result
type ConvertFunc func(value string) (any, error)

// ConfigureParserFunc is used when defining a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureCommandFunc is used when defining a Command
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureElementFunc is used when defining arguments, options and flags
type ConfigureElementFunc func(element *Element)

// NameConversionFunc converts a stripped option alias into a result target
type NameConversionFunc func(string) string

// Built-in conversion strategies for inferred option targets
var (
	// ToSnakeCase converts "dry-run" to "dry_run"
	ToSnakeCase NameConversionFunc = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts "dry-run" to "dryRun"
	ToLowerCamel NameConversionFunc = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToKebabCase converts "dry_run" to "dry-run"
	ToKebabCase NameConversionFunc = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToLowerCase converts "DryRun" to "dryrun"
	ToLowerCase NameConversionFunc = strings.ToLower

	// KeepName leaves the stripped alias untouched
	KeepName NameConversionFunc = func(s string) string {
		return s
	}

	DefaultTargetConverter = KeepName
)

// Default boundary specifiers per element kind
const (
	DefaultArgumentArgs  = "1"
	DefaultArgumentCount = "1"
	DefaultOptionArgs    = "1"
	DefaultOptionCount   = "?"
	FlagArgs             = "0"
	DefaultFlagCount     = "?"
)

// defaultCharset is always part of a parser's option character set
const defaultCharset = '-'
