// Package errs declares the sentinel errors reported by argparse.
// This file contains the catalog keys of all error messages.
package errs

const (
	prefixKey = "argparse"

	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// User-facing parse errors
const (
	ErrUnknownOptionKey      = ErrorPrefixKey + ".unknown_option"
	ErrWrongCommandKey       = ErrorPrefixKey + ".wrong_command"
	ErrTooManyArgumentsKey   = ErrorPrefixKey + ".too_many_arguments"
	ErrTooFewArgumentsKey    = ErrorPrefixKey + ".too_few_arguments"
	ErrTooManyInvocationsKey = ErrorPrefixKey + ".too_many_invocations"
	ErrTooFewInvocationsKey  = ErrorPrefixKey + ".too_few_invocations"
	ErrOptionTakesNoValueKey = ErrorPrefixKey + ".option_takes_no_value"
	ErrMalformedValueKey     = ErrorPrefixKey + ".malformed_value"
)

// Specification (programming) errors
const (
	ErrInvalidBoundsKey   = ErrorPrefixKey + ".invalid_bounds"
	ErrDuplicateTargetKey = ErrorPrefixKey + ".duplicate_target"
	ErrInvalidAliasKey    = ErrorPrefixKey + ".invalid_alias"
	ErrEmptyNameKey       = ErrorPrefixKey + ".empty_name"
)

// Result access and conversion errors
const (
	ErrTargetNotFoundKey            = ErrorPrefixKey + ".target_not_found"
	ErrUnsupportedTypeConversionKey = ErrorPrefixKey + ".unsupported_type_conversion"
	ErrPointerExpectedKey           = ErrorPrefixKey + ".pointer_expected"
	ErrParseBoolKey                 = ParseErrorPathKey + ".bool"
	ErrParseIntKey                  = ParseErrorPathKey + ".int"
	ErrParseUintKey                 = ParseErrorPathKey + ".uint"
	ErrParseFloatKey                = ParseErrorPathKey + ".float"
	ErrParseDurationKey             = ParseErrorPathKey + ".duration"
	ErrParseTimeKey                 = ParseErrorPathKey + ".time"
)
