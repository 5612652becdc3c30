package errs

import (
	"errors"

	"github.com/napalu/argparse/i18n"
)

// User-facing parse errors. All of them end the current parse.
var (
	ErrUnknownOption      = i18n.NewError(ErrUnknownOptionKey)
	ErrWrongCommand       = i18n.NewError(ErrWrongCommandKey)
	ErrTooManyArguments   = i18n.NewError(ErrTooManyArgumentsKey)
	ErrTooFewArguments    = i18n.NewError(ErrTooFewArgumentsKey)
	ErrTooManyInvocations = i18n.NewError(ErrTooManyInvocationsKey)
	ErrTooFewInvocations  = i18n.NewError(ErrTooFewInvocationsKey)
	ErrOptionTakesNoValue = i18n.NewError(ErrOptionTakesNoValueKey)
	ErrMalformedValue     = i18n.NewError(ErrMalformedValueKey)
)

// Specification errors indicate a defect in the declared parser tree
var (
	ErrInvalidBounds   = i18n.NewError(ErrInvalidBoundsKey)
	ErrDuplicateTarget = i18n.NewError(ErrDuplicateTargetKey)
	ErrInvalidAlias    = i18n.NewError(ErrInvalidAliasKey)
	ErrEmptyName       = i18n.NewError(ErrEmptyNameKey)
)

// Result access and conversion errors
var (
	ErrTargetNotFound            = i18n.NewError(ErrTargetNotFoundKey)
	ErrUnsupportedTypeConversion = i18n.NewError(ErrUnsupportedTypeConversionKey)
	ErrPointerExpected           = i18n.NewError(ErrPointerExpectedKey)
	ErrParseBool                 = i18n.NewError(ErrParseBoolKey)
	ErrParseInt                  = i18n.NewError(ErrParseIntKey)
	ErrParseUint                 = i18n.NewError(ErrParseUintKey)
	ErrParseFloat                = i18n.NewError(ErrParseFloatKey)
	ErrParseDuration             = i18n.NewError(ErrParseDurationKey)
	ErrParseTime                 = i18n.NewError(ErrParseTimeKey)
)

// IsSpecificationError returns true when err stems from a malformed parser declaration
func IsSpecificationError(err error) bool {
	return errors.Is(err, ErrInvalidBounds) ||
		errors.Is(err, ErrDuplicateTarget) ||
		errors.Is(err, ErrInvalidAlias) ||
		errors.Is(err, ErrEmptyName)
}
