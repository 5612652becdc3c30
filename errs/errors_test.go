package errs

import (
	"fmt"
	"testing"

	"github.com/napalu/argparse/i18n"
	"github.com/stretchr/testify/assert"
)

func TestAllKeysHaveMessages(t *testing.T) {
	all := []*i18n.TrError{
		ErrUnknownOption, ErrWrongCommand, ErrTooManyArguments, ErrTooFewArguments,
		ErrTooManyInvocations, ErrTooFewInvocations, ErrOptionTakesNoValue, ErrMalformedValue,
		ErrInvalidBounds, ErrDuplicateTarget, ErrInvalidAlias, ErrEmptyName,
		ErrTargetNotFound, ErrUnsupportedTypeConversion, ErrPointerExpected,
		ErrParseBool, ErrParseInt, ErrParseUint, ErrParseFloat, ErrParseDuration, ErrParseTime,
	}
	for _, e := range all {
		assert.True(t, i18n.Default().HasKey(e.Key()), "missing message for %s", e.Key())
	}
}

func TestIsSpecificationError(t *testing.T) {
	assert.True(t, IsSpecificationError(ErrInvalidBounds.WithArgs("args", "x", "option '-x'")))
	assert.True(t, IsSpecificationError(fmt.Errorf("wrapped: %w", ErrDuplicateTarget.WithArgs("a", "b"))))
	assert.False(t, IsSpecificationError(ErrUnknownOption.WithArgs("-x")))
	assert.False(t, IsSpecificationError(nil))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "option 'v' must be used at most 2 times", ErrTooManyInvocations.WithArgs("option 'v'", 2).Error())
	assert.Equal(t, "option '--verbose' does not take arguments", ErrOptionTakesNoValue.WithArgs("--verbose").Error())
}
