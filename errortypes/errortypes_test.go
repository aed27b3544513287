package errortypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCode(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected int
	}{
		{
			desc:     "bad-input",
			err:      &BadInput{Message: "short"},
			expected: BadInputErrorCode,
		},
		{
			desc:     "signature-mismatch",
			err:      &SignatureMismatch{Message: "sig"},
			expected: SignatureMismatchErrorCode,
		},
		{
			desc:     "failed-to-write",
			err:      &FailedToWrite{Message: "disk"},
			expected: FailedToWriteErrorCode,
		},
		{
			desc:     "warning",
			err:      &Warning{Message: "dup", WarningCode: DuplicateShapeWarningCode},
			expected: DuplicateShapeWarningCode,
		},
		{
			desc:     "plain",
			err:      errors.New("plain"),
			expected: UnknownErrorCode,
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, ReadCode(test.err), test.desc)
	}
}

func TestSeverityFilters(t *testing.T) {
	fatal := &BadInput{Message: "fatal"}
	plain := errors.New("plain")
	warning := &Warning{Message: "warn", WarningCode: DuplicateShapeWarningCode}
	errs := []error{fatal, warning, plain}

	assert.Equal(t, []error{fatal, plain}, FatalOnly(errs))
	assert.Equal(t, []error{warning}, WarningOnly(errs))
	assert.True(t, IsWarning(warning))
	assert.False(t, IsWarning(plain))
}

func TestAggregateErrors(t *testing.T) {
	testCases := []struct {
		desc     string
		errs     []error
		expected string
	}{
		{
			desc:     "none",
			errs:     nil,
			expected: "",
		},
		{
			desc:     "one",
			errs:     []error{errors.New("a")},
			expected: "config (1 error):\n  1: a\n",
		},
		{
			desc:     "two",
			errs:     []error{errors.New("a"), errors.New("b")},
			expected: "config (2 errors):\n  1: a\n  2: b\n",
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, NewAggregateErrors("config", test.errs).Error(), test.desc)
	}
}

func TestAggregateErrorsUnwrap(t *testing.T) {
	bad := &BadInput{Message: "bad"}
	err := error(NewAggregateErrors("config", []error{errors.New("a"), bad}))

	var target *BadInput
	assert.True(t, errors.As(err, &target))
	assert.Same(t, bad, target)
}
