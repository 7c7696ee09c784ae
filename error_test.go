package c2padocs_test

import (
	"errors"
	"testing"

	"github.com/akowalczyk/c2padocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := c2padocs.Errorf(c2padocs.ENOTFOUND, "source %q not found", "spec-2.2")

	assert.Equal(t, c2padocs.ENOTFOUND, c2padocs.ErrorCode(err))
	assert.Equal(t, "source \"spec-2.2\" not found", c2padocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, c2padocs.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, c2padocs.EINTERNAL, c2padocs.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, c2padocs.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", c2padocs.ErrorMessage(errors.New("boom")))
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, c2padocs.Retryable(c2padocs.Errorf(c2padocs.EUNAVAILABLE, "upstream down")))
	assert.True(t, c2padocs.Retryable(c2padocs.Errorf(c2padocs.ERATELIMITED, "slow down")))
	assert.False(t, c2padocs.Retryable(c2padocs.Errorf(c2padocs.EBLOCKED, "blocked host")))
	assert.False(t, c2padocs.Retryable(c2padocs.Errorf(c2padocs.EINVALID, "bad input")))
	assert.False(t, c2padocs.Retryable(nil))
}
