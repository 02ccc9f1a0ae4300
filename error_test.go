package rentscout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/rentscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := rentscout.Errorf(rentscout.ENOTFOUND, "listing %q not found", "test")

	assert.Equal(t, rentscout.ENOTFOUND, rentscout.ErrorCode(err))
	assert.Equal(t, "listing \"test\" not found", rentscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rentscout.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rentscout.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("locate: %w", rentscout.Errorf(rentscout.EFETCH, "HTTP 503"))

	assert.Equal(t, rentscout.EFETCH, rentscout.ErrorCode(err))
	assert.Equal(t, "HTTP 503", rentscout.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, rentscout.EINTERNAL, rentscout.ErrorCode(err))
	assert.Equal(t, "Internal error.", rentscout.ErrorMessage(err))
}

func TestIsRecoverable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want bool
	}{
		{rentscout.EUPSTREAM, true},
		{rentscout.EUNPARSABLE, true},
		{rentscout.EFETCH, false},
		{rentscout.EINVALID, false},
		{rentscout.ENOCONTENT, false},
		{rentscout.EINTERNAL, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			err := rentscout.Errorf(tt.code, "x")
			assert.Equal(t, tt.want, rentscout.IsRecoverable(err))
		})
	}
}
