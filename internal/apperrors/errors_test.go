package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("%w: invoice 7", apperrors.ErrNotFound)
	err := apperrors.NewAppError(500, "failed to commit transaction", cause)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "failed to commit transaction: resource not found: invoice 7", err.Error())

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := apperrors.NewAppError(409, "conflict", nil)
	assert.Equal(t, "conflict", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
