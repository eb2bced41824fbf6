package pagination

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token := EncodeCursor(42)
	id, err := DecodeCursor(&token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestDecodeCursorEmpty(t *testing.T) {
	id, err := DecodeCursor(nil)
	require.NoError(t, err)
	assert.Zero(t, id)

	empty := ""
	id, err = DecodeCursor(&empty)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for _, token := range []string{"!!!", "aWR8YWJj", "Zm9vfDEy"} {
		_, err := DecodeCursor(&token)
		assert.ErrorIs(t, err, apperrors.ErrValidation, token)
	}
}

func TestNextToken(t *testing.T) {
	assert.Nil(t, NextToken([]int64{1, 2}, 3))
	next := NextToken([]int64{1, 2, 3}, 3)
	require.NotNil(t, next)
	id, err := DecodeCursor(next)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}
