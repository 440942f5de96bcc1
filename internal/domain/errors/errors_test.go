package errors

import (
	"net/http"
	"testing"

	"canteen/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := errors.Wrap(ErrWrongWindow.WithDetails("Dinner items are not served in Lunch"), "book")

	assert.True(t, errors.Is(err, ErrWrongWindow))
	assert.False(t, errors.Is(err, ErrOutsideWindow))
	assert.Equal(t, "WRONG_WINDOW", Kind(err))
	assert.Equal(t, "Dinner items are not served in Lunch", DetailsOf(err))
}

func TestKind_PlainError(t *testing.T) {
	assert.Empty(t, Kind(errors.New("boom")))
	assert.Empty(t, DetailsOf(errors.New("boom")))
	assert.False(t, IsDenial(errors.New("boom")))
}

func TestIsDenial(t *testing.T) {
	assert.True(t, IsDenial(ErrAlreadyPaid))
	assert.True(t, IsDenial(ErrNotOrderOwner))
	assert.False(t, IsDenial(ErrInternalError))

	storeErr := NewStoreError(errors.New("deadline exceeded"), "failed to update order")
	assert.False(t, IsDenial(storeErr))
	assert.Equal(t, http.StatusBadGateway, storeErr.HTTPCode())
	assert.Equal(t, "STORE_FAILURE", Kind(storeErr))
}
