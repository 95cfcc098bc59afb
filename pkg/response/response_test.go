package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	notFound := NewError(http.StatusNotFound, "blog not found")

	assert.True(t, errors.Is(notFound, NewError(http.StatusNotFound, "blog not found")))
	assert.True(t, errors.Is(fmt.Errorf("lookup: %w", notFound), notFound))
	assert.False(t, errors.Is(notFound, NewError(http.StatusBadRequest, "blog not found")))
	assert.False(t, errors.Is(notFound, NewError(http.StatusNotFound, "author not found")))
	assert.False(t, errors.Is(notFound, errors.New("blog not found")))
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError(http.StatusTooManyRequests, "slow down"))

	var respErr *Error
	if assert.True(t, errors.As(err, &respErr)) {
		assert.Equal(t, http.StatusTooManyRequests, respErr.Code)
		assert.Equal(t, "slow down", respErr.Error())
	}
}

func TestEnvelopes(t *testing.T) {
	ok := Success("done", map[string]int{"deleted": 2})
	assert.True(t, ok.Status)
	assert.Equal(t, "done", ok.Msg)
	assert.Empty(t, ok.Error)

	failed := Failure("nope", "boom")
	assert.False(t, failed.Status)
	assert.Nil(t, failed.Data)
	assert.Equal(t, "boom", failed.Error)
}
