package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesCode(t *testing.T) {
	err := New(CodeNotFound, "record not found")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeValidation))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("fulfill: %w", New(CodeValidation, "selection required"))
	assert.True(t, Is(err, CodeValidation))
	assert.Equal(t, CodeValidation, CodeOf(err))
	assert.Equal(t, "selection required", MessageOf(err))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("boom")))
	assert.Equal(t, "internal error", MessageOf(stderrors.New("boom")))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidation, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{Code("mystery"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.code), "code %s", tt.code)
	}
}
