package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeNoStrikerSet, "no striker")
	other := New(CodeNoStrikerSet, "different message")

	assert.True(t, errors.Is(other, sentinel))
	assert.False(t, errors.Is(New(CodePlayerNotFound, "x"), sentinel))

	wrapped := fmt.Errorf("scoring: %w", other)
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, CodeNoStrikerSet, CodeOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeUnknown, "save match", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save match: disk full", err.Error())
}

func TestWithCopiesMetadata(t *testing.T) {
	base := New(CodePlayerNotFound, "player not found")
	withID := base.With("player_id", "p1")

	assert.Nil(t, base.Metadata)
	assert.Equal(t, "p1", withID.Metadata["player_id"])
	assert.ErrorIs(t, withID, base)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(CodePlayersNotSelected, ""), http.StatusConflict},
		{New(CodeInvalidSelection, ""), http.StatusUnprocessableEntity},
		{New(CodePlayerNotFound, ""), http.StatusNotFound},
		{New(CodeUnauthorized, ""), http.StatusUnauthorized},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}
