package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("no")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("outer context: %w", Conflict("slot taken"))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestErrorMessageFormatting(t *testing.T) {
	err := Validation("rating must be between %d and %d", 1, 5)
	assert.Equal(t, "rating must be between 1 and 5", err.Error())
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("db down")
	err := &Error{Kind: KindUnknown, Message: "lookup failed", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "lookup failed: db down", err.Error())
}
