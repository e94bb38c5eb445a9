package rconerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError_IsMatchesAnyByDefault(t *testing.T) {
	err := fmt.Errorf("executing KickPlayer: %w", &CommandError{StatusCode: 400, Message: "bad id"})
	assert.True(t, errors.Is(err, &CommandError{}))
}

func TestCommandError_IsMatchesByStatusCode(t *testing.T) {
	err := &CommandError{StatusCode: 400, Message: "bad id"}
	assert.True(t, errors.Is(err, &CommandError{StatusCode: 400}))
	assert.False(t, errors.Is(err, &CommandError{StatusCode: 401}))
}

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{StatusCode: 500, Message: "boom"}
	assert.Equal(t, "rcon: command failed: 500 boom", err.Error())
}

func TestSentinelsWrap(t *testing.T) {
	wrapped := fmt.Errorf("connecting to 1.2.3.4:9000: %w", ErrRefused)
	assert.True(t, errors.Is(wrapped, ErrRefused))
}
