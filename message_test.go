package teller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tellerhq/teller"
)

func TestMessage_Role(t *testing.T) {
	t.Parallel()

	assert.Equal(t, teller.RoleUser, teller.UserMessage{}.Role())
	assert.Equal(t, teller.RoleAssistant, teller.AssistantMessage{}.Role())
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &teller.APIError{Status: 401, Message: "Invalid credentials"}
	assert.Equal(t, "Invalid credentials", err.Error())

	// Empty message falls back to the status code.
	err = &teller.APIError{Status: 500}
	assert.Equal(t, "backend error (HTTP 500)", err.Error())
}
