package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSuccessResult(t *testing.T) {
	reply := &AgentReply{
		ConversationID: "c1",
		Agent:          "flight-agent",
		Text:           "Found 3 flights.",
		FunctionCalls:  []FunctionCallRecord{{Name: "search_flights"}},
	}

	res := NewSuccessResult(reply)

	assert.True(t, res.Successful())
	assert.Equal(t, ResultSuccess, res.Status)
	assert.Equal(t, "Found 3 flights.", res.Text)
	assert.Len(t, res.FunctionCalls, 1)
	assert.Empty(t, res.Reason)
}

func TestNewFailureResult(t *testing.T) {
	res := NewFailureResult(FailureTimeout)

	assert.False(t, res.Successful())
	assert.Equal(t, ResultFailure, res.Status)
	assert.Equal(t, "timeout", res.Reason)
	assert.Empty(t, res.Text)
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("days", "must be between 1 and 30")

	assert.EqualError(t, err, "invalid days: must be between 1 and 30")

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "days", ve.Field)
}

func TestUnknownAgentError_ListsAvailable(t *testing.T) {
	err := &UnknownAgentError{Specialization: "cruise", Available: []string{"flight", "hotel", "activity"}}

	assert.EqualError(t, err, "unknown agent type: cruise (available: flight, hotel, activity)")
}
