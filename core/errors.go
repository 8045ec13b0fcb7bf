package core

import (
	"fmt"
	"strings"
)

var (
	// ErrNoAgents is returned by coordinator construction when zero agents
	// are supplied. The coordinator refuses to start rather than degrade
	// silently.
	ErrNoAgents = fmt.Errorf("no agents configured")

	// ErrConversationNotFound is returned by ConversationStore.Get when no
	// record exists for the id. Absence is a normal outcome; callers branch
	// on it with errors.Is.
	ErrConversationNotFound = fmt.Errorf("conversation not found")
)

// ValidationError reports malformed planning input. It fails the whole
// operation before any agent is invoked.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UnknownAgentError reports a request addressed to a specialization that is
// not configured, carrying the available ones for the caller.
type UnknownAgentError struct {
	Specialization string
	Available      []string
}

// Error implements the error interface.
func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent type: %s (available: %s)",
		e.Specialization, strings.Join(e.Available, ", "))
}
