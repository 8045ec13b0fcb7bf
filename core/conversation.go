package core

import (
	"context"
	"slices"
	"time"
)

// ConversationState tracks the coordinator-side view of one conversation:
// which agents have participated, how many coordinated turns happened, and
// when it was last touched. Entries are created on first upsert and only
// removed by sweeping.
type ConversationState struct {
	ID             string    `json:"conversation_id"`
	InvolvedAgents []string  `json:"involved_agents"`
	TurnCount      int       `json:"message_count"`
	LastUpdate     time.Time `json:"last_update"`
}

// Involves reports whether the named agent already participated in this
// conversation. Used by the executor to pick the continue vs. start path.
func (s *ConversationState) Involves(agent string) bool {
	return slices.Contains(s.InvolvedAgents, agent)
}

// Clone returns a deep copy so callers can read state without holding
// store locks.
func (s *ConversationState) Clone() *ConversationState {
	cp := *s
	cp.InvolvedAgents = slices.Clone(s.InvolvedAgents)
	return &cp
}

// ConversationStore persists conversation state across coordination rounds.
//
// Implementations must serialize concurrent writes to the same conversation
// id; the involved-agent set and turn counter would otherwise lose updates
// under parallel rounds. Absence of a record is a normal outcome, reported
// via ErrConversationNotFound, not an exceptional one.
type ConversationStore interface {
	// Get returns a copy of the state for id, or ErrConversationNotFound.
	Get(ctx context.Context, id string) (*ConversationState, error)

	// Upsert merges the involved agent set into any existing record
	// (union, not replacement), increments the turn count and refreshes
	// the last-update timestamp. Creates the record on first sight.
	Upsert(ctx context.Context, id string, involved []string) error

	// Sweep removes entries idle for longer than maxIdle and returns the
	// number removed.
	Sweep(ctx context.Context, maxIdle time.Duration) (int, error)

	// List returns all conversation states ordered by last update,
	// newest first.
	List(ctx context.Context) ([]ConversationState, error)
}
