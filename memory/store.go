package memory

import (
	"time"

	"github.com/hupe1980/travelmesh/model"
)

// Store is the conversation memory contract agents depend on. InMemoryStore
// is the default implementation; alternatives only need to preserve
// append-order history and per-conversation context values.
type Store interface {
	// Get returns a defensive copy of the conversation record.
	Get(conversationID string) (*Record, bool)

	// AppendHistory appends messages to the conversation, creating the
	// record on first use.
	AppendHistory(conversationID string, msgs ...model.Message)

	// ContextValue reads a conversation context value.
	ContextValue(conversationID, key string) (any, bool)

	// SetContextValue stores a conversation context value.
	SetContextValue(conversationID, key string, value any)

	// Count reports the number of conversations currently held.
	Count() int

	// ClearIdle removes conversations with no activity for maxIdle and
	// reports how many were removed.
	ClearIdle(maxIdle time.Duration) int
}
