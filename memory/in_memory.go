package memory

import (
	"sync"
	"time"

	"github.com/hupe1980/travelmesh/model"
)

// Record is one conversation's stored state: the message history replayed to
// the model on later turns, free-form context values, and recency.
type Record struct {
	ConversationID string
	History        []model.Message
	Context        map[string]any
	LastActivity   time.Time
}

// clone returns a deep copy safe to hand out without holding store locks.
func (r *Record) clone() *Record {
	cp := &Record{
		ConversationID: r.ConversationID,
		History:        make([]model.Message, len(r.History)),
		Context:        make(map[string]any, len(r.Context)),
		LastActivity:   r.LastActivity,
	}
	copy(cp.History, r.History)
	for k, v := range r.Context {
		cp.Context[k] = v
	}
	return cp
}

// Options configure an InMemoryStore.
type Options struct {
	// MaxHistory bounds the number of messages kept per conversation;
	// older messages are dropped first. Zero keeps everything.
	MaxHistory int
}

// InMemoryStore is a process-local conversation memory guarded by an RWMutex.
// Records are cloned on read to prevent external mutation of internal state.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	opts    Options
}

// NewInMemoryStore constructs an empty in-memory conversation memory keeping
// at most 20 messages per conversation by default.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{MaxHistory: 20}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryStore{records: make(map[string]*Record), opts: opts}
}

// Get returns a clone of the record for the conversation, or false when the
// conversation is unknown.
func (m *InMemoryStore) Get(conversationID string) (*Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[conversationID]
	if !ok {
		return nil, false
	}
	return rec.clone(), true
}

// AppendHistory appends messages to a conversation's history, creating the
// record on first sight, trimming to the configured bound and refreshing the
// activity timestamp.
func (m *InMemoryStore) AppendHistory(conversationID string, msgs ...model.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.getOrCreateLocked(conversationID)
	rec.History = append(rec.History, msgs...)
	if m.opts.MaxHistory > 0 && len(rec.History) > m.opts.MaxHistory {
		rec.History = rec.History[len(rec.History)-m.opts.MaxHistory:]
	}
	rec.LastActivity = time.Now()
}

// ContextValue returns the context value stored under key for the
// conversation. It implements the tool subsystem's ContextStore.
func (m *InMemoryStore) ContextValue(conversationID, key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[conversationID]
	if !ok {
		return nil, false
	}
	v, ok := rec.Context[key]
	return v, ok
}

// SetContextValue stores a context value for the conversation, creating the
// record on first sight.
func (m *InMemoryStore) SetContextValue(conversationID, key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.getOrCreateLocked(conversationID)
	rec.Context[key] = value
	rec.LastActivity = time.Now()
}

// Count returns the number of conversations currently held.
func (m *InMemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Clear removes a single conversation, reporting whether it existed.
func (m *InMemoryStore) Clear(conversationID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[conversationID]; !ok {
		return false
	}
	delete(m.records, conversationID)
	return true
}

// ClearIdle removes conversations with no activity for maxIdle and returns
// the number removed.
func (m *InMemoryStore) ClearIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, rec := range m.records {
		if rec.LastActivity.Before(cutoff) {
			delete(m.records, id)
			removed++
		}
	}
	return removed
}

// getOrCreateLocked allocates and stores a new record; caller must already
// hold the write lock.
func (m *InMemoryStore) getOrCreateLocked(conversationID string) *Record {
	rec, ok := m.records[conversationID]
	if !ok {
		rec = &Record{
			ConversationID: conversationID,
			Context:        make(map[string]any),
			LastActivity:   time.Now(),
		}
		m.records[conversationID] = rec
	}
	return rec
}
