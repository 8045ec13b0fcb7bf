package conversation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/travelmesh/core"
)

// InMemoryStore keeps conversation state in process memory. It is the
// default store for library consumers and tests; state is lost on restart.
// Safe for concurrent use.
type InMemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*core.ConversationState
	now           func() time.Time
}

// InMemoryStoreOptions configures an InMemoryStore.
type InMemoryStoreOptions struct {
	// Now overrides the clock, for tests exercising idle sweeping.
	Now func() time.Time
}

// NewInMemoryStore creates an empty in-memory conversation store.
func NewInMemoryStore(optFns ...func(o *InMemoryStoreOptions)) *InMemoryStore {
	opts := InMemoryStoreOptions{Now: time.Now}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &InMemoryStore{
		conversations: make(map[string]*core.ConversationState),
		now:           opts.Now,
	}
}

// Get returns a copy of the state for id, or core.ErrConversationNotFound.
func (s *InMemoryStore) Get(_ context.Context, id string) (*core.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.conversations[id]
	if !ok {
		return nil, core.ErrConversationNotFound
	}

	return state.Clone(), nil
}

// Upsert merges involved into the conversation's agent set (union, order of
// first appearance preserved), increments the turn count and refreshes the
// last-update timestamp. Creates the record on first sight.
func (s *InMemoryStore) Upsert(_ context.Context, id string, involved []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.conversations[id]
	if !ok {
		state = &core.ConversationState{ID: id}
		s.conversations[id] = state
	}

	for _, agent := range involved {
		if !state.Involves(agent) {
			state.InvolvedAgents = append(state.InvolvedAgents, agent)
		}
	}

	state.TurnCount++
	state.LastUpdate = s.now().UTC()

	return nil
}

// Sweep removes entries idle for longer than maxIdle and returns the number
// removed.
func (s *InMemoryStore) Sweep(_ context.Context, maxIdle time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)

	removed := 0
	for id, state := range s.conversations {
		if state.LastUpdate.Before(cutoff) {
			delete(s.conversations, id)
			removed++
		}
	}

	return removed, nil
}

// List returns all conversation states ordered by last update, newest first.
func (s *InMemoryStore) List(_ context.Context) ([]core.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.ConversationState, 0, len(s.conversations))
	for _, state := range s.conversations {
		out = append(out, *state.Clone())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].LastUpdate.After(out[j].LastUpdate) })

	return out, nil
}
