package conversation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/travelmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_GetMissing(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, core.ErrConversationNotFound))
}

func TestInMemoryStore_UpsertMergesAgents(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Upsert(ctx, "conv-1", []string{"flight", "hotel"}))
	require.NoError(t, store.Upsert(ctx, "conv-1", []string{"hotel", "activity"}))

	state, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"flight", "hotel", "activity"}, state.InvolvedAgents)
	assert.Equal(t, 2, state.TurnCount)
	assert.False(t, state.LastUpdate.IsZero())
}

func TestInMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.Upsert(ctx, "conv-1", []string{"flight"}))

	state, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	state.InvolvedAgents[0] = "mutated"

	fresh, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"flight"}, fresh.InvolvedAgents)
}

func TestInMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()

	current := time.Now()
	store := NewInMemoryStore(func(o *InMemoryStoreOptions) {
		o.Now = func() time.Time { return current }
	})

	require.NoError(t, store.Upsert(ctx, "old", []string{"flight"}))

	current = current.Add(2 * time.Hour)
	require.NoError(t, store.Upsert(ctx, "fresh", []string{"hotel"}))

	removed, err := store.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, "old")
	assert.True(t, errors.Is(err, core.ErrConversationNotFound))

	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestInMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()

	current := time.Now()
	store := NewInMemoryStore(func(o *InMemoryStoreOptions) {
		o.Now = func() time.Time { return current }
	})

	require.NoError(t, store.Upsert(ctx, "first", []string{"flight"}))
	current = current.Add(time.Minute)
	require.NoError(t, store.Upsert(ctx, "second", []string{"hotel"}))
	current = current.Add(time.Minute)
	require.NoError(t, store.Upsert(ctx, "third", []string{"activity"}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].ID)
	assert.Equal(t, "second", list[1].ID)
	assert.Equal(t, "first", list[2].ID)
}

func TestInMemoryStore_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	agents := []string{"flight", "hotel", "activity"}
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Upsert(ctx, "conv-1", []string{agents[i%len(agents)]})
		}(i)
	}
	wg.Wait()

	state, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 30, state.TurnCount)
	assert.ElementsMatch(t, agents, state.InvolvedAgents)
}
