package planstore

import (
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/travelmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan(id string, generatedAt time.Time) *core.TripPlan {
	return &core.TripPlan{
		PlanID:       id,
		Destination:  "Tokyo",
		DurationDays: 7,
		BudgetUSD:    3000,
		Interests:    []string{"food", "culture"},
		Recommendations: map[string]core.AgentResult{
			"flight": {Status: core.ResultSuccess, Text: "AA123 at $850"},
		},
		GeneratedAt: generatedAt,
	}
}

func TestInMemoryStore_SaveAndGet(t *testing.T) {
	store := NewInMemoryStore()
	store.Save(samplePlan("plan_1", time.Now()))

	plan, err := store.Get("plan_1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", plan.Destination)
	assert.Equal(t, 1, store.Count())
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	store.Save(samplePlan("plan_1", time.Now()))

	plan, err := store.Get("plan_1")
	require.NoError(t, err)
	plan.Interests[0] = "mutated"
	plan.Recommendations["flight"] = core.AgentResult{Status: core.ResultFailure}

	fresh, err := store.Get("plan_1")
	require.NoError(t, err)
	assert.Equal(t, "food", fresh.Interests[0])
	assert.Equal(t, core.ResultSuccess, fresh.Recommendations["flight"].Status)
}

func TestInMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewInMemoryStore()
	base := time.Now()
	store.Save(samplePlan("plan_old", base.Add(-time.Hour)))
	store.Save(samplePlan("plan_new", base))

	plans := store.List()
	require.Len(t, plans, 2)
	assert.Equal(t, "plan_new", plans[0].PlanID)
	assert.Equal(t, "plan_old", plans[1].PlanID)
}
