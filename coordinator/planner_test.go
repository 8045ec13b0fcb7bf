package coordinator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/travelmesh/conversation"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(now func() time.Time) (*Planner, map[string]core.Agent, map[string]*stubAgent) {
	store := conversation.NewInMemoryStore()
	executor := NewExecutor(3, store, logging.NoOpLogger{}, nil)

	planner := NewPlanner(executor, func(o *PlannerOptions) {
		if now != nil {
			o.Now = now
		}
	})

	stubs := map[string]*stubAgent{
		"flight":   newStubAgent("flight", "AA123 fits your budget."),
		"hotel":    newStubAgent("hotel", "Park Hyatt Tokyo has availability."),
		"activity": newStubAgent("activity", "Visit Senso-ji Temple and the Skytree."),
	}
	agents := map[string]core.Agent{
		"flight":   stubs["flight"],
		"hotel":    stubs["hotel"],
		"activity": stubs["activity"],
	}

	return planner, agents, stubs
}

func TestValidatePlanRequest(t *testing.T) {
	tests := []struct {
		name  string
		req   core.PlanRequest
		field string
	}{
		{"empty destination", core.PlanRequest{Destination: "  ", Days: 5, Budget: 2000}, "destination"},
		{"zero days", core.PlanRequest{Destination: "Tokyo", Days: 0, Budget: 2000}, "days"},
		{"too many days", core.PlanRequest{Destination: "Tokyo", Days: 31, Budget: 2000}, "days"},
		{"budget too low", core.PlanRequest{Destination: "Tokyo", Days: 5, Budget: 50}, "budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlanRequest(tt.req)
			require.Error(t, err)

			var verr *core.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, ValidatePlanRequest(core.PlanRequest{Destination: "Tokyo", Days: 5, Budget: 2000}))
}

func TestPlanner_BudgetSplit(t *testing.T) {
	planner, _, _ := newTestPlanner(nil)

	breakdown := planner.budgetBreakdown(2000)

	assert.Equal(t, 800, breakdown.Allocation["flights"].Allocated)
	assert.Equal(t, 700, breakdown.Allocation["accommodation"].Allocated)
	assert.Equal(t, 500, breakdown.Allocation["activities"].Allocated)
	assert.Equal(t, "USD", breakdown.Currency)
	assert.Contains(t, breakdown.Recommendations[0], "mid-range")
}

func TestPlanner_BudgetRecommendationTiers(t *testing.T) {
	planner, _, _ := newTestPlanner(nil)

	premium := planner.budgetBreakdown(3500)
	assert.Contains(t, premium.Recommendations[0], "Premium budget")

	modest := planner.budgetBreakdown(600)
	assert.Contains(t, modest.Recommendations[0], "Budget-conscious")
}

func TestPlanner_QueriesCarryBudgetAndStyle(t *testing.T) {
	planner, agents, stubs := newTestPlanner(nil)

	req := core.PlanRequest{
		Destination: "Tokyo",
		Days:        5,
		Budget:      2000,
		Style:       "luxury",
		Interests:   []string{"food", "culture"},
	}

	_, err := planner.Plan(context.Background(), req, agents, time.Second)
	require.NoError(t, err)

	flightQuery := stubs["flight"].lastMessage()
	assert.Contains(t, flightQuery, "Tokyo")
	assert.Contains(t, flightQuery, "$800")
	assert.Contains(t, flightQuery, "premium and high-end")
	assert.Contains(t, flightQuery, "with focus on food, culture experiences")

	hotelQuery := stubs["hotel"].lastMessage()
	assert.Contains(t, hotelQuery, "4 nights")
	assert.Contains(t, hotelQuery, "$175 per night")
	assert.Contains(t, hotelQuery, "luxury accommodation")

	activityQuery := stubs["activity"].lastMessage()
	assert.Contains(t, activityQuery, "5-day itinerary")
	assert.Contains(t, activityQuery, "$500")
}

func TestPlanner_FullPlan(t *testing.T) {
	july := func() time.Time { return time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC) }
	planner, agents, _ := newTestPlanner(july)

	req := core.PlanRequest{Destination: "Tokyo", Days: 5, Budget: 2500, Style: "luxury"}

	plan, err := planner.Plan(context.Background(), req, agents, time.Second)
	require.NoError(t, err)

	assert.True(t, len(plan.PlanID) > len("plan_"))
	assert.Equal(t, "Tokyo", plan.Destination)
	assert.Equal(t, 5, plan.DurationDays)
	assert.Len(t, plan.Recommendations, 3)

	assert.Contains(t, plan.Summary, "Complete 5-day travel plan for Tokyo")
	assert.Contains(t, plan.Summary, "personalized flight recommendations")

	// Premium budget, full success and summer season yield more candidate
	// insights than the cap allows.
	assert.Len(t, plan.Insights, 3)

	assert.Len(t, plan.NextSteps, 6)
	assert.Contains(t, plan.NextSteps[0], "flight options")

	assert.InDelta(t, 100.0, plan.Quality.CompletenessPercentage, 0.01)
	assert.Equal(t, "Excellent", plan.Quality.OverallRating)
	assert.Empty(t, plan.Quality.Recommendations)

	assert.Equal(t, july().UTC(), plan.GeneratedAt)
}

func TestPlanner_PartialFailureDowngradesQuality(t *testing.T) {
	planner, agents, stubs := newTestPlanner(nil)
	stubs["hotel"].err = errors.New("upstream unavailable")

	req := core.PlanRequest{Destination: "Tokyo", Days: 5, Budget: 2000}

	plan, err := planner.Plan(context.Background(), req, agents, time.Second)
	require.NoError(t, err)

	assert.InDelta(t, 66.7, plan.Quality.CompletenessPercentage, 0.01)
	assert.Equal(t, "Fair", plan.Quality.OverallRating)
	require.Len(t, plan.Quality.Recommendations, 1)
	assert.Contains(t, plan.Quality.Recommendations[0], "hotel")

	assert.Contains(t, plan.Summary, "Includes recommendations from 2 specialized agents.")
}

func TestPlanner_SeasonalInsights(t *testing.T) {
	january := func() time.Time { return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC) }
	planner, agents, _ := newTestPlanner(january)

	req := core.PlanRequest{Destination: "Tokyo", Days: 3, Budget: 1200}

	plan, err := planner.Plan(context.Background(), req, agents, time.Second)
	require.NoError(t, err)

	assert.Contains(t, plan.Insights, "Winter travel considerations: Check weather conditions and pack accordingly.")
}

func TestPlanner_RoundRecordsCoordinationConversation(t *testing.T) {
	store := conversation.NewInMemoryStore()
	executor := NewExecutor(3, store, logging.NoOpLogger{}, nil)
	planner := NewPlanner(executor)

	agents := map[string]core.Agent{
		"flight": newStubAgent("flight", "AA123 fits your budget."),
	}

	_, err := planner.Plan(context.Background(), core.PlanRequest{Destination: "Tokyo", Days: 3, Budget: 1200}, agents, time.Second)
	require.NoError(t, err)

	states, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.True(t, strings.HasPrefix(states[0].ID, "coord_"), "plan rounds use coordinator-generated ids, got %s", states[0].ID)
}

func TestPlanner_ValidationStopsBeforeAgents(t *testing.T) {
	planner, agents, stubs := newTestPlanner(nil)

	_, err := planner.Plan(context.Background(), core.PlanRequest{Destination: "", Days: 5, Budget: 2000}, agents, time.Second)
	require.Error(t, err)

	for spec, stub := range stubs {
		assert.Empty(t, stub.messages, "agent %s must not be invoked on invalid input", spec)
	}
}
