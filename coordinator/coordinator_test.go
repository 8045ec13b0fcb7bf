package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/travelmesh/conversation"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePublisher records every published event for assertions.
type capturePublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads []any
}

func (p *capturePublisher) Publish(_ context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

func newTestCoordinator(t *testing.T, optFns ...func(*Options)) (*Coordinator, map[string]*stubAgent) {
	t.Helper()

	stubs := map[string]*stubAgent{
		"flight":   newStubAgent("flight", "AA123 looks best."),
		"hotel":    newStubAgent("hotel", "Park Hyatt Tokyo has availability."),
		"activity": newStubAgent("activity", "Visit Senso-ji Temple."),
	}

	coord, err := New([]core.Agent{stubs["flight"], stubs["hotel"], stubs["activity"]}, optFns...)
	require.NoError(t, err)
	t.Cleanup(coord.Close)

	return coord, stubs
}

func TestNew_RequiresAgents(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, core.ErrNoAgents)
}

func TestCoordinator_SingleAgentPath(t *testing.T) {
	coord, stubs := newTestCoordinator(t)

	resp, err := coord.Coordinate(context.Background(), "I need a flight to Tokyo, which flight has the best departure?", "")
	require.NoError(t, err)

	assert.False(t, resp.MultiAgent)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results["flight"].Successful())
	assert.NotEmpty(t, stubs["flight"].lastMessage())
	assert.Empty(t, stubs["hotel"].messages)

	assert.True(t, len(resp.ConversationID) > len("coord_"))

	states, err := coord.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, resp.ConversationID, states[0].ID)
}

func TestCoordinator_ComprehensiveFanOut(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	resp, err := coord.Coordinate(context.Background(), "Plan a complete trip to Tokyo", "")
	require.NoError(t, err)

	assert.True(t, resp.MultiAgent)
	assert.Len(t, resp.Results, 3)
	assert.Contains(t, resp.Summary, "(Coordinated response from 3 specialized agents)")
	assert.Equal(t, "100.0%", resp.Quality.SuccessRate)
}

func TestCoordinator_ConversationContinuity(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	first, err := coord.Coordinate(context.Background(), "Plan a trip to Tokyo", "")
	require.NoError(t, err)

	_, err = coord.Coordinate(context.Background(), "Plan the trip with more food experiences", first.ConversationID)
	require.NoError(t, err)

	states, err := coord.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, 2, states[0].TurnCount)
}

func TestCoordinator_DirectConverse(t *testing.T) {
	coord, stubs := newTestCoordinator(t)

	reply, err := coord.DirectConverse(context.Background(), "hotel", "Any rooms at the Park Hyatt?", "conv_9")
	require.NoError(t, err)
	assert.Equal(t, "hotel-agent", reply.Agent)
	assert.Equal(t, "Any rooms at the Park Hyatt?", stubs["hotel"].lastMessage())
}

func TestCoordinator_DirectConverseUnknownAgent(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	_, err := coord.DirectConverse(context.Background(), "cruise", "hello", "")
	require.Error(t, err)

	var unknownErr *core.UnknownAgentError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "cruise", unknownErr.Specialization)
	assert.Equal(t, []string{"flight", "hotel", "activity"}, unknownErr.Available)
}

func TestCoordinator_PlanStoredAndRetrievable(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	plan, err := coord.Plan(context.Background(), core.PlanRequest{Destination: "Tokyo", Days: 4, Budget: 2000})
	require.NoError(t, err)

	stored, err := coord.GetPlan(plan.PlanID)
	require.NoError(t, err)
	assert.Equal(t, plan.PlanID, stored.PlanID)

	plans := coord.ListPlans()
	require.Len(t, plans, 1)
}

func TestCoordinator_PlanValidationError(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	_, err := coord.Plan(context.Background(), core.PlanRequest{Destination: "Tokyo", Days: 4, Budget: 10})

	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, coord.ListPlans())
}

func TestCoordinator_EventsPublished(t *testing.T) {
	publisher := &capturePublisher{}
	coord, _ := newTestCoordinator(t, func(o *Options) {
		o.Publisher = publisher
	})

	_, err := coord.Coordinate(context.Background(), "Plan a trip to Tokyo", "")
	require.NoError(t, err)

	_, err = coord.Plan(context.Background(), core.PlanRequest{Destination: "Tokyo", Days: 4, Budget: 2000})
	require.NoError(t, err)

	subjects := publisher.published()
	assert.Contains(t, subjects, "coordination.round.completed")
	assert.Contains(t, subjects, "plans.generated")

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	require.Len(t, publisher.payloads, 2)

	round, ok := publisher.payloads[0].(events.RoundCompletedPayload)
	require.True(t, ok, "round event must carry the wire payload, got %T", publisher.payloads[0])
	assert.Len(t, round.Agents, 3)
	assert.Equal(t, "100.0%", round.SuccessRate)

	plan, ok := publisher.payloads[1].(events.PlanGeneratedPayload)
	require.True(t, ok, "plan event must carry the wire payload, got %T", publisher.payloads[1])
	assert.Equal(t, "Tokyo", plan.Destination)
	assert.NotEmpty(t, plan.PlanID)
}

func TestCoordinator_HealthReportCached(t *testing.T) {
	coord, stubs := newTestCoordinator(t)

	first := coord.HealthReport(context.Background())
	assert.Equal(t, core.HealthHealthy, first.Status)

	coord.HealthReport(context.Background())
	coord.HealthReport(context.Background())

	assert.Equal(t, int64(1), stubs["flight"].healthCalls.Load(),
		"repeated reports within the cache TTL must not re-probe agents")
}

func TestCoordinator_HealthReportDegraded(t *testing.T) {
	stubs := map[string]*stubAgent{
		"flight": newStubAgent("flight", "ok"),
		"hotel":  newStubAgent("hotel", "ok"),
	}
	stubs["hotel"].healthStatus = core.HealthUnhealthy

	coord, err := New([]core.Agent{stubs["flight"], stubs["hotel"]})
	require.NoError(t, err)
	t.Cleanup(coord.Close)

	report := coord.HealthReport(context.Background())
	assert.Equal(t, core.HealthDegraded, report.Status)
}

func TestCoordinator_Stats(t *testing.T) {
	coord, _ := newTestCoordinator(t)

	_, err := coord.Coordinate(context.Background(), "Plan a trip to Tokyo", "")
	require.NoError(t, err)

	stats := coord.Stats(context.Background())
	assert.Equal(t, 3, stats.ActiveAgents)
	assert.Equal(t, 1, stats.ActiveConversations)
	assert.Equal(t, "flight-agent", stats.Agents["flight"].Name)
}

func TestCoordinator_SweepConversations(t *testing.T) {
	current := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	store := conversation.NewInMemoryStore(func(o *conversation.InMemoryStoreOptions) {
		o.Now = now
	})
	coord, _ := newTestCoordinator(t, func(o *Options) {
		o.Store = store
	})

	_, err := coord.Coordinate(context.Background(), "Plan a trip to Tokyo", "")
	require.NoError(t, err)

	mu.Lock()
	current = current.Add(2 * time.Hour)
	mu.Unlock()

	removed, err := coord.SweepConversations(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	states, err := coord.Conversations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, states)
}

// sweepableAgent is a stub whose per-conversation memory participates in the
// coordinator's sweep.
type sweepableAgent struct {
	*stubAgent
	sweptWith time.Duration
	cleared   int
}

func (a *sweepableAgent) ClearIdleConversations(maxIdle time.Duration) int {
	a.sweptWith = maxIdle
	return a.cleared
}

func TestCoordinator_SweepClearsAgentMemories(t *testing.T) {
	sweepable := &sweepableAgent{
		stubAgent: newStubAgent("flight", "AA123 fits your budget."),
		cleared:   2,
	}

	coord, err := New([]core.Agent{sweepable})
	require.NoError(t, err)
	t.Cleanup(coord.Close)

	_, err = coord.SweepConversations(context.Background(), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, sweepable.sweptWith)
}
