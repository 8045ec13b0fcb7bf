package coordinator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/travelmesh/cache"
	"github.com/hupe1980/travelmesh/conversation"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/events"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/hupe1980/travelmesh/planstore"
)

// healthCacheKey is the single entry key for the cached aggregate health
// report.
const healthCacheKey = "health"

// Options configures a Coordinator.
type Options struct {
	// Store persists conversation state across rounds. Defaults to the
	// in-memory store.
	Store core.ConversationStore

	// PlanStore retains generated trip plans for later retrieval.
	PlanStore *planstore.InMemoryStore

	// Logger receives coordination lifecycle events. Defaults to NoOpLogger.
	Logger logging.Logger

	// MaxConcurrent bounds simultaneous agent invocations across all rounds.
	MaxConcurrent int64

	// ChatTimeout bounds a single coordination round.
	ChatTimeout time.Duration

	// PlanTimeout bounds a full planning round, which fans out to every
	// configured specialist.
	PlanTimeout time.Duration

	// FallbackAgent is the specialization that answers generic advice
	// requests no keyword matches. Defaults to "activity".
	FallbackAgent string

	// Hooks observe agent invocations, e.g. for metrics.
	Hooks *Hooks

	// Publisher emits round-completed and plan-generated events.
	// Best-effort: publish failures are logged and swallowed.
	Publisher events.Publisher

	// Clock supplies the time source, injectable for tests.
	Clock func() time.Time

	// HealthCacheTTL bounds how long an aggregate health report is reused
	// before agents are probed again.
	HealthCacheTTL time.Duration
}

// Coordinator routes user messages to specialized travel agents, fans out
// multi-agent rounds, merges their replies and orchestrates full trip
// planning. It is safe for concurrent use.
type Coordinator struct {
	agents      map[string]core.Agent
	router      *Router
	executor    *Executor
	synthesizer *Synthesizer
	planner     *Planner
	store       core.ConversationStore
	plans       *planstore.InMemoryStore
	publisher   events.Publisher
	logger      logging.Logger
	chatTimeout time.Duration
	planTimeout time.Duration
	clock       func() time.Time
	healthCache *cache.TTL[core.HealthStatus]
}

// New creates a Coordinator over the given agents, keyed by their
// specialization. At least one agent is required.
func New(agents []core.Agent, optFns ...func(*Options)) (*Coordinator, error) {
	if len(agents) == 0 {
		return nil, core.ErrNoAgents
	}

	opts := Options{
		Store:          conversation.NewInMemoryStore(),
		PlanStore:      planstore.NewInMemoryStore(),
		Logger:         logging.NoOpLogger{},
		MaxConcurrent:  3,
		ChatTimeout:    30 * time.Second,
		PlanTimeout:    45 * time.Second,
		FallbackAgent:  "activity",
		Publisher:      events.NoOpPublisher{},
		Clock:          time.Now,
		HealthCacheTTL: 5 * time.Second,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	bySpec := make(map[string]core.Agent, len(agents))
	specs := make([]string, 0, len(agents))
	for _, agent := range agents {
		spec := agent.Specialization()
		bySpec[spec] = agent
		specs = append(specs, spec)
	}

	healthCache, err := cache.NewTTL[core.HealthStatus](16, opts.HealthCacheTTL)
	if err != nil {
		return nil, err
	}

	executor := NewExecutor(opts.MaxConcurrent, opts.Store, opts.Logger, opts.Hooks)

	return &Coordinator{
		agents:      bySpec,
		router:      NewRouter(specs, opts.FallbackAgent),
		executor:    executor,
		synthesizer: NewSynthesizer(),
		planner: NewPlanner(executor, func(o *PlannerOptions) {
			o.Logger = opts.Logger
			o.Now = opts.Clock
		}),
		store:       opts.Store,
		plans:       opts.PlanStore,
		publisher:   opts.Publisher,
		logger:      opts.Logger,
		chatTimeout: opts.ChatTimeout,
		planTimeout: opts.PlanTimeout,
		clock:       opts.Clock,
		healthCache: healthCache,
	}, nil
}

// Coordinate routes message to the relevant agents and returns the merged
// response. An empty conversationID starts a new conversation.
func (c *Coordinator) Coordinate(ctx context.Context, message, conversationID string) (*core.CoordinatedResponse, error) {
	if conversationID == "" {
		conversationID = "coord_" + uuid.NewString()
	}

	decision := c.router.Select(message)

	c.logger.Info("coordinator.route",
		"conversation_id", conversationID,
		"specializations", decision.Specializations,
		"comprehensive", decision.Comprehensive,
	)

	var results map[string]core.AgentResult

	if decision.MultiAgent() {
		selected := make([]core.Agent, 0, len(decision.Specializations))
		for _, spec := range decision.Specializations {
			selected = append(selected, c.agents[spec])
		}
		results = c.executor.Invoke(ctx, message, conversationID, selected, c.chatTimeout)
	} else {
		spec := decision.Specializations[0]
		results = map[string]core.AgentResult{
			spec: c.converseSingle(ctx, c.agents[spec], message, conversationID),
		}
	}

	summary, quality := c.synthesizer.Summarize(results)

	response := &core.CoordinatedResponse{
		ConversationID: conversationID,
		MultiAgent:     decision.MultiAgent(),
		Results:        results,
		Summary:        summary,
		Quality:        quality,
		Timestamp:      c.clock().UTC(),
	}

	c.publish(ctx, events.SubjectRoundCompleted, events.RoundCompletedPayload{
		ConversationID: response.ConversationID,
		MultiAgent:     response.MultiAgent,
		Agents:         decision.Specializations,
		SuccessRate:    quality.SuccessRate,
		Effectiveness:  quality.Effectiveness,
		Timestamp:      response.Timestamp,
	})

	return response, nil
}

// DirectConverse bypasses routing and talks to one specialist. Unknown
// specializations return an UnknownAgentError listing the configured ones.
func (c *Coordinator) DirectConverse(ctx context.Context, specialization, message, conversationID string) (*core.AgentReply, error) {
	agent, ok := c.agents[specialization]
	if !ok {
		return nil, &core.UnknownAgentError{
			Specialization: specialization,
			Available:      c.specializations(),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	reply, err := agent.Converse(ctx, message, conversationID)
	if err != nil {
		return nil, err
	}

	if upsertErr := c.store.Upsert(ctx, reply.ConversationID, []string{agent.Name()}); upsertErr != nil {
		c.logger.Warn("coordinator.conversation.upsert_failed",
			"conversation_id", reply.ConversationID, "error", upsertErr)
	}

	return reply, nil
}

// Plan runs comprehensive trip planning across all configured specialists,
// stores the resulting plan and publishes a plan-generated event.
func (c *Coordinator) Plan(ctx context.Context, req core.PlanRequest) (*core.TripPlan, error) {
	plan, err := c.planner.Plan(ctx, req, c.agents, c.planTimeout)
	if err != nil {
		return nil, err
	}

	c.plans.Save(plan)
	c.publish(ctx, events.SubjectPlanGenerated, events.PlanGeneratedPayload{
		PlanID:       plan.PlanID,
		Destination:  plan.Destination,
		DurationDays: plan.DurationDays,
		Completeness: plan.Quality.CompletenessPercentage,
		GeneratedAt:  plan.GeneratedAt,
	})

	return plan, nil
}

// GetPlan returns a previously generated plan by id.
func (c *Coordinator) GetPlan(planID string) (*core.TripPlan, error) {
	return c.plans.Get(planID)
}

// ListPlans returns all stored plans, newest first.
func (c *Coordinator) ListPlans() []core.TripPlan {
	return c.plans.List()
}

// Conversations lists the tracked conversation states, newest first.
func (c *Coordinator) Conversations(ctx context.Context) ([]core.ConversationState, error) {
	return c.store.List(ctx)
}

// HealthReport aggregates per-agent health into one report. Reports are
// cached briefly so health endpoints under poll pressure do not hammer the
// agents.
func (c *Coordinator) HealthReport(ctx context.Context) core.HealthStatus {
	if cached, ok := c.healthCache.Get(healthCacheKey); ok {
		return cached
	}

	overall := core.HealthStatus{Status: core.HealthHealthy}
	for _, spec := range specializationPriority {
		agent, ok := c.agents[spec]
		if !ok {
			continue
		}
		status := agent.Health(ctx)
		overall.ActiveConversations += status.ActiveConversations
		if status.Status != core.HealthHealthy {
			overall.Status = core.HealthDegraded
			if overall.Detail == "" {
				overall.Detail = agent.Name() + ": " + status.Detail
			}
		}
	}

	c.healthCache.Set(healthCacheKey, overall)
	return overall
}

// Stats snapshots runtime counters across the coordinator and its agents.
func (c *Coordinator) Stats(ctx context.Context) core.CoordinatorStats {
	stats := core.CoordinatorStats{
		ActiveAgents: len(c.agents),
		Agents:       make(map[string]core.AgentStats, len(c.agents)),
	}

	if states, err := c.store.List(ctx); err == nil {
		stats.ActiveConversations = len(states)
	}

	for spec, agent := range c.agents {
		health := agent.Health(ctx)
		stats.Agents[spec] = core.AgentStats{
			Name:                agent.Name(),
			Specialization:      spec,
			Status:              health.Status,
			ActiveConversations: health.ActiveConversations,
		}
	}

	return stats
}

// memorySweeper is implemented by agents that keep per-conversation memory
// of their own and can drop idle records alongside the conversation-store
// sweep.
type memorySweeper interface {
	ClearIdleConversations(maxIdle time.Duration) int
}

// SweepConversations removes conversations idle longer than maxIdle from the
// store and from any agent-held memories, returning how many store entries
// were removed.
func (c *Coordinator) SweepConversations(ctx context.Context, maxIdle time.Duration) (int, error) {
	removed, err := c.store.Sweep(ctx, maxIdle)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		c.logger.Info("coordinator.conversations.swept", "removed", removed)
	}

	cleared := 0
	for _, agent := range c.agents {
		if sweeper, ok := agent.(memorySweeper); ok {
			cleared += sweeper.ClearIdleConversations(maxIdle)
		}
	}
	if cleared > 0 {
		c.logger.Info("coordinator.agent_memory.swept", "removed", cleared)
	}

	return removed, nil
}

// StartSweeper launches a background goroutine that sweeps idle
// conversations every interval until ctx is cancelled.
func (c *Coordinator) StartSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := c.SweepConversations(ctx, maxIdle); err != nil {
					c.logger.Warn("coordinator.sweep.failed", "error", err)
				}
			}
		}
	}()
}

// Close releases the coordinator's internal resources. It does not close
// the conversation store or publisher, which the caller owns.
func (c *Coordinator) Close() {
	c.healthCache.Close()
}

// converseSingle runs the single-agent fast path: no fan-out, but the same
// deadline and conversation tracking as a full round.
func (c *Coordinator) converseSingle(ctx context.Context, agent core.Agent, message, conversationID string) core.AgentResult {
	roundCtx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	reply, err := agent.Converse(roundCtx, message, conversationID)
	if err != nil {
		reason := err.Error()
		if roundCtx.Err() == context.DeadlineExceeded {
			reason = core.FailureTimeout
		}
		c.logger.Warn("coordinator.converse.failed",
			"conversation_id", conversationID, "agent", agent.Name(), "error", err)
		return core.NewFailureResult(reason)
	}

	if upsertErr := c.store.Upsert(ctx, conversationID, []string{agent.Name()}); upsertErr != nil {
		c.logger.Warn("coordinator.conversation.upsert_failed",
			"conversation_id", conversationID, "error", upsertErr)
	}

	return core.NewSuccessResult(reply)
}

func (c *Coordinator) publish(ctx context.Context, subject string, payload any) {
	if err := c.publisher.Publish(ctx, subject, payload); err != nil {
		c.logger.Warn("coordinator.event.publish_failed", "subject", subject, "error", err)
	}
}

func (c *Coordinator) specializations() []string {
	ordered := make([]string, 0, len(c.agents))
	for _, spec := range specializationPriority {
		if _, ok := c.agents[spec]; ok {
			ordered = append(ordered, spec)
		}
	}
	return ordered
}
