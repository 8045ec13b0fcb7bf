// Package travelmesh provides a high-level façade over the coordination
// engine and the specialist travel agents. Most applications interact with
// this package by:
//  1. Creating a TravelMesh via New() (optionally overriding the model,
//     stores and logger)
//  2. Chatting through Chat() / AgentChat() or planning through Plan()
//
// The façade delegates orchestration to coordinator.Coordinator while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a real
// LLM, a durable conversation store and a structured logger.
package travelmesh

import (
	"context"
	"time"

	"github.com/hupe1980/travelmesh/agent"
	"github.com/hupe1980/travelmesh/conversation"
	"github.com/hupe1980/travelmesh/coordinator"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/events"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/hupe1980/travelmesh/memory"
	"github.com/hupe1980/travelmesh/model"
)

// Options configures the TravelMesh instance.
type Options struct {
	// Model backs the specialist agents. Defaults to a mock model, which
	// keeps local development free of API keys; production supplies an
	// OpenAI or Anthropic adapter.
	Model model.Model

	// Store persists conversation state (defaults to in-memory).
	Store core.ConversationStore

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Publisher emits coordination lifecycle events (defaults to NoOp).
	Publisher events.Publisher

	// Hooks observe agent invocations, e.g. for metrics.
	Hooks *coordinator.Hooks

	// MaxConcurrent bounds simultaneous agent invocations.
	MaxConcurrent int64

	// ChatTimeout bounds a coordination round; PlanTimeout a planning round.
	ChatTimeout time.Duration
	PlanTimeout time.Duration

	// FallbackAgent answers generic advice requests (defaults to "activity").
	FallbackAgent string

	// ExtraAgents join the three built-in specialists, keyed by their
	// Specialization.
	ExtraAgents []core.Agent
}

// TravelMesh is the high-level façade aggregating the coordinator and the
// specialist agents.
type TravelMesh struct {
	coordinator *coordinator.Coordinator
	agents      []core.Agent
}

// New creates a TravelMesh with the three built-in specialists (flight,
// hotel, activity), each with its own conversation memory, wired to one
// shared coordinator.
func New(optFns ...func(o *Options)) (*TravelMesh, error) {
	opts := Options{
		Model:         model.NewMockModel("mock"),
		Store:         conversation.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
		Publisher:     events.NoOpPublisher{},
		MaxConcurrent: 3,
		ChatTimeout:   30 * time.Second,
		PlanTimeout:   45 * time.Second,
		FallbackAgent: "activity",
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	agents := []core.Agent{
		agent.NewFlightAgent(opts.Model, func(o *agent.ModelAgentOptions) {
			o.Memory = memory.NewInMemoryStore()
			o.Logger = opts.Logger
		}),
		agent.NewHotelAgent(opts.Model, func(o *agent.ModelAgentOptions) {
			o.Memory = memory.NewInMemoryStore()
			o.Logger = opts.Logger
		}),
		agent.NewActivityAgent(opts.Model, func(o *agent.ModelAgentOptions) {
			o.Memory = memory.NewInMemoryStore()
			o.Logger = opts.Logger
		}),
	}
	agents = append(agents, opts.ExtraAgents...)

	coord, err := coordinator.New(agents, func(o *coordinator.Options) {
		o.Store = opts.Store
		o.Logger = opts.Logger
		o.Publisher = opts.Publisher
		o.Hooks = opts.Hooks
		o.MaxConcurrent = opts.MaxConcurrent
		o.ChatTimeout = opts.ChatTimeout
		o.PlanTimeout = opts.PlanTimeout
		o.FallbackAgent = opts.FallbackAgent
	})
	if err != nil {
		return nil, err
	}

	return &TravelMesh{coordinator: coord, agents: agents}, nil
}

// Chat routes a message through keyword relevance routing to the right
// specialists and returns the merged response. An empty conversationID
// starts a new conversation.
func (m *TravelMesh) Chat(ctx context.Context, message, conversationID string) (*core.CoordinatedResponse, error) {
	return m.coordinator.Coordinate(ctx, message, conversationID)
}

// AgentChat talks to one specialist directly, bypassing routing.
func (m *TravelMesh) AgentChat(ctx context.Context, specialization, message, conversationID string) (*core.AgentReply, error) {
	return m.coordinator.DirectConverse(ctx, specialization, message, conversationID)
}

// Plan generates a comprehensive trip plan across all specialists.
func (m *TravelMesh) Plan(ctx context.Context, req core.PlanRequest) (*core.TripPlan, error) {
	return m.coordinator.Plan(ctx, req)
}

// GetPlan returns a previously generated plan by id.
func (m *TravelMesh) GetPlan(planID string) (*core.TripPlan, error) {
	return m.coordinator.GetPlan(planID)
}

// Health reports aggregate health across the agents.
func (m *TravelMesh) Health(ctx context.Context) core.HealthStatus {
	return m.coordinator.HealthReport(ctx)
}

// Stats snapshots runtime counters.
func (m *TravelMesh) Stats(ctx context.Context) core.CoordinatorStats {
	return m.coordinator.Stats(ctx)
}

// Coordinator exposes the underlying coordinator for advanced use (direct
// executor access, sweeping, plan listing).
func (m *TravelMesh) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Close releases internal resources.
func (m *TravelMesh) Close() {
	m.coordinator.Close()
}
