package core

import (
	"context"
)

// Agent defines the capability contract the coordinator consumes for every
// specialized responder.
//
// The coordinator never inspects an agent's reasoning; it only routes
// messages to agents, collects replies, and merges them. Implementations
// must:
//   - Respect context cancellation (a coordination round carries a deadline)
//   - Return either an AgentReply or an error; never both
//   - Be safe for concurrent Converse calls across conversations
type Agent interface {
	// Name returns the unique agent identifier (e.g. "flight-agent").
	Name() string

	// Specialization returns the routing key this agent answers for:
	// "flight", "hotel" or "activity".
	Specialization() string

	// Converse sends a user message to the agent. An empty conversationID
	// starts a fresh conversation; a known one continues it with the
	// agent's accumulated context.
	Converse(ctx context.Context, message, conversationID string) (*AgentReply, error)

	// Health reports liveness of the agent and its backing services.
	Health(ctx context.Context) HealthStatus
}

// AgentInfo carries identifying details about an agent used in stats & events.
// Name is the external identifier; Specialization is the routing key.
type AgentInfo struct{ Name, Specialization string }

// Health states reported by agents and the aggregate health endpoint.
const (
	HealthHealthy   = "healthy"
	HealthDegraded  = "degraded"
	HealthUnhealthy = "unhealthy"
)

// HealthStatus describes an agent's current condition.
type HealthStatus struct {
	Status              string `json:"status"`
	Detail              string `json:"detail,omitempty"`
	ActiveConversations int    `json:"active_conversations"`
}

// AgentStats summarizes an agent's runtime activity for the stats surface.
type AgentStats struct {
	Name                string `json:"agent_name"`
	Specialization      string `json:"specialization"`
	Status              string `json:"status"`
	ActiveConversations int    `json:"active_conversations"`
}
