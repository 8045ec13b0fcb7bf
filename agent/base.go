package agent

import (
	"fmt"
	"sync"

	"github.com/hupe1980/travelmesh/core"
)

// BaseAgent bundles the identity every specialist shares: name,
// specialization key and description. Embed it in concrete agent
// implementations and supply Converse and Health to satisfy core.Agent.
// All exported methods are goroutine-safe.
type BaseAgent struct {
	name           string // Human-readable name
	specialization string // Routing key the coordinator matches on
	description    string // Detailed description of agent's purpose
	mu             sync.Mutex
}

// NewBaseAgent constructs a BaseAgent with a generated description
// (customizable via SetDescription).
func NewBaseAgent(name, specialization string) BaseAgent {
	return BaseAgent{
		name:           name,
		specialization: specialization,
		description:    fmt.Sprintf("Agent %s specialized in %s", name, specialization),
	}
}

// Name returns the human-readable name for this agent.
func (b *BaseAgent) Name() string { return b.name }

// Specialization returns the routing key this agent answers for.
func (b *BaseAgent) Specialization() string { return b.specialization }

// Description returns a detailed description of this agent's purpose.
func (b *BaseAgent) Description() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.description
}

// SetDescription updates the agent's description.
// This is useful for providing more detailed information about the agent's capabilities.
func (b *BaseAgent) SetDescription(desc string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.description = desc
}

// Info returns the identifying details used in stats and events.
func (b *BaseAgent) Info() core.AgentInfo {
	return core.AgentInfo{Name: b.name, Specialization: b.specialization}
}
