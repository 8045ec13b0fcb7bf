package coordinator

import (
	"time"

	"github.com/hupe1980/travelmesh/core"
)

// Hooks receive notifications around agent invocations and coordination
// rounds. All fields are optional; nil hooks are skipped. Implementations
// must be fast and must not panic — they run on the executor's hot path.
// The metrics package provides an instrumented implementation.
type Hooks struct {
	// BeforeAgent fires when an agent invocation is about to start.
	BeforeAgent func(agent string)

	// AfterAgent fires when an agent invocation settles, with its duration
	// and outcome.
	AfterAgent func(agent string, duration time.Duration, result core.AgentResult)

	// AfterRound fires once per coordination round after all results
	// settled.
	AfterRound func(conversationID string, results map[string]core.AgentResult, duration time.Duration)
}

func (h *Hooks) beforeAgent(agent string) {
	if h != nil && h.BeforeAgent != nil {
		h.BeforeAgent(agent)
	}
}

func (h *Hooks) afterAgent(agent string, duration time.Duration, result core.AgentResult) {
	if h != nil && h.AfterAgent != nil {
		h.AfterAgent(agent, duration, result)
	}
}

func (h *Hooks) afterRound(conversationID string, results map[string]core.AgentResult, duration time.Duration) {
	if h != nil && h.AfterRound != nil {
		h.AfterRound(conversationID, results, duration)
	}
}
