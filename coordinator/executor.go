package coordinator

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
)

// Task pairs an agent with the message it should receive. The plan
// orchestrator sends each specialist a different query; chat rounds send
// everyone the same message.
type Task struct {
	Agent   core.Agent
	Message string
}

// Executor fans a message out to selected agents and fans their results back
// in under a deadline. Concurrency is bounded by a semaphore shared across
// all rounds, so a burst of coordinations cannot multiply in-flight model
// calls.
//
// Guarantees per round:
//   - every selected agent appears in the result map exactly once
//   - one agent's failure never affects another's result
//   - the round returns within the deadline plus scheduling slack; agents
//     still running at the deadline are recorded as timeout failures and
//     their late results discarded
type Executor struct {
	sem    *semaphore.Weighted
	store  core.ConversationStore
	logger logging.Logger
	hooks  *Hooks
}

// NewExecutor builds an executor with a concurrency pool of maxConcurrent.
func NewExecutor(maxConcurrent int64, store core.ConversationStore, logger logging.Logger, hooks *Hooks) *Executor {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Executor{
		sem:    semaphore.NewWeighted(maxConcurrent),
		store:  store,
		logger: logger,
		hooks:  hooks,
	}
}

// Invoke sends the same message to every agent and collects their results.
func (e *Executor) Invoke(ctx context.Context, message, conversationID string, agents []core.Agent, deadline time.Duration) map[string]core.AgentResult {
	tasks := make([]Task, 0, len(agents))
	for _, a := range agents {
		tasks = append(tasks, Task{Agent: a, Message: message})
	}

	return e.InvokeEach(ctx, conversationID, tasks, deadline)
}

// InvokeEach runs one task per agent concurrently and returns the settled
// results keyed by specialization.
func (e *Executor) InvokeEach(ctx context.Context, conversationID string, tasks []Task, deadline time.Duration) map[string]core.AgentResult {
	start := time.Now()

	roundCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	// Snapshot the conversation once so every agent sees the same
	// continue-vs-start view of the round.
	state, err := e.store.Get(ctx, conversationID)
	if err != nil && !errors.Is(err, core.ErrConversationNotFound) {
		e.logger.Warn("executor.conversation.lookup_failed", "conversation_id", conversationID, "error", err.Error())
	}

	type settled struct {
		specialization string
		result         core.AgentResult
	}

	// Buffered to the fan-out width so stragglers can settle after the
	// collector has given up on them without leaking goroutines.
	resultCh := make(chan settled, len(tasks))

	for _, task := range tasks {
		go func(task Task) {
			agentName := task.Agent.Name()
			agentStart := time.Now()

			e.hooks.beforeAgent(agentName)

			if err := e.sem.Acquire(roundCtx, 1); err != nil {
				// Round expired while waiting for a slot.
				result := core.NewFailureResult(core.FailureTimeout)
				e.hooks.afterAgent(agentName, time.Since(agentStart), result)
				resultCh <- settled{task.Agent.Specialization(), result}
				return
			}
			defer e.sem.Release(1)

			continuing := state != nil && state.Involves(agentName)

			e.logger.Debug(
				"executor.agent.start",
				"agent", agentName,
				"conversation_id", conversationID,
				"continuing", continuing,
			)

			result := e.converse(roundCtx, task, conversationID)

			e.hooks.afterAgent(agentName, time.Since(agentStart), result)

			e.logger.Debug(
				"executor.agent.settled",
				"agent", agentName,
				"conversation_id", conversationID,
				"status", string(result.Status),
				"duration_ms", time.Since(agentStart).Milliseconds(),
			)

			resultCh <- settled{task.Agent.Specialization(), result}
		}(task)
	}

	results := make(map[string]core.AgentResult, len(tasks))

collect:
	for len(results) < len(tasks) {
		select {
		case s := <-resultCh:
			results[s.specialization] = s.result
		case <-roundCtx.Done():
			break collect
		}
	}

	// Whoever did not settle before the deadline is a timeout; their late
	// results drain into the buffered channel and are discarded.
	for _, task := range tasks {
		if _, ok := results[task.Agent.Specialization()]; !ok {
			results[task.Agent.Specialization()] = core.NewFailureResult(core.FailureTimeout)
		}
	}

	// Record participation exactly once per round, after settling.
	involved := make([]string, 0, len(tasks))
	for _, task := range tasks {
		involved = append(involved, task.Agent.Name())
	}
	if err := e.store.Upsert(ctx, conversationID, involved); err != nil {
		e.logger.Error("executor.conversation.upsert_failed", "conversation_id", conversationID, "error", err.Error())
	}

	e.hooks.afterRound(conversationID, results, time.Since(start))

	e.logger.Info(
		"executor.round.complete",
		"conversation_id", conversationID,
		"agents", len(tasks),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return results
}

// converse invokes one agent, absorbing its failure into a result.
func (e *Executor) converse(ctx context.Context, task Task, conversationID string) core.AgentResult {
	reply, err := task.Agent.Converse(ctx, task.Message, conversationID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return core.NewFailureResult(core.FailureTimeout)
		}
		return core.NewFailureResult(err.Error())
	}

	return core.NewSuccessResult(reply)
}
