package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/hupe1980/travelmesh/memory"
	"github.com/hupe1980/travelmesh/model"
	"github.com/hupe1980/travelmesh/tool"
)

// ModelAgentOptions configures a ModelAgent instance.
//
// Use functional options with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	Instruction   string
	Tools         []tool.Tool
	Memory        memory.Store
	MaxToolRounds int
	Logger        logging.Logger
}

// ModelAgent integrates with language models to answer travel questions in
// its specialization.
//
// This agent implementation supports:
//   - Natural language conversation through system instructions
//   - Function calling with registered catalog tools
//   - Conversation continuity via memory-backed history
//   - Bounded tool-calling rounds to keep latency predictable
//
// ModelAgent embeds BaseAgent for identity and satisfies core.Agent. It is
// safe for concurrent Converse calls across conversations.
type ModelAgent struct {
	BaseAgent
	llm           model.Model          // Language model interface
	instruction   string               // System instructions for the LLM
	tools         map[string]tool.Tool // Registered tools for function calling
	memory        memory.Store         // Conversation history + tool-visible context
	maxToolRounds int                  // Cap on model/tool round-trips per Converse
	logger        logging.Logger
}

// NewModelAgent creates a new model-based agent with sensible defaults.
//
// The agent is initialized with:
//   - A generic assistant instruction derived from the name
//   - Empty tool registry for function calling
//   - An in-memory conversation store
//   - 5-round tool calling limit
//
// Parameters:
//   - name: Human-readable name used in logs and stats
//   - specialization: routing key ("flight", "hotel", "activity")
//   - llm: Language model implementation for text generation
//
// Returns a fully configured ModelAgent ready for conversation.
func NewModelAgent(name, specialization string, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		Instruction:   fmt.Sprintf("You are %s, a helpful travel assistant specialized in %s.", name, specialization),
		MaxToolRounds: 5,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Memory == nil {
		opts.Memory = memory.NewInMemoryStore()
	}

	agent := &ModelAgent{
		BaseAgent:     NewBaseAgent(name, specialization),
		llm:           llm,
		instruction:   opts.Instruction,
		tools:         make(map[string]tool.Tool, len(opts.Tools)),
		memory:        opts.Memory,
		maxToolRounds: opts.MaxToolRounds,
		logger:        opts.Logger,
	}

	for _, t := range opts.Tools {
		agent.RegisterTool(t)
	}

	return agent
}

// RegisterTool adds a function tool to the agent's capability set.
//
// Registered tools become available for the language model to call during
// conversations. Tools should implement the tool.Tool interface with proper
// JSON schema definitions.
func (a *ModelAgent) RegisterTool(t tool.Tool) {
	a.tools[t.Name()] = t
}

// RegisterTools adds multiple tools to the agent's capability set.
func (a *ModelAgent) RegisterTools(tools ...tool.Tool) {
	for _, t := range tools {
		a.RegisterTool(t)
	}
}

// HasTool checks if a tool is registered with the agent.
func (a *ModelAgent) HasTool(name string) bool {
	_, exists := a.tools[name]
	return exists
}

// ListTools returns the names of all registered tools.
func (a *ModelAgent) ListTools() []string {
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	return names
}

// Converse sends a user message to the agent and returns its reply.
//
// An empty conversationID starts a fresh conversation with a generated
// `conv_` id; a known one continues with the stored history. The agent runs
// a bounded loop: generate, execute any requested tool calls, feed results
// back, until the model produces final text or the round limit is reached.
// Tool failures are reported back to the model as error payloads rather than
// aborting the conversation.
func (a *ModelAgent) Converse(ctx context.Context, message, conversationID string) (*core.AgentReply, error) {
	if conversationID == "" {
		conversationID = "conv_" + uuid.NewString()
	}

	start := time.Now()

	a.logger.Debug(
		"agent.converse.start",
		"agent", a.Name(),
		"conversation_id", conversationID,
	)

	messages := a.historyFor(conversationID)
	userMsg := model.UserMessage(message)
	messages = append(messages, userMsg)

	// Turns produced during this call; persisted together at the end so a
	// failed round leaves no partial history behind.
	newTurns := []model.Message{userMsg}

	var (
		finalText     string
		functionCalls []core.FunctionCallRecord
	)

	for round := 0; ; round++ {
		if round >= a.maxToolRounds {
			a.logger.Warn(
				"agent.converse.tool_rounds_exhausted",
				"agent", a.Name(),
				"conversation_id", conversationID,
				"rounds", round,
			)
			finalText = "I gathered the available information but could not complete all lookups. Here is what I found so far."
			break
		}

		resp, err := a.llm.Generate(ctx, model.Request{
			Instructions: a.instruction,
			Messages:     messages,
			Tools:        a.toolDecls(),
		})
		if err != nil {
			a.logger.Error(
				"agent.model.error",
				"agent", a.Name(),
				"conversation_id", conversationID,
				"error", err.Error(),
			)

			return nil, fmt.Errorf("model generate: %w", err)
		}

		if len(resp.ToolCalls) == 0 {
			finalText = resp.Text
			assistantMsg := model.AssistantMessage(resp.Text)
			messages = append(messages, assistantMsg)
			newTurns = append(newTurns, assistantMsg)
			break
		}

		assistantMsg := model.Message{Role: model.RoleAssistant, Text: resp.Text, ToolCalls: resp.ToolCalls}
		messages = append(messages, assistantMsg)
		newTurns = append(newTurns, assistantMsg)

		for _, call := range resp.ToolCalls {
			record, resultMsg := a.executeToolCall(ctx, conversationID, call)
			functionCalls = append(functionCalls, record)
			messages = append(messages, resultMsg)
			newTurns = append(newTurns, resultMsg)
		}
	}

	a.memory.AppendHistory(conversationID, newTurns...)

	a.logger.Info(
		"agent.converse.success",
		"agent", a.Name(),
		"conversation_id", conversationID,
		"function_calls", len(functionCalls),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &core.AgentReply{
		ConversationID: conversationID,
		Agent:          a.Name(),
		Text:           finalText,
		FunctionCalls:  functionCalls,
		Timestamp:      time.Now().UTC(),
	}, nil
}

// Health reports the agent's condition: unhealthy without a model, degraded
// without tools, healthy otherwise. ActiveConversations counts memory records.
func (a *ModelAgent) Health(_ context.Context) core.HealthStatus {
	status := core.HealthStatus{
		Status:              core.HealthHealthy,
		ActiveConversations: a.memory.Count(),
	}

	switch {
	case a.llm == nil:
		status.Status = core.HealthUnhealthy
		status.Detail = "no model configured"
	case len(a.tools) == 0:
		status.Status = core.HealthDegraded
		status.Detail = "no tools registered"
	}

	return status
}

// ClearIdleConversations drops memory records with no activity for maxIdle
// and returns how many were removed. The coordinator's sweeper calls this
// alongside its conversation-store sweep so agent memories do not grow
// unbounded in a long-running process.
func (a *ModelAgent) ClearIdleConversations(maxIdle time.Duration) int {
	removed := a.memory.ClearIdle(maxIdle)
	if removed > 0 {
		a.logger.Debug(
			"agent.memory.cleared",
			"agent", a.Name(),
			"removed", removed,
		)
	}
	return removed
}

// historyFor returns the stored conversation turns, or nil for a fresh
// conversation.
func (a *ModelAgent) historyFor(conversationID string) []model.Message {
	record, ok := a.memory.Get(conversationID)
	if !ok {
		return nil
	}
	return record.History
}

// toolDecls renders the registry as model-facing declarations.
func (a *ModelAgent) toolDecls() []model.ToolDecl {
	decls := make([]model.ToolDecl, 0, len(a.tools))
	for _, t := range a.tools {
		decls = append(decls, model.ToolDecl{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return decls
}

// executeToolCall resolves and runs one tool call, returning the record for
// the reply and the tool-result message fed back to the model. Failures are
// encoded as error payloads in the result message.
func (a *ModelAgent) executeToolCall(ctx context.Context, conversationID string, call model.ToolCall) (core.FunctionCallRecord, model.Message) {
	record := core.FunctionCallRecord{
		Name:      call.Name,
		Arguments: string(call.Arguments),
	}

	registered, exists := a.tools[call.Name]
	if !exists {
		payload := errorPayload(fmt.Sprintf("tool %s not found", call.Name), "UNKNOWN_TOOL")
		record.Result = payload

		return record, model.ToolResultMessage(call.ID, call.Name, payload)
	}

	args := map[string]any{}
	if len(call.Arguments) > 0 {
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			payload := errorPayload(fmt.Sprintf("invalid arguments: %v", err), "BAD_ARGUMENTS")
			record.Result = payload

			return record, model.ToolResultMessage(call.ID, call.Name, payload)
		}
	}

	toolCtx := tool.NewContext(ctx, conversationID, call.ID, a.Info(), a.memory, a.logger)

	result, err := registered.Call(toolCtx, args)
	if err != nil {
		code := "EXECUTION_ERROR"
		if toolErr, ok := err.(*tool.ToolError); ok {
			code = toolErr.Code
		}
		payload := errorPayload(err.Error(), code)
		record.Result = payload

		return record, model.ToolResultMessage(call.ID, call.Name, payload)
	}

	rendered, err := json.Marshal(result)
	if err != nil {
		rendered = []byte(fmt.Sprintf("%v", result))
	}
	record.Result = string(rendered)

	return record, model.ToolResultMessage(call.ID, call.Name, string(rendered))
}

// errorPayload renders a tool failure as JSON the model can reason about.
func errorPayload(message, code string) string {
	payload, _ := json.Marshal(map[string]string{"error": message, "code": code})
	return string(payload)
}
