package tool

import (
	"context"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
)

// ContextStore reads and writes per-conversation context values. The agent's
// conversation memory implements this so that values a tool stores (traveler
// preferences, shortlisted hotels) survive across turns of the conversation.
type ContextStore interface {
	// ContextValue returns the value stored under key for the conversation.
	ContextValue(conversationID, key string) (interface{}, bool)

	// SetContextValue stores a value under key for the conversation.
	SetContextValue(conversationID, key string, value interface{})
}

// Context carries the per-invocation environment handed to a tool call: the
// caller's context.Context, the owning conversation and agent, a function
// call identifier for log correlation, and access to conversation context.
//
// A Context is created by the agent for each function call and must not be
// retained beyond the call.
type Context struct {
	ctx            context.Context
	conversationID string
	functionCallID string
	agent          core.AgentInfo
	store          ContextStore
	logger         logging.Logger
}

// NewContext builds a tool invocation context. A nil logger defaults to the
// no-op logger; a nil store turns GetState/SetState into no-ops.
func NewContext(
	ctx context.Context,
	conversationID, functionCallID string,
	agent core.AgentInfo,
	store ContextStore,
	logger logging.Logger,
) *Context {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Context{
		ctx:            ctx,
		conversationID: conversationID,
		functionCallID: functionCallID,
		agent:          agent,
		store:          store,
		logger:         logger,
	}
}

// Context returns the context.Context of the originating request, for tools
// that perform cancellable work.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// ConversationID returns the conversation this tool call belongs to.
func (c *Context) ConversationID() string { return c.conversationID }

// FunctionCallID returns the identifier correlating the model's function call
// request with this execution.
func (c *Context) FunctionCallID() string { return c.functionCallID }

// Agent identifies the agent executing the tool.
func (c *Context) Agent() core.AgentInfo { return c.agent }

// Logger returns the logger tools should use for execution logs.
func (c *Context) Logger() logging.Logger { return c.logger }

// GetState retrieves a conversation context value by key.
func (c *Context) GetState(key string) (interface{}, bool) {
	if c.store == nil {
		return nil, false
	}
	return c.store.ContextValue(c.conversationID, key)
}

// SetState stores a conversation context value. The value is persisted with
// the conversation's memory record and visible to later tool calls.
func (c *Context) SetState(key string, value interface{}) {
	if c.store == nil {
		return
	}
	c.store.SetContextValue(c.conversationID, key, value)
}
