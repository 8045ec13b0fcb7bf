package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/travelmesh/memory"
	"github.com/hupe1980/travelmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelAgent_Converse_SimpleReply(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.AddResponse("Any flights to Tokyo?", "AA123 departs 08:00 for $850.")

	flightAgent := NewFlightAgent(llm)

	reply, err := flightAgent.Converse(context.Background(), "Any flights to Tokyo?", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(reply.ConversationID, "conv_"))
	assert.Equal(t, "flight-agent", reply.Agent)
	assert.Equal(t, "AA123 departs 08:00 for $850.", reply.Text)
	assert.Empty(t, reply.FunctionCalls)
	assert.False(t, reply.Timestamp.IsZero())
}

func TestModelAgent_Converse_ToolCallLoop(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.QueueResponse(model.Response{
		ToolCalls: []model.ToolCall{{
			ID:        "call_1",
			Name:      "search_flights",
			Arguments: json.RawMessage(`{"destination":"Tokyo"}`),
		}},
	})
	llm.QueueResponse(model.Response{Text: "The best option is AA123 at $850 nonstop."})

	flightAgent := NewFlightAgent(llm)

	reply, err := flightAgent.Converse(context.Background(), "Find me a flight to Tokyo", "")
	require.NoError(t, err)

	assert.Equal(t, "The best option is AA123 at $850 nonstop.", reply.Text)
	require.Len(t, reply.FunctionCalls, 1)
	assert.Equal(t, "search_flights", reply.FunctionCalls[0].Name)
	assert.Contains(t, reply.FunctionCalls[0].Result, "AA123")

	// The second model request must carry the tool result back
	requests := llm.Requests()
	require.Len(t, requests, 2)
	last := requests[1].Messages[len(requests[1].Messages)-1]
	assert.Equal(t, model.RoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Text, "AA123")
}

func TestModelAgent_Converse_UnknownToolReportedNotFatal(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.QueueResponse(model.Response{
		ToolCalls: []model.ToolCall{{
			ID:        "call_x",
			Name:      "book_teleporter",
			Arguments: json.RawMessage(`{}`),
		}},
	})
	llm.QueueResponse(model.Response{Text: "I could not use that capability."})

	flightAgent := NewFlightAgent(llm)

	reply, err := flightAgent.Converse(context.Background(), "Beam me to Tokyo", "")
	require.NoError(t, err)

	assert.Equal(t, "I could not use that capability.", reply.Text)
	require.Len(t, reply.FunctionCalls, 1)
	assert.Contains(t, reply.FunctionCalls[0].Result, "UNKNOWN_TOOL")
}

func TestModelAgent_Converse_ContinuesConversation(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.QueueResponse(model.Response{Text: "Park Hyatt Tokyo is excellent."})
	llm.QueueResponse(model.Response{Text: "It runs $450 per night."})

	hotelAgent := NewHotelAgent(llm)

	first, err := hotelAgent.Converse(context.Background(), "Recommend a luxury hotel", "")
	require.NoError(t, err)

	second, err := hotelAgent.Converse(context.Background(), "How much per night?", first.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	// The follow-up request must include the first exchange
	requests := llm.Requests()
	require.Len(t, requests, 2)
	followUp := requests[1].Messages
	require.GreaterOrEqual(t, len(followUp), 3)
	assert.Equal(t, "Recommend a luxury hotel", followUp[0].Text)
	assert.Equal(t, "Park Hyatt Tokyo is excellent.", followUp[1].Text)
	assert.Equal(t, "How much per night?", followUp[2].Text)
}

func TestModelAgent_Converse_ModelError(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.Err = errors.New("upstream unavailable")

	activityAgent := NewActivityAgent(llm)

	_, err := activityAgent.Converse(context.Background(), "What should I do in Tokyo?", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestModelAgent_Converse_ToolRoundLimit(t *testing.T) {
	llm := model.NewMockModel("mock")
	// The model keeps asking for tools; the loop must stop at the limit.
	for i := 0; i < 3; i++ {
		llm.QueueResponse(model.Response{
			ToolCalls: []model.ToolCall{{
				ID:        "call_loop",
				Name:      "search_flights",
				Arguments: json.RawMessage(`{"destination":"Tokyo"}`),
			}},
		})
	}

	flightAgent := NewFlightAgent(llm, func(o *ModelAgentOptions) {
		o.MaxToolRounds = 2
	})

	reply, err := flightAgent.Converse(context.Background(), "Find flights", "")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Text)
	assert.Len(t, reply.FunctionCalls, 2)
	assert.Len(t, llm.Requests(), 2)
}

func TestModelAgent_Health(t *testing.T) {
	llm := model.NewMockModel("mock")

	healthy := NewFlightAgent(llm)
	status := healthy.Health(context.Background())
	assert.Equal(t, "healthy", status.Status)

	bare := NewModelAgent("bare-agent", "flight", llm)
	status = bare.Health(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Contains(t, status.Detail, "no tools")

	modelless := NewModelAgent("down-agent", "flight", nil)
	status = modelless.Health(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
}

func TestModelAgent_ClearIdleConversations(t *testing.T) {
	mem := memory.NewInMemoryStore()
	llm := model.NewMockModel("mock")

	flightAgent := NewFlightAgent(llm, func(o *ModelAgentOptions) {
		o.Memory = mem
	})

	_, err := flightAgent.Converse(context.Background(), "Any flights to Tokyo?", "")
	require.NoError(t, err)
	require.Equal(t, 1, mem.Count())

	removed := flightAgent.ClearIdleConversations(0)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, mem.Count())
}

func TestModelAgent_SharedMemoryVisibleToTools(t *testing.T) {
	llm := model.NewMockModel("mock")
	llm.QueueResponse(model.Response{
		ToolCalls: []model.ToolCall{{
			ID:        "call_pref",
			Name:      "remember_preference",
			Arguments: json.RawMessage(`{"preference":"seat","value":"window"}`),
		}},
	})
	llm.QueueResponse(model.Response{Text: "Noted, window seat."})

	store := memory.NewInMemoryStore()
	flightAgent := NewFlightAgent(llm, func(o *ModelAgentOptions) {
		o.Memory = store
	})

	reply, err := flightAgent.Converse(context.Background(), "I prefer window seats", "")
	require.NoError(t, err)

	prefs, ok := store.ContextValue(reply.ConversationID, "traveler_preferences")
	require.True(t, ok)
	assert.Equal(t, "window", prefs.(map[string]any)["seat"])
}
