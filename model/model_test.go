package model

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_MappedResponse(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("find flights", "Three flights found.")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("find flights")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Three flights found.", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestMockModel_DefaultEcho(t *testing.T) {
	m := NewMockModel("test-model")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("anything")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: anything", resp.Text)
}

func TestMockModel_QueueTakesPrecedence(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("hello", "mapped")
	m.QueueResponse(Response{
		ToolCalls:    []ToolCall{{ID: "call_1", Name: "search_flights", Arguments: json.RawMessage(`{}`)}},
		FinishReason: "tool_calls",
	})

	resp, err := m.Generate(context.Background(), Request{Messages: []Message{UserMessage("hello")}})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "search_flights", resp.ToolCalls[0].Name)

	// Queue drained; the mapped response comes back on the next call.
	resp, err = m.Generate(context.Background(), Request{Messages: []Message{UserMessage("hello")}})
	require.NoError(t, err)
	assert.Equal(t, "mapped", resp.Text)
}

func TestMockModel_DelayRespectsContext(t *testing.T) {
	m := NewMockModel("test-model")
	m.Delay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := m.Generate(ctx, Request{Messages: []Message{UserMessage("slow")}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestMockModel_RecordsRequests(t *testing.T) {
	m := NewMockModel("test-model")

	_, err := m.Generate(context.Background(), Request{
		Instructions: "be helpful",
		Messages:     []Message{UserMessage("first")},
	})
	require.NoError(t, err)

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "be helpful", reqs[0].Instructions)
}
