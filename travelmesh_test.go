package travelmesh

import (
	"context"
	"testing"

	"github.com/hupe1980/travelmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToWorkingMesh(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)
	t.Cleanup(mesh.Close)

	resp, err := mesh.Chat(context.Background(), "Plan a complete trip to Tokyo", "")
	require.NoError(t, err)

	assert.True(t, resp.MultiAgent)
	assert.Len(t, resp.Results, 3)
	assert.NotEmpty(t, resp.Summary)
}

func TestTravelMesh_AgentChat(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)
	t.Cleanup(mesh.Close)

	reply, err := mesh.AgentChat(context.Background(), "hotel", "Any rooms in Shinjuku?", "")
	require.NoError(t, err)
	assert.Equal(t, "hotel-agent", reply.Agent)
	assert.NotEmpty(t, reply.ConversationID)

	_, err = mesh.AgentChat(context.Background(), "cruise", "hello", "")
	var unknownErr *core.UnknownAgentError
	require.ErrorAs(t, err, &unknownErr)
}

func TestTravelMesh_PlanAndRetrieve(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)
	t.Cleanup(mesh.Close)

	plan, err := mesh.Plan(context.Background(), core.PlanRequest{
		Destination: "Tokyo",
		Days:        5,
		Budget:      2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", plan.Destination)

	stored, err := mesh.GetPlan(plan.PlanID)
	require.NoError(t, err)
	assert.Equal(t, plan.PlanID, stored.PlanID)
}

func TestTravelMesh_HealthAndStats(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)
	t.Cleanup(mesh.Close)

	health := mesh.Health(context.Background())
	assert.Equal(t, core.HealthHealthy, health.Status)

	stats := mesh.Stats(context.Background())
	assert.Equal(t, 3, stats.ActiveAgents)
}
