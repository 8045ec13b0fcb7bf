package agent

import (
	"testing"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/model"
	"github.com/hupe1980/travelmesh/travel"
	"github.com/stretchr/testify/assert"
)

func TestBaseAgent_Identity(t *testing.T) {
	base := NewBaseAgent("flight-agent", "flight")

	assert.Equal(t, "flight-agent", base.Name())
	assert.Equal(t, "flight", base.Specialization())
	assert.Contains(t, base.Description(), "flight")

	base.SetDescription("Finds and compares flights")
	assert.Equal(t, "Finds and compares flights", base.Description())

	assert.Equal(t, core.AgentInfo{Name: "flight-agent", Specialization: "flight"}, base.Info())
}

func TestSpecialistConstructors(t *testing.T) {
	llm := model.NewMockModel("mock")

	tests := []struct {
		agent          core.Agent
		specialization string
		tools          []string
	}{
		{NewFlightAgent(llm), "flight", []string{"search_flights", "get_fare_rules", "remember_preference"}},
		{NewHotelAgent(llm), "hotel", []string{"search_hotels", "check_availability", "remember_preference"}},
		{NewActivityAgent(llm), "activity", []string{"search_activities", "search_restaurants", "remember_preference"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.specialization, tt.agent.Specialization())

		modelAgent, ok := tt.agent.(*ModelAgent)
		assert.True(t, ok)
		for _, name := range tt.tools {
			assert.True(t, modelAgent.HasTool(name), "%s should have tool %s", tt.agent.Name(), name)
		}
	}
}

func TestModelAgent_ToolRegistry(t *testing.T) {
	llm := model.NewMockModel("mock")
	modelAgent := NewModelAgent("custom-agent", "activity", llm)

	assert.Empty(t, modelAgent.ListTools())
	assert.False(t, modelAgent.HasTool("search_activities"))

	modelAgent.RegisterTools(travel.ActivityTools()...)
	assert.True(t, modelAgent.HasTool("search_activities"))
	assert.True(t, modelAgent.HasTool("search_restaurants"))
	assert.Len(t, modelAgent.ListTools(), 3)
}
