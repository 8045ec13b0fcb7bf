package core

import "time"

// PlanRequest carries the validated inputs for comprehensive trip planning.
type PlanRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      float64  `json:"budget"`
	Interests   []string `json:"interests,omitempty"`
	Style       string   `json:"travel_style,omitempty"`
}

// BudgetAllocation is one slice of the fixed budget split.
type BudgetAllocation struct {
	Allocated  int `json:"allocated"`
	Percentage int `json:"percentage"`
}

// BudgetBreakdown describes how the total budget is divided across flights,
// accommodation and activities, plus tier-based spending recommendations.
type BudgetBreakdown struct {
	TotalBudget     float64                     `json:"total_budget"`
	Currency        string                      `json:"currency"`
	Allocation      map[string]BudgetAllocation `json:"allocation"`
	Recommendations []string                    `json:"recommendations"`
}

// PlanQuality grades a generated plan by the fraction of configured agents
// that contributed a successful recommendation.
type PlanQuality struct {
	CompletenessPercentage float64  `json:"completeness_percentage"`
	SuccessfulComponents   int      `json:"successful_components"`
	TotalComponents        int      `json:"total_components"`
	OverallRating          string   `json:"overall_rating"`
	Recommendations        []string `json:"recommendations,omitempty"`
}

// TripPlan is the structured output of the plan orchestrator. Completeness
// is always in [0,100]; Insights holds at most 3 entries and NextSteps at
// most 6.
type TripPlan struct {
	PlanID          string                 `json:"plan_id"`
	Destination     string                 `json:"destination"`
	DurationDays    int                    `json:"duration_days"`
	BudgetUSD       float64                `json:"budget_usd"`
	TravelStyle     string                 `json:"travel_style"`
	Interests       []string               `json:"interests"`
	Recommendations map[string]AgentResult `json:"agent_recommendations"`
	Summary         string                 `json:"coordinator_summary"`
	Insights        []string               `json:"intelligent_insights"`
	NextSteps       []string               `json:"next_steps"`
	Budget          BudgetBreakdown        `json:"budget_breakdown"`
	Quality         PlanQuality            `json:"plan_quality"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// CoordinatorStats aggregates runtime counters for the stats surface.
type CoordinatorStats struct {
	ActiveAgents        int                   `json:"active_agents"`
	ActiveConversations int                   `json:"active_conversations"`
	Agents              map[string]AgentStats `json:"agents"`
}
