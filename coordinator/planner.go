package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
)

// Budget split percentages, fixed across all plans.
const (
	flightBudgetPct   = 40
	hotelBudgetPct    = 35
	activityBudgetPct = 25
)

// styleContexts maps a travel style to the phrasing injected into the
// per-agent queries. Unknown styles fall back to "balanced".
var styleContexts = map[string]string{
	"budget":    "budget-conscious and value-focused",
	"mid-range": "balanced comfort and value",
	"luxury":    "premium and high-end",
	"business":  "business travel optimized",
	"adventure": "adventure and unique experiences focused",
}

// Planner orchestrates comprehensive trip planning: it validates the
// request, splits the budget, derives one tailored query per specialist,
// fans out through the executor and assembles the structured TripPlan.
type Planner struct {
	executor    *Executor
	synthesizer *Synthesizer
	logger      logging.Logger
	now         func() time.Time
}

// PlannerOptions configures a Planner.
type PlannerOptions struct {
	// Logger receives planning lifecycle events. Defaults to NoOpLogger.
	Logger logging.Logger

	// Now supplies the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewPlanner creates a Planner over the given executor.
func NewPlanner(executor *Executor, optFns ...func(*PlannerOptions)) *Planner {
	opts := PlannerOptions{
		Logger: logging.NoOpLogger{},
		Now:    time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Planner{
		executor:    executor,
		synthesizer: NewSynthesizer(),
		logger:      opts.Logger,
		now:         opts.Now,
	}
}

// ValidatePlanRequest checks the request bounds before any agent is invoked.
func ValidatePlanRequest(req core.PlanRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return core.NewValidationError("destination", "destination must not be empty")
	}
	if req.Days < 1 || req.Days > 30 {
		return core.NewValidationError("days", "days must be between 1 and 30")
	}
	if req.Budget < 100 {
		return core.NewValidationError("budget", "budget must be at least 100 USD")
	}
	return nil
}

// Plan runs one full planning round across the given agents and assembles
// the TripPlan. Agents map specialization to agent; every configured
// specialist participates regardless of what the request mentions.
func (p *Planner) Plan(ctx context.Context, req core.PlanRequest, agents map[string]core.Agent, deadline time.Duration) (*core.TripPlan, error) {
	if err := ValidatePlanRequest(req); err != nil {
		return nil, err
	}

	planID := "plan_" + uuid.NewString()
	conversationID := "coord_" + uuid.NewString()

	p.logger.Info("planner.plan.start",
		"plan_id", planID,
		"destination", req.Destination,
		"days", req.Days,
		"budget", req.Budget,
	)

	flightBudget := int(req.Budget * flightBudgetPct / 100)
	hotelBudget := int(req.Budget * hotelBudgetPct / 100)
	activityBudget := int(req.Budget * activityBudgetPct / 100)

	tasks := make([]Task, 0, len(agents))
	for _, spec := range specializationPriority {
		agent, ok := agents[spec]
		if !ok {
			continue
		}
		tasks = append(tasks, Task{
			Agent:   agent,
			Message: p.queryFor(spec, req, flightBudget, hotelBudget, activityBudget),
		})
	}

	results := p.executor.InvokeEach(ctx, conversationID, tasks, deadline)

	plan := &core.TripPlan{
		PlanID:          planID,
		Destination:     req.Destination,
		DurationDays:    req.Days,
		BudgetUSD:       req.Budget,
		TravelStyle:     req.Style,
		Interests:       req.Interests,
		Recommendations: results,
		Summary:         p.planSummary(req, results),
		Insights:        p.insights(req, results),
		NextSteps:       p.nextSteps(req, results),
		Budget:          p.budgetBreakdown(req.Budget),
		Quality:         p.planQuality(results),
		GeneratedAt:     p.now().UTC(),
	}

	p.logger.Info("planner.plan.success",
		"plan_id", planID,
		"completeness", plan.Quality.CompletenessPercentage,
		"rating", plan.Quality.OverallRating,
	)

	return plan, nil
}

// queryFor builds the specialist query for one agent from the request and
// its budget slice.
func (p *Planner) queryFor(spec string, req core.PlanRequest, flightBudget, hotelBudget, activityBudget int) string {
	styleContext := styleContexts[req.Style]
	if styleContext == "" {
		styleContext = "balanced"
	}

	interestContext := ""
	if len(req.Interests) > 0 {
		interestContext = fmt.Sprintf(" with focus on %s experiences", strings.Join(req.Interests, ", "))
	}

	switch spec {
	case "flight":
		return fmt.Sprintf(
			"Find the best flight options to %s for a %d-day trip. "+
				"Budget around $%d, %s options preferred%s. "+
				"Consider both direct and connecting flights, and suggest optimal timing.",
			req.Destination, req.Days, flightBudget, styleContext, interestContext,
		)
	case "hotel":
		nights := req.Days - 1
		if nights < 1 {
			nights = 1
		}
		perNight := hotelBudget / nights
		style := req.Style
		if style == "" {
			style = "mid-range"
		}
		return fmt.Sprintf(
			"Find %s accommodation in %s for %d nights. "+
				"Budget around $%d per night. "+
				"Location should be convenient for exploring the city%s. "+
				"Consider neighborhood safety and transportation access.",
			style, req.Destination, nights, perNight, interestContext,
		)
	default: // activity
		return fmt.Sprintf(
			"Recommend a %d-day itinerary for %s%s. "+
				"Activity budget around $%d, %s preferences. "+
				"Include must-see attractions, dining recommendations, and unique local experiences.",
			req.Days, req.Destination, interestContext, activityBudget, styleContext,
		)
	}
}

// planSummary describes the plan at a glance, scaled to how many specialists
// delivered.
func (p *Planner) planSummary(req core.PlanRequest, results map[string]core.AgentResult) string {
	successful := successCount(results)

	summary := fmt.Sprintf("Complete %d-day travel plan for %s generated through coordinated multi-agent planning. ",
		req.Days, req.Destination)

	switch {
	case successful >= 3:
		summary += "Includes personalized flight recommendations, carefully selected accommodation options matching your travel style, and curated activities tailored to your interests. "
	case successful >= 2:
		summary += fmt.Sprintf("Includes recommendations from %d specialized agents. ", successful)
	default:
		summary += "Partial recommendations available. "
	}

	summary += "Each recommendation is powered by advanced AI for maximum relevance to your preferences and travel requirements."

	return summary
}

// insights derives up to 3 contextual observations from the request and the
// round outcome.
func (p *Planner) insights(req core.PlanRequest, results map[string]core.AgentResult) []string {
	var insights []string

	if results["flight"].Successful() && results["hotel"].Successful() {
		insights = append(insights, fmt.Sprintf(
			"Your %s travel style aligns well with the available options in %s.",
			displayStyle(req.Style), req.Destination))
	}

	switch {
	case req.Budget >= 2000:
		insights = append(insights, "Your premium budget opens up luxury accommodations and exclusive experiences.")
	case req.Budget <= 800:
		insights = append(insights, "Budget-conscious planning: Consider local experiences and value accommodations.")
	}

	if results["activity"].Successful() {
		insights = append(insights, "Book popular activities and restaurants in advance to secure availability.")
	}

	switch p.now().Month() {
	case time.December, time.January, time.February:
		insights = append(insights, "Winter travel considerations: Check weather conditions and pack accordingly.")
	case time.June, time.July, time.August:
		insights = append(insights, "Summer travel peak season: Book accommodations early and expect higher prices.")
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

// nextSteps lists the actionable follow-ups, component-specific first, capped
// at 6.
func (p *Planner) nextSteps(req core.PlanRequest, results map[string]core.AgentResult) []string {
	var steps []string

	if results["flight"].Successful() {
		steps = append(steps,
			"Review and compare flight options, considering timing and connections",
			"Book preferred flights to secure seats and pricing",
		)
	}
	if results["hotel"].Successful() {
		steps = append(steps,
			"Confirm hotel availability for your exact dates and book reservation",
			"Check hotel cancellation policies and payment requirements",
		)
	}
	if results["activity"].Successful() {
		steps = append(steps,
			"Research and book time-sensitive activities and restaurant reservations",
			"Download offline maps and translation apps for easier navigation",
		)
	}

	steps = append(steps,
		fmt.Sprintf("Check visa and passport requirements for %s", req.Destination),
		"Review travel insurance options for international travel",
		"Notify banks of travel plans to avoid card issues",
		"Check current health and safety recommendations",
	)

	if len(steps) > 6 {
		steps = steps[:6]
	}
	return steps
}

// budgetBreakdown splits the budget into the fixed 40/35/25 allocation and
// attaches tier-based spending recommendations.
func (p *Planner) budgetBreakdown(budget float64) core.BudgetBreakdown {
	breakdown := core.BudgetBreakdown{
		TotalBudget: budget,
		Currency:    "USD",
		Allocation: map[string]core.BudgetAllocation{
			"flights":       {Allocated: int(budget * flightBudgetPct / 100), Percentage: flightBudgetPct},
			"accommodation": {Allocated: int(budget * hotelBudgetPct / 100), Percentage: hotelBudgetPct},
			"activities":    {Allocated: int(budget * activityBudgetPct / 100), Percentage: activityBudgetPct},
		},
	}

	switch {
	case budget >= 3000:
		breakdown.Recommendations = []string{
			"Premium budget allows for luxury upgrades",
			"Consider business class flights or 5-star hotels",
		}
	case budget >= 1500:
		breakdown.Recommendations = []string{
			"Comfortable mid-range budget",
			"Good balance of comfort and experiences",
		}
	default:
		breakdown.Recommendations = []string{
			"Budget-conscious travel",
			"Focus on value accommodations and free activities",
		}
	}

	return breakdown
}

// planQuality grades the plan by the fraction of specialists that delivered.
func (p *Planner) planQuality(results map[string]core.AgentResult) core.PlanQuality {
	total := len(results)
	successful := successCount(results)

	completeness := 0.0
	if total > 0 {
		completeness = float64(successful) / float64(total) * 100
	}
	// Round to one decimal place.
	completeness = float64(int(completeness*10+0.5)) / 10

	rating := "Needs Improvement"
	switch {
	case completeness >= 90:
		rating = "Excellent"
	case completeness >= 70:
		rating = "Good"
	case completeness >= 50:
		rating = "Fair"
	}

	quality := core.PlanQuality{
		CompletenessPercentage: completeness,
		SuccessfulComponents:   successful,
		TotalComponents:        total,
		OverallRating:          rating,
	}

	if completeness < 100 {
		var failed []string
		for _, spec := range specializationPriority {
			if result, ok := results[spec]; ok && !result.Successful() {
				failed = append(failed, spec)
			}
		}
		quality.Recommendations = []string{fmt.Sprintf(
			"Some components had issues: %s. Consider trying again or contacting support.",
			strings.Join(failed, ", "))}
	}

	return quality
}

func displayStyle(style string) string {
	if style == "" {
		return "mid-range"
	}
	return style
}

func successCount(results map[string]core.AgentResult) int {
	n := 0
	for _, result := range results {
		if result.Successful() {
			n++
		}
	}
	return n
}
