package coordinator

import "strings"

// specializationPriority is the fixed ordering used everywhere agent sets
// are ranked or tie-broken: flights anchor a trip, lodging follows, then
// experiences. Unknown specializations sort after these, alphabetically.
var specializationPriority = []string{"flight", "hotel", "activity"}

// agentKeywords maps each specialization to weighted routing vocabulary.
// High keywords count 3 per occurrence, medium count 1.
var agentKeywords = map[string]struct{ high, medium []string }{
	"flight": {
		high:   []string{"flight", "fly", "airline", "airport", "departure", "arrival", "ticket", "boarding"},
		medium: []string{"travel", "trip", "journey", "aviation"},
	},
	"hotel": {
		high:   []string{"hotel", "accommodation", "stay", "room", "lodge", "resort", "check-in", "booking"},
		medium: []string{"sleep", "night", "bed", "suite"},
	},
	"activity": {
		high:   []string{"activity", "restaurant", "food", "tour", "attraction", "museum", "experience", "sightseeing"},
		medium: []string{"eat", "visit", "see", "do", "entertainment", "culture"},
	},
}

// comprehensiveKeywords trigger full fan-out to every configured agent.
var comprehensiveKeywords = []string{"plan", "trip", "vacation", "travel", "visit", "itinerary", "complete", "comprehensive"}

// adviceKeywords route otherwise-unmatched questions to the fallback agent.
var adviceKeywords = []string{"recommend", "suggest", "best", "good", "help", "advice"}

// clearWinnerThreshold is the score at which a single specialization takes
// the message alone instead of sharing it.
const clearWinnerThreshold = 3

// RoutingDecision names the specializations a message should fan out to, in
// deterministic priority order.
type RoutingDecision struct {
	Specializations []string
	Comprehensive   bool
}

// MultiAgent reports whether the decision involves more than one agent.
func (d RoutingDecision) MultiAgent() bool { return len(d.Specializations) > 1 }

// Router scores messages against the keyword tables to select agents. It is
// stateless apart from its configuration and safe for concurrent use.
type Router struct {
	specializations []string // configured, in priority order
	fallback        string
}

// NewRouter builds a router over the configured specializations. fallback
// names the agent answering generic advice questions; when it is not among
// the configured set the first configured specialization is used instead.
func NewRouter(specializations []string, fallback string) *Router {
	ordered := orderByPriority(specializations)

	if !contains(ordered, fallback) && len(ordered) > 0 {
		fallback = ordered[0]
	}

	return &Router{specializations: ordered, fallback: fallback}
}

// Select decides which specializations should handle the message. The
// decision is deterministic for identical input:
//
//  1. Comprehensive planning vocabulary selects every configured agent.
//  2. A clear keyword winner (score ≥ 3) takes the message alone.
//  3. Weak signals (0 < score < 3) share the message among all scorers.
//  4. No signal routes advice questions to the fallback agent and anything
//     else to every configured agent.
func (r *Router) Select(message string) RoutingDecision {
	lower := strings.ToLower(message)

	// Comprehensive requests need every specialist regardless of scores.
	for _, word := range comprehensiveKeywords {
		if strings.Contains(lower, word) {
			return RoutingDecision{
				Specializations: append([]string(nil), r.specializations...),
				Comprehensive:   true,
			}
		}
	}

	scores := make(map[string]int, len(r.specializations))
	maxScore := 0
	for _, spec := range r.specializations {
		score := r.score(lower, spec)
		scores[spec] = score
		if score > maxScore {
			maxScore = score
		}
	}

	switch {
	case maxScore >= clearWinnerThreshold:
		// Single winner; priority order breaks ties.
		for _, spec := range r.specializations {
			if scores[spec] == maxScore {
				return RoutingDecision{Specializations: []string{spec}}
			}
		}
	case maxScore > 0:
		selected := make([]string, 0, len(r.specializations))
		for _, spec := range r.specializations {
			if scores[spec] > 0 {
				selected = append(selected, spec)
			}
		}
		return RoutingDecision{Specializations: selected}
	}

	// No keyword signal at all.
	for _, word := range adviceKeywords {
		if strings.Contains(lower, word) {
			return RoutingDecision{Specializations: []string{r.fallback}}
		}
	}

	return RoutingDecision{Specializations: append([]string(nil), r.specializations...)}
}

// score sums weighted keyword occurrence counts for one specialization.
func (r *Router) score(lower, specialization string) int {
	keywords, ok := agentKeywords[specialization]
	if !ok {
		return 0
	}

	score := 0
	for _, word := range keywords.high {
		score += strings.Count(lower, word) * 3
	}
	for _, word := range keywords.medium {
		score += strings.Count(lower, word)
	}

	return score
}

// orderByPriority sorts specializations into the fixed priority order, with
// unknown ones appended in input order.
func orderByPriority(specializations []string) []string {
	ordered := make([]string, 0, len(specializations))
	for _, spec := range specializationPriority {
		if contains(specializations, spec) {
			ordered = append(ordered, spec)
		}
	}
	for _, spec := range specializations {
		if !contains(ordered, spec) {
			ordered = append(ordered, spec)
		}
	}

	return ordered
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
