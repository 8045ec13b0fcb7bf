package coordinator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/travelmesh/core"
)

// summaryPriorityKeywords rank sentences when condensing a long agent reply
// into its summary blurb.
var summaryPriorityKeywords = map[string][]string{
	"flight":   {"flight", "airline", "price", "$", "departure", "arrival"},
	"hotel":    {"hotel", "room", "night", "$", "location", "amenities"},
	"activity": {"activity", "restaurant", "experience", "recommendation"},
}

// allFailedSummary opens the summary when no agent produced a usable reply.
const allFailedSummary = "All travel agents were unavailable for this request."

// Synthesizer merges per-agent results into a single coordinated summary and
// a quality assessment. It is stateless and deterministic: results iterate
// in fixed specialization priority order, never map order.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Summarize builds the coordinated summary string and grades the round.
//
// Each successful agent contributes one "**Flight**: ..." blurb; blurbs join
// with " | ". Multi-agent successes get a coordination note, failed agents a
// failure note. A round where everything failed states the outage and names
// the failed agents so callers always have an honest summary to show.
func (s *Synthesizer) Summarize(results map[string]core.AgentResult) (string, core.QualityAssessment) {
	ordered := orderedSpecializations(results)

	var (
		blurbs     []string
		successful []string
		failed     []string
	)

	for _, spec := range ordered {
		result := results[spec]
		label := titleCase(spec)

		if result.Successful() {
			blurbs = append(blurbs, fmt.Sprintf("**%s**: %s", label, extractKeyInfo(result.Text, spec)))
			successful = append(successful, label)
		} else {
			failed = append(failed, label)
		}
	}

	quality := assessQuality(results)

	if len(blurbs) == 0 {
		summary := allFailedSummary
		if len(failed) > 0 {
			summary += fmt.Sprintf(" Note: %s agent(s) encountered issues.", strings.Join(failed, ", "))
		}
		return summary, quality
	}

	summary := strings.Join(blurbs, " | ")

	if len(failed) > 0 {
		summary += fmt.Sprintf(" Note: %s agent(s) encountered issues.", strings.Join(failed, ", "))
	}

	if len(successful) > 1 {
		summary += fmt.Sprintf(" (Coordinated response from %d specialized agents)", len(successful))
	}

	return summary, quality
}

// extractKeyInfo condenses a long reply into the sentences that matter most
// for the specialization. Replies of 200 characters or fewer pass through
// untouched.
func extractKeyInfo(text, specialization string) string {
	if len(text) <= 200 {
		return text
	}

	sentences := strings.Split(text, ". ")
	keywords := summaryPriorityKeywords[specialization]

	type scored struct {
		sentence string
		score    int
	}

	scoredSentences := make([]scored, 0, len(sentences))
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				score++
			}
		}
		scoredSentences = append(scoredSentences, scored{strings.TrimSpace(sentence), score})
	}

	// Stable keeps original ordering among equally-scored sentences.
	sort.SliceStable(scoredSentences, func(i, j int) bool {
		return scoredSentences[i].score > scoredSentences[j].score
	})

	var parts []string
	charCount := 0
	for _, sc := range scoredSentences {
		if charCount+len(sc.sentence) > 180 {
			break
		}
		parts = append(parts, sc.sentence)
		charCount += len(sc.sentence)
	}

	if len(parts) > 0 {
		summary := strings.Join(parts, ". ")
		if charCount > 150 {
			summary += "..."
		}
		return summary
	}

	// No sentence fit; fall back to a hard prefix.
	if len(text) > 180 {
		return text[:180] + "..."
	}
	return text
}

// assessQuality grades the round by its success ratio and total grounding
// (function calls) behind the successful replies.
func assessQuality(results map[string]core.AgentResult) core.QualityAssessment {
	total := len(results)

	successful := 0
	functionCalls := 0
	for _, result := range results {
		if result.Successful() {
			successful++
			functionCalls += len(result.FunctionCalls)
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(successful) / float64(total) * 100
	}

	effectiveness := "low"
	switch {
	case rate >= 80:
		effectiveness = "high"
	case rate >= 50:
		effectiveness = "medium"
	}

	return core.QualityAssessment{
		SuccessRate:        fmt.Sprintf("%.1f%%", rate),
		SuccessfulAgents:   successful,
		FailedAgents:       total - successful,
		TotalFunctionCalls: functionCalls,
		Effectiveness:      effectiveness,
	}
}

// orderedSpecializations returns the result keys in fixed priority order,
// appending unknown specializations alphabetically.
func orderedSpecializations(results map[string]core.AgentResult) []string {
	ordered := make([]string, 0, len(results))
	for _, spec := range specializationPriority {
		if _, ok := results[spec]; ok {
			ordered = append(ordered, spec)
		}
	}

	var rest []string
	for spec := range results {
		if !contains(ordered, spec) {
			rest = append(rest, spec)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

// titleCase capitalizes the first letter of a specialization for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
