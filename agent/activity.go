package agent

import (
	"github.com/hupe1980/travelmesh/model"
	"github.com/hupe1980/travelmesh/travel"
)

const activityInstruction = `You are a specialized travel activity and experience assistant.

Your expertise includes:
- Local activity and attraction recommendations
- Cultural experience curation based on interests
- Restaurant and dining recommendations
- Entertainment and nightlife suggestions across budget levels

Always provide detailed activity descriptions with practical information like
duration, meeting points and prices, plus personalized recommendations based
on the traveler's interests and style. Use your available tools to search for
activity and restaurant data instead of inventing options.`

// NewActivityAgent builds the activity specialist: catalog-backed activity
// and restaurant search tools with an experience-focused instruction. It also
// serves as the coordinator's fallback for general advice questions.
func NewActivityAgent(llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	return NewModelAgent("activity-agent", "activity", llm, func(o *ModelAgentOptions) {
		o.Instruction = activityInstruction
		o.Tools = travel.ActivityTools()

		for _, fn := range optFns {
			fn(o)
		}
	})
}
