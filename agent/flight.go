package agent

import (
	"github.com/hupe1980/travelmesh/model"
	"github.com/hupe1980/travelmesh/travel"
)

const flightInstruction = `You are a specialized flight search and booking assistant.

Your expertise includes:
- Flight search across airlines with price and schedule comparison
- Fare class guidance: change, cancellation and baggage rules
- Routing advice weighing nonstop convenience against connection savings
- Optimal departure timing for the traveler's itinerary

Always provide concrete flight information including airlines, prices with
currency, departure and arrival times, duration and stops. Use your available
tools to search for flight data and fare conditions instead of guessing.
Suggest a budget alternative when one fits the traveler's constraints.`

// NewFlightAgent builds the flight specialist: catalog-backed flight search
// and fare rule tools with a flight-focused instruction. Options can still
// override memory, logger or round limits.
func NewFlightAgent(llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	return NewModelAgent("flight-agent", "flight", llm, func(o *ModelAgentOptions) {
		o.Instruction = flightInstruction
		o.Tools = travel.FlightTools()

		for _, fn := range optFns {
			fn(o)
		}
	})
}
