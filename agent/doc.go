// Package agent contains the specialist agent implementations TravelMesh
// coordinates: model-backed conversational agents grounded in the travel
// catalog. The package focuses on three concerns:
//
//  1. Base identity plumbing (BaseAgent)
//  2. Model-centric conversational / tool-calling agent (ModelAgent)
//  3. Ready-made specialists (NewFlightAgent, NewHotelAgent, NewActivityAgent)
//
// Design principles:
//   - Minimal hidden global state – explicit wiring via functional options
//   - Observability – structured logs around model and tool invocations
//   - Extensibility – embed BaseAgent and implement Converse/Health to add
//     custom specialists the coordinator can route to
//
// Execution Model:
//   - Converse runs a bounded tool-calling loop against the configured model
//   - Conversation history and tool-visible context live in memory.Store
//   - Agents never call each other; fan-out is the coordinator's job
//
// The package intentionally keeps model specifics, the tool registry and the
// catalog in their respective packages to avoid cyclic deps.
package agent
