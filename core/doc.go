// Package core provides the foundational domain types and interfaces used by
// TravelMesh. It defines the core abstractions for:
//
//   - Agents (specialized responders consumed through Converse / Health)
//   - Conversation state (which agents participate, turn counts, recency)
//   - Agent results (per-round success / failure outcomes)
//   - Coordinated responses and trip plans (the synthesized outputs)
//   - The pluggable ConversationStore contract
//
// The package intentionally keeps implementation concerns (persistence,
// routing, execution, concrete agents) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
