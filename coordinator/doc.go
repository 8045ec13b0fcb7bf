// Package coordinator implements the multi-agent coordination engine: a
// keyword relevance router that decides which specialists a message needs, a
// bounded fan-out/fan-in executor that invokes them concurrently under a
// shared semaphore and deadline, a synthesizer that merges their replies into
// one coordinated response, and a plan orchestrator that drives all
// specialists to produce a structured trip plan.
//
// The Coordinator façade wires these together with conversation state,
// health caching, event publishing and idle sweeping. Agents are opaque
// behind core.Agent; the coordinator never inspects their reasoning, only
// routes, collects and merges.
package coordinator
