// Package memory holds each agent's private view of its conversations: the
// model message history replayed into later turns and the free-form context
// values tools store (traveler preferences, shortlisted options).
//
// Every agent owns one Store instance; the coordinator never reads it. Idle
// records are reclaimed with ClearIdle, mirroring the conversation sweeping
// the coordinator performs on its own store.
package memory
