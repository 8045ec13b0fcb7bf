// Package conversation provides coordinator-side conversation state stores:
// which agents participated in a conversation, how many coordinated turns it
// has seen and when it was last active.
//
// Two implementations are included: an RWMutex-guarded in-memory store for
// library use and tests, and a pgx-backed Postgres store for deployments
// where conversations must survive restarts. Both serialize concurrent
// upserts per conversation id so the involved-agent union and turn counter
// never lose updates.
package conversation
