// Package events publishes coordination lifecycle events (round completed,
// plan generated) to interested consumers. The NATS JetStream publisher is
// for deployments with downstream processing; the NoOp publisher is the
// library default. Publishing is strictly best-effort: a failed publish is
// logged by the caller and never fails a coordination round.
package events

import (
	"context"
	"time"
)

// Subjects emitted by the coordinator.
const (
	SubjectRoundCompleted = "coordination.round.completed"
	SubjectPlanGenerated  = "plans.generated"
)

// RoundCompletedPayload is the wire schema published on SubjectRoundCompleted.
type RoundCompletedPayload struct {
	ConversationID string    `json:"conversation_id"`
	MultiAgent     bool      `json:"multi_agent"`
	Agents         []string  `json:"agents"`
	SuccessRate    string    `json:"success_rate"`
	Effectiveness  string    `json:"effectiveness"`
	Timestamp      time.Time `json:"timestamp"`
}

// PlanGeneratedPayload is the wire schema published on SubjectPlanGenerated.
type PlanGeneratedPayload struct {
	PlanID       string    `json:"plan_id"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"duration_days"`
	Completeness float64   `json:"completeness_percentage"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Publisher emits serialized events to a subject.
type Publisher interface {
	// Publish sends payload (JSON-serialized) to subject.
	Publish(ctx context.Context, subject string, payload any) error

	// Close releases any underlying connections.
	Close() error
}

// NoOpPublisher discards all events. It is the default when no event
// transport is configured.
type NoOpPublisher struct{}

// Publish discards the event.
func (NoOpPublisher) Publish(context.Context, string, any) error { return nil }

// Close is a no-op.
func (NoOpPublisher) Close() error { return nil }
