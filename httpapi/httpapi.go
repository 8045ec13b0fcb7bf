// Package httpapi exposes the coordination engine over HTTP. Routes are
// mounted on a chi router with request-scoped middleware; request and
// response bodies are plain JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hupe1980/travelmesh/core"
)

// maxRequestBodySize bounds accepted request bodies.
const maxRequestBodySize = 1 << 20 // 1 MB

// Engine is the coordination surface the API serves. *coordinator.Coordinator
// satisfies it; tests substitute a stub.
type Engine interface {
	Coordinate(ctx context.Context, message, conversationID string) (*core.CoordinatedResponse, error)
	DirectConverse(ctx context.Context, specialization, message, conversationID string) (*core.AgentReply, error)
	Plan(ctx context.Context, req core.PlanRequest) (*core.TripPlan, error)
	GetPlan(planID string) (*core.TripPlan, error)
	ListPlans() []core.TripPlan
	Conversations(ctx context.Context) ([]core.ConversationState, error)
	HealthReport(ctx context.Context) core.HealthStatus
	Stats(ctx context.Context) core.CoordinatorStats
}

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
