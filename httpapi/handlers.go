package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/hupe1980/travelmesh/planstore"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Engine Engine
	Logger logging.Logger
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// HandleChat routes a message through the coordinator.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[chatRequest](w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := h.Engine.Coordinate(r.Context(), req.Message, req.ConversationID)
	if err != nil {
		h.Logger.Error("http.chat.failed", "error", err)
		writeError(w, http.StatusInternalServerError, "coordination failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAgentChat talks to one specialist directly, bypassing routing.
func (h *Handlers) HandleAgentChat(w http.ResponseWriter, r *http.Request) {
	specialization := chi.URLParam(r, "type")

	req, ok := readJSON[chatRequest](w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.Engine.DirectConverse(r.Context(), specialization, req.Message, req.ConversationID)
	if err != nil {
		var unknownErr *core.UnknownAgentError
		if errors.As(err, &unknownErr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":            unknownErr.Error(),
				"available_agents": unknownErr.Available,
			})
			return
		}
		h.Logger.Error("http.agent_chat.failed", "agent", specialization, "error", err)
		writeError(w, http.StatusInternalServerError, "agent conversation failed")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// HandlePlan generates a comprehensive trip plan.
func (h *Handlers) HandlePlan(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[core.PlanRequest](w, r)
	if !ok {
		return
	}

	plan, err := h.Engine.Plan(r.Context(), req)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Logger.Error("http.plan.failed", "error", err)
		writeError(w, http.StatusInternalServerError, "plan generation failed")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// HandleGetPlan returns a stored plan by id.
func (h *Handlers) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Engine.GetPlan(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "plan lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// HandleListPlans returns all stored plans, newest first.
func (h *Handlers) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"plans": h.Engine.ListPlans()})
}

// HandleConversations lists tracked conversations, newest first.
func (h *Handlers) HandleConversations(w http.ResponseWriter, r *http.Request) {
	states, err := h.Engine.Conversations(r.Context())
	if err != nil {
		h.Logger.Error("http.conversations.failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversation listing failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":         len(states),
		"conversations": states,
	})
}

// HandleHealth reports aggregate engine health. The endpoint always
// answers 200; the status field carries degraded and unhealthy states so
// probes can alert without flapping the load balancer.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.HealthReport(r.Context()))
}

// HandleStats reports runtime counters.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.Stats(r.Context()))
}
