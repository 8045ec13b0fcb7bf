package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/planstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine is a canned-response Engine for handler tests.
type stubEngine struct {
	coordinateResp *core.CoordinatedResponse
	coordinateErr  error
	converseReply  *core.AgentReply
	converseErr    error
	plan           *core.TripPlan
	planErr        error
	health         core.HealthStatus
}

func (s *stubEngine) Coordinate(context.Context, string, string) (*core.CoordinatedResponse, error) {
	return s.coordinateResp, s.coordinateErr
}

func (s *stubEngine) DirectConverse(context.Context, string, string, string) (*core.AgentReply, error) {
	return s.converseReply, s.converseErr
}

func (s *stubEngine) Plan(context.Context, core.PlanRequest) (*core.TripPlan, error) {
	return s.plan, s.planErr
}

func (s *stubEngine) GetPlan(planID string) (*core.TripPlan, error) {
	if s.plan != nil && s.plan.PlanID == planID {
		return s.plan, nil
	}
	return nil, planstore.ErrNotFound
}

func (s *stubEngine) ListPlans() []core.TripPlan {
	if s.plan == nil {
		return nil
	}
	return []core.TripPlan{*s.plan}
}

func (s *stubEngine) Conversations(context.Context) ([]core.ConversationState, error) {
	return []core.ConversationState{{ID: "conv_1", TurnCount: 2, LastUpdate: time.Now().UTC()}}, nil
}

func (s *stubEngine) HealthReport(context.Context) core.HealthStatus { return s.health }

func (s *stubEngine) Stats(context.Context) core.CoordinatorStats {
	return core.CoordinatorStats{ActiveAgents: 3}
}

func serve(t *testing.T, engine Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(engine)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleChat(t *testing.T) {
	engine := &stubEngine{
		coordinateResp: &core.CoordinatedResponse{
			ConversationID: "coord_1",
			Summary:        "**Flight**: AA123 looks best.",
		},
	}

	rec := serve(t, engine, http.MethodPost, "/chat", `{"message":"find me a flight"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp core.CoordinatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "coord_1", resp.ConversationID)
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	rec := serve(t, &stubEngine{}, http.MethodPost, "/chat", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChat_InvalidBody(t *testing.T) {
	rec := serve(t, &stubEngine{}, http.MethodPost, "/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAgentChat(t *testing.T) {
	engine := &stubEngine{
		converseReply: &core.AgentReply{ConversationID: "conv_1", Agent: "hotel-agent", Text: "Park Hyatt"},
	}

	rec := serve(t, engine, http.MethodPost, "/agent/hotel/chat", `{"message":"any rooms?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hotel-agent")
}

func TestHandleAgentChat_UnknownAgent(t *testing.T) {
	engine := &stubEngine{
		converseErr: &core.UnknownAgentError{Specialization: "cruise", Available: []string{"flight", "hotel"}},
	}

	rec := serve(t, engine, http.MethodPost, "/agent/cruise/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "available_agents")
}

func TestHandlePlan(t *testing.T) {
	engine := &stubEngine{
		plan: &core.TripPlan{PlanID: "plan_1", Destination: "Tokyo"},
	}

	rec := serve(t, engine, http.MethodPost, "/plan",
		`{"destination":"Tokyo","days":5,"budget":2000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "plan_1")
}

func TestHandlePlan_ValidationError(t *testing.T) {
	engine := &stubEngine{
		planErr: core.NewValidationError("budget", "budget must be at least 100 USD"),
	}

	rec := serve(t, engine, http.MethodPost, "/plan", `{"destination":"Tokyo","days":5,"budget":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "budget")
}

func TestHandleGetPlan(t *testing.T) {
	engine := &stubEngine{plan: &core.TripPlan{PlanID: "plan_1"}}

	rec := serve(t, engine, http.MethodGet, "/plans/plan_1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, engine, http.MethodGet, "/plans/plan_404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, &stubEngine{health: core.HealthStatus{Status: core.HealthHealthy}},
		http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, &stubEngine{health: core.HealthStatus{Status: core.HealthDegraded}},
		http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), core.HealthDegraded)
}

func TestHandleConversationsAndStats(t *testing.T) {
	engine := &stubEngine{}

	rec := serve(t, engine, http.MethodGet, "/conversations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "conv_1")

	rec = serve(t, engine, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active_agents":3`)
}
