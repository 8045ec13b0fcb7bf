// Package planstore persists generated trip plans so they can be fetched
// after the planning round completes (the /plans/{id} surface).
package planstore

import (
	"errors"
	"sort"
	"sync"

	"github.com/hupe1980/travelmesh/core"
)

// ErrNotFound is returned when no plan exists under the requested id.
var ErrNotFound = errors.New("plan not found")

// InMemoryStore keeps trip plans in process memory with defensive copies on
// read. Safe for concurrent use.
type InMemoryStore struct {
	mu    sync.RWMutex
	plans map[string]*core.TripPlan
}

// NewInMemoryStore creates an empty plan store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{plans: make(map[string]*core.TripPlan)}
}

// Save stores a plan under its id, replacing any previous version.
func (s *InMemoryStore) Save(plan *core.TripPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.PlanID] = clonePlan(plan)
}

// Get returns a copy of the plan, or ErrNotFound.
func (s *InMemoryStore) Get(planID string) (*core.TripPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[planID]
	if !ok {
		return nil, ErrNotFound
	}

	return clonePlan(plan), nil
}

// List returns all stored plans ordered by generation time, newest first.
func (s *InMemoryStore) List() []core.TripPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.TripPlan, 0, len(s.plans))
	for _, plan := range s.plans {
		out = append(out, *clonePlan(plan))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })

	return out
}

// Count reports the number of stored plans.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}

// clonePlan deep-copies the slices and maps reachable from a plan so callers
// cannot mutate stored state.
func clonePlan(p *core.TripPlan) *core.TripPlan {
	cp := *p

	cp.Interests = append([]string(nil), p.Interests...)
	cp.Insights = append([]string(nil), p.Insights...)
	cp.NextSteps = append([]string(nil), p.NextSteps...)
	cp.Quality.Recommendations = append([]string(nil), p.Quality.Recommendations...)
	cp.Budget.Recommendations = append([]string(nil), p.Budget.Recommendations...)

	cp.Recommendations = make(map[string]core.AgentResult, len(p.Recommendations))
	for k, v := range p.Recommendations {
		cp.Recommendations[k] = v
	}

	cp.Budget.Allocation = make(map[string]core.BudgetAllocation, len(p.Budget.Allocation))
	for k, v := range p.Budget.Allocation {
		cp.Budget.Allocation[k] = v
	}

	return &cp
}
