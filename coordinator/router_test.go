package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRouter() *Router {
	return NewRouter([]string{"flight", "hotel", "activity"}, "activity")
}

func TestRouter_ComprehensiveRequestSelectsAll(t *testing.T) {
	router := newTestRouter()

	decision := router.Select("Plan a complete trip to Tokyo with flights and hotels")

	assert.True(t, decision.Comprehensive)
	assert.Equal(t, []string{"flight", "hotel", "activity"}, decision.Specializations)
	assert.True(t, decision.MultiAgent())
}

func TestRouter_ClearWinnerSelectsSingleAgent(t *testing.T) {
	router := newTestRouter()

	decision := router.Select("I need a flight to Tokyo, what are the departure times for that flight?")

	assert.False(t, decision.Comprehensive)
	assert.Equal(t, []string{"flight"}, decision.Specializations)
	assert.False(t, decision.MultiAgent())
}

func TestRouter_HotelDominantMessage(t *testing.T) {
	router := newTestRouter()

	decision := router.Select("Which hotel has a good room for my stay near Shibuya?")

	assert.Equal(t, []string{"hotel"}, decision.Specializations)
}

func TestRouter_WeakSignalsIncludeAllScorers(t *testing.T) {
	router := newTestRouter()

	// "journey" is a weak flight signal only: below the clear-winner
	// threshold, every scoring agent participates.
	decision := router.Select("I want a relaxing journey next month")

	assert.False(t, decision.Comprehensive)
	assert.Equal(t, []string{"flight"}, decision.Specializations)
}

func TestRouter_AdviceRequestFallsBack(t *testing.T) {
	router := newTestRouter()

	decision := router.Select("What would you suggest?")

	assert.Equal(t, []string{"activity"}, decision.Specializations)
	assert.False(t, decision.MultiAgent())
}

func TestRouter_NoSignalSelectsAll(t *testing.T) {
	router := newTestRouter()

	decision := router.Select("hmm")

	assert.Equal(t, []string{"flight", "hotel", "activity"}, decision.Specializations)
}

func TestRouter_Deterministic(t *testing.T) {
	router := newTestRouter()

	message := "Plan a vacation itinerary with flights, hotels and restaurants"
	first := router.Select(message)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, router.Select(message))
	}
}

func TestRouter_UnconfiguredSpecializationsIgnored(t *testing.T) {
	router := NewRouter([]string{"hotel"}, "activity")

	decision := router.Select("I need a flight to Tokyo, what flight has the best departure?")

	// Only configured agents are eligible; the fallback is not configured
	// either, so the first configured specialization answers.
	assert.Equal(t, []string{"hotel"}, decision.Specializations)
}
