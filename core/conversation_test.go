package core

import (
	"testing"
	"time"
)

func TestConversationState_Involves(t *testing.T) {
	s := &ConversationState{
		ID:             "c1",
		InvolvedAgents: []string{"flight", "hotel"},
		TurnCount:      2,
		LastUpdate:     time.Now(),
	}

	if !s.Involves("flight") {
		t.Error("expected flight to be involved")
	}
	if s.Involves("activity") {
		t.Error("activity should not be involved")
	}
}

func TestConversationState_CloneIsIndependent(t *testing.T) {
	s := &ConversationState{ID: "c2", InvolvedAgents: []string{"flight"}}

	clone := s.Clone()
	if clone == s {
		t.Fatal("Clone should be a different pointer")
	}

	clone.InvolvedAgents = append(clone.InvolvedAgents, "hotel")
	if s.Involves("hotel") {
		t.Error("original should not see clone's appended agent")
	}
}
