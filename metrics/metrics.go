// Package metrics records coordination telemetry through OpenTelemetry.
// Instruments plug into the coordinator via its hook points, so the engine
// itself stays metrics-free.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hupe1980/travelmesh/coordinator"
	"github.com/hupe1980/travelmesh/core"
)

const meterName = "github.com/hupe1980/travelmesh"

// Instruments bundles the coordination meters.
type Instruments struct {
	agentInvocations metric.Int64Counter
	agentDuration    metric.Float64Histogram
	roundDuration    metric.Float64Histogram
	roundAgents      metric.Int64Histogram
}

// NewInstruments registers the coordination instruments on the global
// meter provider.
func NewInstruments() (*Instruments, error) {
	meter := otel.Meter(meterName)

	agentInvocations, err := meter.Int64Counter("travelmesh.agent.invocations",
		metric.WithDescription("Number of agent invocations, by agent and outcome"))
	if err != nil {
		return nil, err
	}

	agentDuration, err := meter.Float64Histogram("travelmesh.agent.duration",
		metric.WithDescription("Latency of individual agent invocations"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	roundDuration, err := meter.Float64Histogram("travelmesh.round.duration",
		metric.WithDescription("Latency of whole coordination rounds"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	roundAgents, err := meter.Int64Histogram("travelmesh.round.agents",
		metric.WithDescription("Number of agents participating per round"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		agentInvocations: agentInvocations,
		agentDuration:    agentDuration,
		roundDuration:    roundDuration,
		roundAgents:      roundAgents,
	}, nil
}

// Hooks returns coordinator hooks that feed these instruments.
func (i *Instruments) Hooks() *coordinator.Hooks {
	return &coordinator.Hooks{
		AfterAgent: func(agent string, duration time.Duration, result core.AgentResult) {
			status := "success"
			if !result.Successful() {
				status = "failure"
			}
			attrs := metric.WithAttributes(
				attribute.String("agent", agent),
				attribute.String("status", status),
			)
			i.agentInvocations.Add(context.Background(), 1, attrs)
			i.agentDuration.Record(context.Background(), float64(duration.Milliseconds()), attrs)
		},
		AfterRound: func(_ string, results map[string]core.AgentResult, duration time.Duration) {
			i.roundDuration.Record(context.Background(), float64(duration.Milliseconds()))
			i.roundAgents.Record(context.Background(), int64(len(results)))
		},
	}
}
