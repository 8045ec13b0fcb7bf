package core

import "time"

// FunctionCallRecord captures one tool invocation an agent performed while
// producing its reply: the tool name, the serialized arguments the model
// supplied and a compact rendering of the result.
type FunctionCallRecord struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
	Result    string `json:"result,omitempty"`
}

// AgentReply is the successful outcome of a single Converse call.
type AgentReply struct {
	ConversationID string               `json:"conversation_id"`
	Agent          string               `json:"agent"`
	Text           string               `json:"response"`
	FunctionCalls  []FunctionCallRecord `json:"function_calls,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
}

// ResultStatus tags the variant of an AgentResult.
type ResultStatus string

const (
	// ResultSuccess marks a result carrying a usable agent reply.
	ResultSuccess ResultStatus = "success"
	// ResultFailure marks a result recording an invocation failure.
	ResultFailure ResultStatus = "failed"
)

// FailureTimeout is the canonical failure reason recorded for agents that
// did not settle before the round deadline.
const FailureTimeout = "timeout"

// AgentResult is the per-agent outcome of one coordination round: either a
// successful reply (text plus the function calls behind it) or a failure
// reason. Produced exactly once per selected agent and never mutated.
type AgentResult struct {
	Status        ResultStatus         `json:"status"`
	Text          string               `json:"response,omitempty"`
	FunctionCalls []FunctionCallRecord `json:"function_calls,omitempty"`
	Reason        string               `json:"error,omitempty"`
}

// NewSuccessResult wraps an agent reply as a success result.
func NewSuccessResult(reply *AgentReply) AgentResult {
	return AgentResult{
		Status:        ResultSuccess,
		Text:          reply.Text,
		FunctionCalls: reply.FunctionCalls,
	}
}

// NewFailureResult records a failure with the given reason.
func NewFailureResult(reason string) AgentResult {
	return AgentResult{Status: ResultFailure, Reason: reason}
}

// Successful reports whether the result carries a usable reply.
func (r AgentResult) Successful() bool { return r.Status == ResultSuccess }

// QualityAssessment grades a coordination round by how many of the selected
// agents produced usable replies.
type QualityAssessment struct {
	SuccessRate        string `json:"success_rate"`
	SuccessfulAgents   int    `json:"successful_agents"`
	FailedAgents       int    `json:"failed_agents"`
	TotalFunctionCalls int    `json:"total_function_calls"`
	Effectiveness      string `json:"coordination_effectiveness"`
}

// CoordinatedResponse is the merged outcome of one coordination round.
// Every agent the router selected appears exactly once in Results,
// regardless of success or failure.
type CoordinatedResponse struct {
	ConversationID string                 `json:"conversation_id"`
	MultiAgent     bool                   `json:"multi_agent_response"`
	Results        map[string]AgentResult `json:"agent_responses"`
	Summary        string                 `json:"summary"`
	Quality        QualityAssessment      `json:"coordination_quality"`
	Timestamp      time.Time              `json:"timestamp"`
}
