package assistant

import (
	"context"
	"time"

	"codeberg.org/revbot/server/internal/bridge"
	"codeberg.org/revbot/server/internal/llm"
	"codeberg.org/revbot/server/internal/retriever"
	"codeberg.org/revbot/server/internal/safety"
)

// interface for documentation retrieval
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]retriever.SearchResult, error)
}

// interface for the execution transport facade
type Executor interface {
	Execute(ctx context.Context, code string, timeout time.Duration) *bridge.ExecutionResult
}

// interface for pre-execution code screening
type Validator interface {
	Validate(code string) safety.Verdict
}

// orchestrates retrieval-backed code generation and gated execution
type Assistant struct {
	retriever Retriever
	generator llm.TextGenerator
	validator Validator
	executor  Executor
}

// represents a single conversation turn
type ChatTurn struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains all inputs for code generation
type GenerateRequest struct {
	Prompt              string
	Context             map[string]any
	ConversationHistory []ChatTurn

	// nil lets the generator apply its default; an explicit 0.0 is
	// passed through as-is
	Temperature *float64
}

// contains the generated code and metadata
type GenerateResult struct {
	Code          string   `json:"code"`
	Explanation   string   `json:"explanation,omitempty"`
	UsedContext   []string `json:"used_context"`
	Warnings      []string `json:"warnings,omitempty"`
	Model         string   `json:"model"`
	DocsRetrieved int      `json:"docs_retrieved"`
}

// contains all inputs for one execution request
type ExecuteRequest struct {
	Code     string
	SafeMode bool
	Timeout  time.Duration
}

// collected outcome of an execution attempt, including rejections that
// never reached the host
type ExecuteResult struct {
	Status      bridge.Status  `json:"status"`
	Output      string         `json:"output"`
	Errors      string         `json:"errors,omitempty"`
	Duration    float64        `json:"duration"` // seconds
	MatchedRule string         `json:"matched_rule,omitempty"`
	RevitState  map[string]any `json:"revit_state,omitempty"`
}

// contains all inputs for one chat turn
type ChatRequest struct {
	Prompt              string
	Context             map[string]any
	ConversationHistory []ChatTurn
	ExecuteCode         bool
}

// chat combines a generation with an optional execution
type ChatResult struct {
	GenerateResult
	Execution *ExecuteResult `json:"execution,omitempty"`
}
