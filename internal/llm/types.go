package llm

import (
	"context"
	"errors"
)

// generates text from a prompt and conversation history
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// combines text generation and embedding generation
type LLM interface {
	TextGenerator
	Embedder
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains all inputs for a text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int // 0 uses the client default

	// 0.0 to 1.0; nil uses the client default. A pointer keeps an
	// explicit 0.0 distinguishable from unset.
	Temperature *float32
}

// contains the generated text and token accounting
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Error kinds surfaced by the upstream adapters. Handlers distinguish
// them with errors.Is to map each to an actionable status.
var (
	ErrAuth              = errors.New("upstream authentication failed")
	ErrRateLimited       = errors.New("upstream rate limit exceeded")
	ErrTimeout           = errors.New("upstream request timed out")
	ErrMalformedResponse = errors.New("malformed upstream response")
)
