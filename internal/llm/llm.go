package llm

import (
	"fmt"

	"codeberg.org/revbot/server/internal/config"
)

// combines an AnthropicGenerator and OpenAIEmbedder into a single LLM
type CompositeLLM struct {
	TextGenerator
	Embedder
}

// creates a new LLM from explicit configuration
func New(cfg *config.Config) (LLM, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	generator := NewAnthropicGenerator(AnthropicConfig{
		APIKey:    cfg.AnthropicKey,
		Model:     cfg.GeneratorModel,
		MaxTokens: cfg.GeneratorMaxTokens,
	})

	embedder := NewOpenAIEmbedder(OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbedderModel,
	})

	return &CompositeLLM{
		TextGenerator: generator,
		Embedder:      embedder,
	}, nil
}
