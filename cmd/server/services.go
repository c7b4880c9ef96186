package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/revbot/server/internal/assistant"
	"codeberg.org/revbot/server/internal/bridge"
	"codeberg.org/revbot/server/internal/config"
	"codeberg.org/revbot/server/internal/llm"
	"codeberg.org/revbot/server/internal/retriever"
	"codeberg.org/revbot/server/internal/safety"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, db *pgxpool.Pool) (*Services, error) {
	llmClient, err := llm.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retrieverClient := retriever.New(db, llmClient)
	validator := safety.New()
	bridgeClient := bridge.New(cfg.BridgePort)

	assistantSvc := assistant.New(retrieverClient, llmClient, validator, bridgeClient)

	return &Services{
		Assistant: assistantSvc,
		LLM:       llmClient,
		Retriever: retrieverClient,
		Validator: validator,
		Bridge:    bridgeClient,
	}, nil
}
