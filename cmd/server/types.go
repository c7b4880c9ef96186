package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/revbot/server/internal/assistant"
	"codeberg.org/revbot/server/internal/bridge"
	"codeberg.org/revbot/server/internal/config"
	"codeberg.org/revbot/server/internal/llm"
	"codeberg.org/revbot/server/internal/retriever"
	"codeberg.org/revbot/server/internal/safety"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds all external service clients (LLM, retriever, bridge, assistant)
type Services struct {
	Assistant *assistant.Assistant
	LLM       llm.LLM
	Retriever *retriever.Client
	Validator *safety.Validator
	Bridge    *bridge.Bridge
}
