package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultGeneratorModel     = "claude-sonnet-4-20250514"
	defaultEmbedderModel      = "text-embedding-3-small"
	defaultGeneratorMaxTokens = 4096
	defaultExecutionTimeout   = 30 * time.Second
	defaultPort               = "8000"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	docsDB := os.Getenv("DOCS_DATABASE_URL")
	if docsDB == "" {
		return nil, fmt.Errorf("DOCS_DATABASE_URL environment variable is required")
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	generatorModel := os.Getenv("GENERATOR_MODEL")
	if generatorModel == "" {
		generatorModel = defaultGeneratorModel
	}

	embedderModel := os.Getenv("EMBEDDER_MODEL")
	if embedderModel == "" {
		embedderModel = defaultEmbedderModel
	}

	generatorMaxTokens := defaultGeneratorMaxTokens
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			generatorMaxTokens = val
		}
	}

	// port 0 means no websocket channel; the bridge falls back to the
	// pyRevit CLI for every request
	bridgePort := 0
	if portStr := os.Getenv("REVIT_BRIDGE_PORT"); portStr != "" {
		val, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REVIT_BRIDGE_PORT %q: %w", portStr, err)
		}

		bridgePort = val
	}

	executionTimeout := defaultExecutionTimeout
	if timeoutStr := os.Getenv("EXECUTION_TIMEOUT_SECONDS"); timeoutStr != "" {
		if val, err := strconv.Atoi(timeoutStr); err == nil && val > 0 {
			executionTimeout = time.Duration(val) * time.Second
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if originsStr := os.Getenv("ALLOWED_ORIGINS"); originsStr != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(originsStr, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return &Config{
		AnthropicKey:       anthropicKey,
		OpenAIKey:          openaiKey,
		DocsDatabaseURL:    docsDB,
		GeneratorModel:     generatorModel,
		GeneratorMaxTokens: generatorMaxTokens,
		EmbedderModel:      embedderModel,
		BridgePort:         bridgePort,
		ExecutionTimeout:   executionTimeout,
		Port:               port,
		AllowedOrigins:     origins,
		Environment:        environment,
	}, nil
}
