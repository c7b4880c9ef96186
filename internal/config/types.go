package config

import "time"

// Config holds all process-wide configuration. It is loaded once at
// startup and passed explicitly to each component's constructor;
// request handling never reads ambient environment state.
type Config struct {
	// upstream credentials
	AnthropicKey string
	OpenAIKey    string

	// documentation index (pgvector over Postgres)
	DocsDatabaseURL string

	// generation model settings
	GeneratorModel     string
	GeneratorMaxTokens int
	EmbedderModel      string

	// Revit bridge settings. BridgePort 0 disables the websocket
	// channel and forces the CLI fallback.
	BridgePort       int
	ExecutionTimeout time.Duration

	// server settings
	Port           string
	AllowedOrigins []string
	Environment    string
}
