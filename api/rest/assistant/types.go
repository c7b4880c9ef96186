package assistant

import (
	core "codeberg.org/revbot/server/internal/assistant"
)

// GenerateRequest represents the request body for code generation
type GenerateRequest struct {
	Prompt              string          `json:"prompt" binding:"required"`
	Context             map[string]any  `json:"context"`
	ConversationHistory []core.ChatTurn `json:"conversation_history"`
	Temperature         *float64        `json:"temperature" binding:"omitempty,gte=0,lte=1"`
}

// ChatRequest represents the request body for a combined
// generate-and-execute turn
type ChatRequest struct {
	Prompt              string          `json:"prompt" binding:"required"`
	Context             map[string]any  `json:"context"`
	ConversationHistory []core.ChatTurn `json:"conversation_history"`
	ExecuteCode         bool            `json:"execute_code"`
}
