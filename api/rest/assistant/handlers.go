package assistant

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	core "codeberg.org/revbot/server/internal/assistant"
	"codeberg.org/revbot/server/internal/errors"
	"codeberg.org/revbot/server/internal/llm"
)

// generates Revit API code from a natural-language prompt
func GenerateHandler(svc *core.Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// absent temperature stays nil so the generator's default
		// applies; an explicit 0.0 survives the trip upstream
		result, err := svc.Generate(c.Request.Context(), core.GenerateRequest{
			Prompt:              req.Prompt,
			Context:             req.Context,
			ConversationHistory: req.ConversationHistory,
			Temperature:         req.Temperature,
		})
		if err != nil {
			respondGenerationError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// generates code and optionally executes it in the same turn
func ChatHandler(svc *core.Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.Chat(c.Request.Context(), core.ChatRequest{
			Prompt:              req.Prompt,
			Context:             req.Context,
			ConversationHistory: req.ConversationHistory,
			ExecuteCode:         req.ExecuteCode,
		})
		if err != nil {
			respondGenerationError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// maps generator failures to response codes the client can act on
func respondGenerationError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, llm.ErrAuth):
		errors.UpstreamAuth(c, err)
	case stderrors.Is(err, llm.ErrRateLimited):
		errors.TooManyRequests(c, "generation provider is rate limiting, try again shortly")
	case stderrors.Is(err, llm.ErrTimeout):
		errors.UpstreamTimeout(c, err)
	case stderrors.Is(err, llm.ErrMalformedResponse):
		errors.UpstreamError(c, err)
	default:
		errors.InternalError(c, "failed to generate code", err)
	}
}
