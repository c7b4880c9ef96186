package errors

import (
	"net/http"

	"codeberg.org/revbot/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/adapters/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Adapters expose sentinel kinds (llm.ErrRateLimited, bridge.ErrHostUnreachable, ...)
//     so handlers can map them to a distinguishable status
//   - Let the caller (handler) decide how to log and respond

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "bad_request", "upstream_timeout")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeBadRequest      = "bad_request"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeTooManyRequests = "too_many_requests"
	CodeUpstreamAuth    = "upstream_auth_error"
	CodeUpstreamTimeout = "upstream_timeout"
	CodeUpstreamError   = "upstream_error"
)

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for binding/validation failures
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "request validation failed",
		Details: sanitizeError(err),
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 429 too many requests error (upstream rate limit exhausted retries)
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 502 bad gateway error for upstream credential failures
func UpstreamAuth(c *gin.Context, err error) {
	logger.ErrorErr(err, "upstream authentication failed",
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeUpstreamAuth,
		Message: "upstream API rejected the configured credentials",
		Details: sanitizeError(err),
	})
}

// returns a 504 gateway timeout error for upstream calls exceeding their budget
func UpstreamTimeout(c *gin.Context, err error) {
	c.JSON(http.StatusGatewayTimeout, ErrorResponse{
		Error:   CodeUpstreamTimeout,
		Message: "upstream request exceeded its time budget",
		Details: sanitizeError(err),
	})
}

// returns a 502 bad gateway error for malformed upstream responses
func UpstreamError(c *gin.Context, err error) {
	logger.ErrorErr(err, "malformed upstream response",
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeUpstreamError,
		Message: "unexpected response from upstream API",
		Details: sanitizeError(err),
	})
}
