package errors

import (
	"context"
	"errors"
	"os"
	"strings"
)

// error categories for classification
const (
	CategoryUpstream   = "upstream"
	CategoryBridge     = "bridge"
	CategoryValidation = "validation"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// analyzes an error and returns its category
func Classify(err error) string {
	if err == nil {
		return CategoryUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTimeout
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "timed out") ||
		strings.Contains(errMsg, "deadline"):
		return CategoryTimeout
	case strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "required"):
		return CategoryValidation
	case strings.Contains(errMsg, "pyrevit") || strings.Contains(errMsg, "revit") ||
		strings.Contains(errMsg, "bridge"):
		return CategoryBridge
	case strings.Contains(errMsg, "api") || strings.Contains(errMsg, "status") ||
		strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "dial"):
		return CategoryUpstream
	default:
		return CategoryUnknown
	}
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	switch Classify(err) {
	case CategoryTimeout:
		return "request timed out"
	case CategoryValidation:
		return "validation failed"
	case CategoryBridge:
		return "execution host error"
	case CategoryUpstream:
		return "upstream API error"
	default:
		return "an error occurred"
	}
}
