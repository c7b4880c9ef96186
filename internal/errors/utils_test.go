package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, CategoryUnknown},
		{"deadline exceeded", context.DeadlineExceeded, CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"wrapped deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), CategoryTimeout},
		{"timeout text", errors.New("script execution timed out after 30s"), CategoryTimeout},
		{"validation text", errors.New("field validation for 'Code' failed on the 'required' tag"), CategoryValidation},
		{"bridge text", errors.New("pyrevit binary not found"), CategoryBridge},
		{"upstream text", errors.New("API request failed with status 500"), CategoryUpstream},
		{"dial failure", errors.New("dial tcp 127.0.0.1:5432: connection refused"), CategoryUpstream},
		{"unknown", errors.New("something odd happened"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestSanitizeErrorDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	err := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	if got := sanitizeError(err); got != err.Error() {
		t.Errorf("development errors should pass through, got %q", got)
	}
}

func TestSanitizeErrorProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	err := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	got := sanitizeError(err)

	if got != "upstream API error" {
		t.Errorf("production errors should be generic, got %q", got)
	}
}
