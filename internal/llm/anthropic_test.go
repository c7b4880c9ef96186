package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestGenerator(url string, timeout time.Duration) *AnthropicGenerator {
	return NewAnthropicGenerator(AnthropicConfig{
		APIKey:         "test-key",
		Model:          "test-model",
		BaseURL:        url,
		RequestTimeout: timeout,
	})
}

func TestGenerateTextSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}

		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("expected anthropic-version header")
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write([]byte(`{
			"content": [{"type": "text", "text": "wall = Wall.Create(doc, line, level.Id, False)"}],
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`))
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL, time.Minute)

	resp, err := gen.GenerateText(context.Background(), TextGenerationRequest{
		SystemPrompt: "you write Revit API code",
		Messages:     []Message{{Role: "user", Content: "create a wall"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.Text != "wall = Wall.Create(doc, line, level.Id, False)" {
		t.Errorf("unexpected text: %q", resp.Text)
	}

	if resp.Usage.InputTokens != 10 || resp.Usage.OutputTokens != 20 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestGenerateTextTemperature(t *testing.T) {
	zero := float32(0.0)
	high := float32(0.9)

	tests := []struct {
		name        string
		temperature *float32
		want        float64
	}{
		{"unset falls back to client default", nil, 0.2},
		{"explicit zero is preserved", &zero, 0.0},
		{"explicit value is preserved", &high, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent map[string]any

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
					t.Errorf("failed to decode request body: %v", err)
				}

				w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}], "usage": {}}`)) //nolint:errcheck
			}))
			defer server.Close()

			gen := newTestGenerator(server.URL, time.Minute)

			_, err := gen.GenerateText(context.Background(), TextGenerationRequest{
				Messages:    []Message{{Role: "user", Content: "hi"}},
				Temperature: tt.temperature,
			})
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			got, ok := sent["temperature"].(float64)
			if !ok {
				t.Fatalf("temperature missing from request body: %v", sent)
			}

			if got != tt.want {
				t.Errorf("sent temperature %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateTextRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}], "usage": {}}`)) //nolint:errcheck
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL, time.Minute)

	resp, err := gen.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}

	if resp.Text != "ok" {
		t.Errorf("unexpected text: %q", resp.Text)
	}

	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestGenerateTextRateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL, time.Minute)

	_, err := gen.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got: %v", err)
	}
}

func TestGenerateTextAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"type": "authentication_error"}}`)) //nolint:errcheck
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL, time.Minute)

	_, err := gen.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	if !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth, got: %v", err)
	}
}

func TestGenerateTextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()
	defer close(release)

	gen := newTestGenerator(server.URL, 100*time.Millisecond)

	start := time.Now()
	_, err := gen.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got: %v", err)
	}

	// must return near the configured budget, not hang
	if elapsed > 2*time.Second {
		t.Errorf("timeout took too long: %v", elapsed)
	}
}

func TestGenerateTextMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{not json`},
		{name: "no content blocks", body: `{"content": [], "usage": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer server.Close()

			gen := newTestGenerator(server.URL, time.Minute)

			_, err := gen.GenerateText(context.Background(), TextGenerationRequest{
				Messages: []Message{{Role: "user", Content: "hi"}},
			})

			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got: %v", err)
			}
		})
	}
}
