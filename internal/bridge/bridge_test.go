package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// records invocations and returns canned results
type fakeTransport struct {
	calls  int
	result *ExecutionResult
	err    error
}

func (f *fakeTransport) Execute(_ context.Context, _ string, _ time.Duration) (*ExecutionResult, error) {
	f.calls++
	return f.result, f.err
}

func TestBridgeUsesChannelWhenAvailable(t *testing.T) {
	channel := &fakeTransport{result: &ExecutionResult{Status: StatusSuccess, Output: "done"}}
	cli := &fakeTransport{result: &ExecutionResult{Status: StatusSuccess}}

	b := NewWithTransports(channel, cli)

	result := b.Execute(context.Background(), "print('hi')", time.Second)

	if result.Status != StatusSuccess || result.Output != "done" {
		t.Errorf("unexpected result: %+v", result)
	}

	if channel.calls != 1 {
		t.Errorf("expected 1 channel call, got %d", channel.calls)
	}

	if cli.calls != 0 {
		t.Errorf("expected no CLI calls, got %d", cli.calls)
	}
}

func TestBridgeFallsBackToCLI(t *testing.T) {
	channel := &fakeTransport{err: ErrHostUnreachable}
	cli := &fakeTransport{result: &ExecutionResult{Status: StatusSuccess, Output: "via cli"}}

	b := NewWithTransports(channel, cli)

	result := b.Execute(context.Background(), "print('hi')", time.Second)

	if result.Status != StatusSuccess || result.Output != "via cli" {
		t.Errorf("expected CLI fallback result, got %+v", result)
	}

	if channel.calls != 1 || cli.calls != 1 {
		t.Errorf("expected both transports tried once, got channel=%d cli=%d", channel.calls, cli.calls)
	}
}

func TestBridgeChannelErrorIsNotRetriedOnCLI(t *testing.T) {
	channel := &fakeTransport{err: errors.New("protocol violation")}
	cli := &fakeTransport{result: &ExecutionResult{Status: StatusSuccess}}

	b := NewWithTransports(channel, cli)

	result := b.Execute(context.Background(), "print('hi')", time.Second)

	if result.Status != StatusFailure {
		t.Errorf("expected failure status, got %s", result.Status)
	}

	if cli.calls != 0 {
		t.Error("non-reachability errors must not trigger the CLI fallback")
	}
}

func TestBridgeUnreachableEverywhere(t *testing.T) {
	channel := &fakeTransport{err: ErrHostUnreachable}
	cli := &fakeTransport{err: ErrHostUnreachable}

	b := NewWithTransports(channel, cli)

	result := b.Execute(context.Background(), "print('hi')", time.Second)

	if result.Status != StatusFailure {
		t.Errorf("expected failure status, got %s", result.Status)
	}

	if result.Errors == "" {
		t.Error("expected a descriptive error for an unreachable host")
	}
}

func TestChannelTransportRoundTrip(t *testing.T) {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close() //nolint:errcheck

		var req channelRequest
		if err := conn.ReadJSON(&req); err != nil {
			t.Errorf("read failed: %v", err)
			return
		}

		if req.Action != "execute" || req.ID == "" {
			t.Errorf("unexpected request frame: %+v", req)
		}

		if !strings.Contains(req.Code, resultStartMarker) {
			t.Error("expected code to be wrapped with result markers")
		}

		wrapped, _ := json.Marshal(hostResult{
			Success: true,
			Output:  "wall created",
		})
		resp := channelResponse{
			ID:      req.ID,
			Success: true,
			Output:  resultStartMarker + "\n" + string(wrapped) + "\n" + resultEndMarker,
		}

		conn.WriteJSON(resp) //nolint:errcheck
	}))
	defer server.Close()

	transport := &ChannelTransport{
		url:    "ws" + strings.TrimPrefix(server.URL, "http"),
		dialer: websocket.DefaultDialer,
	}

	result, err := transport.Execute(context.Background(), "print('hi')", 5*time.Second)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("expected success, got %s (%s)", result.Status, result.Errors)
	}

	if result.Output != "wall created" {
		t.Errorf("unexpected output: %q", result.Output)
	}
}

func TestChannelTransportTimeout(t *testing.T) {
	upgrader := websocket.Upgrader{}
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close() //nolint:errcheck

		var req channelRequest
		conn.ReadJSON(&req) //nolint:errcheck

		// never respond
		<-release
	}))
	defer server.Close()
	defer close(release)

	transport := &ChannelTransport{
		url:    "ws" + strings.TrimPrefix(server.URL, "http"),
		dialer: websocket.DefaultDialer,
	}

	start := time.Now()
	result, err := transport.Execute(context.Background(), "print('hi')", 200*time.Millisecond)
	if err != nil {
		t.Fatalf("expected timeout result, got error: %v", err)
	}

	if result.Status != StatusTimeout {
		t.Errorf("expected timeout status, got %s", result.Status)
	}

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout took too long: %v", elapsed)
	}
}

func TestChannelTransportUnreachable(t *testing.T) {
	transport := NewChannelTransport(1) // nothing listens on port 1

	_, err := transport.Execute(context.Background(), "print('hi')", time.Second)

	if !errors.Is(err, ErrHostUnreachable) {
		t.Fatalf("expected ErrHostUnreachable, got: %v", err)
	}
}
