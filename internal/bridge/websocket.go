package bridge

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"codeberg.org/revbot/server/internal/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const channelDialTimeout = 5 * time.Second

// ChannelTransport talks to the pyRevit add-in over a local websocket
// channel. Each execute call uses its own connection so concurrent
// requests never share a socket.
type ChannelTransport struct {
	url    string
	dialer *websocket.Dialer
}

// creates a channel transport for the add-in listening on the given port
func NewChannelTransport(port int) *ChannelTransport {
	u := url.URL{
		Scheme: "ws",
		Host:   fmt.Sprintf("localhost:%d", port),
		Path:   "/revbot",
	}

	return &ChannelTransport{
		url: u.String(),
		dialer: &websocket.Dialer{
			HandshakeTimeout: channelDialTimeout,
		},
	}
}

func (t *ChannelTransport) Execute(ctx context.Context, code string, timeout time.Duration) (*ExecutionResult, error) {
	start := time.Now()

	dialCtx, cancel := context.WithTimeout(ctx, channelDialTimeout)
	defer cancel()

	conn, _, err := t.dialer.DialContext(dialCtx, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrHostUnreachable, t.url, err)
	}
	defer conn.Close() //nolint:errcheck

	requestID := uuid.NewString()

	req := channelRequest{
		Action: "execute",
		Code:   prepareScript(code),
		ID:     requestID,
	}

	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("failed to send execution request: %w", err)
	}

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}

	var resp channelResponse
	if err := conn.ReadJSON(&resp); err != nil {
		if time.Now().After(deadline) || ctx.Err() != nil {
			return &ExecutionResult{
				Status:   StatusTimeout,
				Errors:   fmt.Sprintf("script execution timed out after %s", timeout),
				Duration: time.Since(start),
			}, nil
		}

		return nil, fmt.Errorf("failed to read execution response: %w", err)
	}

	if resp.ID != "" && resp.ID != requestID {
		logger.Warn("channel response id mismatch",
			"expected", requestID,
			"got", resp.ID,
		)
	}

	return channelResultToExecution(resp, time.Since(start)), nil
}

// maps a channel response to an ExecutionResult, unwrapping the
// sentinel-marker payload when present
func channelResultToExecution(resp channelResponse, elapsed time.Duration) *ExecutionResult {
	if parsed, ok := parseWrappedOutput(resp.Output); ok {
		return hostResultToExecution(parsed, elapsed)
	}

	result := &ExecutionResult{
		Status:   StatusSuccess,
		Output:   resp.Output,
		Errors:   resp.Error,
		Duration: elapsed,
	}

	if !resp.Success {
		result.Status = StatusFailure
	}

	return result
}

// maps a wrapped host result to an ExecutionResult
func hostResultToExecution(parsed *hostResult, elapsed time.Duration) *ExecutionResult {
	result := &ExecutionResult{
		Status:     StatusSuccess,
		Output:     parsed.Output,
		Errors:     parsed.Error,
		Duration:   elapsed,
		RevitState: parsed.RevitState,
	}

	if !parsed.Success {
		result.Status = StatusFailure
	}

	return result
}
