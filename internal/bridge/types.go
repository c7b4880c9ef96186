package bridge

import (
	"context"
	"errors"
	"time"
)

// Status classifies the outcome of one execution request.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusTimeout Status = "timeout"

	// produced by the orchestrator's safety gate, never by a transport
	StatusRejected Status = "rejected"
)

// ExecutionResult is the collected outcome of running a script on the
// Revit host. Host output and error text are passed through verbatim.
type ExecutionResult struct {
	Status     Status         `json:"status"`
	Output     string         `json:"output"`
	Errors     string         `json:"errors,omitempty"`
	Duration   time.Duration  `json:"-"`
	RevitState map[string]any `json:"revit_state,omitempty"`
}

// Transport delivers a script to the Revit host and collects its
// result within the given timeout.
type Transport interface {
	Execute(ctx context.Context, code string, timeout time.Duration) (*ExecutionResult, error)
}

// reported when no running Revit instance can be reached over the
// configured transport; distinct from a timeout
var ErrHostUnreachable = errors.New("revit host unreachable")

// result payload produced by the script wrapper inside the host
type hostResult struct {
	Success    bool           `json:"success"`
	Output     string         `json:"output"`
	Error      string         `json:"error"`
	RevitState map[string]any `json:"revit_state"`
}

// channel request/response frames for the websocket transport
type channelRequest struct {
	Action string `json:"action"`
	Code   string `json:"code"`
	ID     string `json:"id"`
}

type channelResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error"`
}
