// Package bridge delivers validated scripts to a running Revit
// instance through the pyRevit add-in and collects their results.
//
// Two transports are supported: a local websocket channel to the
// add-in, and a one-shot pyRevit CLI invocation. Selection and
// fallback are internal; callers see one Execute contract. The Revit
// host is a single shared target and provides no serialization
// guarantee for concurrent scripts; callers that need ordering must
// provide it themselves.
package bridge

import (
	"context"
	"errors"
	"time"

	"codeberg.org/revbot/server/internal/logger"
)

const defaultTimeout = 30 * time.Second

// Bridge selects between the channel and CLI transports.
type Bridge struct {
	channel Transport
	cli     Transport
}

// creates a bridge. port 0 disables the websocket channel and routes
// everything through the CLI transport.
func New(port int) *Bridge {
	b := &Bridge{cli: NewCLITransport()}

	if port > 0 {
		b.channel = NewChannelTransport(port)
	}

	return b
}

// creates a bridge with explicit transports, for tests
func NewWithTransports(channel, cli Transport) *Bridge {
	return &Bridge{channel: channel, cli: cli}
}

// Execute runs code on the Revit host, waiting at most timeout. The
// returned result always carries a terminal status: an unreachable
// host is a failure, never a hang, and a timeout is reported as such
// with any partial output discarded.
func (b *Bridge) Execute(ctx context.Context, code string, timeout time.Duration) *ExecutionResult {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	start := time.Now()

	if b.channel != nil {
		result, err := b.channel.Execute(ctx, code, timeout)
		if err == nil {
			return result
		}

		if !errors.Is(err, ErrHostUnreachable) {
			return failureResult(err, time.Since(start))
		}

		// channel down: fall back to the CLI path transparently
		logger.Warn("channel transport unreachable, falling back to CLI", "error", err)
	}

	result, err := b.cli.Execute(ctx, code, timeout)
	if err != nil {
		return failureResult(err, time.Since(start))
	}

	return result
}

func failureResult(err error, elapsed time.Duration) *ExecutionResult {
	return &ExecutionResult{
		Status:   StatusFailure,
		Errors:   err.Error(),
		Duration: elapsed,
	}
}
