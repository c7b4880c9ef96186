package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"codeberg.org/revbot/server/internal/logger"
	"github.com/google/uuid"
)

// CLITransport executes scripts through a one-shot `pyrevit run`
// invocation. It is the fallback when no websocket channel is
// configured or the channel cannot be reached.
type CLITransport struct {
	binary     string
	scriptsDir string
}

func NewCLITransport() *CLITransport {
	return &CLITransport{
		binary:     "pyrevit",
		scriptsDir: filepath.Join(os.TempDir(), "revbot_scripts"),
	}
}

func (t *CLITransport) Execute(ctx context.Context, code string, timeout time.Duration) (*ExecutionResult, error) {
	start := time.Now()

	binPath, err := exec.LookPath(t.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: pyRevit CLI not found in PATH, install pyRevit to enable execution", ErrHostUnreachable)
	}

	scriptPath, err := t.writeScript(prepareScript(code))
	if err != nil {
		return nil, fmt.Errorf("failed to write script file: %w", err)
	}

	defer func() {
		if err := os.Remove(scriptPath); err != nil {
			logger.Warn("failed to remove temp script", "path", scriptPath, "error", err)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binPath, "run", scriptPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	elapsed := time.Since(start)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// partial output from an interrupted run is untrusted; discard it
		return &ExecutionResult{
			Status:   StatusTimeout,
			Errors:   fmt.Sprintf("script execution timed out after %s", timeout),
			Duration: elapsed,
		}, nil
	}

	output := stdout.String()
	errText := stderr.String()

	if parsed, ok := parseWrappedOutput(output); ok {
		result := hostResultToExecution(parsed, elapsed)
		if result.Errors == "" && errText != "" {
			result.Errors = errText
		}

		return result, nil
	}

	if runErr != nil {
		// immediate failure without host output usually means no
		// attached Revit instance or no open document
		if output == "" && errText == "" {
			return &ExecutionResult{
				Status:   StatusFailure,
				Errors:   fmt.Sprintf("pyRevit ran but Revit did not respond (%v); check that Revit is running, pyRevit is loaded, and a document is open", runErr),
				Duration: elapsed,
			}, nil
		}

		return &ExecutionResult{
			Status:   StatusFailure,
			Output:   output,
			Errors:   errText,
			Duration: elapsed,
		}, nil
	}

	return &ExecutionResult{
		Status:   StatusSuccess,
		Output:   output,
		Errors:   errText,
		Duration: elapsed,
	}, nil
}

// writes the prepared script to a unique temp file and returns its path
func (t *CLITransport) writeScript(script string) (string, error) {
	if err := os.MkdirAll(t.scriptsDir, 0o755); err != nil {
		return "", err
	}

	scriptPath := filepath.Join(t.scriptsDir, uuid.NewString()+".py")
	if err := os.WriteFile(scriptPath, []byte(script), 0o600); err != nil {
		return "", err
	}

	return scriptPath, nil
}
