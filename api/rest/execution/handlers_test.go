package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "codeberg.org/revbot/server/internal/assistant"
	"codeberg.org/revbot/server/internal/bridge"
	"codeberg.org/revbot/server/internal/safety"
)

type stubExecutor struct {
	calls   int
	timeout time.Duration
	result  *bridge.ExecutionResult
}

func (s *stubExecutor) Execute(_ context.Context, _ string, timeout time.Duration) *bridge.ExecutionResult {
	s.calls++
	s.timeout = timeout

	if s.result != nil {
		return s.result
	}

	return &bridge.ExecutionResult{
		Status:   bridge.StatusSuccess,
		Output:   "done",
		Duration: 100 * time.Millisecond,
	}
}

func setupRouter(exec *stubExecutor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := core.New(nil, nil, safety.New(), exec)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), svc, 30*time.Second)

	return router
}

func postExecute(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/execute", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestExecuteSuccess(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{
		"code": "t = Transaction(doc, 'x')\nt.Start()\nt.Commit()",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp core.ExecuteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, bridge.StatusSuccess, resp.Status)
	assert.Equal(t, "done", resp.Output)
	assert.Equal(t, 1, exec.calls)
	assert.Equal(t, 30*time.Second, exec.timeout, "default timeout should apply")
}

func TestExecuteRejectedCodeReturns200WithRejection(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{
		"code": "import os\nos.system('del *')",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp core.ExecuteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, bridge.StatusRejected, resp.Status)
	assert.NotEmpty(t, resp.MatchedRule)
	assert.Zero(t, exec.calls, "rejected code must not reach the transport")
}

func TestExecuteSafeModeOff(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{
		"code":      "import os\nos.system('echo ok')",
		"safe_mode": false,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, exec.calls)
}

func TestExecuteCustomTimeout(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{
		"code":    "print('hi')",
		"timeout": 120,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 120*time.Second, exec.timeout)
}

func TestExecuteTimeoutOutOfRange(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{
		"code":    "print('hi')",
		"timeout": 301,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, exec.calls)
}

func TestExecuteMissingCode(t *testing.T) {
	exec := &stubExecutor{}
	router := setupRouter(exec)

	w := postExecute(t, router, map[string]any{"safe_mode": true})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, exec.calls)
}
