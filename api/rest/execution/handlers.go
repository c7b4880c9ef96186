package execution

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	core "codeberg.org/revbot/server/internal/assistant"
	"codeberg.org/revbot/server/internal/errors"
)

// runs code on the Revit host. The outcome, including safety
// rejections, is reported in the response body with a 200 status.
func ExecuteHandler(svc *core.Assistant, defaultTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		safeMode := true
		if req.SafeMode != nil {
			safeMode = *req.SafeMode
		}

		timeout := defaultTimeout
		if req.Timeout != 0 {
			timeout = time.Duration(req.Timeout) * time.Second
		}

		result := svc.Execute(c.Request.Context(), core.ExecuteRequest{
			Code:     req.Code,
			SafeMode: safeMode,
			Timeout:  timeout,
		})

		c.JSON(http.StatusOK, result)
	}
}
