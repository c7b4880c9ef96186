package execution

import (
	"time"

	"github.com/gin-gonic/gin"

	core "codeberg.org/revbot/server/internal/assistant"
)

func RegisterRoutes(router *gin.RouterGroup, svc *core.Assistant, defaultTimeout time.Duration) {
	router.POST("/execute", ExecuteHandler(svc, defaultTimeout))
}
