package assistant

import (
	"github.com/gin-gonic/gin"

	core "codeberg.org/revbot/server/internal/assistant"
)

func RegisterRoutes(router *gin.RouterGroup, svc *core.Assistant) {
	router.POST("/generate", GenerateHandler(svc))
	router.POST("/chat", ChatHandler(svc))
}
