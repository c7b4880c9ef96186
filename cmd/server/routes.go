package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/revbot/server/api/rest/assistant"
	"codeberg.org/revbot/server/api/rest/execution"
	"codeberg.org/revbot/server/api/rest/health"
	"codeberg.org/revbot/server/api/rest/tools"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.Use(RateLimitMiddleware())

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		assistant.RegisterRoutes(v1, server.services.Assistant)
		execution.RegisterRoutes(v1, server.services.Assistant, server.config.ExecutionTimeout)
		tools.RegisterRoutes(v1)
	}
}
