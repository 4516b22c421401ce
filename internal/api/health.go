package api

import (
	"net/http"

	"github.com/teemo-ai/estimation-server/internal/config"
	"github.com/teemo-ai/estimation-server/internal/types"

	"github.com/gin-gonic/gin"
)

// Health reports static liveness. It touches no other component, so it
// answers even when the upstream AI service is down.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
		Version: config.Version,
	})
}

// Root returns static documentation of the available endpoints.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ML Training Resource Estimation API",
		"version": config.Version,
		"endpoints": gin.H{
			"/health":   "GET - Health check",
			"/estimate": "POST - Run estimation",
			"/":         "GET - API documentation",
		},
		"usage": gin.H{
			"method": "POST",
			"url":    "/estimate",
			"body": gin.H{
				"params_content": "Model configuration text (mutually exclusive with params_path)",
				"params_path":    "Path to parameters file (gs://bucket/path or local path)",
				"output_path":    "Output path (gs://bucket/path or local path)",
				"api_key":        "Optional per-request Gemini API key override",
				"debug":          "Optional debug flag",
			},
		},
	})
}
