package api

import (
	"net/http"

	"newspulse/pipeline"

	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers the provider diagnostics endpoint.
func RegisterProviderRoutes(r *gin.Engine, p *pipeline.Pipeline) {
	r.GET("/api/providers", handleGetProviders(p))
}

// handleGetProviders surfaces per-provider status/count/error from the most
// recent pipeline run, separately from the hot path.
func handleGetProviders(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"providers": p.LastStatuses()})
	}
}
