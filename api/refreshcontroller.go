package api

import (
	"context"
	"log"
	"net/http"

	"newspulse/history"
	"newspulse/pipeline"

	"github.com/gin-gonic/gin"
)

// RegisterRefreshRoutes registers the forced-refresh endpoints used by the
// scheduled job.
func RegisterRefreshRoutes(r *gin.Engine, svc *pipeline.Service, agg *history.Aggregator) {
	g := r.Group("/api/refresh")
	g.POST("", handleRefresh(svc))
	g.POST("/snapshot", handleSnapshot(agg))
}

// handleRefresh triggers a forced cache refresh, bypassing TTL. It runs
// asynchronously and returns 202 Accepted immediately; single-flight in the
// cache manager absorbs concurrent triggers.
func handleRefresh(svc *pipeline.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		go func() {
			if _, err := svc.Refresh(context.Background()); err != nil {
				log.Printf("Forced refresh failed: %v", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
	}
}

// handleSnapshot runs the daily snapshot job synchronously so the caller
// sees persistence failures.
func handleSnapshot(agg *history.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := agg.SnapshotNow(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "snapshot written"})
	}
}
