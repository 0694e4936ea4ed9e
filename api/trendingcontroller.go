package api

import (
	"net/http"
	"strconv"

	"newspulse/pipeline"

	"github.com/gin-gonic/gin"
)

// RegisterTrendingRoutes registers the trending query endpoint.
func RegisterTrendingRoutes(r *gin.Engine, svc *pipeline.Service) {
	r.GET("/api/trending", handleGetTrending(svc))
}

// handleGetTrending serves the ranked trending list plus the hidden-gems
// near-miss band.
// Query params: category, hours, minScore, limit (all optional).
func handleGetTrending(svc *pipeline.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := pipeline.TrendingOptions{
			Category: c.Query("category"),
		}
		if v := c.Query("hours"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				opts.Hours = n
			}
		}
		if v := c.Query("minScore"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
				opts.MinScore = f
			}
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				opts.Limit = n
			}
		}

		result, err := svc.Trending(c.Request.Context(), opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trending: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
