package api

import (
	"net/http"

	"newspulse/history"
	"newspulse/types"

	"github.com/gin-gonic/gin"
)

// RegisterHistoryRoutes registers the historical rollup endpoint.
func RegisterHistoryRoutes(r *gin.Engine, agg *history.Aggregator) {
	r.GET("/api/historical", handleGetHistorical(agg))
}

// HistoricalResponse partitions the same summaries into per-source
// convenience views alongside the full list.
type HistoricalResponse struct {
	Trends []types.PeriodSummary `json:"trends"`
	Google []types.PeriodSummary `json:"google"`
	TikTok []types.PeriodSummary `json:"tiktok"`
}

// handleGetHistorical serves frequency-ranked period summaries.
// Query param: period = week|month|year (default week).
func handleGetHistorical(agg *history.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", history.PeriodWeek)

		summaries, err := agg.Summarize(c.Request.Context(), period)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bySource := history.Partition(summaries)
		c.JSON(http.StatusOK, HistoricalResponse{
			Trends: summaries,
			Google: bySource["google"],
			TikTok: bySource["tiktok"],
		})
	}
}
