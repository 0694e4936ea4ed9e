package api

import (
	"newspulse/history"
	"newspulse/pipeline"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(svc *pipeline.Service, agg *history.Aggregator) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterTrendingRoutes(r, svc)
	RegisterHistoryRoutes(r, agg)
	RegisterRefreshRoutes(r, svc, agg)
	RegisterProviderRoutes(r, svc.Pipeline)
	RegisterHealthRoutes(r)
	return r
}
