package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkgsearch/search-core/internal/metrics"
	"github.com/pkgsearch/search-core/services"
)

// API holds the dependencies search and administrative handlers need.
// fieldCollection names the single field collection the /packages surface
// serves; the engine may hold others, reachable only by embedding code.
type API struct {
	searcher        services.Searcher
	rebuilder       services.Rebuilder
	metrics         *metrics.Registry
	fieldCollection string
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher, rebuilder services.Rebuilder, reg *metrics.Registry, fieldCollection string) *API {
	return &API{searcher: searcher, rebuilder: rebuilder, metrics: reg, fieldCollection: fieldCollection}
}

// HealthCheckHandler reports that the service is up.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRoutes defines the HTTP surface over the search service.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, rebuilder services.Rebuilder, reg *metrics.Registry, fieldCollection string) {
	apiHandler := NewAPI(searcher, rebuilder, reg, fieldCollection)

	router.GET("/health", apiHandler.HealthCheckHandler)

	packages := router.Group("/packages")
	{
		packages.GET("", apiHandler.SearchHandler)
	}
	router.POST("/packages/rebuild", apiHandler.RebuildHandler)

	if reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg.Gatherer(), promhttp.HandlerOpts{})))
	}
}
