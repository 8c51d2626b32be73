package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vietnet-search/app/controllers"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, searchController *controllers.SearchController, adminController *controllers.AdminController) {
	// API v1 group
	v1 := router.Group("/v1")
	{
		// Lexicon routes
		lexicon := v1.Group("/lexicon")
		{
			lexicon.POST("/search", searchController.Search)
			lexicon.GET("/synsets/:synsetID", searchController.GetSynset)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/ingest", adminController.Ingest)
			admin.POST("/meili/seed", adminController.SeedMeilisearch)
			admin.GET("/meili/search", adminController.MeiliSearch)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.GET("/stats", adminController.GetStats)
		}

		// Health check route
		v1.GET("/health", searchController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, searchController *controllers.SearchController) {
	// Root health check
	router.GET("/health", searchController.HealthCheck)

	// Readiness check
	router.GET("/ready", searchController.HealthCheck)

	// Liveness check
	router.GET("/live", searchController.HealthCheck)
}
