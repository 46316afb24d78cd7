package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. The REST surface is the public
// read-only side of the marketplace; everything authenticated goes through
// GraphQL.
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Approved listings (public read access)
		v1.GET("/properties", handler.ListProperties)
		v1.GET("/properties/map", handler.MapProperties)
		v1.GET("/properties/:id", handler.GetProperty)

		// Published blog posts (public read access)
		v1.GET("/blog", handler.ListBlogPosts)
		v1.GET("/blog/:slug", handler.GetBlogPost)
	}
}
