package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	"github.com/propsetu/estate-backend/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListProperties retrieves approved listings
	// GET /api/v1/properties?search=<term>&page=<page>&limit=<limit>
	ListProperties(c *gin.Context)

	// GetProperty retrieves a single approved listing by id
	// GET /api/v1/properties/:id
	GetProperty(c *gin.Context)

	// MapProperties retrieves approved listings inside a map viewport
	// GET /api/v1/properties/map?min_lat=<f>&max_lat=<f>&min_lng=<f>&max_lng=<f>&limit=<limit>
	MapProperties(c *gin.Context)

	// ListBlogPosts retrieves published blog posts
	// GET /api/v1/blog?page=<page>&limit=<limit>
	ListBlogPosts(c *gin.Context)

	// GetBlogPost retrieves a published blog post by slug
	// GET /api/v1/blog/:slug
	GetBlogPost(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// ListProperties retrieves approved listings with optional search
func (h *handler) ListProperties(c *gin.Context) {
	queryParams, err := ParseListPropertiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetPublicProperties(
		c.Request.Context(),
		queryParams.Search,
		queryParams.Page,
		queryParams.Limit,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, response)
}

// GetProperty retrieves a single approved listing by id
func (h *handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid property id")
		return
	}

	property, err := h.executor.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	// The public API only exposes approved listings
	if property == nil || property.ApprovalStatus != domain.ApprovalStatusApproved {
		respondNotFound(c, "Property not found")
		return
	}

	c.JSON(200, property)
}

// MapProperties retrieves approved listings inside a map viewport
func (h *handler) MapProperties(c *gin.Context) {
	queryParams, err := ParseMapQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var bounds *dto.MapBoundsRequest
	if queryParams.HasBounds() {
		bounds = &dto.MapBoundsRequest{
			MinLat: *queryParams.MinLat,
			MaxLat: *queryParams.MaxLat,
			MinLng: *queryParams.MinLng,
			MaxLng: *queryParams.MaxLng,
		}
	}

	response, err := h.executor.GetMapProperties(c.Request.Context(), bounds, nil, queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"items": response})
}

// ListBlogPosts retrieves published blog posts
func (h *handler) ListBlogPosts(c *gin.Context) {
	queryParams, err := ParseListBlogQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBlogPosts(c.Request.Context(), true, queryParams.Page, queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, response)
}

// GetBlogPost retrieves a published blog post by slug
func (h *handler) GetBlogPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Blog post slug is required")
		return
	}

	post, err := h.executor.GetBlogPost(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		respondNotFound(c, "Blog post not found")
		return
	}

	c.JSON(200, post)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "estate-api",
	})
}
