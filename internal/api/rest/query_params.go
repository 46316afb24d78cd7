package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/propsetu/estate-backend/internal/api/shared/constants"
)

// ListPropertiesQueryParams holds query parameters for GET /properties
type ListPropertiesQueryParams struct {
	Search *string `form:"search"`
	Page   *int    `form:"page"`
	Limit  *int    `form:"limit"`
}

// ParseListPropertiesQuery parses query parameters for GET /properties
func ParseListPropertiesQuery(c *gin.Context) (*ListPropertiesQueryParams, error) {
	var params ListPropertiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate checks the listing query parameters
func (p *ListPropertiesQueryParams) Validate() error {
	if p.Search != nil && len(*p.Search) > constants.MAX_SEARCH_TERM_LENGTH {
		return fmt.Errorf("search term exceeds %d characters", constants.MAX_SEARCH_TERM_LENGTH)
	}
	if p.Page != nil && *p.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if p.Limit != nil && *p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	return nil
}

// MapQueryParams holds query parameters for GET /properties/map
type MapQueryParams struct {
	MinLat *float64 `form:"min_lat"`
	MaxLat *float64 `form:"max_lat"`
	MinLng *float64 `form:"min_lng"`
	MaxLng *float64 `form:"max_lng"`
	Limit  *int     `form:"limit"`
}

// ParseMapQuery parses query parameters for GET /properties/map
func ParseMapQuery(c *gin.Context) (*MapQueryParams, error) {
	var params MapQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate checks that the viewport is either absent or complete
func (p *MapQueryParams) Validate() error {
	set := 0
	for _, v := range []*float64{p.MinLat, p.MaxLat, p.MinLng, p.MaxLng} {
		if v != nil {
			set++
		}
	}
	if set != 0 && set != 4 {
		return fmt.Errorf("map bounds require all of min_lat, max_lat, min_lng, max_lng")
	}
	if p.Limit != nil && *p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	return nil
}

// HasBounds reports whether a complete viewport was supplied
func (p *MapQueryParams) HasBounds() bool {
	return p.MinLat != nil && p.MaxLat != nil && p.MinLng != nil && p.MaxLng != nil
}

// ListBlogQueryParams holds query parameters for GET /blog
type ListBlogQueryParams struct {
	Page  *int `form:"page"`
	Limit *int `form:"limit"`
}

// ParseListBlogQuery parses query parameters for GET /blog
func ParseListBlogQuery(c *gin.Context) (*ListBlogQueryParams, error) {
	var params ListBlogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
