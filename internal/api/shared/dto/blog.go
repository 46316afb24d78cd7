package dto

import (
	"time"

	"github.com/propsetu/estate-backend/internal/store/schema"
)

// BlogPostResponse represents one blog post
type BlogPostResponse struct {
	ID          uint64                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Body        string                `json:"body,omitempty"`
	Status      schema.BlogPostStatus `json:"status"`
	PublishedAt *time.Time            `json:"published_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// BlogPostListResponse represents one page of blog posts
type BlogPostListResponse struct {
	Items []BlogPostResponse `json:"items"`
	Meta  Meta               `json:"meta"`
}

// MapBlogPostToDTO maps a schema.BlogPost to BlogPostResponse
func MapBlogPostToDTO(p *schema.BlogPost) *BlogPostResponse {
	if p == nil {
		return nil
	}
	return &BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
