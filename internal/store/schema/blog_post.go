package schema

import (
	"time"
)

// BlogPostStatus represents the publication state of a blog post
type BlogPostStatus string

const (
	// BlogPostStatusDraft is a post not yet visible to the public
	BlogPostStatusDraft BlogPostStatus = "DRAFT"
	// BlogPostStatusPublished is a publicly visible post
	BlogPostStatusPublished BlogPostStatus = "PUBLISHED"
)

// BlogPost represents the blog_posts table - marketing/content articles
// authored by admin staff
type BlogPost struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the article headline
	Title string `gorm:"column:title;not null;type:text"`
	// Slug is the URL path segment for the article page
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Body is the article content
	Body string `gorm:"column:body;type:text"`
	// Status is the publication state (DRAFT, PUBLISHED)
	Status BlogPostStatus `gorm:"column:status;not null;type:text;default:'DRAFT';index:idx_blog_posts_status"`
	// AuthorAdminID is the admin who wrote the article
	AuthorAdminID uint64 `gorm:"column:author_admin_id;not null"`
	// PublishedAt is when the article went public
	PublishedAt *time.Time `gorm:"column:published_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}
