package domain

import "errors"

var (
	// ErrPropertyNotFound is returned when a property id does not resolve
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUserNotFound is returned when an owner lookup fails
	ErrUserNotFound = errors.New("user not found")

	// ErrAdminNotFound is returned when an acting admin id does not resolve
	ErrAdminNotFound = errors.New("admin not found")

	// ErrBlogPostNotFound is returned when a blog slug or id does not resolve
	ErrBlogPostNotFound = errors.New("blog post not found")

	// ErrNotificationNotFound is returned when a notification id does not
	// resolve for the requesting user
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrSlugTaken is returned when a generated SEO slug collides with a
	// reserved path or an existing property slug
	ErrSlugTaken = errors.New("slug already taken")
)
