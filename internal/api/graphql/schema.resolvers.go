package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.81

import (
	"context"

	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	"github.com/propsetu/estate-backend/internal/domain"
)

// ApproveProperty is the resolver for the approveProperty field.
func (r *mutationResolver) ApproveProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.ApproveProperty(ctx, actor, dto.TransitionRequest{
		PropertyID: propertyID,
		Message:    message,
		AdminNotes: adminNotes,
		Reason:     reason,
	})
}

// RejectProperty is the resolver for the rejectProperty field.
func (r *mutationResolver) RejectProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.RejectProperty(ctx, actor, dto.TransitionRequest{
		PropertyID: propertyID,
		Message:    message,
		AdminNotes: adminNotes,
		Reason:     reason,
	})
}

// VerifyProperty is the resolver for the verifyProperty field.
func (r *mutationResolver) VerifyProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.VerifyProperty(ctx, actor, dto.TransitionRequest{
		PropertyID: propertyID,
		Message:    message,
		AdminNotes: adminNotes,
		Reason:     reason,
	})
}

// CreateProperty is the resolver for the createProperty field.
func (r *mutationResolver) CreateProperty(ctx context.Context, input dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.CreateProperty(ctx, actor, input)
}

// SaveProperty is the resolver for the saveProperty field.
func (r *mutationResolver) SaveProperty(ctx context.Context, propertyID uint64) (bool, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return false, err
	}
	if err := r.executor.SaveProperty(ctx, userID, propertyID); err != nil {
		return false, err
	}
	return true, nil
}

// UnsaveProperty is the resolver for the unsaveProperty field.
func (r *mutationResolver) UnsaveProperty(ctx context.Context, propertyID uint64) (bool, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return false, err
	}
	if err := r.executor.UnsaveProperty(ctx, userID, propertyID); err != nil {
		return false, err
	}
	return true, nil
}

// MarkNotificationRead is the resolver for the markNotificationRead field.
func (r *mutationResolver) MarkNotificationRead(ctx context.Context, notificationID uint64) (bool, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return false, err
	}
	if err := r.executor.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// Property is the resolver for the property field.
func (r *queryResolver) Property(ctx context.Context, id uint64) (*dto.PropertyResponse, error) {
	return r.executor.GetProperty(ctx, id)
}

// Properties is the resolver for the properties field.
func (r *queryResolver) Properties(ctx context.Context, search *string, page *int, limit *int) (*dto.PropertyListResponse, error) {
	return r.executor.GetPublicProperties(ctx, search, page, limit)
}

// MapProperties is the resolver for the mapProperties field.
func (r *queryResolver) MapProperties(ctx context.Context, bounds *dto.MapBoundsRequest, limit *int) ([]dto.MapPropertyResponse, error) {
	// The saved flag is only resolved for authenticated end users
	var userID *uint64
	if claims := claimsFromContext(ctx); claims != nil && !claims.IsAdmin() {
		if id, err := claims.AccountID(); err == nil {
			userID = &id
		}
	}
	return r.executor.GetMapProperties(ctx, bounds, userID, limit)
}

// BlogPost is the resolver for the blogPost field.
func (r *queryResolver) BlogPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	return r.executor.GetBlogPost(ctx, slug)
}

// BlogPosts is the resolver for the blogPosts field.
func (r *queryResolver) BlogPosts(ctx context.Context, page *int, limit *int) (*dto.BlogPostListResponse, error) {
	// Staff see drafts; the public only sees published posts
	publishedOnly := true
	if claims := claimsFromContext(ctx); claims != nil && claims.IsAdmin() {
		publishedOnly = false
	}
	return r.executor.GetBlogPosts(ctx, publishedOnly, page, limit)
}

// PropertiesByStatus is the resolver for the propertiesByStatus field.
func (r *queryResolver) PropertiesByStatus(ctx context.Context, status domain.ApprovalStatus, search *string, page *int, limit *int) (*dto.PropertyListResponse, error) {
	if _, err := adminFromContext(ctx); err != nil {
		return nil, err
	}
	return r.executor.GetPropertiesByStatus(ctx, status, search, page, limit)
}

// ApprovalHistory is the resolver for the approvalHistory field.
func (r *queryResolver) ApprovalHistory(ctx context.Context, propertyID uint64) ([]dto.ApprovalHistoryResponse, error) {
	if _, err := adminFromContext(ctx); err != nil {
		return nil, err
	}
	return r.executor.GetApprovalHistory(ctx, propertyID)
}

// MyProperties is the resolver for the myProperties field.
func (r *queryResolver) MyProperties(ctx context.Context, page *int, limit *int) (*dto.PropertyListResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if actor.AdminID != nil {
		return r.executor.GetMyProperties(ctx, *actor.AdminID, page, limit)
	}
	return r.executor.GetUserProperties(ctx, *actor.UserID, page, limit)
}

// SavedProperties is the resolver for the savedProperties field.
func (r *queryResolver) SavedProperties(ctx context.Context, page *int, limit *int) (*dto.PropertyListResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.GetSavedProperties(ctx, userID, page, limit)
}

// Notifications is the resolver for the notifications field.
func (r *queryResolver) Notifications(ctx context.Context, page *int, limit *int) (*dto.NotificationListResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.executor.GetNotifications(ctx, userID, page, limit)
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
