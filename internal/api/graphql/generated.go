// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package graphql

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store/schema"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	Mutation() MutationResolver
	Query() QueryResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	ApprovalHistoryEntry struct {
		Action         func(childComplexity int) int
		AdminID        func(childComplexity int) int
		AdminNotes     func(childComplexity int) int
		CreatedAt      func(childComplexity int) int
		ID             func(childComplexity int) int
		Message        func(childComplexity int) int
		NewStatus      func(childComplexity int) int
		PreviousStatus func(childComplexity int) int
		PropertyID     func(childComplexity int) int
		Reason         func(childComplexity int) int
	}

	BlogPost struct {
		Body        func(childComplexity int) int
		CreatedAt   func(childComplexity int) int
		ID          func(childComplexity int) int
		PublishedAt func(childComplexity int) int
		Slug        func(childComplexity int) int
		Status      func(childComplexity int) int
		Title       func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	BlogPostList struct {
		Items func(childComplexity int) int
		Meta  func(childComplexity int) int
	}

	Coordinate struct {
		Latitude  func(childComplexity int) int
		Longitude func(childComplexity int) int
	}

	MapProperty struct {
		Boundary     func(childComplexity int) int
		DaysOnMarket func(childComplexity int) int
		ID           func(childComplexity int) int
		Latitude     func(childComplexity int) int
		Longitude    func(childComplexity int) int
		Price        func(childComplexity int) int
		PropertyType func(childComplexity int) int
		Saved        func(childComplexity int) int
		Slug         func(childComplexity int) int
		Title        func(childComplexity int) int
	}

	Meta struct {
		Limit      func(childComplexity int) int
		Page       func(childComplexity int) int
		Total      func(childComplexity int) int
		TotalPages func(childComplexity int) int
	}

	Mutation struct {
		ApproveProperty      func(childComplexity int, propertyID uint64, message *string, adminNotes *string, reason *string) int
		CreateProperty       func(childComplexity int, input dto.CreatePropertyRequest) int
		MarkNotificationRead func(childComplexity int, notificationID uint64) int
		RejectProperty       func(childComplexity int, propertyID uint64, message *string, adminNotes *string, reason *string) int
		SaveProperty         func(childComplexity int, propertyID uint64) int
		UnsaveProperty       func(childComplexity int, propertyID uint64) int
		VerifyProperty       func(childComplexity int, propertyID uint64, message *string, adminNotes *string, reason *string) int
	}

	Notification struct {
		Action     func(childComplexity int) int
		Category   func(childComplexity int) int
		CreatedAt  func(childComplexity int) int
		ID         func(childComplexity int) int
		IsRead     func(childComplexity int) int
		Message    func(childComplexity int) int
		Priority   func(childComplexity int) int
		PropertyID func(childComplexity int) int
		ReadAt     func(childComplexity int) int
		Title      func(childComplexity int) int
	}

	NotificationList struct {
		Items func(childComplexity int) int
		Meta  func(childComplexity int) int
	}

	Property struct {
		Address          func(childComplexity int) int
		AdminNotes       func(childComplexity int) int
		ApprovalMessage  func(childComplexity int) int
		ApprovalStatus   func(childComplexity int) int
		ApprovedAt       func(childComplexity int) int
		ApprovedBy       func(childComplexity int) int
		Area             func(childComplexity int) int
		AreaUnit         func(childComplexity int) int
		Boundary         func(childComplexity int) int
		City             func(childComplexity int) int
		Country          func(childComplexity int) int
		CreatedAt        func(childComplexity int) int
		CreatedByAdminID func(childComplexity int) int
		CreatedByType    func(childComplexity int) int
		CreatedByUserID  func(childComplexity int) int
		Description      func(childComplexity int) int
		District         func(childComplexity int) int
		ID               func(childComplexity int) int
		Images           func(childComplexity int) int
		KhasraNumber     func(childComplexity int) int
		KhewatNumber     func(childComplexity int) int
		LastReviewedAt   func(childComplexity int) int
		LastReviewedBy   func(childComplexity int) int
		Latitude         func(childComplexity int) int
		Longitude        func(childComplexity int) int
		MurabbaNumber    func(childComplexity int) int
		OwnerName        func(childComplexity int) int
		PostalCode       func(childComplexity int) int
		Price            func(childComplexity int) int
		PropertyType     func(childComplexity int) int
		RejectedAt       func(childComplexity int) int
		RejectedBy       func(childComplexity int) int
		RejectionReason  func(childComplexity int) int
		Seo              func(childComplexity int) int
		State            func(childComplexity int) int
		Title            func(childComplexity int) int
		UpdatedAt        func(childComplexity int) int
		Verification     func(childComplexity int) int
	}

	PropertyImage struct {
		AltText     func(childComplexity int) int
		Caption     func(childComplexity int) int
		ID          func(childComplexity int) int
		ImageType   func(childComplexity int) int
		ImageURL    func(childComplexity int) int
		IsMain      func(childComplexity int) int
		SortOrder   func(childComplexity int) int
		VariantURLs func(childComplexity int) int
	}

	PropertyList struct {
		Items func(childComplexity int) int
		Meta  func(childComplexity int) int
	}

	Query struct {
		ApprovalHistory    func(childComplexity int, propertyID uint64) int
		BlogPost           func(childComplexity int, slug string) int
		BlogPosts          func(childComplexity int, page *int, limit *int) int
		MapProperties      func(childComplexity int, bounds *dto.MapBoundsRequest, limit *int) int
		MyProperties       func(childComplexity int, page *int, limit *int) int
		Notifications      func(childComplexity int, page *int, limit *int) int
		Properties         func(childComplexity int, search *string, page *int, limit *int) int
		PropertiesByStatus func(childComplexity int, status domain.ApprovalStatus, search *string, page *int, limit *int) int
		Property           func(childComplexity int, id uint64) int
		SavedProperties    func(childComplexity int, page *int, limit *int) int
	}

	Seo struct {
		Keywords        func(childComplexity int) int
		MetaDescription func(childComplexity int) int
		MetaTitle       func(childComplexity int) int
		Slug            func(childComplexity int) int
	}

	Verification struct {
		IsVerified func(childComplexity int) int
		Message    func(childComplexity int) int
		Notes      func(childComplexity int) int
		VerifiedAt func(childComplexity int) int
		VerifiedBy func(childComplexity int) int
	}
}

type MutationResolver interface {
	ApproveProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error)
	RejectProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error)
	VerifyProperty(ctx context.Context, propertyID uint64, message *string, adminNotes *string, reason *string) (*dto.PropertyResponse, error)
	CreateProperty(ctx context.Context, input dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	SaveProperty(ctx context.Context, propertyID uint64) (bool, error)
	UnsaveProperty(ctx context.Context, propertyID uint64) (bool, error)
	MarkNotificationRead(ctx context.Context, notificationID uint64) (bool, error)
}
type QueryResolver interface {
	Property(ctx context.Context, id uint64) (*dto.PropertyResponse, error)
	Properties(ctx context.Context, search *string, page *int, limit *int) (*dto.PropertyListResponse, error)
	MapProperties(ctx context.Context, bounds *dto.MapBoundsRequest, limit *int) ([]dto.MapPropertyResponse, error)
	BlogPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	BlogPosts(ctx context.Context, page *int, limit *int) (*dto.BlogPostListResponse, error)
	PropertiesByStatus(ctx context.Context, status domain.ApprovalStatus, search *string, page *int, limit *int) (*dto.PropertyListResponse, error)
	ApprovalHistory(ctx context.Context, propertyID uint64) ([]dto.ApprovalHistoryResponse, error)
	MyProperties(ctx context.Context, page *int, limit *int) (*dto.PropertyListResponse, error)
	SavedProperties(ctx context.Context, page *int, limit *int) (*dto.PropertyListResponse, error)
	Notifications(ctx context.Context, page *int, limit *int) (*dto.NotificationListResponse, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "ApprovalHistoryEntry.action":
		if e.complexity.ApprovalHistoryEntry.Action == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.Action(childComplexity), true
	case "ApprovalHistoryEntry.adminId":
		if e.complexity.ApprovalHistoryEntry.AdminID == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.AdminID(childComplexity), true
	case "ApprovalHistoryEntry.adminNotes":
		if e.complexity.ApprovalHistoryEntry.AdminNotes == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.AdminNotes(childComplexity), true
	case "ApprovalHistoryEntry.createdAt":
		if e.complexity.ApprovalHistoryEntry.CreatedAt == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.CreatedAt(childComplexity), true
	case "ApprovalHistoryEntry.id":
		if e.complexity.ApprovalHistoryEntry.ID == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.ID(childComplexity), true
	case "ApprovalHistoryEntry.message":
		if e.complexity.ApprovalHistoryEntry.Message == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.Message(childComplexity), true
	case "ApprovalHistoryEntry.newStatus":
		if e.complexity.ApprovalHistoryEntry.NewStatus == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.NewStatus(childComplexity), true
	case "ApprovalHistoryEntry.previousStatus":
		if e.complexity.ApprovalHistoryEntry.PreviousStatus == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.PreviousStatus(childComplexity), true
	case "ApprovalHistoryEntry.propertyId":
		if e.complexity.ApprovalHistoryEntry.PropertyID == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.PropertyID(childComplexity), true
	case "ApprovalHistoryEntry.reason":
		if e.complexity.ApprovalHistoryEntry.Reason == nil {
			break
		}

		return e.complexity.ApprovalHistoryEntry.Reason(childComplexity), true

	case "BlogPost.body":
		if e.complexity.BlogPost.Body == nil {
			break
		}

		return e.complexity.BlogPost.Body(childComplexity), true
	case "BlogPost.createdAt":
		if e.complexity.BlogPost.CreatedAt == nil {
			break
		}

		return e.complexity.BlogPost.CreatedAt(childComplexity), true
	case "BlogPost.id":
		if e.complexity.BlogPost.ID == nil {
			break
		}

		return e.complexity.BlogPost.ID(childComplexity), true
	case "BlogPost.publishedAt":
		if e.complexity.BlogPost.PublishedAt == nil {
			break
		}

		return e.complexity.BlogPost.PublishedAt(childComplexity), true
	case "BlogPost.slug":
		if e.complexity.BlogPost.Slug == nil {
			break
		}

		return e.complexity.BlogPost.Slug(childComplexity), true
	case "BlogPost.status":
		if e.complexity.BlogPost.Status == nil {
			break
		}

		return e.complexity.BlogPost.Status(childComplexity), true
	case "BlogPost.title":
		if e.complexity.BlogPost.Title == nil {
			break
		}

		return e.complexity.BlogPost.Title(childComplexity), true
	case "BlogPost.updatedAt":
		if e.complexity.BlogPost.UpdatedAt == nil {
			break
		}

		return e.complexity.BlogPost.UpdatedAt(childComplexity), true

	case "BlogPostList.items":
		if e.complexity.BlogPostList.Items == nil {
			break
		}

		return e.complexity.BlogPostList.Items(childComplexity), true
	case "BlogPostList.meta":
		if e.complexity.BlogPostList.Meta == nil {
			break
		}

		return e.complexity.BlogPostList.Meta(childComplexity), true

	case "Coordinate.latitude":
		if e.complexity.Coordinate.Latitude == nil {
			break
		}

		return e.complexity.Coordinate.Latitude(childComplexity), true
	case "Coordinate.longitude":
		if e.complexity.Coordinate.Longitude == nil {
			break
		}

		return e.complexity.Coordinate.Longitude(childComplexity), true

	case "MapProperty.boundary":
		if e.complexity.MapProperty.Boundary == nil {
			break
		}

		return e.complexity.MapProperty.Boundary(childComplexity), true
	case "MapProperty.daysOnMarket":
		if e.complexity.MapProperty.DaysOnMarket == nil {
			break
		}

		return e.complexity.MapProperty.DaysOnMarket(childComplexity), true
	case "MapProperty.id":
		if e.complexity.MapProperty.ID == nil {
			break
		}

		return e.complexity.MapProperty.ID(childComplexity), true
	case "MapProperty.latitude":
		if e.complexity.MapProperty.Latitude == nil {
			break
		}

		return e.complexity.MapProperty.Latitude(childComplexity), true
	case "MapProperty.longitude":
		if e.complexity.MapProperty.Longitude == nil {
			break
		}

		return e.complexity.MapProperty.Longitude(childComplexity), true
	case "MapProperty.price":
		if e.complexity.MapProperty.Price == nil {
			break
		}

		return e.complexity.MapProperty.Price(childComplexity), true
	case "MapProperty.propertyType":
		if e.complexity.MapProperty.PropertyType == nil {
			break
		}

		return e.complexity.MapProperty.PropertyType(childComplexity), true
	case "MapProperty.saved":
		if e.complexity.MapProperty.Saved == nil {
			break
		}

		return e.complexity.MapProperty.Saved(childComplexity), true
	case "MapProperty.slug":
		if e.complexity.MapProperty.Slug == nil {
			break
		}

		return e.complexity.MapProperty.Slug(childComplexity), true
	case "MapProperty.title":
		if e.complexity.MapProperty.Title == nil {
			break
		}

		return e.complexity.MapProperty.Title(childComplexity), true

	case "Meta.limit":
		if e.complexity.Meta.Limit == nil {
			break
		}

		return e.complexity.Meta.Limit(childComplexity), true
	case "Meta.page":
		if e.complexity.Meta.Page == nil {
			break
		}

		return e.complexity.Meta.Page(childComplexity), true
	case "Meta.total":
		if e.complexity.Meta.Total == nil {
			break
		}

		return e.complexity.Meta.Total(childComplexity), true
	case "Meta.totalPages":
		if e.complexity.Meta.TotalPages == nil {
			break
		}

		return e.complexity.Meta.TotalPages(childComplexity), true

	case "Mutation.approveProperty":
		if e.complexity.Mutation.ApproveProperty == nil {
			break
		}

		args, err := ec.field_Mutation_approveProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ApproveProperty(childComplexity, args["propertyId"].(uint64), args["message"].(*string), args["adminNotes"].(*string), args["reason"].(*string)), true
	case "Mutation.createProperty":
		if e.complexity.Mutation.CreateProperty == nil {
			break
		}

		args, err := ec.field_Mutation_createProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateProperty(childComplexity, args["input"].(dto.CreatePropertyRequest)), true
	case "Mutation.markNotificationRead":
		if e.complexity.Mutation.MarkNotificationRead == nil {
			break
		}

		args, err := ec.field_Mutation_markNotificationRead_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MarkNotificationRead(childComplexity, args["notificationId"].(uint64)), true
	case "Mutation.rejectProperty":
		if e.complexity.Mutation.RejectProperty == nil {
			break
		}

		args, err := ec.field_Mutation_rejectProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RejectProperty(childComplexity, args["propertyId"].(uint64), args["message"].(*string), args["adminNotes"].(*string), args["reason"].(*string)), true
	case "Mutation.saveProperty":
		if e.complexity.Mutation.SaveProperty == nil {
			break
		}

		args, err := ec.field_Mutation_saveProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SaveProperty(childComplexity, args["propertyId"].(uint64)), true
	case "Mutation.unsaveProperty":
		if e.complexity.Mutation.UnsaveProperty == nil {
			break
		}

		args, err := ec.field_Mutation_unsaveProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UnsaveProperty(childComplexity, args["propertyId"].(uint64)), true
	case "Mutation.verifyProperty":
		if e.complexity.Mutation.VerifyProperty == nil {
			break
		}

		args, err := ec.field_Mutation_verifyProperty_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.VerifyProperty(childComplexity, args["propertyId"].(uint64), args["message"].(*string), args["adminNotes"].(*string), args["reason"].(*string)), true

	case "Notification.action":
		if e.complexity.Notification.Action == nil {
			break
		}

		return e.complexity.Notification.Action(childComplexity), true
	case "Notification.category":
		if e.complexity.Notification.Category == nil {
			break
		}

		return e.complexity.Notification.Category(childComplexity), true
	case "Notification.createdAt":
		if e.complexity.Notification.CreatedAt == nil {
			break
		}

		return e.complexity.Notification.CreatedAt(childComplexity), true
	case "Notification.id":
		if e.complexity.Notification.ID == nil {
			break
		}

		return e.complexity.Notification.ID(childComplexity), true
	case "Notification.isRead":
		if e.complexity.Notification.IsRead == nil {
			break
		}

		return e.complexity.Notification.IsRead(childComplexity), true
	case "Notification.message":
		if e.complexity.Notification.Message == nil {
			break
		}

		return e.complexity.Notification.Message(childComplexity), true
	case "Notification.priority":
		if e.complexity.Notification.Priority == nil {
			break
		}

		return e.complexity.Notification.Priority(childComplexity), true
	case "Notification.propertyId":
		if e.complexity.Notification.PropertyID == nil {
			break
		}

		return e.complexity.Notification.PropertyID(childComplexity), true
	case "Notification.readAt":
		if e.complexity.Notification.ReadAt == nil {
			break
		}

		return e.complexity.Notification.ReadAt(childComplexity), true
	case "Notification.title":
		if e.complexity.Notification.Title == nil {
			break
		}

		return e.complexity.Notification.Title(childComplexity), true

	case "NotificationList.items":
		if e.complexity.NotificationList.Items == nil {
			break
		}

		return e.complexity.NotificationList.Items(childComplexity), true
	case "NotificationList.meta":
		if e.complexity.NotificationList.Meta == nil {
			break
		}

		return e.complexity.NotificationList.Meta(childComplexity), true

	case "Property.address":
		if e.complexity.Property.Address == nil {
			break
		}

		return e.complexity.Property.Address(childComplexity), true
	case "Property.adminNotes":
		if e.complexity.Property.AdminNotes == nil {
			break
		}

		return e.complexity.Property.AdminNotes(childComplexity), true
	case "Property.approvalMessage":
		if e.complexity.Property.ApprovalMessage == nil {
			break
		}

		return e.complexity.Property.ApprovalMessage(childComplexity), true
	case "Property.approvalStatus":
		if e.complexity.Property.ApprovalStatus == nil {
			break
		}

		return e.complexity.Property.ApprovalStatus(childComplexity), true
	case "Property.approvedAt":
		if e.complexity.Property.ApprovedAt == nil {
			break
		}

		return e.complexity.Property.ApprovedAt(childComplexity), true
	case "Property.approvedBy":
		if e.complexity.Property.ApprovedBy == nil {
			break
		}

		return e.complexity.Property.ApprovedBy(childComplexity), true
	case "Property.area":
		if e.complexity.Property.Area == nil {
			break
		}

		return e.complexity.Property.Area(childComplexity), true
	case "Property.areaUnit":
		if e.complexity.Property.AreaUnit == nil {
			break
		}

		return e.complexity.Property.AreaUnit(childComplexity), true
	case "Property.boundary":
		if e.complexity.Property.Boundary == nil {
			break
		}

		return e.complexity.Property.Boundary(childComplexity), true
	case "Property.city":
		if e.complexity.Property.City == nil {
			break
		}

		return e.complexity.Property.City(childComplexity), true
	case "Property.country":
		if e.complexity.Property.Country == nil {
			break
		}

		return e.complexity.Property.Country(childComplexity), true
	case "Property.createdAt":
		if e.complexity.Property.CreatedAt == nil {
			break
		}

		return e.complexity.Property.CreatedAt(childComplexity), true
	case "Property.createdByAdminId":
		if e.complexity.Property.CreatedByAdminID == nil {
			break
		}

		return e.complexity.Property.CreatedByAdminID(childComplexity), true
	case "Property.createdByType":
		if e.complexity.Property.CreatedByType == nil {
			break
		}

		return e.complexity.Property.CreatedByType(childComplexity), true
	case "Property.createdByUserId":
		if e.complexity.Property.CreatedByUserID == nil {
			break
		}

		return e.complexity.Property.CreatedByUserID(childComplexity), true
	case "Property.description":
		if e.complexity.Property.Description == nil {
			break
		}

		return e.complexity.Property.Description(childComplexity), true
	case "Property.district":
		if e.complexity.Property.District == nil {
			break
		}

		return e.complexity.Property.District(childComplexity), true
	case "Property.id":
		if e.complexity.Property.ID == nil {
			break
		}

		return e.complexity.Property.ID(childComplexity), true
	case "Property.images":
		if e.complexity.Property.Images == nil {
			break
		}

		return e.complexity.Property.Images(childComplexity), true
	case "Property.khasraNumber":
		if e.complexity.Property.KhasraNumber == nil {
			break
		}

		return e.complexity.Property.KhasraNumber(childComplexity), true
	case "Property.khewatNumber":
		if e.complexity.Property.KhewatNumber == nil {
			break
		}

		return e.complexity.Property.KhewatNumber(childComplexity), true
	case "Property.lastReviewedAt":
		if e.complexity.Property.LastReviewedAt == nil {
			break
		}

		return e.complexity.Property.LastReviewedAt(childComplexity), true
	case "Property.lastReviewedBy":
		if e.complexity.Property.LastReviewedBy == nil {
			break
		}

		return e.complexity.Property.LastReviewedBy(childComplexity), true
	case "Property.latitude":
		if e.complexity.Property.Latitude == nil {
			break
		}

		return e.complexity.Property.Latitude(childComplexity), true
	case "Property.longitude":
		if e.complexity.Property.Longitude == nil {
			break
		}

		return e.complexity.Property.Longitude(childComplexity), true
	case "Property.murabbaNumber":
		if e.complexity.Property.MurabbaNumber == nil {
			break
		}

		return e.complexity.Property.MurabbaNumber(childComplexity), true
	case "Property.ownerName":
		if e.complexity.Property.OwnerName == nil {
			break
		}

		return e.complexity.Property.OwnerName(childComplexity), true
	case "Property.postalCode":
		if e.complexity.Property.PostalCode == nil {
			break
		}

		return e.complexity.Property.PostalCode(childComplexity), true
	case "Property.price":
		if e.complexity.Property.Price == nil {
			break
		}

		return e.complexity.Property.Price(childComplexity), true
	case "Property.propertyType":
		if e.complexity.Property.PropertyType == nil {
			break
		}

		return e.complexity.Property.PropertyType(childComplexity), true
	case "Property.rejectedAt":
		if e.complexity.Property.RejectedAt == nil {
			break
		}

		return e.complexity.Property.RejectedAt(childComplexity), true
	case "Property.rejectedBy":
		if e.complexity.Property.RejectedBy == nil {
			break
		}

		return e.complexity.Property.RejectedBy(childComplexity), true
	case "Property.rejectionReason":
		if e.complexity.Property.RejectionReason == nil {
			break
		}

		return e.complexity.Property.RejectionReason(childComplexity), true
	case "Property.seo":
		if e.complexity.Property.Seo == nil {
			break
		}

		return e.complexity.Property.Seo(childComplexity), true
	case "Property.state":
		if e.complexity.Property.State == nil {
			break
		}

		return e.complexity.Property.State(childComplexity), true
	case "Property.title":
		if e.complexity.Property.Title == nil {
			break
		}

		return e.complexity.Property.Title(childComplexity), true
	case "Property.updatedAt":
		if e.complexity.Property.UpdatedAt == nil {
			break
		}

		return e.complexity.Property.UpdatedAt(childComplexity), true
	case "Property.verification":
		if e.complexity.Property.Verification == nil {
			break
		}

		return e.complexity.Property.Verification(childComplexity), true

	case "PropertyImage.altText":
		if e.complexity.PropertyImage.AltText == nil {
			break
		}

		return e.complexity.PropertyImage.AltText(childComplexity), true
	case "PropertyImage.caption":
		if e.complexity.PropertyImage.Caption == nil {
			break
		}

		return e.complexity.PropertyImage.Caption(childComplexity), true
	case "PropertyImage.id":
		if e.complexity.PropertyImage.ID == nil {
			break
		}

		return e.complexity.PropertyImage.ID(childComplexity), true
	case "PropertyImage.imageType":
		if e.complexity.PropertyImage.ImageType == nil {
			break
		}

		return e.complexity.PropertyImage.ImageType(childComplexity), true
	case "PropertyImage.imageUrl":
		if e.complexity.PropertyImage.ImageURL == nil {
			break
		}

		return e.complexity.PropertyImage.ImageURL(childComplexity), true
	case "PropertyImage.isMain":
		if e.complexity.PropertyImage.IsMain == nil {
			break
		}

		return e.complexity.PropertyImage.IsMain(childComplexity), true
	case "PropertyImage.sortOrder":
		if e.complexity.PropertyImage.SortOrder == nil {
			break
		}

		return e.complexity.PropertyImage.SortOrder(childComplexity), true
	case "PropertyImage.variantUrls":
		if e.complexity.PropertyImage.VariantURLs == nil {
			break
		}

		return e.complexity.PropertyImage.VariantURLs(childComplexity), true

	case "PropertyList.items":
		if e.complexity.PropertyList.Items == nil {
			break
		}

		return e.complexity.PropertyList.Items(childComplexity), true
	case "PropertyList.meta":
		if e.complexity.PropertyList.Meta == nil {
			break
		}

		return e.complexity.PropertyList.Meta(childComplexity), true

	case "Query.approvalHistory":
		if e.complexity.Query.ApprovalHistory == nil {
			break
		}

		args, err := ec.field_Query_approvalHistory_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ApprovalHistory(childComplexity, args["propertyId"].(uint64)), true
	case "Query.blogPost":
		if e.complexity.Query.BlogPost == nil {
			break
		}

		args, err := ec.field_Query_blogPost_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.BlogPost(childComplexity, args["slug"].(string)), true
	case "Query.blogPosts":
		if e.complexity.Query.BlogPosts == nil {
			break
		}

		args, err := ec.field_Query_blogPosts_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.BlogPosts(childComplexity, args["page"].(*int), args["limit"].(*int)), true
	case "Query.mapProperties":
		if e.complexity.Query.MapProperties == nil {
			break
		}

		args, err := ec.field_Query_mapProperties_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MapProperties(childComplexity, args["bounds"].(*dto.MapBoundsRequest), args["limit"].(*int)), true
	case "Query.myProperties":
		if e.complexity.Query.MyProperties == nil {
			break
		}

		args, err := ec.field_Query_myProperties_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MyProperties(childComplexity, args["page"].(*int), args["limit"].(*int)), true
	case "Query.notifications":
		if e.complexity.Query.Notifications == nil {
			break
		}

		args, err := ec.field_Query_notifications_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Notifications(childComplexity, args["page"].(*int), args["limit"].(*int)), true
	case "Query.properties":
		if e.complexity.Query.Properties == nil {
			break
		}

		args, err := ec.field_Query_properties_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Properties(childComplexity, args["search"].(*string), args["page"].(*int), args["limit"].(*int)), true
	case "Query.propertiesByStatus":
		if e.complexity.Query.PropertiesByStatus == nil {
			break
		}

		args, err := ec.field_Query_propertiesByStatus_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.PropertiesByStatus(childComplexity, args["status"].(domain.ApprovalStatus), args["search"].(*string), args["page"].(*int), args["limit"].(*int)), true
	case "Query.property":
		if e.complexity.Query.Property == nil {
			break
		}

		args, err := ec.field_Query_property_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Property(childComplexity, args["id"].(uint64)), true
	case "Query.savedProperties":
		if e.complexity.Query.SavedProperties == nil {
			break
		}

		args, err := ec.field_Query_savedProperties_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.SavedProperties(childComplexity, args["page"].(*int), args["limit"].(*int)), true

	case "Seo.keywords":
		if e.complexity.Seo.Keywords == nil {
			break
		}

		return e.complexity.Seo.Keywords(childComplexity), true
	case "Seo.metaDescription":
		if e.complexity.Seo.MetaDescription == nil {
			break
		}

		return e.complexity.Seo.MetaDescription(childComplexity), true
	case "Seo.metaTitle":
		if e.complexity.Seo.MetaTitle == nil {
			break
		}

		return e.complexity.Seo.MetaTitle(childComplexity), true
	case "Seo.slug":
		if e.complexity.Seo.Slug == nil {
			break
		}

		return e.complexity.Seo.Slug(childComplexity), true

	case "Verification.isVerified":
		if e.complexity.Verification.IsVerified == nil {
			break
		}

		return e.complexity.Verification.IsVerified(childComplexity), true
	case "Verification.message":
		if e.complexity.Verification.Message == nil {
			break
		}

		return e.complexity.Verification.Message(childComplexity), true
	case "Verification.notes":
		if e.complexity.Verification.Notes == nil {
			break
		}

		return e.complexity.Verification.Notes(childComplexity), true
	case "Verification.verifiedAt":
		if e.complexity.Verification.VerifiedAt == nil {
			break
		}

		return e.complexity.Verification.VerifiedAt(childComplexity), true
	case "Verification.verifiedBy":
		if e.complexity.Verification.VerifiedBy == nil {
			break
		}

		return e.complexity.Verification.VerifiedBy(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputCoordinateInput,
		ec.unmarshalInputCreateImageInput,
		ec.unmarshalInputCreatePropertyInput,
		ec.unmarshalInputMapBoundsInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

//go:embed "schema.graphqls"
var sourcesFS embed.FS

func sourceData(filename string) string {
	data, err := sourcesFS.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("codegen problem: %s not available", filename))
	}
	return string(data)
}

var sources = []*ast.Source{
	{Name: "schema.graphqls", Input: sourceData("schema.graphqls"), BuiltIn: false},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Mutation_approveProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "message", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["message"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "adminNotes", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["adminNotes"] = arg2
	arg3, err := graphql.ProcessArgField(ctx, rawArgs, "reason", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["reason"] = arg3
	return args, nil
}

func (ec *executionContext) field_Mutation_createProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreatePropertyInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreatePropertyRequest)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_markNotificationRead_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "notificationId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["notificationId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_rejectProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "message", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["message"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "adminNotes", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["adminNotes"] = arg2
	arg3, err := graphql.ProcessArgField(ctx, rawArgs, "reason", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["reason"] = arg3
	return args, nil
}

func (ec *executionContext) field_Mutation_saveProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_unsaveProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_verifyProperty_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "message", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["message"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "adminNotes", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["adminNotes"] = arg2
	arg3, err := graphql.ProcessArgField(ctx, rawArgs, "reason", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["reason"] = arg3
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_approvalHistory_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "propertyId", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["propertyId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_blogPost_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "slug", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["slug"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_blogPosts_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_mapProperties_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "bounds", ec.unmarshalOMapBoundsInput2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapBoundsRequest)
	if err != nil {
		return nil, err
	}
	args["bounds"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_myProperties_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_notifications_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_propertiesByStatus_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "status", ec.unmarshalNApprovalStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus)
	if err != nil {
		return nil, err
	}
	args["status"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "search", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["search"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg2
	arg3, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg3
	return args, nil
}

func (ec *executionContext) field_Query_properties_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "search", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["search"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_property_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUint642uint64)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_savedProperties_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "page", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["page"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _ApprovalHistoryEntry_id(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_propertyId(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_propertyId,
		func(ctx context.Context) (any, error) {
			return obj.PropertyID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_propertyId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_adminId(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_adminId,
		func(ctx context.Context) (any, error) {
			return obj.AdminID, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_adminId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_action(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_action,
		func(ctx context.Context) (any, error) {
			return obj.Action, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_action(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_previousStatus(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_previousStatus,
		func(ctx context.Context) (any, error) {
			return obj.PreviousStatus, nil
		},
		nil,
		ec.marshalOApprovalStatus2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_previousStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ApprovalStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_newStatus(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_newStatus,
		func(ctx context.Context) (any, error) {
			return obj.NewStatus, nil
		},
		nil,
		ec.marshalNApprovalStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_newStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ApprovalStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_message(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_message,
		func(ctx context.Context) (any, error) {
			return obj.Message, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_message(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_adminNotes(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_adminNotes,
		func(ctx context.Context) (any, error) {
			return obj.AdminNotes, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_adminNotes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_reason(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_reason,
		func(ctx context.Context) (any, error) {
			return obj.Reason, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_reason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ApprovalHistoryEntry_createdAt(ctx context.Context, field graphql.CollectedField, obj *dto.ApprovalHistoryResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ApprovalHistoryEntry_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ApprovalHistoryEntry_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ApprovalHistoryEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_id(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_title(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_slug(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_slug,
		func(ctx context.Context) (any, error) {
			return obj.Slug, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_slug(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_body(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_body,
		func(ctx context.Context) (any, error) {
			return obj.Body, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_BlogPost_body(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_status(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNBlogPostStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋstoreᚋschemaᚐBlogPostStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BlogPostStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_publishedAt(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_publishedAt,
		func(ctx context.Context) (any, error) {
			return obj.PublishedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_BlogPost_publishedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_createdAt(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPost_updatedAt(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPost_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPost_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPost",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPostList_items(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPostList_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNBlogPost2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPostList_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPostList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_BlogPost_id(ctx, field)
			case "title":
				return ec.fieldContext_BlogPost_title(ctx, field)
			case "slug":
				return ec.fieldContext_BlogPost_slug(ctx, field)
			case "body":
				return ec.fieldContext_BlogPost_body(ctx, field)
			case "status":
				return ec.fieldContext_BlogPost_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_BlogPost_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_BlogPost_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_BlogPost_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type BlogPost", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _BlogPostList_meta(ctx context.Context, field graphql.CollectedField, obj *dto.BlogPostListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_BlogPostList_meta,
		func(ctx context.Context) (any, error) {
			return obj.Meta, nil
		},
		nil,
		ec.marshalNMeta2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMeta,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_BlogPostList_meta(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "BlogPostList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "total":
				return ec.fieldContext_Meta_total(ctx, field)
			case "page":
				return ec.fieldContext_Meta_page(ctx, field)
			case "limit":
				return ec.fieldContext_Meta_limit(ctx, field)
			case "totalPages":
				return ec.fieldContext_Meta_totalPages(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Meta", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Coordinate_latitude(ctx context.Context, field graphql.CollectedField, obj *dto.CoordinateResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Coordinate_latitude,
		func(ctx context.Context) (any, error) {
			return obj.Latitude, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Coordinate_latitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Coordinate",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Coordinate_longitude(ctx context.Context, field graphql.CollectedField, obj *dto.CoordinateResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Coordinate_longitude,
		func(ctx context.Context) (any, error) {
			return obj.Longitude, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Coordinate_longitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Coordinate",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_id(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MapProperty_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_title(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MapProperty_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_propertyType(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_propertyType,
		func(ctx context.Context) (any, error) {
			return obj.PropertyType, nil
		},
		nil,
		ec.marshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MapProperty_propertyType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type PropertyType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_price(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_price,
		func(ctx context.Context) (any, error) {
			return obj.Price, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MapProperty_price(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_latitude(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_latitude,
		func(ctx context.Context) (any, error) {
			return obj.Latitude, nil
		},
		nil,
		ec.marshalOFloat2ᚖfloat64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MapProperty_latitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_longitude(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_longitude,
		func(ctx context.Context) (any, error) {
			return obj.Longitude, nil
		},
		nil,
		ec.marshalOFloat2ᚖfloat64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MapProperty_longitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_boundary(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_boundary,
		func(ctx context.Context) (any, error) {
			return obj.Boundary, nil
		},
		nil,
		ec.marshalOCoordinate2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponseᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MapProperty_boundary(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "latitude":
				return ec.fieldContext_Coordinate_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Coordinate_longitude(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Coordinate", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_slug(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_slug,
		func(ctx context.Context) (any, error) {
			return obj.Slug, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MapProperty_slug(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_daysOnMarket(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_daysOnMarket,
		func(ctx context.Context) (any, error) {
			return obj.DaysOnMarket, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MapProperty_daysOnMarket(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MapProperty_saved(ctx context.Context, field graphql.CollectedField, obj *dto.MapPropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MapProperty_saved,
		func(ctx context.Context) (any, error) {
			return obj.Saved, nil
		},
		nil,
		ec.marshalOBoolean2ᚖbool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MapProperty_saved(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MapProperty",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Meta_total(ctx context.Context, field graphql.CollectedField, obj *dto.Meta) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Meta_total,
		func(ctx context.Context) (any, error) {
			return obj.Total, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Meta_total(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Meta",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Meta_page(ctx context.Context, field graphql.CollectedField, obj *dto.Meta) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Meta_page,
		func(ctx context.Context) (any, error) {
			return obj.Page, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Meta_page(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Meta",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Meta_limit(ctx context.Context, field graphql.CollectedField, obj *dto.Meta) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Meta_limit,
		func(ctx context.Context) (any, error) {
			return obj.Limit, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Meta_limit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Meta",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Meta_totalPages(ctx context.Context, field graphql.CollectedField, obj *dto.Meta) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Meta_totalPages,
		func(ctx context.Context) (any, error) {
			return obj.TotalPages, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Meta_totalPages(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Meta",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_approveProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_approveProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ApproveProperty(ctx, fc.Args["propertyId"].(uint64), fc.Args["message"].(*string), fc.Args["adminNotes"].(*string), fc.Args["reason"].(*string))
		},
		nil,
		ec.marshalNProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_approveProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_approveProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_rejectProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_rejectProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RejectProperty(ctx, fc.Args["propertyId"].(uint64), fc.Args["message"].(*string), fc.Args["adminNotes"].(*string), fc.Args["reason"].(*string))
		},
		nil,
		ec.marshalNProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_rejectProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_rejectProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_verifyProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_verifyProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().VerifyProperty(ctx, fc.Args["propertyId"].(uint64), fc.Args["message"].(*string), fc.Args["adminNotes"].(*string), fc.Args["reason"].(*string))
		},
		nil,
		ec.marshalNProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_verifyProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_verifyProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateProperty(ctx, fc.Args["input"].(dto.CreatePropertyRequest))
		},
		nil,
		ec.marshalNProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_saveProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_saveProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SaveProperty(ctx, fc.Args["propertyId"].(uint64))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_saveProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_saveProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_unsaveProperty(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_unsaveProperty,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UnsaveProperty(ctx, fc.Args["propertyId"].(uint64))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_unsaveProperty(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_unsaveProperty_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_markNotificationRead(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_markNotificationRead,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MarkNotificationRead(ctx, fc.Args["notificationId"].(uint64))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_markNotificationRead(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_markNotificationRead_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Notification_id(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_propertyId(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_propertyId,
		func(ctx context.Context) (any, error) {
			return obj.PropertyID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_propertyId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_action(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_action,
		func(ctx context.Context) (any, error) {
			return obj.Action, nil
		},
		nil,
		ec.marshalNNotificationAction2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐNotificationAction,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_action(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type NotificationAction does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_title(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_message(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_message,
		func(ctx context.Context) (any, error) {
			return obj.Message, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Notification_message(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_priority(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_priority,
		func(ctx context.Context) (any, error) {
			return obj.Priority, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_priority(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_category(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_category,
		func(ctx context.Context) (any, error) {
			return obj.Category, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_category(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_isRead(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_isRead,
		func(ctx context.Context) (any, error) {
			return obj.IsRead, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_isRead(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_readAt(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_readAt,
		func(ctx context.Context) (any, error) {
			return obj.ReadAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Notification_readAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_createdAt(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NotificationList_items(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NotificationList_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNNotification2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NotificationList_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NotificationList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Notification_id(ctx, field)
			case "propertyId":
				return ec.fieldContext_Notification_propertyId(ctx, field)
			case "action":
				return ec.fieldContext_Notification_action(ctx, field)
			case "title":
				return ec.fieldContext_Notification_title(ctx, field)
			case "message":
				return ec.fieldContext_Notification_message(ctx, field)
			case "priority":
				return ec.fieldContext_Notification_priority(ctx, field)
			case "category":
				return ec.fieldContext_Notification_category(ctx, field)
			case "isRead":
				return ec.fieldContext_Notification_isRead(ctx, field)
			case "readAt":
				return ec.fieldContext_Notification_readAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Notification_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Notification", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _NotificationList_meta(ctx context.Context, field graphql.CollectedField, obj *dto.NotificationListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NotificationList_meta,
		func(ctx context.Context) (any, error) {
			return obj.Meta, nil
		},
		nil,
		ec.marshalNMeta2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMeta,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NotificationList_meta(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NotificationList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "total":
				return ec.fieldContext_Meta_total(ctx, field)
			case "page":
				return ec.fieldContext_Meta_page(ctx, field)
			case "limit":
				return ec.fieldContext_Meta_limit(ctx, field)
			case "totalPages":
				return ec.fieldContext_Meta_totalPages(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Meta", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_id(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_title(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_description(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_propertyType(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_propertyType,
		func(ctx context.Context) (any, error) {
			return obj.PropertyType, nil
		},
		nil,
		ec.marshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_propertyType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type PropertyType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_price(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_price,
		func(ctx context.Context) (any, error) {
			return obj.Price, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_price(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_area(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_area,
		func(ctx context.Context) (any, error) {
			return obj.Area, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_area(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_areaUnit(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_areaUnit,
		func(ctx context.Context) (any, error) {
			return obj.AreaUnit, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_areaUnit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_address(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_address,
		func(ctx context.Context) (any, error) {
			return obj.Address, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_address(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_city(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_city,
		func(ctx context.Context) (any, error) {
			return obj.City, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_city(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_district(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_district,
		func(ctx context.Context) (any, error) {
			return obj.District, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_district(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_state(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_state,
		func(ctx context.Context) (any, error) {
			return obj.State, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_state(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_country(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_country,
		func(ctx context.Context) (any, error) {
			return obj.Country, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_country(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_postalCode(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_postalCode,
		func(ctx context.Context) (any, error) {
			return obj.PostalCode, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_postalCode(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_latitude(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_latitude,
		func(ctx context.Context) (any, error) {
			return obj.Latitude, nil
		},
		nil,
		ec.marshalOFloat2ᚖfloat64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_latitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_longitude(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_longitude,
		func(ctx context.Context) (any, error) {
			return obj.Longitude, nil
		},
		nil,
		ec.marshalOFloat2ᚖfloat64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_longitude(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_boundary(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_boundary,
		func(ctx context.Context) (any, error) {
			return obj.Boundary, nil
		},
		nil,
		ec.marshalOCoordinate2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponseᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_boundary(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "latitude":
				return ec.fieldContext_Coordinate_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Coordinate_longitude(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Coordinate", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_khasraNumber(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_khasraNumber,
		func(ctx context.Context) (any, error) {
			return obj.KhasraNumber, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_khasraNumber(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_murabbaNumber(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_murabbaNumber,
		func(ctx context.Context) (any, error) {
			return obj.MurabbaNumber, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_murabbaNumber(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_khewatNumber(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_khewatNumber,
		func(ctx context.Context) (any, error) {
			return obj.KhewatNumber, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_khewatNumber(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_createdByType(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_createdByType,
		func(ctx context.Context) (any, error) {
			return obj.CreatedByType, nil
		},
		nil,
		ec.marshalNCreatedByType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐCreatedByType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_createdByType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreatedByType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_createdByAdminId(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_createdByAdminId,
		func(ctx context.Context) (any, error) {
			return obj.CreatedByAdminID, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_createdByAdminId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_createdByUserId(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_createdByUserId,
		func(ctx context.Context) (any, error) {
			return obj.CreatedByUserID, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_createdByUserId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_ownerName(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_ownerName,
		func(ctx context.Context) (any, error) {
			return obj.OwnerName, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_ownerName(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_approvalStatus(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_approvalStatus,
		func(ctx context.Context) (any, error) {
			return obj.ApprovalStatus, nil
		},
		nil,
		ec.marshalNApprovalStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_approvalStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ApprovalStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_approvalMessage(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_approvalMessage,
		func(ctx context.Context) (any, error) {
			return obj.ApprovalMessage, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_approvalMessage(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_approvedBy(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_approvedBy,
		func(ctx context.Context) (any, error) {
			return obj.ApprovedBy, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_approvedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_approvedAt(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_approvedAt,
		func(ctx context.Context) (any, error) {
			return obj.ApprovedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_approvedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_rejectionReason(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_rejectionReason,
		func(ctx context.Context) (any, error) {
			return obj.RejectionReason, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_rejectionReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_rejectedBy(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_rejectedBy,
		func(ctx context.Context) (any, error) {
			return obj.RejectedBy, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_rejectedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_rejectedAt(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_rejectedAt,
		func(ctx context.Context) (any, error) {
			return obj.RejectedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_rejectedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_adminNotes(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_adminNotes,
		func(ctx context.Context) (any, error) {
			return obj.AdminNotes, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_adminNotes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_lastReviewedBy(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_lastReviewedBy,
		func(ctx context.Context) (any, error) {
			return obj.LastReviewedBy, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_lastReviewedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_lastReviewedAt(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_lastReviewedAt,
		func(ctx context.Context) (any, error) {
			return obj.LastReviewedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_lastReviewedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_seo(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_seo,
		func(ctx context.Context) (any, error) {
			return obj.Seo, nil
		},
		nil,
		ec.marshalOSeo2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐSeoResponse,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_seo(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "slug":
				return ec.fieldContext_Seo_slug(ctx, field)
			case "metaTitle":
				return ec.fieldContext_Seo_metaTitle(ctx, field)
			case "metaDescription":
				return ec.fieldContext_Seo_metaDescription(ctx, field)
			case "keywords":
				return ec.fieldContext_Seo_keywords(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Seo", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_verification(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_verification,
		func(ctx context.Context) (any, error) {
			return obj.Verification, nil
		},
		nil,
		ec.marshalOVerification2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐVerificationResponse,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Property_verification(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "isVerified":
				return ec.fieldContext_Verification_isVerified(ctx, field)
			case "message":
				return ec.fieldContext_Verification_message(ctx, field)
			case "notes":
				return ec.fieldContext_Verification_notes(ctx, field)
			case "verifiedBy":
				return ec.fieldContext_Verification_verifiedBy(ctx, field)
			case "verifiedAt":
				return ec.fieldContext_Verification_verifiedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Verification", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_images(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_images,
		func(ctx context.Context) (any, error) {
			return obj.Images, nil
		},
		nil,
		ec.marshalNPropertyImage2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyImageResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_images(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PropertyImage_id(ctx, field)
			case "imageUrl":
				return ec.fieldContext_PropertyImage_imageUrl(ctx, field)
			case "imageType":
				return ec.fieldContext_PropertyImage_imageType(ctx, field)
			case "caption":
				return ec.fieldContext_PropertyImage_caption(ctx, field)
			case "altText":
				return ec.fieldContext_PropertyImage_altText(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PropertyImage_sortOrder(ctx, field)
			case "isMain":
				return ec.fieldContext_PropertyImage_isMain(ctx, field)
			case "variantUrls":
				return ec.fieldContext_PropertyImage_variantUrls(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PropertyImage", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_createdAt(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Property_updatedAt(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Property_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Property_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Property",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_id(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_imageUrl(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_imageUrl,
		func(ctx context.Context) (any, error) {
			return obj.ImageURL, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_imageUrl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_imageType(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_imageType,
		func(ctx context.Context) (any, error) {
			return obj.ImageType, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_imageType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_caption(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_caption,
		func(ctx context.Context) (any, error) {
			return obj.Caption, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_caption(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_altText(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_altText,
		func(ctx context.Context) (any, error) {
			return obj.AltText, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_altText(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_sortOrder(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_sortOrder,
		func(ctx context.Context) (any, error) {
			return obj.SortOrder, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_sortOrder(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_isMain(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_isMain,
		func(ctx context.Context) (any, error) {
			return obj.IsMain, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_isMain(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyImage_variantUrls(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyImageResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyImage_variantUrls,
		func(ctx context.Context) (any, error) {
			return obj.VariantURLs, nil
		},
		nil,
		ec.marshalOStringMap2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PropertyImage_variantUrls(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyImage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type StringMap does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyList_items(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyList_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNProperty2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyList_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PropertyList_meta(ctx context.Context, field graphql.CollectedField, obj *dto.PropertyListResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PropertyList_meta,
		func(ctx context.Context) (any, error) {
			return obj.Meta, nil
		},
		nil,
		ec.marshalNMeta2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMeta,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PropertyList_meta(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PropertyList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "total":
				return ec.fieldContext_Meta_total(ctx, field)
			case "page":
				return ec.fieldContext_Meta_page(ctx, field)
			case "limit":
				return ec.fieldContext_Meta_limit(ctx, field)
			case "totalPages":
				return ec.fieldContext_Meta_totalPages(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Meta", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_property(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_property,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Property(ctx, fc.Args["id"].(uint64))
		},
		nil,
		ec.marshalOProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_property(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Property_id(ctx, field)
			case "title":
				return ec.fieldContext_Property_title(ctx, field)
			case "description":
				return ec.fieldContext_Property_description(ctx, field)
			case "propertyType":
				return ec.fieldContext_Property_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_Property_price(ctx, field)
			case "area":
				return ec.fieldContext_Property_area(ctx, field)
			case "areaUnit":
				return ec.fieldContext_Property_areaUnit(ctx, field)
			case "address":
				return ec.fieldContext_Property_address(ctx, field)
			case "city":
				return ec.fieldContext_Property_city(ctx, field)
			case "district":
				return ec.fieldContext_Property_district(ctx, field)
			case "state":
				return ec.fieldContext_Property_state(ctx, field)
			case "country":
				return ec.fieldContext_Property_country(ctx, field)
			case "postalCode":
				return ec.fieldContext_Property_postalCode(ctx, field)
			case "latitude":
				return ec.fieldContext_Property_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_Property_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_Property_boundary(ctx, field)
			case "khasraNumber":
				return ec.fieldContext_Property_khasraNumber(ctx, field)
			case "murabbaNumber":
				return ec.fieldContext_Property_murabbaNumber(ctx, field)
			case "khewatNumber":
				return ec.fieldContext_Property_khewatNumber(ctx, field)
			case "createdByType":
				return ec.fieldContext_Property_createdByType(ctx, field)
			case "createdByAdminId":
				return ec.fieldContext_Property_createdByAdminId(ctx, field)
			case "createdByUserId":
				return ec.fieldContext_Property_createdByUserId(ctx, field)
			case "ownerName":
				return ec.fieldContext_Property_ownerName(ctx, field)
			case "approvalStatus":
				return ec.fieldContext_Property_approvalStatus(ctx, field)
			case "approvalMessage":
				return ec.fieldContext_Property_approvalMessage(ctx, field)
			case "approvedBy":
				return ec.fieldContext_Property_approvedBy(ctx, field)
			case "approvedAt":
				return ec.fieldContext_Property_approvedAt(ctx, field)
			case "rejectionReason":
				return ec.fieldContext_Property_rejectionReason(ctx, field)
			case "rejectedBy":
				return ec.fieldContext_Property_rejectedBy(ctx, field)
			case "rejectedAt":
				return ec.fieldContext_Property_rejectedAt(ctx, field)
			case "adminNotes":
				return ec.fieldContext_Property_adminNotes(ctx, field)
			case "lastReviewedBy":
				return ec.fieldContext_Property_lastReviewedBy(ctx, field)
			case "lastReviewedAt":
				return ec.fieldContext_Property_lastReviewedAt(ctx, field)
			case "seo":
				return ec.fieldContext_Property_seo(ctx, field)
			case "verification":
				return ec.fieldContext_Property_verification(ctx, field)
			case "images":
				return ec.fieldContext_Property_images(ctx, field)
			case "createdAt":
				return ec.fieldContext_Property_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Property_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Property", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_property_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_properties(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_properties,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Properties(ctx, fc.Args["search"].(*string), fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNPropertyList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_properties(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_PropertyList_items(ctx, field)
			case "meta":
				return ec.fieldContext_PropertyList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PropertyList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_properties_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mapProperties(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mapProperties,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MapProperties(ctx, fc.Args["bounds"].(*dto.MapBoundsRequest), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNMapProperty2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapPropertyResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_mapProperties(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MapProperty_id(ctx, field)
			case "title":
				return ec.fieldContext_MapProperty_title(ctx, field)
			case "propertyType":
				return ec.fieldContext_MapProperty_propertyType(ctx, field)
			case "price":
				return ec.fieldContext_MapProperty_price(ctx, field)
			case "latitude":
				return ec.fieldContext_MapProperty_latitude(ctx, field)
			case "longitude":
				return ec.fieldContext_MapProperty_longitude(ctx, field)
			case "boundary":
				return ec.fieldContext_MapProperty_boundary(ctx, field)
			case "slug":
				return ec.fieldContext_MapProperty_slug(ctx, field)
			case "daysOnMarket":
				return ec.fieldContext_MapProperty_daysOnMarket(ctx, field)
			case "saved":
				return ec.fieldContext_MapProperty_saved(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MapProperty", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mapProperties_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_blogPost(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_blogPost,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().BlogPost(ctx, fc.Args["slug"].(string))
		},
		nil,
		ec.marshalOBlogPost2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponse,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_blogPost(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_BlogPost_id(ctx, field)
			case "title":
				return ec.fieldContext_BlogPost_title(ctx, field)
			case "slug":
				return ec.fieldContext_BlogPost_slug(ctx, field)
			case "body":
				return ec.fieldContext_BlogPost_body(ctx, field)
			case "status":
				return ec.fieldContext_BlogPost_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_BlogPost_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_BlogPost_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_BlogPost_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type BlogPost", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_blogPost_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_blogPosts(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_blogPosts,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().BlogPosts(ctx, fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNBlogPostList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_blogPosts(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_BlogPostList_items(ctx, field)
			case "meta":
				return ec.fieldContext_BlogPostList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type BlogPostList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_blogPosts_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_propertiesByStatus(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_propertiesByStatus,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().PropertiesByStatus(ctx, fc.Args["status"].(domain.ApprovalStatus), fc.Args["search"].(*string), fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNPropertyList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_propertiesByStatus(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_PropertyList_items(ctx, field)
			case "meta":
				return ec.fieldContext_PropertyList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PropertyList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_propertiesByStatus_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_approvalHistory(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_approvalHistory,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ApprovalHistory(ctx, fc.Args["propertyId"].(uint64))
		},
		nil,
		ec.marshalNApprovalHistoryEntry2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐApprovalHistoryResponseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_approvalHistory(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ApprovalHistoryEntry_id(ctx, field)
			case "propertyId":
				return ec.fieldContext_ApprovalHistoryEntry_propertyId(ctx, field)
			case "adminId":
				return ec.fieldContext_ApprovalHistoryEntry_adminId(ctx, field)
			case "action":
				return ec.fieldContext_ApprovalHistoryEntry_action(ctx, field)
			case "previousStatus":
				return ec.fieldContext_ApprovalHistoryEntry_previousStatus(ctx, field)
			case "newStatus":
				return ec.fieldContext_ApprovalHistoryEntry_newStatus(ctx, field)
			case "message":
				return ec.fieldContext_ApprovalHistoryEntry_message(ctx, field)
			case "adminNotes":
				return ec.fieldContext_ApprovalHistoryEntry_adminNotes(ctx, field)
			case "reason":
				return ec.fieldContext_ApprovalHistoryEntry_reason(ctx, field)
			case "createdAt":
				return ec.fieldContext_ApprovalHistoryEntry_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ApprovalHistoryEntry", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_approvalHistory_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_myProperties(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_myProperties,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MyProperties(ctx, fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNPropertyList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_myProperties(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_PropertyList_items(ctx, field)
			case "meta":
				return ec.fieldContext_PropertyList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PropertyList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_myProperties_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_savedProperties(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_savedProperties,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().SavedProperties(ctx, fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNPropertyList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_savedProperties(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_PropertyList_items(ctx, field)
			case "meta":
				return ec.fieldContext_PropertyList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PropertyList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_savedProperties_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_notifications(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_notifications,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Notifications(ctx, fc.Args["page"].(*int), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNNotificationList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationListResponse,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_notifications(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_NotificationList_items(ctx, field)
			case "meta":
				return ec.fieldContext_NotificationList_meta(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type NotificationList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_notifications_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Seo_slug(ctx context.Context, field graphql.CollectedField, obj *dto.SeoResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Seo_slug,
		func(ctx context.Context) (any, error) {
			return obj.Slug, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Seo_slug(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Seo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Seo_metaTitle(ctx context.Context, field graphql.CollectedField, obj *dto.SeoResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Seo_metaTitle,
		func(ctx context.Context) (any, error) {
			return obj.MetaTitle, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Seo_metaTitle(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Seo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Seo_metaDescription(ctx context.Context, field graphql.CollectedField, obj *dto.SeoResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Seo_metaDescription,
		func(ctx context.Context) (any, error) {
			return obj.MetaDescription, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Seo_metaDescription(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Seo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Seo_keywords(ctx context.Context, field graphql.CollectedField, obj *dto.SeoResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Seo_keywords,
		func(ctx context.Context) (any, error) {
			return obj.Keywords, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Seo_keywords(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Seo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Verification_isVerified(ctx context.Context, field graphql.CollectedField, obj *dto.VerificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Verification_isVerified,
		func(ctx context.Context) (any, error) {
			return obj.IsVerified, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Verification_isVerified(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Verification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Verification_message(ctx context.Context, field graphql.CollectedField, obj *dto.VerificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Verification_message,
		func(ctx context.Context) (any, error) {
			return obj.Message, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Verification_message(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Verification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Verification_notes(ctx context.Context, field graphql.CollectedField, obj *dto.VerificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Verification_notes,
		func(ctx context.Context) (any, error) {
			return obj.Notes, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Verification_notes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Verification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Verification_verifiedBy(ctx context.Context, field graphql.CollectedField, obj *dto.VerificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Verification_verifiedBy,
		func(ctx context.Context) (any, error) {
			return obj.VerifiedBy, nil
		},
		nil,
		ec.marshalOUint642ᚖuint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Verification_verifiedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Verification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Verification_verifiedAt(ctx context.Context, field graphql.CollectedField, obj *dto.VerificationResponse) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Verification_verifiedAt,
		func(ctx context.Context) (any, error) {
			return obj.VerifiedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Verification_verifiedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Verification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputCoordinateInput(ctx context.Context, obj any) (dto.CoordinateResponse, error) {
	var it dto.CoordinateResponse
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"latitude", "longitude"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "latitude":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("latitude"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Latitude = data
		case "longitude":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("longitude"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Longitude = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateImageInput(ctx context.Context, obj any) (dto.CreateImageRequest, error) {
	var it dto.CreateImageRequest
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"sourceUrl", "imageType", "caption", "altText", "sortOrder", "isMain"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "sourceUrl":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sourceUrl"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.SourceURL = data
		case "imageType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("imageType"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ImageType = data
		case "caption":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("caption"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Caption = data
		case "altText":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("altText"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.AltText = data
		case "sortOrder":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sortOrder"))
			data, err := ec.unmarshalOInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.SortOrder = data
		case "isMain":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isMain"))
			data, err := ec.unmarshalOBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsMain = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreatePropertyInput(ctx context.Context, obj any) (dto.CreatePropertyRequest, error) {
	var it dto.CreatePropertyRequest
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"title", "description", "propertyType", "price", "area", "areaUnit", "address", "city", "district", "state", "country", "postalCode", "latitude", "longitude", "boundary", "khasraNumber", "murabbaNumber", "khewatNumber", "ownerName", "ownerPhone", "metaTitle", "metaDescription", "keywords", "images"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "propertyType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("propertyType"))
			data, err := ec.unmarshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType(ctx, v)
			if err != nil {
				return it, err
			}
			it.PropertyType = data
		case "price":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("price"))
			data, err := ec.unmarshalNInt2int64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Price = data
		case "area":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("area"))
			data, err := ec.unmarshalOFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Area = data
		case "areaUnit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("areaUnit"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.AreaUnit = data
		case "address":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("address"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Address = data
		case "city":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("city"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.City = data
		case "district":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("district"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.District = data
		case "state":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("state"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.State = data
		case "country":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("country"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Country = data
		case "postalCode":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("postalCode"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PostalCode = data
		case "latitude":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("latitude"))
			data, err := ec.unmarshalOFloat2ᚖfloat64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Latitude = data
		case "longitude":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("longitude"))
			data, err := ec.unmarshalOFloat2ᚖfloat64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Longitude = data
		case "boundary":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("boundary"))
			data, err := ec.unmarshalOCoordinateInput2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponseᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Boundary = data
		case "khasraNumber":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("khasraNumber"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.KhasraNumber = data
		case "murabbaNumber":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("murabbaNumber"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.MurabbaNumber = data
		case "khewatNumber":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("khewatNumber"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.KhewatNumber = data
		case "ownerName":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("ownerName"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.OwnerName = data
		case "ownerPhone":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("ownerPhone"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.OwnerPhone = data
		case "metaTitle":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metaTitle"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetaTitle = data
		case "metaDescription":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metaDescription"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetaDescription = data
		case "keywords":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("keywords"))
			data, err := ec.unmarshalOString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Keywords = data
		case "images":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("images"))
			data, err := ec.unmarshalOCreateImageInput2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreateImageRequestᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Images = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMapBoundsInput(ctx context.Context, obj any) (dto.MapBoundsRequest, error) {
	var it dto.MapBoundsRequest
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"minLat", "maxLat", "minLng", "maxLng"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "minLat":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("minLat"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.MinLat = data
		case "maxLat":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("maxLat"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.MaxLat = data
		case "minLng":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("minLng"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.MinLng = data
		case "maxLng":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("maxLng"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.MaxLng = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var approvalHistoryEntryImplementors = []string{"ApprovalHistoryEntry"}

func (ec *executionContext) _ApprovalHistoryEntry(ctx context.Context, sel ast.SelectionSet, obj *dto.ApprovalHistoryResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, approvalHistoryEntryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ApprovalHistoryEntry")
		case "id":
			out.Values[i] = ec._ApprovalHistoryEntry_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "propertyId":
			out.Values[i] = ec._ApprovalHistoryEntry_propertyId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "adminId":
			out.Values[i] = ec._ApprovalHistoryEntry_adminId(ctx, field, obj)
		case "action":
			out.Values[i] = ec._ApprovalHistoryEntry_action(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "previousStatus":
			out.Values[i] = ec._ApprovalHistoryEntry_previousStatus(ctx, field, obj)
		case "newStatus":
			out.Values[i] = ec._ApprovalHistoryEntry_newStatus(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "message":
			out.Values[i] = ec._ApprovalHistoryEntry_message(ctx, field, obj)
		case "adminNotes":
			out.Values[i] = ec._ApprovalHistoryEntry_adminNotes(ctx, field, obj)
		case "reason":
			out.Values[i] = ec._ApprovalHistoryEntry_reason(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._ApprovalHistoryEntry_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var blogPostImplementors = []string{"BlogPost"}

func (ec *executionContext) _BlogPost(ctx context.Context, sel ast.SelectionSet, obj *dto.BlogPostResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, blogPostImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("BlogPost")
		case "id":
			out.Values[i] = ec._BlogPost_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._BlogPost_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "slug":
			out.Values[i] = ec._BlogPost_slug(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "body":
			out.Values[i] = ec._BlogPost_body(ctx, field, obj)
		case "status":
			out.Values[i] = ec._BlogPost_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "publishedAt":
			out.Values[i] = ec._BlogPost_publishedAt(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._BlogPost_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._BlogPost_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var blogPostListImplementors = []string{"BlogPostList"}

func (ec *executionContext) _BlogPostList(ctx context.Context, sel ast.SelectionSet, obj *dto.BlogPostListResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, blogPostListImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("BlogPostList")
		case "items":
			out.Values[i] = ec._BlogPostList_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "meta":
			out.Values[i] = ec._BlogPostList_meta(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var coordinateImplementors = []string{"Coordinate"}

func (ec *executionContext) _Coordinate(ctx context.Context, sel ast.SelectionSet, obj *dto.CoordinateResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, coordinateImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Coordinate")
		case "latitude":
			out.Values[i] = ec._Coordinate_latitude(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "longitude":
			out.Values[i] = ec._Coordinate_longitude(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mapPropertyImplementors = []string{"MapProperty"}

func (ec *executionContext) _MapProperty(ctx context.Context, sel ast.SelectionSet, obj *dto.MapPropertyResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mapPropertyImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MapProperty")
		case "id":
			out.Values[i] = ec._MapProperty_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._MapProperty_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "propertyType":
			out.Values[i] = ec._MapProperty_propertyType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "price":
			out.Values[i] = ec._MapProperty_price(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "latitude":
			out.Values[i] = ec._MapProperty_latitude(ctx, field, obj)
		case "longitude":
			out.Values[i] = ec._MapProperty_longitude(ctx, field, obj)
		case "boundary":
			out.Values[i] = ec._MapProperty_boundary(ctx, field, obj)
		case "slug":
			out.Values[i] = ec._MapProperty_slug(ctx, field, obj)
		case "daysOnMarket":
			out.Values[i] = ec._MapProperty_daysOnMarket(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "saved":
			out.Values[i] = ec._MapProperty_saved(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var metaImplementors = []string{"Meta"}

func (ec *executionContext) _Meta(ctx context.Context, sel ast.SelectionSet, obj *dto.Meta) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, metaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Meta")
		case "total":
			out.Values[i] = ec._Meta_total(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "page":
			out.Values[i] = ec._Meta_page(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "limit":
			out.Values[i] = ec._Meta_limit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalPages":
			out.Values[i] = ec._Meta_totalPages(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "approveProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_approveProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "rejectProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_rejectProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "verifyProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_verifyProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "saveProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_saveProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unsaveProperty":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_unsaveProperty(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "markNotificationRead":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_markNotificationRead(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var notificationImplementors = []string{"Notification"}

func (ec *executionContext) _Notification(ctx context.Context, sel ast.SelectionSet, obj *dto.NotificationResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, notificationImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Notification")
		case "id":
			out.Values[i] = ec._Notification_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "propertyId":
			out.Values[i] = ec._Notification_propertyId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "action":
			out.Values[i] = ec._Notification_action(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._Notification_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "message":
			out.Values[i] = ec._Notification_message(ctx, field, obj)
		case "priority":
			out.Values[i] = ec._Notification_priority(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "category":
			out.Values[i] = ec._Notification_category(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isRead":
			out.Values[i] = ec._Notification_isRead(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "readAt":
			out.Values[i] = ec._Notification_readAt(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Notification_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var notificationListImplementors = []string{"NotificationList"}

func (ec *executionContext) _NotificationList(ctx context.Context, sel ast.SelectionSet, obj *dto.NotificationListResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, notificationListImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("NotificationList")
		case "items":
			out.Values[i] = ec._NotificationList_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "meta":
			out.Values[i] = ec._NotificationList_meta(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var propertyImplementors = []string{"Property"}

func (ec *executionContext) _Property(ctx context.Context, sel ast.SelectionSet, obj *dto.PropertyResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, propertyImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Property")
		case "id":
			out.Values[i] = ec._Property_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._Property_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec._Property_description(ctx, field, obj)
		case "propertyType":
			out.Values[i] = ec._Property_propertyType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "price":
			out.Values[i] = ec._Property_price(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "area":
			out.Values[i] = ec._Property_area(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "areaUnit":
			out.Values[i] = ec._Property_areaUnit(ctx, field, obj)
		case "address":
			out.Values[i] = ec._Property_address(ctx, field, obj)
		case "city":
			out.Values[i] = ec._Property_city(ctx, field, obj)
		case "district":
			out.Values[i] = ec._Property_district(ctx, field, obj)
		case "state":
			out.Values[i] = ec._Property_state(ctx, field, obj)
		case "country":
			out.Values[i] = ec._Property_country(ctx, field, obj)
		case "postalCode":
			out.Values[i] = ec._Property_postalCode(ctx, field, obj)
		case "latitude":
			out.Values[i] = ec._Property_latitude(ctx, field, obj)
		case "longitude":
			out.Values[i] = ec._Property_longitude(ctx, field, obj)
		case "boundary":
			out.Values[i] = ec._Property_boundary(ctx, field, obj)
		case "khasraNumber":
			out.Values[i] = ec._Property_khasraNumber(ctx, field, obj)
		case "murabbaNumber":
			out.Values[i] = ec._Property_murabbaNumber(ctx, field, obj)
		case "khewatNumber":
			out.Values[i] = ec._Property_khewatNumber(ctx, field, obj)
		case "createdByType":
			out.Values[i] = ec._Property_createdByType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdByAdminId":
			out.Values[i] = ec._Property_createdByAdminId(ctx, field, obj)
		case "createdByUserId":
			out.Values[i] = ec._Property_createdByUserId(ctx, field, obj)
		case "ownerName":
			out.Values[i] = ec._Property_ownerName(ctx, field, obj)
		case "approvalStatus":
			out.Values[i] = ec._Property_approvalStatus(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "approvalMessage":
			out.Values[i] = ec._Property_approvalMessage(ctx, field, obj)
		case "approvedBy":
			out.Values[i] = ec._Property_approvedBy(ctx, field, obj)
		case "approvedAt":
			out.Values[i] = ec._Property_approvedAt(ctx, field, obj)
		case "rejectionReason":
			out.Values[i] = ec._Property_rejectionReason(ctx, field, obj)
		case "rejectedBy":
			out.Values[i] = ec._Property_rejectedBy(ctx, field, obj)
		case "rejectedAt":
			out.Values[i] = ec._Property_rejectedAt(ctx, field, obj)
		case "adminNotes":
			out.Values[i] = ec._Property_adminNotes(ctx, field, obj)
		case "lastReviewedBy":
			out.Values[i] = ec._Property_lastReviewedBy(ctx, field, obj)
		case "lastReviewedAt":
			out.Values[i] = ec._Property_lastReviewedAt(ctx, field, obj)
		case "seo":
			out.Values[i] = ec._Property_seo(ctx, field, obj)
		case "verification":
			out.Values[i] = ec._Property_verification(ctx, field, obj)
		case "images":
			out.Values[i] = ec._Property_images(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._Property_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._Property_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var propertyImageImplementors = []string{"PropertyImage"}

func (ec *executionContext) _PropertyImage(ctx context.Context, sel ast.SelectionSet, obj *dto.PropertyImageResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, propertyImageImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PropertyImage")
		case "id":
			out.Values[i] = ec._PropertyImage_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "imageUrl":
			out.Values[i] = ec._PropertyImage_imageUrl(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "imageType":
			out.Values[i] = ec._PropertyImage_imageType(ctx, field, obj)
		case "caption":
			out.Values[i] = ec._PropertyImage_caption(ctx, field, obj)
		case "altText":
			out.Values[i] = ec._PropertyImage_altText(ctx, field, obj)
		case "sortOrder":
			out.Values[i] = ec._PropertyImage_sortOrder(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isMain":
			out.Values[i] = ec._PropertyImage_isMain(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "variantUrls":
			out.Values[i] = ec._PropertyImage_variantUrls(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var propertyListImplementors = []string{"PropertyList"}

func (ec *executionContext) _PropertyList(ctx context.Context, sel ast.SelectionSet, obj *dto.PropertyListResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, propertyListImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PropertyList")
		case "items":
			out.Values[i] = ec._PropertyList_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "meta":
			out.Values[i] = ec._PropertyList_meta(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "property":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_property(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "properties":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_properties(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mapProperties":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mapProperties(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "blogPost":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_blogPost(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "blogPosts":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_blogPosts(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "propertiesByStatus":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_propertiesByStatus(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "approvalHistory":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_approvalHistory(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "myProperties":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_myProperties(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "savedProperties":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_savedProperties(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "notifications":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_notifications(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var seoImplementors = []string{"Seo"}

func (ec *executionContext) _Seo(ctx context.Context, sel ast.SelectionSet, obj *dto.SeoResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, seoImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Seo")
		case "slug":
			out.Values[i] = ec._Seo_slug(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "metaTitle":
			out.Values[i] = ec._Seo_metaTitle(ctx, field, obj)
		case "metaDescription":
			out.Values[i] = ec._Seo_metaDescription(ctx, field, obj)
		case "keywords":
			out.Values[i] = ec._Seo_keywords(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var verificationImplementors = []string{"Verification"}

func (ec *executionContext) _Verification(ctx context.Context, sel ast.SelectionSet, obj *dto.VerificationResponse) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, verificationImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Verification")
		case "isVerified":
			out.Values[i] = ec._Verification_isVerified(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "message":
			out.Values[i] = ec._Verification_message(ctx, field, obj)
		case "notes":
			out.Values[i] = ec._Verification_notes(ctx, field, obj)
		case "verifiedBy":
			out.Values[i] = ec._Verification_verifiedBy(ctx, field, obj)
		case "verifiedAt":
			out.Values[i] = ec._Verification_verifiedAt(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) marshalNApprovalHistoryEntry2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐApprovalHistoryResponse(ctx context.Context, sel ast.SelectionSet, v dto.ApprovalHistoryResponse) graphql.Marshaler {
	return ec._ApprovalHistoryEntry(ctx, sel, &v)
}

func (ec *executionContext) marshalNApprovalHistoryEntry2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐApprovalHistoryResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.ApprovalHistoryResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNApprovalHistoryEntry2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐApprovalHistoryResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNApprovalStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus(ctx context.Context, v any) (domain.ApprovalStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ApprovalStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNApprovalStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus(ctx context.Context, sel ast.SelectionSet, v domain.ApprovalStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNBlogPost2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponse(ctx context.Context, sel ast.SelectionSet, v dto.BlogPostResponse) graphql.Marshaler {
	return ec._BlogPost(ctx, sel, &v)
}

func (ec *executionContext) marshalNBlogPost2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.BlogPostResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNBlogPost2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNBlogPostList2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostListResponse(ctx context.Context, sel ast.SelectionSet, v dto.BlogPostListResponse) graphql.Marshaler {
	return ec._BlogPostList(ctx, sel, &v)
}

func (ec *executionContext) marshalNBlogPostList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostListResponse(ctx context.Context, sel ast.SelectionSet, v *dto.BlogPostListResponse) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._BlogPostList(ctx, sel, v)
}

func (ec *executionContext) unmarshalNBlogPostStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋstoreᚋschemaᚐBlogPostStatus(ctx context.Context, v any) (schema.BlogPostStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := schema.BlogPostStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBlogPostStatus2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋstoreᚋschemaᚐBlogPostStatus(ctx context.Context, sel ast.SelectionSet, v schema.BlogPostStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNCoordinate2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponse(ctx context.Context, sel ast.SelectionSet, v dto.CoordinateResponse) graphql.Marshaler {
	return ec._Coordinate(ctx, sel, &v)
}

func (ec *executionContext) unmarshalNCoordinateInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponse(ctx context.Context, v any) (dto.CoordinateResponse, error) {
	res, err := ec.unmarshalInputCoordinateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateImageInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreateImageRequest(ctx context.Context, v any) (dto.CreateImageRequest, error) {
	res, err := ec.unmarshalInputCreateImageInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreatePropertyInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreatePropertyRequest(ctx context.Context, v any) (dto.CreatePropertyRequest, error) {
	res, err := ec.unmarshalInputCreatePropertyInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreatedByType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐCreatedByType(ctx context.Context, v any) (domain.CreatedByType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.CreatedByType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCreatedByType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐCreatedByType(ctx context.Context, sel ast.SelectionSet, v domain.CreatedByType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNFloat2float64(ctx context.Context, v any) (float64, error) {
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNFloat2float64(ctx context.Context, sel ast.SelectionSet, v float64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalFloatContext(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalNInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNInt2int64(ctx context.Context, v any) (int64, error) {
	res, err := graphql.UnmarshalInt64(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int64(ctx context.Context, sel ast.SelectionSet, v int64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt64(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNMapProperty2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapPropertyResponse(ctx context.Context, sel ast.SelectionSet, v dto.MapPropertyResponse) graphql.Marshaler {
	return ec._MapProperty(ctx, sel, &v)
}

func (ec *executionContext) marshalNMapProperty2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapPropertyResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.MapPropertyResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMapProperty2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapPropertyResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMeta2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMeta(ctx context.Context, sel ast.SelectionSet, v dto.Meta) graphql.Marshaler {
	return ec._Meta(ctx, sel, &v)
}

func (ec *executionContext) marshalNNotification2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationResponse(ctx context.Context, sel ast.SelectionSet, v dto.NotificationResponse) graphql.Marshaler {
	return ec._Notification(ctx, sel, &v)
}

func (ec *executionContext) marshalNNotification2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.NotificationResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNNotification2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNNotificationAction2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐNotificationAction(ctx context.Context, v any) (domain.NotificationAction, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.NotificationAction(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNNotificationAction2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐNotificationAction(ctx context.Context, sel ast.SelectionSet, v domain.NotificationAction) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNNotificationList2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationListResponse(ctx context.Context, sel ast.SelectionSet, v dto.NotificationListResponse) graphql.Marshaler {
	return ec._NotificationList(ctx, sel, &v)
}

func (ec *executionContext) marshalNNotificationList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐNotificationListResponse(ctx context.Context, sel ast.SelectionSet, v *dto.NotificationListResponse) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._NotificationList(ctx, sel, v)
}

func (ec *executionContext) marshalNProperty2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse(ctx context.Context, sel ast.SelectionSet, v dto.PropertyResponse) graphql.Marshaler {
	return ec._Property(ctx, sel, &v)
}

func (ec *executionContext) marshalNProperty2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.PropertyResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNProperty2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse(ctx context.Context, sel ast.SelectionSet, v *dto.PropertyResponse) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Property(ctx, sel, v)
}

func (ec *executionContext) marshalNPropertyImage2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyImageResponse(ctx context.Context, sel ast.SelectionSet, v dto.PropertyImageResponse) graphql.Marshaler {
	return ec._PropertyImage(ctx, sel, &v)
}

func (ec *executionContext) marshalNPropertyImage2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyImageResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.PropertyImageResponse) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPropertyImage2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyImageResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPropertyList2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse(ctx context.Context, sel ast.SelectionSet, v dto.PropertyListResponse) graphql.Marshaler {
	return ec._PropertyList(ctx, sel, &v)
}

func (ec *executionContext) marshalNPropertyList2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyListResponse(ctx context.Context, sel ast.SelectionSet, v *dto.PropertyListResponse) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PropertyList(ctx, sel, v)
}

func (ec *executionContext) unmarshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType(ctx context.Context, v any) (domain.PropertyType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := unmarshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType[tmp]
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType(ctx context.Context, sel ast.SelectionSet, v domain.PropertyType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(marshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType[v])
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

var (
	unmarshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType = map[string]domain.PropertyType{
		"AGRICULTURAL": domain.PropertyTypeAgricultural,
		"COMMERCIAL":   domain.PropertyTypeCommercial,
		"RESIDENTIAL":  domain.PropertyTypeResidential,
		"INDUSTRIAL":   domain.PropertyTypeIndustrial,
		"VILLA":        domain.PropertyTypeVilla,
		"APARTMENT":    domain.PropertyTypeApartment,
		"PLOT":         domain.PropertyTypePlot,
		"FARMHOUSE":    domain.PropertyTypeFarmhouse,
		"WAREHOUSE":    domain.PropertyTypeWarehouse,
		"OFFICE":       domain.PropertyTypeOffice,
		"OTHER":        domain.PropertyTypeOther,
	}
	marshalNPropertyType2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐPropertyType = map[domain.PropertyType]string{
		domain.PropertyTypeAgricultural: "AGRICULTURAL",
		domain.PropertyTypeCommercial:   "COMMERCIAL",
		domain.PropertyTypeResidential:  "RESIDENTIAL",
		domain.PropertyTypeIndustrial:   "INDUSTRIAL",
		domain.PropertyTypeVilla:        "VILLA",
		domain.PropertyTypeApartment:    "APARTMENT",
		domain.PropertyTypePlot:         "PLOT",
		domain.PropertyTypeFarmhouse:    "FARMHOUSE",
		domain.PropertyTypeWarehouse:    "WAREHOUSE",
		domain.PropertyTypeOffice:       "OFFICE",
		domain.PropertyTypeOther:        "OTHER",
	}
)

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := graphql.UnmarshalTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNUint642uint64(ctx context.Context, v any) (uint64, error) {
	res, err := UnmarshalUint64(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUint642uint64(ctx context.Context, sel ast.SelectionSet, v uint64) graphql.Marshaler {
	_ = sel
	res := MarshalUint64(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalOApprovalStatus2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus(ctx context.Context, v any) (*domain.ApprovalStatus, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ApprovalStatus(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOApprovalStatus2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋdomainᚐApprovalStatus(ctx context.Context, sel ast.SelectionSet, v *domain.ApprovalStatus) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) marshalOBlogPost2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐBlogPostResponse(ctx context.Context, sel ast.SelectionSet, v *dto.BlogPostResponse) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._BlogPost(ctx, sel, v)
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) marshalOCoordinate2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponseᚄ(ctx context.Context, sel ast.SelectionSet, v []dto.CoordinateResponse) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCoordinate2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponse(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOCoordinateInput2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponseᚄ(ctx context.Context, v any) ([]dto.CoordinateResponse, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]dto.CoordinateResponse, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCoordinateInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCoordinateResponse(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalOCreateImageInput2ᚕgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreateImageRequestᚄ(ctx context.Context, v any) ([]dto.CreateImageRequest, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]dto.CreateImageRequest, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCreateImageInput2githubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐCreateImageRequest(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalOFloat2float64(ctx context.Context, v any) (float64, error) {
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOFloat2float64(ctx context.Context, sel ast.SelectionSet, v float64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalFloatContext(v)
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalOFloat2ᚖfloat64(ctx context.Context, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOFloat2ᚖfloat64(ctx context.Context, sel ast.SelectionSet, v *float64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	res := graphql.MarshalFloatContext(*v)
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalOInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(v)
	return res
}

func (ec *executionContext) unmarshalOInt2ᚖint(ctx context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint(ctx context.Context, sel ast.SelectionSet, v *int) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(*v)
	return res
}

func (ec *executionContext) unmarshalOMapBoundsInput2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐMapBoundsRequest(ctx context.Context, v any) (*dto.MapBoundsRequest, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputMapBoundsInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOProperty2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐPropertyResponse(ctx context.Context, sel ast.SelectionSet, v *dto.PropertyResponse) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Property(ctx, sel, v)
}

func (ec *executionContext) marshalOSeo2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐSeoResponse(ctx context.Context, sel ast.SelectionSet, v *dto.SeoResponse) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Seo(ctx, sel, v)
}

func (ec *executionContext) unmarshalOString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalString(v)
	return res
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) unmarshalOStringMap2map(ctx context.Context, v any) (map[string]string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := UnmarshalStringMap(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOStringMap2map(ctx context.Context, sel ast.SelectionSet, v map[string]string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := MarshalStringMap(v)
	return res
}

func (ec *executionContext) unmarshalOTime2ᚖtimeᚐTime(ctx context.Context, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalTime(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOTime2ᚖtimeᚐTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalTime(*v)
	return res
}

func (ec *executionContext) unmarshalOUint642ᚖuint64(ctx context.Context, v any) (*uint64, error) {
	if v == nil {
		return nil, nil
	}
	res, err := UnmarshalUint64(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOUint642ᚖuint64(ctx context.Context, sel ast.SelectionSet, v *uint64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := MarshalUint64(*v)
	return res
}

func (ec *executionContext) marshalOVerification2ᚖgithubᚗcomᚋpropsetuᚋestateᚑbackendᚋinternalᚋapiᚋsharedᚋdtoᚐVerificationResponse(ctx context.Context, sel ast.SelectionSet, v *dto.VerificationResponse) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Verification(ctx, sel, v)
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
