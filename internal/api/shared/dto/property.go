package dto

import (
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// Meta carries pagination info for list responses
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// CoordinateResponse is one boundary vertex
type CoordinateResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PropertyImageResponse represents one listing photo
type PropertyImageResponse struct {
	ID          uint64            `json:"id"`
	ImageURL    string            `json:"image_url"`
	ImageType   string            `json:"image_type,omitempty"`
	Caption     string            `json:"caption,omitempty"`
	AltText     string            `json:"alt_text,omitempty"`
	SortOrder   int               `json:"sort_order"`
	IsMain      bool              `json:"is_main"`
	VariantURLs map[string]string `json:"variant_urls,omitempty"`
}

// SeoResponse represents a listing's SEO row
type SeoResponse struct {
	Slug            string `json:"slug"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	Keywords        string `json:"keywords,omitempty"`
}

// VerificationResponse represents a listing's verification state
type VerificationResponse struct {
	IsVerified bool       `json:"is_verified"`
	Message    string     `json:"message,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	VerifiedBy *uint64    `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// PropertyResponse represents a listing with its associations
type PropertyResponse struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	PropertyType domain.PropertyType `json:"property_type"`
	Price        int64               `json:"price"`
	Area         float64             `json:"area"`
	AreaUnit     string              `json:"area_unit,omitempty"`

	Address    string               `json:"address,omitempty"`
	City       string               `json:"city,omitempty"`
	District   string               `json:"district,omitempty"`
	State      string               `json:"state,omitempty"`
	Country    string               `json:"country,omitempty"`
	PostalCode string               `json:"postal_code,omitempty"`
	Latitude   *float64             `json:"lat,omitempty"`
	Longitude  *float64             `json:"lng,omitempty"`
	Boundary   []CoordinateResponse `json:"boundary,omitempty"`

	KhasraNumber  string `json:"khasra_number,omitempty"`
	MurabbaNumber string `json:"murabba_number,omitempty"`
	KhewatNumber  string `json:"khewat_number,omitempty"`

	CreatedByType    domain.CreatedByType `json:"created_by_type"`
	CreatedByAdminID *uint64              `json:"created_by_admin_id,omitempty"`
	CreatedByUserID  *uint64              `json:"created_by_user_id,omitempty"`
	OwnerName        string               `json:"owner_name,omitempty"`

	ApprovalStatus  domain.ApprovalStatus `json:"approval_status"`
	ApprovalMessage *string               `json:"approval_message,omitempty"`
	ApprovedBy      *uint64               `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
	RejectionReason *string               `json:"rejection_reason,omitempty"`
	RejectedBy      *uint64               `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time            `json:"rejected_at,omitempty"`
	AdminNotes      *string               `json:"admin_notes,omitempty"`
	LastReviewedBy  *uint64               `json:"last_reviewed_by,omitempty"`
	LastReviewedAt  *time.Time            `json:"last_reviewed_at,omitempty"`

	Seo          *SeoResponse            `json:"seo,omitempty"`
	Verification *VerificationResponse   `json:"verification,omitempty"`
	Images       []PropertyImageResponse `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyListResponse represents one page of listings
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Meta  Meta               `json:"meta"`
}

// MapPropertyResponse represents a listing decorated for map rendering
type MapPropertyResponse struct {
	ID           uint64               `json:"id"`
	Title        string               `json:"title"`
	PropertyType domain.PropertyType  `json:"property_type"`
	Price        int64                `json:"price"`
	Latitude     *float64             `json:"lat"`
	Longitude    *float64             `json:"lng"`
	Boundary     []CoordinateResponse `json:"boundary,omitempty"`
	Slug         string               `json:"slug,omitempty"`
	DaysOnMarket int                  `json:"days_on_market"`
	Saved        *bool                `json:"saved,omitempty"`
}

// ApprovalHistoryResponse represents one audit-trail entry
type ApprovalHistoryResponse struct {
	ID             uint64                 `json:"id"`
	PropertyID     uint64                 `json:"property_id"`
	AdminID        *uint64                `json:"admin_id,omitempty"`
	Action         string                 `json:"action"`
	PreviousStatus *domain.ApprovalStatus `json:"previous_status,omitempty"`
	NewStatus      domain.ApprovalStatus  `json:"new_status"`
	Message        *string                `json:"message,omitempty"`
	AdminNotes     *string                `json:"admin_notes,omitempty"`
	Reason         *string                `json:"reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// MapPropertyToDTO maps a schema.Property to PropertyResponse
func MapPropertyToDTO(p *schema.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	resp := &PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Price:        p.Price,
		Area:         p.Area,
		AreaUnit:     p.AreaUnit,

		Address:    p.Address,
		City:       p.City,
		District:   p.District,
		State:      p.State,
		Country:    p.Country,
		PostalCode: p.PostalCode,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Boundary:   mapBoundary(p.Boundary),

		KhasraNumber:  p.KhasraNumber,
		MurabbaNumber: p.MurabbaNumber,
		KhewatNumber:  p.KhewatNumber,

		CreatedByType:    p.CreatedByType,
		CreatedByAdminID: p.CreatedByAdminID,
		CreatedByUserID:  p.CreatedByUserID,
		OwnerName:        p.OwnerName,

		ApprovalStatus:  p.ApprovalStatus,
		ApprovalMessage: p.ApprovalMessage,
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      p.ApprovedAt,
		RejectionReason: p.RejectionReason,
		RejectedBy:      p.RejectedBy,
		RejectedAt:      p.RejectedAt,
		AdminNotes:      p.AdminNotes,
		LastReviewedBy:  p.LastReviewedBy,
		LastReviewedAt:  p.LastReviewedAt,

		Images: mapImages(p.Images),

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Seo != nil {
		resp.Seo = &SeoResponse{
			Slug:            p.Seo.Slug,
			MetaTitle:       p.Seo.MetaTitle,
			MetaDescription: p.Seo.MetaDescription,
			Keywords:        p.Seo.Keywords,
		}
	}
	if p.Verification != nil {
		resp.Verification = &VerificationResponse{
			IsVerified: p.Verification.IsVerified,
			Message:    p.Verification.VerificationMessage,
			Notes:      p.Verification.VerificationNotes,
			VerifiedBy: p.Verification.VerifiedBy,
			VerifiedAt: p.Verification.VerifiedAt,
		}
	}

	return resp
}

// MapMapPropertyToDTO maps a store.MapProperty to MapPropertyResponse
func MapMapPropertyToDTO(mp *store.MapProperty) *MapPropertyResponse {
	resp := &MapPropertyResponse{
		ID:           mp.Property.ID,
		Title:        mp.Property.Title,
		PropertyType: mp.Property.PropertyType,
		Price:        mp.Property.Price,
		Latitude:     mp.Property.Latitude,
		Longitude:    mp.Property.Longitude,
		Boundary:     mapBoundary(mp.Property.Boundary),
		DaysOnMarket: mp.DaysOnMarket,
		Saved:        mp.Saved,
	}
	if mp.Property.Seo != nil {
		resp.Slug = mp.Property.Seo.Slug
	}
	return resp
}

// MapApprovalHistoryToDTO maps a schema.PropertyApprovalHistory to ApprovalHistoryResponse
func MapApprovalHistoryToDTO(h *schema.PropertyApprovalHistory) *ApprovalHistoryResponse {
	// The submission entry has no previous status
	var prev *domain.ApprovalStatus
	if h.PreviousStatus != "" {
		p := h.PreviousStatus
		prev = &p
	}
	return &ApprovalHistoryResponse{
		ID:             h.ID,
		PropertyID:     h.PropertyID,
		AdminID:        h.AdminID,
		Action:         h.Action,
		PreviousStatus: prev,
		NewStatus:      h.NewStatus,
		Message:        h.Message,
		AdminNotes:     h.AdminNotes,
		Reason:         h.Reason,
		CreatedAt:      h.CreatedAt,
	}
}

func mapBoundary(b schema.Boundary) []CoordinateResponse {
	if len(b) == 0 {
		return nil
	}
	coords := make([]CoordinateResponse, len(b))
	for i, c := range b {
		coords[i] = CoordinateResponse{Latitude: c.Latitude, Longitude: c.Longitude}
	}
	return coords
}

func mapImages(images []schema.PropertyImage) []PropertyImageResponse {
	// Empty arrays serialize as [], not null
	resp := make([]PropertyImageResponse, len(images))
	for i, img := range images {
		resp[i] = PropertyImageResponse{
			ID:          img.ID,
			ImageURL:    img.ImageURL,
			ImageType:   img.ImageType,
			Caption:     img.Caption,
			AltText:     img.AltText,
			SortOrder:   img.SortOrder,
			IsMain:      img.IsMain,
			VariantURLs: img.VariantURLs,
		}
	}
	return resp
}
