package dto

import "github.com/propsetu/estate-backend/internal/domain"

// CreateImageRequest is one photo attached to a new listing. The source URL
// is re-hosted on the media provider during creation
type CreateImageRequest struct {
	SourceURL string `json:"source_url"`
	ImageType string `json:"image_type,omitempty"`
	Caption   string `json:"caption,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
	IsMain    bool   `json:"is_main,omitempty"`
}

// CreatePropertyRequest is the payload for submitting a new listing
type CreatePropertyRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	PropertyType domain.PropertyType `json:"property_type"`
	Price        int64               `json:"price"`
	Area         float64             `json:"area,omitempty"`
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

	OwnerName  string `json:"owner_name,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	Keywords        string `json:"keywords,omitempty"`

	Images []CreateImageRequest `json:"images,omitempty"`
}

// MapBoundsRequest is a map viewport in degrees
type MapBoundsRequest struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// TransitionRequest is the payload for an approval-workflow mutation
type TransitionRequest struct {
	PropertyID uint64  `json:"property_id"`
	Message    *string `json:"message,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}
