package domain

// ApprovalStatus is the admin-review state of a property listing.
type ApprovalStatus string

const (
	// ApprovalStatusPending is the initial state of every new listing.
	ApprovalStatusPending ApprovalStatus = "PENDING"
	// ApprovalStatusApproved means an admin accepted the listing for public display.
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	// ApprovalStatusRejected means an admin declined the listing.
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
	// ApprovalStatusFlagged is a legacy value still present in old rows.
	// There is no workflow transition into this state; it is kept so that
	// historical data scans and decodes cleanly.
	ApprovalStatusFlagged ApprovalStatus = "FLAGGED"
)

// Valid reports whether s is a status the store accepts.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusFlagged:
		return true
	}
	return false
}

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeAgricultural PropertyType = "agricultural"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeResidential  PropertyType = "residential"
	PropertyTypeIndustrial   PropertyType = "industrial"
	PropertyTypeVilla        PropertyType = "villa"
	PropertyTypeApartment    PropertyType = "apartment"
	PropertyTypePlot         PropertyType = "plot"
	PropertyTypeFarmhouse    PropertyType = "farmhouse"
	PropertyTypeWarehouse    PropertyType = "warehouse"
	PropertyTypeOffice       PropertyType = "office"
	PropertyTypeOther        PropertyType = "other"
)

// Valid reports whether t is a known listing classification.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeAgricultural, PropertyTypeCommercial, PropertyTypeResidential,
		PropertyTypeIndustrial, PropertyTypeVilla, PropertyTypeApartment,
		PropertyTypePlot, PropertyTypeFarmhouse, PropertyTypeWarehouse,
		PropertyTypeOffice, PropertyTypeOther:
		return true
	}
	return false
}

// CreatedByType records which kind of account submitted a property.
// Exactly one of the admin/user foreign keys is set, matching this value.
type CreatedByType string

const (
	CreatedByAdmin CreatedByType = "ADMIN"
	CreatedByUser  CreatedByType = "USER"
)

// NotificationAction is the status-change event delivered to a property owner.
type NotificationAction string

const (
	ActionApprove  NotificationAction = "APPROVE"
	ActionReject   NotificationAction = "REJECT"
	ActionVerify   NotificationAction = "VERIFY"
	ActionUnverify NotificationAction = "UNVERIFY"
	// ActionFlag is declared for the legacy FLAGGED status. No workflow
	// operation emits it today; the dispatcher still knows how to render it.
	ActionFlag NotificationAction = "FLAG"
)

// AdminRole is the coarse staff role used by resolver-level permission gates.
type AdminRole string

const (
	AdminRoleSuperAdmin    AdminRole = "SUPER_ADMIN"
	AdminRoleModerator     AdminRole = "MODERATOR"
	AdminRoleContentEditor AdminRole = "CONTENT_EDITOR"
)

// PropertyEventType identifies a property lifecycle event published to the
// message broker for downstream consumers (search index, analytics).
type PropertyEventType string

const (
	EventPropertyApproved PropertyEventType = "property.approved"
	EventPropertyRejected PropertyEventType = "property.rejected"
	EventPropertyVerified PropertyEventType = "property.verified"
)
