package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testSlugSeq int

// buildTestPropertyInput creates a user-submitted listing input
func buildTestPropertyInput(title, city string, userID uint64) CreatePropertyInput {
	testSlugSeq++
	lat := 28.4595
	lng := 77.0266
	return CreatePropertyInput{
		Title:           title,
		Description:     "A listing used in tests",
		PropertyType:    domain.PropertyTypeResidential,
		Price:           12_500_000,
		Area:            1800,
		AreaUnit:        "sqft",
		Address:         "Sector 57",
		City:            city,
		District:        "Gurugram",
		State:           "Haryana",
		Country:         "India",
		PostalCode:      "122003",
		Latitude:        &lat,
		Longitude:       &lng,
		Boundary:        schema.Boundary{{Latitude: 28.45, Longitude: 77.02}, {Latitude: 28.46, Longitude: 77.03}},
		KhasraNumber:    "123/4",
		CreatedByType:   domain.CreatedByUser,
		CreatedByUserID: &userID,
		OwnerName:       "Ravi Sharma",
		OwnerPhone:      "+919876543210",
		Slug:            fmt.Sprintf("%s-%d", city, testSlugSeq),
		MetaTitle:       title,
		MetaDescription: "Test listing",
		Keywords:        "property,test",
		Images: []CreateImageInput{
			{
				ImageURL:  "https://img.example.com/main.jpg",
				ImageType: "exterior",
				IsMain:    true,
				VariantURLs: schema.VariantURLs{
					"thumbnail": "https://img.example.com/main-thumb.jpg",
					"original":  "https://img.example.com/main.jpg",
				},
			},
			{ImageURL: "https://img.example.com/interior.jpg", ImageType: "interior", SortOrder: 1},
		},
	}
}

// seedUser inserts a user row through the store's underlying connection
func seedUser(t *testing.T, store Store, firstName, lastName, email string) *schema.User {
	t.Helper()
	phone := "+911112223334"
	user := schema.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     &phone,
		IsActive:  true,
	}
	require.NoError(t, store.(*pgStore).db.Create(&user).Error)
	return &user
}

// seedAdmin inserts an admin row through the store's underlying connection
func seedAdmin(t *testing.T, store Store, name, email string) *schema.Admin {
	t.Helper()
	admin := schema.Admin{
		Name:     name,
		Email:    email,
		Role:     domain.AdminRoleModerator,
		IsActive: true,
	}
	require.NoError(t, store.(*pgStore).db.Create(&admin).Error)
	return &admin
}

func strptr(s string) *string { return &s }

// =============================================================================
// Test: CreateProperty
// =============================================================================

func testCreateProperty(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Ravi", "Sharma", "ravi@example.com")

	t.Run("creates property with seo, verification, submission history and images", func(t *testing.T) {
		input := buildTestPropertyInput("Luxury Villa Gurgaon", "Gurgaon", user.ID)

		property, err := store.CreateProperty(ctx, input)
		require.NoError(t, err)
		require.NotZero(t, property.ID)
		assert.Equal(t, domain.ApprovalStatusPending, property.ApprovalStatus)
		require.NotNil(t, property.Seo)
		assert.Equal(t, input.Slug, property.Seo.Slug)
		require.NotNil(t, property.Verification)
		assert.False(t, property.Verification.IsVerified)

		history, err := store.ListApprovalHistory(ctx, property.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "submitted", history[0].Action)
		assert.Equal(t, domain.ApprovalStatus(""), history[0].PreviousStatus)
		assert.Equal(t, domain.ApprovalStatusPending, history[0].NewStatus)

		properties, total, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, properties, 1)
		assert.Len(t, properties[0].Images, 2)
		assert.True(t, properties[0].Images[0].IsMain)
		assert.Equal(t, "https://img.example.com/main-thumb.jpg", properties[0].Images[0].VariantURLs["thumbnail"])
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		first := buildTestPropertyInput("Plot One", "Karnal", user.ID)
		_, err := store.CreateProperty(ctx, first)
		require.NoError(t, err)

		second := buildTestPropertyInput("Plot Two", "Karnal", user.ID)
		second.Slug = first.Slug
		_, err = store.CreateProperty(ctx, second)
		require.ErrorIs(t, err, domain.ErrSlugTaken)
	})
}

// =============================================================================
// Test: TransitionApproval
// =============================================================================

func testTransitionApproval(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Meena", "Kumari", "meena@example.com")
	adminA := seedAdmin(t, store, "Admin A", "admin-a@example.com")
	adminB := seedAdmin(t, store, "Admin B", "admin-b@example.com")

	t.Run("approve then reject keeps full audit trail", func(t *testing.T) {
		property, err := store.CreateProperty(ctx, buildTestPropertyInput("Farm Plot", "Rohtak", user.ID))
		require.NoError(t, err)

		approved, err := store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: property.ID,
			AdminID:    adminA.ID,
			Action:     "approve",
			NewStatus:  domain.ApprovalStatusApproved,
			Message:    strptr("ok"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusPending, approved.PreviousStatus)
		assert.Equal(t, domain.ApprovalStatusApproved, approved.Property.ApprovalStatus)
		require.NotNil(t, approved.Property.ApprovedBy)
		assert.Equal(t, adminA.ID, *approved.Property.ApprovedBy)
		assert.NotNil(t, approved.Property.ApprovedAt)
		require.NotNil(t, approved.Property.LastReviewedBy)
		assert.Equal(t, adminA.ID, *approved.Property.LastReviewedBy)

		rejected, err := store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: property.ID,
			AdminID:    adminB.ID,
			Action:     "reject",
			NewStatus:  domain.ApprovalStatusRejected,
			Reason:     strptr("bad docs"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, rejected.PreviousStatus)
		assert.Equal(t, domain.ApprovalStatusRejected, rejected.Property.ApprovalStatus)
		require.NotNil(t, rejected.Property.RejectedBy)
		assert.Equal(t, adminB.ID, *rejected.Property.RejectedBy)
		require.NotNil(t, rejected.Property.RejectionReason)
		assert.Equal(t, "bad docs", *rejected.Property.RejectionReason)

		history, err := store.ListApprovalHistory(ctx, property.ID)
		require.NoError(t, err)
		// submission entry plus the two transitions
		require.Len(t, history, 3)
		assert.Equal(t, "approve", history[1].Action)
		assert.Equal(t, domain.ApprovalStatusPending, history[1].PreviousStatus)
		assert.Equal(t, domain.ApprovalStatusApproved, history[1].NewStatus)
		assert.Equal(t, "reject", history[2].Action)
		assert.Equal(t, domain.ApprovalStatusApproved, history[2].PreviousStatus)
		assert.Equal(t, domain.ApprovalStatusRejected, history[2].NewStatus)
	})

	t.Run("verify upserts verification in the same transaction", func(t *testing.T) {
		property, err := store.CreateProperty(ctx, buildTestPropertyInput("Verified Plot", "Hisar", user.ID))
		require.NoError(t, err)

		result, err := store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: property.ID,
			AdminID:    adminA.ID,
			Action:     "verify",
			NewStatus:  domain.ApprovalStatusApproved,
			Message:    strptr("looks good"),
			Reason:     strptr("Auto Approved when admin verified the property"),
			Verification: &VerificationUpdate{
				Message: "looks good",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, result.Property.ApprovalStatus)

		verification, err := store.GetVerification(ctx, property.ID)
		require.NoError(t, err)
		require.NotNil(t, verification)
		assert.True(t, verification.IsVerified)
		assert.Equal(t, "looks good", verification.VerificationMessage)
		require.NotNil(t, verification.VerifiedBy)
		assert.Equal(t, adminA.ID, *verification.VerifiedBy)
		assert.NotNil(t, verification.VerifiedAt)
	})

	t.Run("admin notes merge keeps existing notes when not provided", func(t *testing.T) {
		property, err := store.CreateProperty(ctx, buildTestPropertyInput("Notes Plot", "Panipat", user.ID))
		require.NoError(t, err)

		_, err = store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: property.ID,
			AdminID:    adminA.ID,
			Action:     "approve",
			NewStatus:  domain.ApprovalStatusApproved,
			AdminNotes: strptr("first pass"),
		})
		require.NoError(t, err)

		result, err := store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: property.ID,
			AdminID:    adminB.ID,
			Action:     "reject",
			NewStatus:  domain.ApprovalStatusRejected,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Property.AdminNotes)
		assert.Equal(t, "first pass", *result.Property.AdminNotes)
	})

	t.Run("unknown property fails with sentinel", func(t *testing.T) {
		_, err := store.TransitionApproval(ctx, TransitionApprovalInput{
			PropertyID: 99999999,
			AdminID:    adminA.ID,
			Action:     "approve",
			NewStatus:  domain.ApprovalStatusApproved,
		})
		require.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}

// =============================================================================
// Test: QueryProperties
// =============================================================================

func testQueryProperties(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Sunita", "Devi", "sunita@example.com")

	villa, err := store.CreateProperty(ctx, buildTestPropertyInput("Luxury Villa Gurgaon", "Gurgaon", user.ID))
	require.NoError(t, err)
	_, err = store.CreateProperty(ctx, buildTestPropertyInput("Modern Apartment Noida", "Noida", user.ID))
	require.NoError(t, err)

	t.Run("search matches one listing and excludes the other", func(t *testing.T) {
		properties, total, err := store.QueryProperties(ctx, PropertyQueryFilter{
			SearchTerm: "Gurgaon",
			Limit:      10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, properties, 1)
		assert.Equal(t, villa.ID, properties[0].ID)
	})

	t.Run("search matches joined owner email", func(t *testing.T) {
		properties, total, err := store.QueryProperties(ctx, PropertyQueryFilter{
			SearchTerm: "sunita@example.com",
			Limit:      10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, properties, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		approvedStatus := domain.ApprovalStatusApproved
		properties, total, err := store.QueryProperties(ctx, PropertyQueryFilter{
			ApprovalStatus: &approvedStatus,
			Limit:          10,
		})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, properties)
	})

	t.Run("total is invariant across pages", func(t *testing.T) {
		_, totalPage1, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 1, Offset: 0})
		require.NoError(t, err)
		_, totalPage2, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, totalPage1, totalPage2)
	})

	t.Run("newest first ordering", func(t *testing.T) {
		properties, _, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, properties, 2)
		assert.Equal(t, "Modern Apartment Noida", properties[0].Title)
	})

	t.Run("re-reads are stable", func(t *testing.T) {
		first, firstTotal, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 10})
		require.NoError(t, err)
		second, secondTotal, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, firstTotal, secondTotal)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})

	t.Run("listing without seo row is excluded", func(t *testing.T) {
		orphan := schema.Property{
			Title:          "Orphan Property",
			PropertyType:   domain.PropertyTypePlot,
			CreatedByType:  domain.CreatedByUser,
			OwnerName:      "Nobody",
			ApprovalStatus: domain.ApprovalStatusPending,
		}
		orphan.CreatedByUserID = &user.ID
		require.NoError(t, store.(*pgStore).db.Create(&orphan).Error)

		properties, total, err := store.QueryProperties(ctx, PropertyQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, p := range properties {
			assert.NotEqual(t, orphan.ID, p.ID)
		}
	})
}

// =============================================================================
// Test: QueryMapProperties
// =============================================================================

func testQueryMapProperties(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Amit", "Verma", "amit@example.com")
	admin := seedAdmin(t, store, "Admin", "admin-map@example.com")

	property, err := store.CreateProperty(ctx, buildTestPropertyInput("Map Villa", "Gurgaon", user.ID))
	require.NoError(t, err)
	_, err = store.TransitionApproval(ctx, TransitionApprovalInput{
		PropertyID: property.ID,
		AdminID:    admin.ID,
		Action:     "approve",
		NewStatus:  domain.ApprovalStatusApproved,
	})
	require.NoError(t, err)

	// pending listing stays off the map
	_, err = store.CreateProperty(ctx, buildTestPropertyInput("Hidden Plot", "Gurgaon", user.ID))
	require.NoError(t, err)

	t.Run("returns approved listings only with days on market", func(t *testing.T) {
		results, err := store.QueryMapProperties(ctx, MapPropertyFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, property.ID, results[0].Property.ID)
		assert.GreaterOrEqual(t, results[0].DaysOnMarket, 0)
		assert.Nil(t, results[0].Saved)
	})

	t.Run("saved flag present only when user id supplied", func(t *testing.T) {
		require.NoError(t, store.SaveProperty(ctx, user.ID, property.ID))

		results, err := store.QueryMapProperties(ctx, MapPropertyFilter{UserID: &user.ID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.NotNil(t, results[0].Saved)
		assert.True(t, *results[0].Saved)
	})

	t.Run("viewport bounds filter", func(t *testing.T) {
		results, err := store.QueryMapProperties(ctx, MapPropertyFilter{
			Bounds: &MapQueryBounds{MinLatitude: 0, MaxLatitude: 1, MinLongitude: 0, MaxLongitude: 1},
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

// =============================================================================
// Test: Saved properties
// =============================================================================

func testSavedProperties(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Kiran", "Bala", "kiran@example.com")
	property, err := store.CreateProperty(ctx, buildTestPropertyInput("Saved Plot", "Ambala", user.ID))
	require.NoError(t, err)

	t.Run("save is idempotent", func(t *testing.T) {
		require.NoError(t, store.SaveProperty(ctx, user.ID, property.ID))
		require.NoError(t, store.SaveProperty(ctx, user.ID, property.ID))

		properties, total, err := store.ListSavedProperties(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, properties, 1)
		assert.Equal(t, property.ID, properties[0].ID)
		require.NotNil(t, properties[0].Seo)
	})

	t.Run("unsave removes the bookmark", func(t *testing.T) {
		require.NoError(t, store.UnsaveProperty(ctx, user.ID, property.ID))

		_, total, err := store.ListSavedProperties(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

// =============================================================================
// Test: Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Pooja", "Singh", "pooja@example.com")
	property, err := store.CreateProperty(ctx, buildTestPropertyInput("Notified Plot", "Sonipat", user.ID))
	require.NoError(t, err)

	notification := schema.PropertyApprovalNotification{
		DispatchID: "dispatch-1",
		PropertyID: property.ID,
		UserID:     &user.ID,
		Action:     domain.ActionApprove,
		Title:      "Property Approved",
		Message:    "Your property was approved",
	}

	t.Run("duplicate dispatch id is skipped", func(t *testing.T) {
		require.NoError(t, store.CreateApprovalNotification(ctx, &notification))
		dup := notification
		dup.ID = 0
		require.NoError(t, store.CreateApprovalNotification(ctx, &dup))

		notifications, total, err := store.ListNotifications(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, notifications, 1)
		assert.False(t, notifications[0].IsRead)
	})

	t.Run("mark read flips the flag for the recipient only", func(t *testing.T) {
		notifications, _, err := store.ListNotifications(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, notifications, 1)

		err = store.MarkNotificationRead(ctx, notifications[0].ID, user.ID+1)
		require.ErrorIs(t, err, domain.ErrNotificationNotFound)

		require.NoError(t, store.MarkNotificationRead(ctx, notifications[0].ID, user.ID))

		notifications, _, err = store.ListNotifications(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		assert.True(t, notifications[0].IsRead)
		assert.NotNil(t, notifications[0].ReadAt)
	})
}

// =============================================================================
// Test: Owner contact
// =============================================================================

func testGetOwnerContact(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Rahul", "Yadav", "rahul@example.com")
	admin := seedAdmin(t, store, "Admin C", "admin-c@example.com")

	t.Run("user-submitted listing resolves contact with denormalized overrides", func(t *testing.T) {
		property, err := store.CreateProperty(ctx, buildTestPropertyInput("Contact Plot", "Jind", user.ID))
		require.NoError(t, err)

		contact, err := store.GetOwnerContact(ctx, property.ID)
		require.NoError(t, err)
		require.NotNil(t, contact)
		assert.Equal(t, user.ID, contact.UserID)
		assert.Equal(t, "rahul@example.com", contact.Email)
		// listing-level contact fields win over the user row
		assert.Equal(t, "Ravi Sharma", contact.Name)
		assert.Equal(t, "+919876543210", contact.Phone)
	})

	t.Run("admin-submitted listing has no owner contact", func(t *testing.T) {
		input := buildTestPropertyInput("Admin Plot", "Jhajjar", user.ID)
		input.CreatedByType = domain.CreatedByAdmin
		input.CreatedByUserID = nil
		input.CreatedByAdminID = &admin.ID
		input.OwnerName = ""
		input.OwnerPhone = ""

		property, err := store.CreateProperty(ctx, input)
		require.NoError(t, err)

		contact, err := store.GetOwnerContact(ctx, property.ID)
		require.NoError(t, err)
		assert.Nil(t, contact)
	})

	t.Run("unknown property fails with sentinel", func(t *testing.T) {
		_, err := store.GetOwnerContact(ctx, 42424242)
		require.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}

// =============================================================================
// Test: Stale pending sweep
// =============================================================================

func testStalePendingProperties(t *testing.T, store Store) {
	ctx := context.Background()

	user := seedUser(t, store, "Neha", "Gupta", "neha@example.com")
	property, err := store.CreateProperty(ctx, buildTestPropertyInput("Stale Plot", "Kaithal", user.ID))
	require.NoError(t, err)

	// age the listing past the cutoff
	old := time.Now().UTC().Add(-96 * time.Hour)
	require.NoError(t, store.(*pgStore).db.
		Model(&schema.Property{}).
		Where("id = ?", property.ID).
		Update("created_at", old).Error)

	cutoff := time.Now().UTC().Add(-72 * time.Hour)

	stale, err := store.ListStalePendingProperties(ctx, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, property.ID, stale[0].ID)

	// approving takes it out of the sweep
	admin := seedAdmin(t, store, "Admin D", "admin-d@example.com")
	_, err = store.TransitionApproval(ctx, TransitionApprovalInput{
		PropertyID: property.ID,
		AdminID:    admin.ID,
		Action:     "approve",
		NewStatus:  domain.ApprovalStatusApproved,
	})
	require.NoError(t, err)

	stale, err = store.ListStalePendingProperties(ctx, cutoff, 10)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

// =============================================================================
// Test: Blog posts
// =============================================================================

func testBlogPosts(t *testing.T, store Store) {
	ctx := context.Background()

	admin := seedAdmin(t, store, "Editor", "editor@example.com")

	post := schema.BlogPost{
		Title:         "Buying farm land in Haryana",
		Slug:          "buying-farm-land-in-haryana",
		Body:          "Everything about khasra numbers.",
		Status:        schema.BlogPostStatusDraft,
		AuthorAdminID: admin.ID,
	}

	t.Run("create and fetch by slug", func(t *testing.T) {
		require.NoError(t, store.CreateBlogPost(ctx, &post))
		require.NotZero(t, post.ID)

		found, err := store.GetBlogPostBySlug(ctx, post.Slug)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, post.Title, found.Title)
	})

	t.Run("slug collision", func(t *testing.T) {
		dup := schema.BlogPost{
			Title:         "Another take",
			Slug:          post.Slug,
			AuthorAdminID: admin.ID,
		}
		err := store.CreateBlogPost(ctx, &dup)
		require.ErrorIs(t, err, domain.ErrSlugTaken)
	})

	t.Run("publish and filter by status", func(t *testing.T) {
		now := time.Now().UTC()
		post.Status = schema.BlogPostStatusPublished
		post.PublishedAt = &now
		require.NoError(t, store.UpdateBlogPost(ctx, &post))

		published := schema.BlogPostStatusPublished
		posts, total, err := store.ListBlogPosts(ctx, BlogPostFilter{Status: &published, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, posts, 1)
		assert.NotNil(t, posts[0].PublishedAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteBlogPost(ctx, post.ID))
		require.ErrorIs(t, store.DeleteBlogPost(ctx, post.ID), domain.ErrBlogPostNotFound)

		found, err := store.GetBlogPostBySlug(ctx, post.Slug)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateProperty", testCreateProperty},
		{"TransitionApproval", testTransitionApproval},
		{"QueryProperties", testQueryProperties},
		{"QueryMapProperties", testQueryMapProperties},
		{"SavedProperties", testSavedProperties},
		{"Notifications", testNotifications},
		{"GetOwnerContact", testGetOwnerContact},
		{"StalePendingProperties", testStalePendingProperties},
		{"BlogPosts", testBlogPosts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
