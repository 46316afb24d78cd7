package approval_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/approval"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

type serviceMocks struct {
	store      *mocks.MockStore
	dispatcher *mocks.MockDispatcher
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func newTestService(ctrl *gomock.Controller, now time.Time) (approval.Service, serviceMocks) {
	m := serviceMocks{
		store:      mocks.NewMockStore(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	return approval.NewService(m.store, m.dispatcher, m.publisher, m.clock), m
}

func strptr(s string) *string { return &s }

func userSubmittedProperty(status domain.ApprovalStatus) *schema.Property {
	userID := uint64(7)
	return &schema.Property{
		ID:              101,
		Title:           "2 Acre Agricultural Land",
		Price:           4_500_000,
		Address:         "Village Badshahpur",
		City:            "Gurgaon",
		State:           "Haryana",
		CreatedByType:   domain.CreatedByUser,
		CreatedByUserID: &userID,
		ApprovalStatus:  status,
	}
}

func TestApproveUserSubmittedProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc, m := newTestService(ctrl, now)

	property := userSubmittedProperty(domain.ApprovalStatusApproved)
	property.ApprovalMessage = strptr("Welcome aboard")
	property.LastReviewedAt = &now

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(3)).
		Return(&schema.Admin{ID: 3, Name: "Admin A"}, nil)

	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.TransitionApprovalInput) (*store.TransitionApprovalResult, error) {
			assert.Equal(t, uint64(101), input.PropertyID)
			assert.Equal(t, uint64(3), input.AdminID)
			assert.Equal(t, "approve", input.Action)
			assert.Equal(t, domain.ApprovalStatusApproved, input.NewStatus)
			assert.Equal(t, now, input.Timestamp)
			assert.Nil(t, input.Verification)
			return &store.TransitionApprovalResult{
				Property:       property,
				PreviousStatus: domain.ApprovalStatusPending,
			}, nil
		})

	m.store.EXPECT().GetOwnerContact(gomock.Any(), uint64(101)).
		Return(&store.OwnerContact{UserID: 7, Name: "Ravi Sharma", Email: "ravi@example.com", Phone: "+919876543210"}, nil)

	m.store.EXPECT().
		CreateApprovalNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *schema.PropertyApprovalNotification) error {
			assert.NotEmpty(t, n.DispatchID)
			assert.Equal(t, uint64(101), n.PropertyID)
			require.NotNil(t, n.UserID)
			assert.Equal(t, uint64(7), *n.UserID)
			assert.Equal(t, domain.ActionApprove, n.Action)
			assert.Equal(t, "Property Approved", n.Title)
			return nil
		})

	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d notification.Descriptor) notification.DispatchResult {
			assert.Equal(t, domain.ActionApprove, d.Action)
			assert.Equal(t, "ravi@example.com", d.OwnerEmail)
			assert.Equal(t, "Admin A", d.AdminName)
			assert.Equal(t, "Welcome aboard", d.Message)
			return notification.DispatchResult{EmailSent: true, SMSSent: true}
		})

	m.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.PropertyEvent) error {
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, domain.EventPropertyApproved, event.Type)
			assert.Equal(t, domain.ApprovalStatusPending, event.PreviousStatus)
			assert.Equal(t, domain.ApprovalStatusApproved, event.NewStatus)
			assert.Equal(t, uint64(3), event.AdminID)
			return nil
		})

	updated, err := svc.Approve(context.Background(), approval.Request{
		PropertyID: 101,
		AdminID:    3,
		Message:    strptr("Welcome aboard"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusApproved, updated.ApprovalStatus)
}

func TestRejectDispatchesRejectMessageNotStoredApprovalMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	// The row keeps the approval_message from an earlier approve; only
	// rejection_reason is rewritten on reject.
	property := userSubmittedProperty(domain.ApprovalStatusRejected)
	property.ApprovalMessage = strptr("Great documentation, approved!")
	property.RejectionReason = strptr("Documents are incomplete, rejecting.")

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(3)).
		Return(&schema.Admin{ID: 3, Name: "Admin A"}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		Return(&store.TransitionApprovalResult{Property: property, PreviousStatus: domain.ApprovalStatusApproved}, nil)
	m.store.EXPECT().GetOwnerContact(gomock.Any(), property.ID).
		Return(&store.OwnerContact{UserID: 7, Name: "Ravi Sharma", Email: "ravi@example.com", Phone: "+919876543210"}, nil)
	m.store.EXPECT().
		CreateApprovalNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *schema.PropertyApprovalNotification) error {
			assert.Equal(t, domain.ActionReject, n.Action)
			assert.NotContains(t, n.Message, "Great documentation")
			return nil
		})
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d notification.Descriptor) notification.DispatchResult {
			assert.Equal(t, domain.ActionReject, d.Action)
			assert.Equal(t, "Documents are incomplete, rejecting.", d.Message)
			return notification.DispatchResult{EmailSent: true, SMSSent: true}
		})
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Reject(context.Background(), approval.Request{
		PropertyID: 101,
		AdminID:    3,
		Message:    strptr("Documents are incomplete, rejecting."),
		Reason:     strptr("Documents are incomplete, rejecting."),
	})
	require.NoError(t, err)
}

func TestRejectSkipsNotificationForAdminSubmittedProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	adminID := uint64(3)
	property := &schema.Property{
		ID:               55,
		Title:            "Commercial Plot Sector 18",
		CreatedByType:    domain.CreatedByAdmin,
		CreatedByAdminID: &adminID,
		ApprovalStatus:   domain.ApprovalStatusRejected,
	}

	m.store.EXPECT().GetAdminByID(gomock.Any(), adminID).
		Return(&schema.Admin{ID: adminID, Name: "Admin A"}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		Return(&store.TransitionApprovalResult{Property: property, PreviousStatus: domain.ApprovalStatusPending}, nil)
	m.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.PropertyEvent) error {
			assert.Equal(t, domain.EventPropertyRejected, event.Type)
			return nil
		})

	_, err := svc.Reject(context.Background(), approval.Request{PropertyID: 55, AdminID: adminID, Reason: strptr("duplicate listing")})
	require.NoError(t, err)
}

func TestVerifyCarriesVerificationAndFixedReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	property := userSubmittedProperty(domain.ApprovalStatusApproved)

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(9)).
		Return(&schema.Admin{ID: 9, Name: "Admin B"}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.TransitionApprovalInput) (*store.TransitionApprovalResult, error) {
			assert.Equal(t, "verify", input.Action)
			assert.Equal(t, domain.ApprovalStatusApproved, input.NewStatus)
			require.NotNil(t, input.Reason)
			assert.Equal(t, "Auto Approved when admin verified the property", *input.Reason)
			require.NotNil(t, input.Verification)
			assert.Equal(t, "All documents check out", input.Verification.Message)
			return &store.TransitionApprovalResult{
				Property:       property,
				PreviousStatus: domain.ApprovalStatusPending,
			}, nil
		})
	m.store.EXPECT().GetOwnerContact(gomock.Any(), property.ID).
		Return(&store.OwnerContact{UserID: 7, Name: "Ravi Sharma", Email: "ravi@example.com", Phone: "+919876543210"}, nil)
	m.store.EXPECT().CreateApprovalNotification(gomock.Any(), gomock.Any()).Return(nil)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d notification.Descriptor) notification.DispatchResult {
			assert.Equal(t, domain.ActionVerify, d.Action)
			return notification.DispatchResult{EmailSent: true, SMSSent: true}
		})
	m.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.PropertyEvent) error {
			assert.Equal(t, domain.EventPropertyVerified, event.Type)
			return nil
		})

	_, err := svc.Verify(context.Background(), approval.Request{
		PropertyID: 101,
		AdminID:    9,
		Message:    strptr("All documents check out"),
	})
	require.NoError(t, err)
}

func TestTransitionFailsWhenPropertyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(3)).
		Return(&schema.Admin{ID: 3}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrPropertyNotFound)

	_, err := svc.Approve(context.Background(), approval.Request{PropertyID: 999, AdminID: 3})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestTransitionFailsWhenAdminMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(42)).Return(nil, nil)

	_, err := svc.Approve(context.Background(), approval.Request{PropertyID: 101, AdminID: 42})
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestTransitionValidatesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(ctrl, time.Now())

	_, err := svc.Approve(context.Background(), approval.Request{AdminID: 3})
	assert.Error(t, err)

	_, err = svc.Approve(context.Background(), approval.Request{PropertyID: 101})
	assert.Error(t, err)
}

func TestNotificationFailuresDoNotFailTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	property := userSubmittedProperty(domain.ApprovalStatusApproved)

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(3)).
		Return(&schema.Admin{ID: 3, Name: "Admin A"}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		Return(&store.TransitionApprovalResult{Property: property, PreviousStatus: domain.ApprovalStatusPending}, nil)
	m.store.EXPECT().GetOwnerContact(gomock.Any(), property.ID).
		Return(&store.OwnerContact{UserID: 7, Email: "ravi@example.com", Phone: "+919876543210"}, nil)
	m.store.EXPECT().CreateApprovalNotification(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(notification.DispatchResult{Errors: []string{"email: provider down"}})
	m.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	updated, err := svc.Approve(context.Background(), approval.Request{PropertyID: 101, AdminID: 3})
	require.NoError(t, err)
	assert.Equal(t, property, updated)
}

func TestOwnerContactLookupFailureSkipsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl, time.Now())

	property := userSubmittedProperty(domain.ApprovalStatusApproved)

	m.store.EXPECT().GetAdminByID(gomock.Any(), uint64(3)).
		Return(&schema.Admin{ID: 3}, nil)
	m.store.EXPECT().
		TransitionApproval(gomock.Any(), gomock.Any()).
		Return(&store.TransitionApprovalResult{Property: property, PreviousStatus: domain.ApprovalStatusPending}, nil)
	m.store.EXPECT().GetOwnerContact(gomock.Any(), property.ID).
		Return(nil, errors.New("connection reset"))
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Approve(context.Background(), approval.Request{PropertyID: 101, AdminID: 3})
	require.NoError(t, err)
}
