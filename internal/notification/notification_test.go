package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/notification"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

func testDescriptor(action domain.NotificationAction) notification.Descriptor {
	return notification.Descriptor{
		PropertyID: 42,
		Title:      "Luxury Villa Gurgaon",
		OwnerName:  "Ravi Sharma",
		OwnerEmail: "ravi@example.com",
		OwnerPhone: "+919876543210",
		Price:      12_500_000,
		Address:    "Sector 57",
		City:       "Gurgaon",
		State:      "Haryana",
		Action:     action,
		Message:    "Congratulations!",
		AdminName:  "Admin A",
	}
}

func TestDispatchBothChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockEmailSender(ctrl)
	sms := mocks.NewMockSMSSender(ctrl)
	clock := mocks.NewMockClock(ctrl)

	desc := testDescriptor(domain.ActionApprove)

	email.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.EmailMessage) (string, error) {
			assert.Equal(t, "ravi@example.com", msg.To)
			assert.Equal(t, "Property Approved: Luxury Villa Gurgaon", msg.Subject)
			assert.Contains(t, msg.HTMLBody, "#4CAF50")
			assert.Contains(t, msg.HTMLBody, "has been approved")
			assert.Contains(t, msg.TextBody, "Luxury Villa Gurgaon")
			return "msg-1", nil
		})
	sms.EXPECT().
		Send(gomock.Any(), "+919876543210", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body string) error {
			assert.LessOrEqual(t, len(body), 160)
			assert.Contains(t, body, "Luxury Villa Gurgaon")
			return nil
		})

	d := notification.NewDispatcher(email, sms, nil, clock, 500*time.Millisecond)
	result := d.Dispatch(context.Background(), desc)

	assert.True(t, result.EmailSent)
	assert.True(t, result.SMSSent)
	assert.Empty(t, result.Errors)
}

func TestDispatchEmailFailureDoesNotBlockSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockEmailSender(ctrl)
	sms := mocks.NewMockSMSSender(ctrl)
	clock := mocks.NewMockClock(ctrl)

	email.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))
	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	d := notification.NewDispatcher(email, sms, nil, clock, 500*time.Millisecond)
	result := d.Dispatch(context.Background(), testDescriptor(domain.ActionReject))

	assert.False(t, result.EmailSent)
	assert.True(t, result.SMSSent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "provider down")
}

func TestDispatchMissingContactChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockEmailSender(ctrl)
	sms := mocks.NewMockSMSSender(ctrl)
	clock := mocks.NewMockClock(ctrl)

	desc := testDescriptor(domain.ActionApprove)
	desc.OwnerEmail = ""
	desc.OwnerPhone = ""

	d := notification.NewDispatcher(email, sms, nil, clock, 500*time.Millisecond)
	result := d.Dispatch(context.Background(), desc)

	assert.False(t, result.EmailSent)
	assert.False(t, result.SMSSent)
	assert.Len(t, result.Errors, 2)
}

func TestActionContentTable(t *testing.T) {
	cases := []struct {
		action domain.NotificationAction
		color  string
	}{
		{domain.ActionApprove, "#4CAF50"},
		{domain.ActionReject, "#F44336"},
		{domain.ActionVerify, "#2196F3"},
		{domain.ActionUnverify, "#FF9800"},
		{domain.ActionFlag, "#FF5722"},
	}

	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			desc := testDescriptor(tc.action)
			_, htmlBody, _ := notification.BuildEmailForTest(desc)
			assert.Contains(t, htmlBody, tc.color)
		})
	}
}

func TestBuildSMSBudget(t *testing.T) {
	t.Run("short message is kept", func(t *testing.T) {
		desc := testDescriptor(domain.ActionApprove)
		desc.Message = "Well done"
		body := notification.BuildSMSForTest(desc)
		assert.Contains(t, body, "Well done")
		assert.LessOrEqual(t, len(body), 160)
	})

	t.Run("long message is dropped before the base text", func(t *testing.T) {
		desc := testDescriptor(domain.ActionApprove)
		desc.Message = strings.Repeat("very long admin commentary ", 10)
		body := notification.BuildSMSForTest(desc)
		assert.NotContains(t, body, "admin commentary")
		assert.Contains(t, body, desc.Title)
		assert.LessOrEqual(t, len(body), 160)
	})

	t.Run("oversized base text is truncated to the budget", func(t *testing.T) {
		desc := testDescriptor(domain.ActionApprove)
		desc.Title = strings.Repeat("Very Long Title ", 20)
		body := notification.BuildSMSForTest(desc)
		assert.Len(t, body, 160)
		assert.True(t, strings.HasSuffix(body, "..."))
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		desc := testDescriptor(domain.ActionApprove)
		desc.Title = strings.Repeat("आलीशान कोठी ", 20)
		body := notification.BuildSMSForTest(desc)
		assert.True(t, utf8.ValidString(body))
		assert.LessOrEqual(t, len(body), 160)
		assert.True(t, strings.HasSuffix(body, "..."))
	})
}

func TestDispatchBulk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockEmailSender(ctrl)
	sms := mocks.NewMockSMSSender(ctrl)
	clock := mocks.NewMockClock(ctrl)

	descriptors := []notification.Descriptor{
		testDescriptor(domain.ActionApprove),
		testDescriptor(domain.ActionReject),
		testDescriptor(domain.ActionApprove),
	}
	descriptors[1].PropertyID = 43
	descriptors[2].PropertyID = 44

	// pacing delay between items, not before the first
	clock.EXPECT().Sleep(500 * time.Millisecond).Times(2)

	gomock.InOrder(
		email.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil),
		email.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("bounce")),
		email.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-3", nil),
	)
	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	d := notification.NewDispatcher(email, sms, nil, clock, 500*time.Millisecond)
	result := d.DispatchBulk(context.Background(), descriptors)

	assert.Equal(t, 3, result.TotalSent)
	assert.Equal(t, 2, result.EmailsSent)
	assert.Equal(t, 3, result.SMSSent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "property 43")
	assert.Contains(t, result.Errors[0], "bounce")
}
