package mailer_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/providers/mailer"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestSendSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := mailer.NewClient(httpClient, "https://mail.example.com/", "secret", "noreply@propsetu.example", "PropSetu")

	httpClient.EXPECT().
		PostJSON(gomock.Any(), "https://mail.example.com/v1/messages", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, _ interface{}, _ interface{}) error {
			assert.Equal(t, "Bearer secret", headers["Authorization"])
			return nil
		})

	_, err := client.Send(context.Background(), notification.EmailMessage{
		To:      "ravi@example.com",
		Subject: "Property Approved",
	})
	require.NoError(t, err)
}

func TestSendProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := mailer.NewClient(httpClient, "https://mail.example.com", "secret", "noreply@propsetu.example", "PropSetu")

	httpClient.EXPECT().
		PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("unexpected status code 500"))

	_, err := client.Send(context.Background(), notification.EmailMessage{To: "ravi@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestSendMissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := mailer.NewClient(httpClient, "https://mail.example.com", "secret", "noreply@propsetu.example", "PropSetu")

	_, err := client.Send(context.Background(), notification.EmailMessage{})
	require.Error(t, err)
}
