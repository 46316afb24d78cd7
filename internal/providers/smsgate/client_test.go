package smsgate_test

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
	"github.com/propsetu/estate-backend/internal/providers/smsgate"
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
	client := smsgate.NewClient(httpClient, "https://sms.example.com", "sk", "PROPSETU")

	httpClient.EXPECT().
		PostJSON(gomock.Any(), "https://sms.example.com/v2/sms", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, _ interface{}, _ interface{}) error {
			assert.Equal(t, "sk", headers["X-Api-Key"])
			return nil
		})

	err := client.Send(context.Background(), "+919876543210", "PropSetu: your property was approved.")
	require.NoError(t, err)
}

func TestSendGatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := smsgate.NewClient(httpClient, "https://sms.example.com", "sk", "PROPSETU")

	httpClient.EXPECT().
		PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("rate limited (429), retrying"))

	err := client.Send(context.Background(), "+919876543210", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send sms")
}

func TestSendMissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := smsgate.NewClient(httpClient, "https://sms.example.com", "sk", "PROPSETU")

	require.Error(t, client.Send(context.Background(), "", "hello"))
}
