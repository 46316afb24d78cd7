package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/providers/jetstream"
)

type publisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

func setupPublisherMocks(t *testing.T) *publisherMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	return &publisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "PROPERTY_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "estate-test",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	tm := setupPublisherMocks(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) (natsjs.Stream, error) {
			assert.Equal(t, "PROPERTY_EVENTS", cfg.Name)
			assert.Equal(t, []string{"events.property.>"}, cfg.Subjects)
			return nil, nil
		})

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)
	require.NotNil(t, pub)
}

func TestNewPublisher_StreamFailureClosesConnection(t *testing.T) {
	tm := setupPublisherMocks(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no jetstream"))
	tm.conn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.Error(t, err)
	assert.Nil(t, pub)
	assert.Contains(t, err.Error(), "PROPERTY_EVENTS")
}

func TestPublishEvent_SubjectFromEventType(t *testing.T) {
	tm := setupPublisherMocks(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, nil)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)

	event := &domain.PropertyEvent{
		EventID:        "01JEXAMPLE",
		Type:           domain.EventPropertyApproved,
		PropertyID:     42,
		PreviousStatus: domain.ApprovalStatusPending,
		NewStatus:      domain.ApprovalStatusApproved,
		AdminID:        7,
	}

	tm.json.EXPECT().
		Marshal(event).
		DoAndReturn(func(v interface{}) ([]byte, error) {
			return json.Marshal(v)
		})
	tm.js.EXPECT().
		Publish(gomock.Any(), "events.property.approved", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.PropertyEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, uint64(42), decoded.PropertyID)
			assert.Equal(t, domain.ApprovalStatusApproved, decoded.NewStatus)
			return &natsjs.PubAck{}, nil
		})

	require.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEvent_PublishFailure(t *testing.T) {
	tm := setupPublisherMocks(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, nil)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)

	event := &domain.PropertyEvent{Type: domain.EventPropertyRejected, PropertyID: 9}

	tm.json.EXPECT().Marshal(event).Return([]byte(`{}`), nil)
	tm.js.EXPECT().
		Publish(gomock.Any(), "events.property.rejected", gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err = pub.PublishEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestClose(t *testing.T) {
	tm := setupPublisherMocks(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.conn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)

	pub.Close()
}
