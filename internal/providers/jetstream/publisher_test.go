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

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/jetstream"
)

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "ROYALTY",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "royalty-api",
}

func TestBuildSubject(t *testing.T) {
	assert.Equal(t, "royalty.split.updated", jetstream.BuildSubject(domain.LedgerEventSplitUpdated))
	assert.Equal(t, "royalty.payout.claimed", jetstream.BuildSubject(domain.LedgerEventPayoutClaimed))
	assert.Equal(t, "royalty.platform.withdrawal", jetstream.BuildSubject(domain.LedgerEventPlatformWithdrawal))
	assert.Equal(t, "royalty.fees.accrued", jetstream.BuildSubject(domain.LedgerEventFeesAccrued))
}

func TestPublisher_PublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	ctx := context.Background()

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(conn, js, nil)
	js.EXPECT().
		CreateOrUpdateStream(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "ROYALTY", cfg.Name)
			assert.Equal(t, []string{"royalty.>"}, cfg.Subjects)
			return nil
		})

	p, err := jetstream.NewPublisher(ctx, testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.LedgerEvent{
		EventID:   "01HZX0000000000000000000AA",
		EventType: domain.LedgerEventPayoutClaimed,
		AssetID:   "mint-1",
		Identity:  "E1",
		Amount:    1_000_000_000,
	}

	js.EXPECT().
		Publish(ctx, "royalty.payout.claimed", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.LedgerEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.EventID, decoded.EventID)
			assert.Equal(t, int64(1_000_000_000), decoded.Amount)
			assert.Len(t, opts, 1)
			return &natsjs.PubAck{Stream: "ROYALTY", Sequence: 1}, nil
		})

	require.NoError(t, p.PublishEvent(ctx, event))

	conn.EXPECT().Close()
	p.Close()
}

func TestNewPublisher_StreamFailureClosesConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(conn, js, nil)
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(errors.New("jetstream not enabled"))
	conn.EXPECT().Close()

	_, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jetstream not enabled")
}
