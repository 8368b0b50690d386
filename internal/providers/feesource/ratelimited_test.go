package feesource_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/feesource"
)

func TestRateLimitedClient(t *testing.T) {
	t.Run("waits for a token before calling the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		source := mocks.NewMockFeeSource(ctrl)

		gomock.InOrder(
			limiter.EXPECT().Wait(gomock.Any(), feesource.RATE_LIMIT_KEY).Return(nil),
			source.EXPECT().GetTotalFees(gomock.Any(), "mint-1").Return(int64(42), nil),
		)

		total, err := feesource.NewRateLimitedClient(source, limiter).GetTotalFees(context.Background(), "mint-1")
		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
	})

	t.Run("does not call the source when the wait is cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		source := mocks.NewMockFeeSource(ctrl)

		limiter.EXPECT().Wait(gomock.Any(), feesource.RATE_LIMIT_KEY).Return(context.Canceled)

		_, err := feesource.NewRateLimitedClient(source, limiter).GetTotalFees(context.Background(), "mint-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
