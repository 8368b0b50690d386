package feesource

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-royalty-ledger/internal/ratelimit"
)

// RATE_LIMIT_KEY is the limiter key shared by every caller of the fee source
const RATE_LIMIT_KEY = "fee-source"

type rateLimitedClient struct {
	client  Client
	limiter ratelimit.Limiter
}

// NewRateLimitedClient wraps a fee source so that every replica shares one request budget
func NewRateLimitedClient(client Client, limiter ratelimit.Limiter) Client {
	return &rateLimitedClient{client: client, limiter: limiter}
}

// GetTotalFees waits for a rate limit token before calling the fee source
func (c *rateLimitedClient) GetTotalFees(ctx context.Context, assetID string) (int64, error) {
	if err := c.limiter.Wait(ctx, RATE_LIMIT_KEY); err != nil {
		return 0, fmt.Errorf("failed to acquire fee source rate limit token: %w", err)
	}
	return c.client.GetTotalFees(ctx, assetID)
}
