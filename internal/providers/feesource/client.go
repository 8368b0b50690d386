package feesource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// FeesResponse represents the fee-data API response for an asset
type FeesResponse struct {
	AssetID string `json:"asset_id"`
	// TotalFees is the all-time fee total in lamports
	TotalFees int64 `json:"total_fees"`
}

// Client defines the interface for the external fee-data source
//
//go:generate mockgen -source=client.go -destination=../../mocks/fee_source.go -package=mocks -mock_names=Client=MockFeeSource
type Client interface {
	// GetTotalFees returns the all-time fee total of an asset.
	// Returns domain.ErrFeeDataUnavailable when the source has no data for the asset yet.
	GetTotalFees(ctx context.Context, assetID string) (int64, error)
}

// FeeSourceClient implements the fee source over HTTP
type FeeSourceClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a new fee source client
func NewClient(httpClient adapter.HTTPClient, baseURL, apiKey string) Client {
	return &FeeSourceClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// GetTotalFees fetches GET {base}/assets/{id}/fees
func (c *FeeSourceClient) GetTotalFees(ctx context.Context, assetID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/assets/%s/fees", c.baseURL, url.PathEscape(assetID))

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var resp FeesResponse
	if err := c.httpClient.Get(ctx, endpoint, headers, &resp); err != nil {
		var statusErr *adapter.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return 0, fmt.Errorf("%w: %s", domain.ErrFeeDataUnavailable, assetID)
		}
		return 0, fmt.Errorf("failed to fetch total fees: %w", err)
	}

	if resp.TotalFees < 0 {
		return 0, fmt.Errorf("fee source returned negative total %d for asset %s", resp.TotalFees, assetID)
	}

	return resp.TotalFees, nil
}
