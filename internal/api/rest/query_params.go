package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/constants"
)

// GetSplitHistoryQueryParams holds query parameters for GET /assets/:asset_id/split/history
type GetSplitHistoryQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseGetSplitHistoryQuery parses query parameters for GET /assets/:asset_id/split/history
func ParseGetSplitHistoryQuery(c *gin.Context) (*GetSplitHistoryQueryParams, error) {
	var params GetSplitHistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_HISTORY_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// GetReconciliationQueryParams holds query parameters for GET /reconciliation
type GetReconciliationQueryParams struct {
	AssetID string `form:"asset_id"`
}

// ParseGetReconciliationQuery parses query parameters for GET /reconciliation
func ParseGetReconciliationQuery(c *gin.Context) (*GetReconciliationQueryParams, error) {
	var params GetReconciliationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
