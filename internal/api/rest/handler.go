package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-royalty-ledger/internal/api/middleware"
	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-royalty-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateAsset registers an asset (requires authentication)
	// POST /api/v1/assets
	CreateAsset(c *gin.Context)

	// UpdateSplit changes the fee split of an asset (requires authentication)
	// PUT /api/v1/assets/:asset_id/split
	UpdateSplit(c *gin.Context)

	// GetSplit retrieves the current agreement of an asset
	// GET /api/v1/assets/:asset_id/split
	GetSplit(c *gin.Context)

	// GetSplitHistory retrieves the agreement versions and change history of an asset
	// GET /api/v1/assets/:asset_id/split/history?limit=<limit>&offset=<offset>
	GetSplitHistory(c *gin.Context)

	// Claim pays an earner everything they are owed (requires authentication)
	// POST /api/v1/assets/:asset_id/claims
	Claim(c *gin.Context)

	// WithdrawPlatform pays out the platform's share (requires authentication)
	// POST /api/v1/assets/:asset_id/withdrawals
	WithdrawPlatform(c *gin.Context)

	// GetOwnership retrieves the legacy ownership view of an asset
	// GET /api/v1/assets/:asset_id/ownership
	GetOwnership(c *gin.Context)

	// GetReconciliation verifies the ledger of one or every asset
	// GET /api/v1/reconciliation?asset_id=<asset_id>
	GetReconciliation(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// CreateAsset registers an asset
func (h *handler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	asset, err := h.executor.CreateAsset(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// UpdateSplit changes the fee split of an asset on behalf of the authenticated subject
func (h *handler) UpdateSplit(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	result, err := h.executor.UpdateSplit(c.Request.Context(), assetID, middleware.Actor(c), req)
	if err != nil {
		respondError(c, err, "Failed to update split")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSplit retrieves the current agreement of an asset
func (h *handler) GetSplit(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	agreement, err := h.executor.GetSplit(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to get split")
		return
	}

	c.JSON(http.StatusOK, agreement)
}

// GetSplitHistory retrieves the agreement versions and a page of change history of an asset
func (h *handler) GetSplitHistory(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	queryParams, err := ParseGetSplitHistoryQuery(c)
	if err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()), "Invalid query parameters")
		return
	}

	history, err := h.executor.GetSplitHistory(
		c.Request.Context(),
		assetID,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to get split history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// Claim pays an earner everything they are owed on an asset
func (h *handler) Claim(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	result, err := h.executor.Claim(c.Request.Context(), assetID, middleware.Actor(c), req)
	if err != nil {
		respondError(c, err, "Failed to claim payout")
		return
	}

	c.JSON(http.StatusOK, result)
}

// WithdrawPlatform pays out part or all of the platform's share of an asset
func (h *handler) WithdrawPlatform(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	result, err := h.executor.WithdrawPlatform(c.Request.Context(), assetID, middleware.Actor(c), req)
	if err != nil {
		respondError(c, err, "Failed to withdraw platform fees")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOwnership retrieves the legacy ownership view of an asset
func (h *handler) GetOwnership(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	ownership, err := h.executor.GetOwnership(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to get ownership")
		return
	}

	c.JSON(http.StatusOK, ownership)
}

// GetReconciliation verifies the ledger of the asset in the query, or of every asset
func (h *handler) GetReconciliation(c *gin.Context) {
	queryParams, err := ParseGetReconciliationQuery(c)
	if err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()), "Invalid query parameters")
		return
	}

	if queryParams.AssetID != "" && !types.IsSolanaAddress(queryParams.AssetID) {
		respondBadRequest(c, "Invalid asset_id", queryParams.AssetID)
		return
	}

	report, err := h.executor.GetReconciliation(c.Request.Context(), queryParams.AssetID)
	if err != nil {
		respondError(c, err, "Failed to reconcile ledger")
		return
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-royalty-ledger-api",
	})
}

// assetIDParam reads the asset_id path parameter, responding with a bad request when it is invalid
func assetIDParam(c *gin.Context) (string, bool) {
	assetID := c.Param("asset_id")
	if !types.IsSolanaAddress(assetID) {
		respondBadRequest(c, "Invalid asset_id", fmt.Sprintf("%q is not a token mint address", assetID))
		return "", false
	}
	return assetID, true
}
