package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-royalty-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Asset registration (requires authentication)
		v1.POST("/assets", middleware.Auth(authCfg), handler.CreateAsset)

		// Split endpoints; updates record the authenticated subject as actor
		v1.PUT("/assets/:asset_id/split", middleware.Auth(authCfg), handler.UpdateSplit)
		v1.GET("/assets/:asset_id/split", handler.GetSplit)
		v1.GET("/assets/:asset_id/split/history", handler.GetSplitHistory)

		// Payouts (requires authentication)
		v1.POST("/assets/:asset_id/claims", middleware.Auth(authCfg), handler.Claim)
		v1.POST("/assets/:asset_id/withdrawals", middleware.Auth(authCfg), handler.WithdrawPlatform)

		// Legacy ownership view (public read access)
		v1.GET("/assets/:asset_id/ownership", handler.GetOwnership)

		// Ledger verification (read only)
		v1.GET("/reconciliation", handler.GetReconciliation)
	}
}
