package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/ff-royalty-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   apierrors.ErrorCode
		status int
	}{
		{
			name:   "validation",
			err:    &domain.ValidationError{Field: "platform_bps", Message: "out of range"},
			code:   apierrors.ErrCodeValidationFailed,
			status: http.StatusBadRequest,
		},
		{
			name:   "wrapped no change",
			err:    fmt.Errorf("update split: %w", &domain.NoChangeError{AssetID: "a", VersionID: 4}),
			code:   apierrors.ErrCodeNoChange,
			status: http.StatusConflict,
		},
		{
			name:   "conflict",
			err:    &domain.ConflictError{Entity: "asset", ID: "a", Reason: "locked"},
			code:   apierrors.ErrCodeConflict,
			status: http.StatusConflict,
		},
		{
			name:   "nothing owed",
			err:    &domain.NothingOwedError{AssetID: "a", Identity: "e"},
			code:   apierrors.ErrCodeNothingOwed,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "transfer failed",
			err:    &domain.ExternalTransferError{Destination: "e", Amount: 1, Err: errors.New("rpc down")},
			code:   apierrors.ErrCodeTransferFailed,
			status: http.StatusBadGateway,
		},
		{
			name:   "persistence",
			err:    &domain.PersistenceError{Op: "open version", Err: errors.New("deadlock")},
			code:   apierrors.ErrCodeDatabaseError,
			status: http.StatusInternalServerError,
		},
		{
			name:   "asset not found",
			err:    fmt.Errorf("%w: a", domain.ErrAssetNotFound),
			code:   apierrors.ErrCodeNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "deadline",
			err:    fmt.Errorf("fee source: %w", context.DeadlineExceeded),
			code:   apierrors.ErrCodeServiceError,
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			code:   apierrors.ErrCodeInternalError,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apierrors.FromError(tt.err, "Request failed")
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.StatusCode())
		})
	}
}

func TestFromError_ValidationCarriesExpectedAndActual(t *testing.T) {
	apiErr := apierrors.FromError(&domain.ValidationError{
		Field:    "shares",
		Message:  "shares must sum to 10000 - platform_bps",
		Expected: 9000,
		Actual:   9100,
	}, "Failed to update split")

	assert.Equal(t, "shares", apiErr.Field)
	require.NotNil(t, apiErr.Expected)
	require.NotNil(t, apiErr.Actual)
	assert.Equal(t, int64(9000), *apiErr.Expected)
	assert.Equal(t, int64(9100), *apiErr.Actual)

	// Shape-only validation carries no sums
	apiErr = apierrors.FromError(&domain.ValidationError{Field: "identity", Message: "empty"}, "Failed")
	assert.Nil(t, apiErr.Expected)
	assert.Nil(t, apiErr.Actual)
}

func TestFromError_PersistenceAfterTransferKeepsReference(t *testing.T) {
	err := fmt.Errorf("claim: %w", &domain.PersistenceError{
		Op:          "record payout",
		TransferRef: "5nNz...sig",
		Err:         errors.New("connection reset"),
	})

	apiErr := apierrors.FromError(err, "Failed to claim payout")
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.Equal(t, "5nNz...sig", apiErr.TransferRef)
	assert.Equal(t, "Failed to claim payout", apiErr.Message)
}

func TestFromError_APIErrorPassthrough(t *testing.T) {
	original := apierrors.NewNotFoundError("Asset not found", "a")

	assert.Same(t, original, apierrors.FromError(fmt.Errorf("wrapped: %w", original), "ignored"))
}

func TestAPIError_Error(t *testing.T) {
	apiErr := apierrors.NewRateLimitedError("retry after 1s")

	assert.JSONEq(t, `{"code":"rate_limited","message":"Too many requests","details":"retry after 1s"}`, apiErr.Error())
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode())
}
