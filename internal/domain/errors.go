package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrNoChange is matched by NoChangeError, returned when a split update would not change anything
	ErrNoChange = errors.New("no change")

	// ErrConflict is matched by ConflictError, returned on concurrent modification or a closed version
	ErrConflict = errors.New("conflict")

	// ErrNothingOwed is matched by NothingOwedError, returned when a claim has nothing to pay out
	ErrNothingOwed = errors.New("nothing owed")

	// ErrExternalTransfer is matched by ExternalTransferError, returned when the payout transfer fails or times out
	ErrExternalTransfer = errors.New("external transfer failed")

	// ErrPersistence is matched by PersistenceError
	ErrPersistence = errors.New("persistence failed")

	// ErrAssetNotFound is returned when an asset does not exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAgreementNotFound is returned when an asset has no current royalty agreement
	ErrAgreementNotFound = errors.New("agreement not found")

	// ErrFeeDataUnavailable is returned by the fee source when it has no data for an asset yet
	ErrFeeDataUnavailable = errors.New("fee data unavailable")

	// ErrLockNotAcquired is returned when the per-asset lock is held by another operation
	ErrLockNotAcquired = errors.New("lock not acquired")
)

// ValidationError describes a rejected input. Expected and Actual are set for sum mismatches.
type ValidationError struct {
	Field    string
	Message  string
	Expected int64
	Actual   int64
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NoChangeError is returned when the submitted split equals the current agreement
type NoChangeError struct {
	AssetID   string
	VersionID uint64
}

func (e *NoChangeError) Error() string {
	return fmt.Sprintf("split for asset %s is unchanged from version %d", e.AssetID, e.VersionID)
}

func (e *NoChangeError) Is(target error) bool {
	return target == ErrNoChange
}

// ConflictError is returned when an entity was modified concurrently or is in the wrong state
type ConflictError struct {
	Entity string
	ID     string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s %s: %s", e.Entity, e.ID, e.Reason)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NothingOwedError is returned when an earner's owed balance is not positive
type NothingOwedError struct {
	AssetID  string
	Identity string
	Owed     int64
}

func (e *NothingOwedError) Error() string {
	return fmt.Sprintf("nothing owed to %s on asset %s (balance %d)", e.Identity, e.AssetID, e.Owed)
}

func (e *NothingOwedError) Is(target error) bool {
	return target == ErrNothingOwed
}

// ExternalTransferError wraps a failed or timed out payout transfer
type ExternalTransferError struct {
	Destination string
	Amount      int64
	Err         error
}

func (e *ExternalTransferError) Error() string {
	return fmt.Sprintf("transfer of %d to %s failed: %v", e.Amount, e.Destination, e.Err)
}

func (e *ExternalTransferError) Is(target error) bool {
	return target == ErrExternalTransfer
}

func (e *ExternalTransferError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed write. TransferRef is set when money already moved
// on-chain and the ledger entry could not be recorded.
type PersistenceError struct {
	Op          string
	TransferRef string
	Err         error
}

func (e *PersistenceError) Error() string {
	if e.TransferRef != "" {
		return fmt.Sprintf("%s failed after transfer %s: %v", e.Op, e.TransferRef, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
