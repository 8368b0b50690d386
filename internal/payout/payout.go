package payout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/messaging"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/solana"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

const DEFAULT_TRANSFER_TIMEOUT = 60 * time.Second

// Config holds the configuration of the payout handler
type Config struct {
	// TransferTimeout bounds the external transfer call; a timeout counts as a failed transfer
	TransferTimeout time.Duration
}

// ClaimInput represents an earner's request to be paid what they are owed
type ClaimInput struct {
	AssetID string
	Earner  string
	Reason  string
	Actor   string
}

// WithdrawInput represents a platform withdrawal from the treasury.
// Amount 0 withdraws everything the platform is owed.
type WithdrawInput struct {
	AssetID     string
	Amount      int64
	Destination string
	Reason      string
	Actor       string
}

// Result is the outcome of a successful payout
type Result struct {
	AmountRaw     int64
	AmountDisplay string
	TransferRef   string
	EntryID       uint64
}

// Handler converts owed balances into external transfers and records them
//
//go:generate mockgen -source=payout.go -destination=../mocks/payout.go -package=mocks -mock_names=Handler=MockPayoutHandler
type Handler interface {
	// Claim pays an earner everything they are owed on an asset
	Claim(ctx context.Context, input ClaimInput) (*Result, error)

	// WithdrawPlatform pays out part or all of the platform's accrued share
	WithdrawPlatform(ctx context.Context, input WithdrawInput) (*Result, error)
}

type handler struct {
	config     Config
	store      store.Store
	locker     lock.Locker
	transferer solana.Transferer
	projector  projector.Projector
	publisher  messaging.Publisher
	clock      adapter.Clock
}

// NewHandler creates a new payout handler
func NewHandler(
	config Config,
	st store.Store,
	locker lock.Locker,
	transferer solana.Transferer,
	proj projector.Projector,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Handler {
	if config.TransferTimeout <= 0 {
		config.TransferTimeout = DEFAULT_TRANSFER_TIMEOUT
	}
	return &handler{
		config:     config,
		store:      st,
		locker:     locker,
		transferer: transferer,
		projector:  proj,
		publisher:  publisher,
		clock:      clock,
	}
}

// payoutRequest describes one transfer out of the treasury and the entry recording it
type payoutRequest struct {
	assetID       string
	beneficiaryID string
	destination   string
	eventKind     domain.EventKind
	actor         string
	reason        string
	// amount picks the transfer amount from the current balance
	amount func(owed int64) (int64, error)
}

func (h *handler) Claim(ctx context.Context, input ClaimInput) (*Result, error) {
	earner := strings.TrimSpace(input.Earner)
	if err := validateCommon(input.AssetID, input.Actor); err != nil {
		return nil, err
	}
	if earner == "" {
		return nil, domain.NewValidationError("earner", "earner identity is required")
	}

	return h.execute(ctx, payoutRequest{
		assetID:       input.AssetID,
		beneficiaryID: earner,
		destination:   earner,
		eventKind:     domain.EventKindClaim,
		actor:         input.Actor,
		reason:        input.Reason,
		amount: func(owed int64) (int64, error) {
			if owed <= 0 {
				return 0, &domain.NothingOwedError{AssetID: input.AssetID, Identity: earner, Owed: owed}
			}
			return owed, nil
		},
	})
}

func (h *handler) WithdrawPlatform(ctx context.Context, input WithdrawInput) (*Result, error) {
	destination := strings.TrimSpace(input.Destination)
	if err := validateCommon(input.AssetID, input.Actor); err != nil {
		return nil, err
	}
	if destination == "" {
		return nil, domain.NewValidationError("destination", "destination is required")
	}
	if input.Amount < 0 {
		return nil, domain.NewValidationError("amount", "amount cannot be negative")
	}

	return h.execute(ctx, payoutRequest{
		assetID:       input.AssetID,
		beneficiaryID: domain.PLATFORM_BENEFICIARY_ID,
		destination:   destination,
		eventKind:     domain.EventKindPlatformWithdrawal,
		actor:         input.Actor,
		reason:        input.Reason,
		amount: func(owed int64) (int64, error) {
			if owed <= 0 {
				return 0, &domain.NothingOwedError{AssetID: input.AssetID, Identity: domain.PLATFORM_BENEFICIARY_ID, Owed: owed}
			}
			if input.Amount == 0 {
				return owed, nil
			}
			if input.Amount > owed {
				return 0, &domain.ValidationError{
					Field:    "amount",
					Message:  fmt.Sprintf("amount exceeds platform balance of %d", owed),
					Expected: owed,
					Actual:   input.Amount,
				}
			}
			return input.Amount, nil
		},
	})
}

// execute runs balance check, transfer and ledger append under the asset lock.
// No entry is written unless the transfer succeeded.
func (h *handler) execute(ctx context.Context, req payoutRequest) (*Result, error) {
	kind, ok := types.BeneficiaryKindForEvent(req.eventKind)
	if !ok {
		return nil, fmt.Errorf("unsupported payout event kind %s", req.eventKind)
	}

	asset, err := h.store.GetAsset(ctx, req.assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, req.assetID)
	}

	ctx = logger.WithFields(ctx,
		zap.String("assetID", req.assetID),
		zap.String("beneficiaryID", req.beneficiaryID),
		zap.String("eventKind", string(req.eventKind)),
	)

	var result *Result
	err = h.locker.WithAssetLock(ctx, req.assetID, func(ctx context.Context) error {
		balance, err := h.store.GetBeneficiaryBalance(ctx, req.assetID, kind, req.beneficiaryID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}

		amount, err := req.amount(balance.Balance)
		if err != nil {
			return err
		}

		transferRef, err := h.transfer(ctx, req.destination, amount)
		if err != nil {
			return err
		}

		// Money has moved: the entry must be written even if the caller went away
		entry, err := h.store.AppendLedgerEntry(context.WithoutCancel(ctx), store.AppendLedgerEntryInput{
			AssetID:         req.assetID,
			BeneficiaryKind: kind,
			BeneficiaryID:   req.beneficiaryID,
			Amount:          -amount,
			EventKind:       req.eventKind,
			OccurredAt:      h.clock.Now(),
			TransferRef:     &transferRef,
		})
		if err != nil {
			persistErr := &domain.PersistenceError{
				Op:          fmt.Sprintf("append %s entry", strings.ToLower(string(req.eventKind))),
				TransferRef: transferRef,
				Err:         err,
			}
			logger.ErrorCtx(ctx, persistErr,
				zap.String("transferRef", transferRef),
				zap.Int64("amount", amount),
				zap.String("action", "manual ledger repair required"),
			)
			return persistErr
		}

		logger.InfoCtx(ctx, "Recorded payout",
			zap.Int64("amount", amount),
			zap.String("transferRef", transferRef),
			zap.String("actor", req.actor),
			zap.String("reason", req.reason),
		)

		result = &Result{
			AmountRaw:     amount,
			AmountDisplay: domain.FormatSOL(amount),
			TransferRef:   transferRef,
			EntryID:       entry.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.afterPayout(ctx, req, result)

	return result, nil
}

// transfer calls the transfer collaborator under the configured timeout
func (h *handler) transfer(ctx context.Context, destination string, amount int64) (string, error) {
	transferCtx, cancel := context.WithTimeout(ctx, h.config.TransferTimeout)
	defer cancel()

	transferRef, err := h.transferer.Transfer(transferCtx, destination, amount)
	if err != nil {
		logger.WarnCtx(ctx, "Payout transfer failed, no ledger entry written",
			zap.String("destination", destination),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return "", &domain.ExternalTransferError{Destination: destination, Amount: amount, Err: err}
	}
	if transferRef == "" {
		return "", &domain.ExternalTransferError{
			Destination: destination,
			Amount:      amount,
			Err:         fmt.Errorf("transfer returned an empty reference"),
		}
	}

	return transferRef, nil
}

// afterPayout refreshes the ownership view and publishes the event, both best-effort
func (h *handler) afterPayout(ctx context.Context, req payoutRequest, result *Result) {
	if _, err := h.projector.Rebuild(ctx, req.assetID); err != nil {
		logger.WarnCtx(ctx, "Failed to rebuild ownership view after payout", zap.Error(err))
	}

	eventType := domain.LedgerEventPayoutClaimed
	if req.eventKind == domain.EventKindPlatformWithdrawal {
		eventType = domain.LedgerEventPlatformWithdrawal
	}

	event := messaging.NewEvent(eventType, req.assetID, h.clock.Now())
	event.Identity = req.beneficiaryID
	event.Amount = result.AmountRaw
	event.TransferRef = result.TransferRef
	event.Actor = req.actor
	event.Reason = req.reason

	if err := h.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payout event", zap.Error(err))
	}
}

func validateCommon(assetID, actor string) error {
	if strings.TrimSpace(assetID) == "" {
		return domain.NewValidationError("asset_id", "asset id is required")
	}
	if strings.TrimSpace(actor) == "" {
		return domain.NewValidationError("actor", "actor is required")
	}
	return nil
}
