package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

const DEFAULT_CONFIRMATION_POLL_INTERVAL = 500 * time.Millisecond

// ErrInsufficientFunds is returned when the treasury cannot cover a transfer
var ErrInsufficientFunds = errors.New("insufficient treasury balance")

// Config holds the configuration of the treasury transfer client
type Config struct {
	// TreasuryPrivateKey is the base58 encoded key of the account paying out
	TreasuryPrivateKey string
	// Commitment is the confirmation level a transfer must reach before it counts as done
	Commitment rpc.CommitmentType
	// PollInterval is the delay between confirmation status checks
	PollInterval time.Duration
}

// Transferer moves native SOL from the treasury to a destination
//
//go:generate mockgen -source=transfer.go -destination=../../mocks/transferer.go -package=mocks -mock_names=Transferer=MockTransferer
type Transferer interface {
	// Transfer sends lamports to the destination address and waits for confirmation.
	// Returns the transaction signature as the transfer reference.
	// The context deadline bounds the whole call, including confirmation.
	Transfer(ctx context.Context, destination string, lamports int64) (string, error)
}

type transferer struct {
	rpc          adapter.SolanaRPC
	treasury     solana.PrivateKey
	commitment   rpc.CommitmentType
	pollInterval time.Duration
}

// NewTransferer creates a treasury transfer client
func NewTransferer(cfg Config, client adapter.SolanaRPC) (Transferer, error) {
	key, err := solana.PrivateKeyFromBase58(cfg.TreasuryPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury private key: %w", err)
	}

	commitment := cfg.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DEFAULT_CONFIRMATION_POLL_INTERVAL
	}

	return &transferer{
		rpc:          client,
		treasury:     key,
		commitment:   commitment,
		pollInterval: pollInterval,
	}, nil
}

// Transfer sends lamports to the destination address and waits for confirmation
func (t *transferer) Transfer(ctx context.Context, destination string, lamports int64) (string, error) {
	if lamports <= 0 {
		return "", fmt.Errorf("transfer amount must be positive, got %d", lamports)
	}

	to, err := solana.PublicKeyFromBase58(destination)
	if err != nil {
		return "", fmt.Errorf("invalid destination %s: %w", destination, err)
	}
	from := t.treasury.PublicKey()

	balance, err := t.rpc.GetBalance(ctx, from, t.commitment)
	if err != nil {
		return "", fmt.Errorf("failed to get treasury balance: %w", err)
	}
	if balance.Value < uint64(lamports) {
		return "", fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, balance.Value, lamports)
	}

	blockhash, err := t.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get latest blockhash: %w", err)
	}

	instruction := system.NewTransferInstruction(uint64(lamports), from, to).Build()
	tx, err := solana.NewTransaction([]solana.Instruction{instruction}, blockhash.Value.Blockhash, solana.TransactionPayer(from))
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(from) {
			return &t.treasury
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	signature, err := t.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Sent treasury transfer",
		zap.String("destination", destination),
		zap.Int64("lamports", lamports),
		zap.String("signature", signature.String()),
	)

	if err := t.waitForConfirmation(ctx, signature); err != nil {
		return "", err
	}

	return signature.String(), nil
}

// waitForConfirmation polls the signature status until it reaches the configured commitment
func (t *transferer) waitForConfirmation(ctx context.Context, signature solana.Signature) error {
	operation := func() error {
		result, err := t.rpc.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}
		if result == nil || len(result.Value) == 0 || result.Value[0] == nil {
			return fmt.Errorf("transaction %s not yet visible", signature)
		}

		status := result.Value[0]
		if status.Err != nil {
			return backoff.Permanent(fmt.Errorf("transaction %s failed: %v", signature, status.Err))
		}
		if !reachedCommitment(status.ConfirmationStatus, t.commitment) {
			return fmt.Errorf("transaction %s is %s", signature, status.ConfirmationStatus)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(t.pollInterval), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("transaction %s not confirmed: %w", signature, ctxErr)
		}
		return err
	}

	return nil
}

func reachedCommitment(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	switch commitment {
	case rpc.CommitmentFinalized:
		return status == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentProcessed:
		return status != ""
	default:
		return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
	}
}
