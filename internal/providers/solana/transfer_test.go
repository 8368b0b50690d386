package solana_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	solanaprovider "github.com/feral-file/ff-royalty-ledger/internal/providers/solana"
)

type testTransferMocks struct {
	rpc        *mocks.MockSolanaRPC
	treasury   solana.PrivateKey
	transferer solanaprovider.Transferer
}

func setupTransferer(t *testing.T) *testTransferMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	m := &testTransferMocks{rpc: mocks.NewMockSolanaRPC(ctrl), treasury: key}
	m.transferer, err = solanaprovider.NewTransferer(solanaprovider.Config{
		TreasuryPrivateKey: key.String(),
		PollInterval:       time.Millisecond,
	}, m.rpc)
	require.NoError(t, err)

	return m
}

func destination(t *testing.T) string {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key.PublicKey().String()
}

func (m *testTransferMocks) expectFundedBlockhash(balance uint64) {
	m.rpc.EXPECT().
		GetBalance(gomock.Any(), m.treasury.PublicKey(), rpc.CommitmentConfirmed).
		Return(&rpc.GetBalanceResult{Value: balance}, nil)
	m.rpc.EXPECT().
		GetLatestBlockhash(gomock.Any(), rpc.CommitmentFinalized).
		Return(&rpc.GetLatestBlockhashResult{Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1}}}, nil)
}

func TestNewTransferer_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := solanaprovider.NewTransferer(solanaprovider.Config{TreasuryPrivateKey: "not-a-key"}, mocks.NewMockSolanaRPC(ctrl))
	assert.Error(t, err)
}

func TestTransfer_SignsSendsAndConfirms(t *testing.T) {
	m := setupTransferer(t)
	ctx := context.Background()
	to := destination(t)
	signature := solana.Signature{7}

	m.expectFundedBlockhash(5_000_000_000)
	m.rpc.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
			require.Len(t, tx.Signatures, 1)
			assert.True(t, tx.Message.AccountKeys[0].Equals(m.treasury.PublicKey()))
			assert.NoError(t, tx.VerifySignatures())
			return signature, nil
		})

	gomock.InOrder(
		m.rpc.EXPECT().
			GetSignatureStatuses(gomock.Any(), false, signature).
			Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{nil}}, nil),
		m.rpc.EXPECT().
			GetSignatureStatuses(gomock.Any(), false, signature).
			Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{{ConfirmationStatus: rpc.ConfirmationStatusProcessed}}}, nil),
		m.rpc.EXPECT().
			GetSignatureStatuses(gomock.Any(), false, signature).
			Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{{ConfirmationStatus: rpc.ConfirmationStatusConfirmed}}}, nil),
	)

	ref, err := m.transferer.Transfer(ctx, to, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, signature.String(), ref)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	m := setupTransferer(t)

	m.rpc.EXPECT().
		GetBalance(gomock.Any(), m.treasury.PublicKey(), rpc.CommitmentConfirmed).
		Return(&rpc.GetBalanceResult{Value: 10}, nil)

	_, err := m.transferer.Transfer(context.Background(), destination(t), 11)
	assert.ErrorIs(t, err, solanaprovider.ErrInsufficientFunds)
}

func TestTransfer_InvalidInputsDoNotCallRPC(t *testing.T) {
	m := setupTransferer(t)

	_, err := m.transferer.Transfer(context.Background(), "0xnot-solana", 10)
	assert.Error(t, err)

	_, err = m.transferer.Transfer(context.Background(), destination(t), 0)
	assert.Error(t, err)
}

func TestTransfer_FailedTransaction(t *testing.T) {
	m := setupTransferer(t)
	signature := solana.Signature{9}

	m.expectFundedBlockhash(100)
	m.rpc.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(signature, nil)
	m.rpc.EXPECT().
		GetSignatureStatuses(gomock.Any(), false, signature).
		Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{{Err: map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}}}}}, nil).
		Times(1)

	_, err := m.transferer.Transfer(context.Background(), destination(t), 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestTransfer_TimeoutBeforeConfirmation(t *testing.T) {
	m := setupTransferer(t)
	signature := solana.Signature{3}

	m.expectFundedBlockhash(100)
	m.rpc.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(signature, nil)
	m.rpc.EXPECT().
		GetSignatureStatuses(gomock.Any(), false, signature).
		Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{{ConfirmationStatus: rpc.ConfirmationStatusProcessed}}}, nil).
		AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.transferer.Transfer(ctx, destination(t), 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
