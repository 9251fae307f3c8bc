package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStakingService_Status(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))

	ledger.EXPECT().IsStaked(mock.Anything, host).Return(true, nil)
	ledger.EXPECT().StakeOf(mock.Anything, host).Return(domain.StakeAmount, nil)

	st, err := svc.Status(context.Background(), host)

	require.NoError(t, err)
	assert.True(t, st.Staked)
	assert.Equal(t, 0, st.Amount.Cmp(big.NewInt(100000000000000000)))
}

func TestStakingService_Status_NotStaked(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))

	ledger.EXPECT().IsStaked(mock.Anything, guest).Return(false, nil)

	st, err := svc.Status(context.Background(), guest)

	require.NoError(t, err)
	assert.False(t, st.Staked)
	assert.Nil(t, st.Amount)
}

func TestStakingService_StakeCall(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))
	call := domain.StakeCall{To: stranger, Value: domain.StakeAmount, Data: []byte{0x3a, 0x4b, 0x66, 0xf1}, ChainID: big.NewInt(480)}

	ledger.EXPECT().IsStaked(mock.Anything, guest).Return(false, nil)
	ledger.EXPECT().StakeCall(guest).Return(call, nil)

	got, err := svc.StakeCall(context.Background(), guest)

	require.NoError(t, err)
	assert.Equal(t, call, got)
}

func TestStakingService_Stake(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))
	hash := common.HexToHash("0x01")
	raw := []byte{0x02, 0xf8}

	ledger.EXPECT().IsStaked(mock.Anything, guest).Return(false, nil)
	ledger.EXPECT().SubmitStake(mock.Anything, guest, raw).Return(domain.LedgerReceipt{TxHash: hash}, nil)

	receipt, err := svc.Stake(context.Background(), guest, raw)

	require.NoError(t, err)
	assert.Equal(t, hash, receipt.TxHash)
}

func TestStakingService_Stake_ForeignSender(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))
	raw := []byte{0x02, 0xf8}

	ledger.EXPECT().IsStaked(mock.Anything, guest).Return(false, nil)
	ledger.EXPECT().SubmitStake(mock.Anything, guest, raw).
		Return(domain.LedgerReceipt{}, fmt.Errorf("%w: signed by %s, not %s", domain.ErrStakeTxInvalid, stranger.Hex(), guest.Hex()))

	_, err := svc.Stake(context.Background(), guest, raw)

	assert.ErrorIs(t, err, domain.ErrStakeTxInvalid)
}

func TestStakingService_Stake_Empty(t *testing.T) {
	svc := NewStakingService(mocks.NewMockStakingLedger(t), true, newTestLogger(t))

	_, err := svc.Stake(context.Background(), guest, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStakingService_Stake_AlreadyStaked(t *testing.T) {
	ledger := mocks.NewMockStakingLedger(t)
	svc := NewStakingService(ledger, true, newTestLogger(t))

	ledger.EXPECT().IsStaked(mock.Anything, guest).Return(true, nil)

	_, err := svc.Stake(context.Background(), guest, []byte{0x01})

	assert.ErrorIs(t, err, domain.ErrAlreadyStaked)
}

func TestStakingService_Require(t *testing.T) {
	tests := []struct {
		name     string
		required bool
		staked   *bool
		rpcErr   error
		wantErr  error
	}{
		{name: "gate disabled", required: false},
		{name: "staked", required: true, staked: boolPtr(true)},
		{name: "not staked", required: true, staked: boolPtr(false), wantErr: domain.ErrStakeRequired},
		{name: "rpc error", required: true, staked: boolPtr(false), rpcErr: errors.New("rpc down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockStakingLedger(t)
			svc := NewStakingService(ledger, tt.required, newTestLogger(t))
			if tt.staked != nil {
				ledger.EXPECT().IsStaked(mock.Anything, guest).Return(*tt.staked, tt.rpcErr)
			}

			err := svc.Require(context.Background(), guest)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.rpcErr != nil:
				assert.ErrorIs(t, err, tt.rpcErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }
