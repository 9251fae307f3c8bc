package ledger

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var stakingAddr = common.HexToAddress("0x00000000000000000000000000000000000057a1")

// stakeBackend records broadcasts and mines them immediately.
type stakeBackend struct {
	Backend
	sent []*types.Transaction
}

func (b *stakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}

func (b *stakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{TxHash: hash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
}

func newStakingClient(t *testing.T) (*Client, *stakeBackend) {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	relayer, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := &stakeBackend{}
	c, err := New(backend, relayer, Config{ChainID: 480, StakingContract: stakingAddr, Wait: fastPolicy}, log)
	require.NoError(t, err)
	return c, backend
}

func newWallet(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey)
}

type stakeTx struct {
	chainID int64
	to      common.Address
	value   *big.Int
	data    []byte
}

func signStake(t *testing.T, key *ecdsa.PrivateKey, st stakeTx) []byte {
	t.Helper()
	to := st.to
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(st.chainID),
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(1_000_000_000),
		Gas:       120_000,
		To:        &to,
		Value:     st.value,
		Data:      st.data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(st.chainID)), key)
	require.NoError(t, err)
	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func TestClient_StakeCall(t *testing.T) {
	c, _ := newStakingClient(t)
	_, holder := newWallet(t)

	call, err := c.StakeCall(holder)

	require.NoError(t, err)
	assert.Equal(t, stakingAddr, call.To)
	assert.Equal(t, 0, call.Value.Cmp(domain.StakeAmount))
	assert.Equal(t, int64(480), call.ChainID.Int64())

	method, err := c.staking.abi.MethodById(call.Data[:4])
	require.NoError(t, err)
	assert.Equal(t, "stake", method.Name)
}

func TestClient_SubmitStake_HolderSigned(t *testing.T) {
	c, backend := newStakingClient(t)
	key, holder := newWallet(t)
	call, err := c.StakeCall(holder)
	require.NoError(t, err)

	raw := signStake(t, key, stakeTx{chainID: 480, to: call.To, value: call.Value, data: call.Data})

	rcpt, err := c.SubmitStake(context.Background(), holder, raw)

	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, backend.sent[0].Hash(), rcpt.TxHash)
}

func TestClient_SubmitStake_Rejected(t *testing.T) {
	c, _ := newStakingClient(t)
	key, holder := newWallet(t)
	otherKey, other := newWallet(t)

	ownCall, err := c.StakeCall(holder)
	require.NoError(t, err)
	otherCall, err := c.StakeCall(other)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  []byte
	}{
		{
			name: "signed by another wallet",
			raw:  signStake(t, otherKey, stakeTx{chainID: 480, to: stakingAddr, value: domain.StakeAmount, data: ownCall.Data}),
		},
		{
			name: "stakes for another wallet",
			raw:  signStake(t, key, stakeTx{chainID: 480, to: stakingAddr, value: domain.StakeAmount, data: otherCall.Data}),
		},
		{
			name: "wrong contract",
			raw:  signStake(t, key, stakeTx{chainID: 480, to: common.HexToAddress("0xbad"), value: domain.StakeAmount, data: ownCall.Data}),
		},
		{
			name: "short deposit",
			raw:  signStake(t, key, stakeTx{chainID: 480, to: stakingAddr, value: big.NewInt(1), data: ownCall.Data}),
		},
		{
			name: "other chain",
			raw:  signStake(t, key, stakeTx{chainID: 1, to: stakingAddr, value: domain.StakeAmount, data: ownCall.Data}),
		},
		{
			name: "no call data",
			raw:  signStake(t, key, stakeTx{chainID: 480, to: stakingAddr, value: domain.StakeAmount}),
		},
		{
			name: "garbage",
			raw:  []byte{0x02, 0x01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.SubmitStake(context.Background(), holder, tt.raw)

			assert.ErrorIs(t, err, domain.ErrStakeTxInvalid)
		})
	}
}
