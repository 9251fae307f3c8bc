package ledger

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletBackend struct {
	Backend
	code    []byte
	callErr error
	calls   int
}

func (b *walletBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return b.code, nil
}

func (b *walletBackend) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	b.calls++
	return nil, b.callErr
}

func TestClient_IsValidSignature_NoCode(t *testing.T) {
	c, _ := newStakingClient(t)
	backend := &walletBackend{}
	c.backend = backend

	ok, err := c.IsValidSignature(context.Background(), common.HexToAddress("0x01"), common.Hash{}, []byte{0x01})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, backend.calls)
}

func TestClient_IsValidSignature_RevertingWallet(t *testing.T) {
	c, _ := newStakingClient(t)
	backend := &walletBackend{code: []byte{0x60, 0x80}, callErr: errors.New("execution reverted")}
	c.backend = backend

	ok, err := c.IsValidSignature(context.Background(), common.HexToAddress("0x5afe"), common.Hash{}, []byte{0x01})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, backend.calls)
}
