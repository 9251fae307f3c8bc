package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (c *Client) IsStaked(ctx context.Context, holder common.Address) (bool, error) {
	out, err := c.call(ctx, c.staking, "isStaked", holder)
	if err != nil {
		return false, err
	}
	staked, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("isStaked: unexpected result %T", out[0])
	}
	return staked, nil
}

func (c *Client) StakeOf(ctx context.Context, holder common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.staking, "stakes", holder)
	if err != nil {
		return nil, err
	}
	amount, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("stakes: unexpected result %T", out[0])
	}
	return amount, nil
}

// StakeCall builds the stake transaction for holder's wallet to sign. The
// relayer never pays the deposit.
func (c *Client) StakeCall(holder common.Address) (domain.StakeCall, error) {
	data, err := c.staking.abi.Pack("stake", holder)
	if err != nil {
		return domain.StakeCall{}, fmt.Errorf("pack stake: %w", err)
	}
	return domain.StakeCall{
		To:      c.staking.address,
		Value:   new(big.Int).Set(domain.StakeAmount),
		Data:    data,
		ChainID: new(big.Int).Set(c.chainID),
	}, nil
}

// SubmitStake broadcasts a stake transaction signed by holder and waits for
// it to be mined.
func (c *Client) SubmitStake(ctx context.Context, holder common.Address, signedTx []byte) (domain.LedgerReceipt, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(signedTx); err != nil {
		return domain.LedgerReceipt{}, fmt.Errorf("%w: decode: %v", domain.ErrStakeTxInvalid, err)
	}
	if err := c.checkStakeTx(tx, holder); err != nil {
		return domain.LedgerReceipt{}, err
	}

	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return domain.LedgerReceipt{}, fmt.Errorf("send stake: %w", err)
	}

	receipt, err := waitMined(ctx, c.backend, tx.Hash(), c.wait)
	if err != nil {
		return domain.LedgerReceipt{TxHash: tx.Hash()}, fmt.Errorf("wait stake %s: %w", tx.Hash().Hex(), err)
	}

	c.logger.Info("stake transaction mined",
		logger.String("holder", holder.Hex()),
		logger.String("tx_hash", tx.Hash().Hex()),
		logger.Int64("block", receipt.BlockNumber.Int64()),
	)

	if receipt.Status != types.ReceiptStatusSuccessful {
		return domain.LedgerReceipt{TxHash: tx.Hash()}, fmt.Errorf("stake %s: %w", tx.Hash().Hex(), domain.ErrTxReverted)
	}
	return domain.LedgerReceipt{TxHash: tx.Hash()}, nil
}

// checkStakeTx accepts only stake(holder) on the staking contract, carrying
// the exact deposit and signed by holder on this chain.
func (c *Client) checkStakeTx(tx *types.Transaction, holder common.Address) error {
	if tx.ChainId().Cmp(c.chainID) != 0 {
		return fmt.Errorf("%w: chain id %s", domain.ErrStakeTxInvalid, tx.ChainId())
	}
	if tx.To() == nil || *tx.To() != c.staking.address {
		return fmt.Errorf("%w: not sent to the staking contract", domain.ErrStakeTxInvalid)
	}
	if tx.Value().Cmp(domain.StakeAmount) != 0 {
		return fmt.Errorf("%w: value %s, want %s", domain.ErrStakeTxInvalid, tx.Value(), domain.StakeAmount)
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return fmt.Errorf("%w: sender: %v", domain.ErrStakeTxInvalid, err)
	}
	if from != holder {
		return fmt.Errorf("%w: signed by %s, not %s", domain.ErrStakeTxInvalid, from.Hex(), holder.Hex())
	}

	data := tx.Data()
	if len(data) < 4 {
		return fmt.Errorf("%w: missing call data", domain.ErrStakeTxInvalid)
	}
	method, err := c.staking.abi.MethodById(data[:4])
	if err != nil || method.Name != "stake" {
		return fmt.Errorf("%w: not a stake call", domain.ErrStakeTxInvalid)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil || len(args) != 1 {
		return fmt.Errorf("%w: bad stake arguments", domain.ErrStakeTxInvalid)
	}
	if staked, ok := args[0].(common.Address); !ok || staked != holder {
		return fmt.Errorf("%w: stakes for another wallet", domain.ErrStakeTxInvalid)
	}
	return nil
}
