package ledger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/wb-go/wbf/logger"
)

// erc1271Magic is bytes4(keccak256("isValidSignature(bytes32,bytes)")).
var erc1271Magic = []byte{0x16, 0x26, 0xba, 0x7e}

// IsValidSignature asks a contract wallet whether it accepts sig over hash.
// Addresses without code are plain keys and never valid here.
func (c *Client) IsValidSignature(ctx context.Context, wallet common.Address, hash common.Hash, sig []byte) (bool, error) {
	code, err := c.backend.CodeAt(ctx, wallet, nil)
	if err != nil {
		return false, fmt.Errorf("code at %s: %w", wallet.Hex(), err)
	}
	if len(code) == 0 {
		return false, nil
	}

	bound := bind.NewBoundContract(wallet, c.erc1271, c.backend, c.backend, c.backend)
	var out []interface{}
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, "isValidSignature", hash, sig); err != nil {
		// reverting wallets reject the signature
		c.logger.Debug("erc1271 call failed",
			logger.String("wallet", wallet.Hex()),
			logger.String("error", err.Error()),
		)
		return false, nil
	}
	if len(out) == 0 {
		return false, nil
	}
	magic, ok := out[0].([4]byte)
	if !ok {
		return false, fmt.Errorf("isValidSignature: unexpected result %T", out[0])
	}
	return bytes.Equal(magic[:], erc1271Magic), nil
}
