// Package ledger talks to the marketplace contracts over JSON-RPC. Writes are
// signed by the server's relayer key and block until the receipt is mined,
// except stakes, which the holder signs and funds.
package ledger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	RPCURL           string
	ChainID          int64
	RelayerKey       string
	PropertyContract common.Address
	BookingContract  common.Address
	StakingContract  common.Address
	DisputeContract  common.Address
	Wait             WaitPolicy
}

// Backend is the subset of ethclient.Client the bound contracts and the
// receipt poller need.
type Backend interface {
	bind.ContractBackend
	receiptSource
}

type contract struct {
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

type Client struct {
	backend Backend
	auth    *bind.TransactOpts
	chainID *big.Int
	wait    WaitPolicy
	logger  logger.Logger

	properties contract
	bookings   contract
	staking    contract
	disputes   contract
	erc1271    abi.ABI

	// one relayer key means one nonce sequence; sends are serialized
	sendMu sync.Mutex

	closeFn func()
}

func Dial(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	key, err := parseKey(cfg.RelayerKey)
	if err != nil {
		rpc.Close()
		return nil, err
	}

	c, err := New(rpc, key, cfg, log)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	c.closeFn = rpc.Close

	return c, nil
}

func New(backend Backend, key *ecdsa.PrivateKey, cfg Config, log logger.Logger) (*Client, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("relayer transactor: %w", err)
	}

	c := &Client{
		backend: backend,
		auth:    auth,
		chainID: big.NewInt(cfg.ChainID),
		wait:    cfg.Wait.withDefaults(),
		logger:  log,
	}

	bindings := []struct {
		dst  *contract
		addr common.Address
		json string
		name string
	}{
		{&c.properties, cfg.PropertyContract, PropertyHostingABI, "property hosting"},
		{&c.bookings, cfg.BookingContract, BookingEscrowABI, "booking escrow"},
		{&c.staking, cfg.StakingContract, StakingABI, "staking"},
		{&c.disputes, cfg.DisputeContract, DisputeResolutionABI, "dispute resolution"},
	}
	for _, b := range bindings {
		parsed, err := abi.JSON(strings.NewReader(b.json))
		if err != nil {
			return nil, fmt.Errorf("parse %s abi: %w", b.name, err)
		}
		*b.dst = contract{
			address: b.addr,
			abi:     parsed,
			bound:   bind.NewBoundContract(b.addr, parsed, backend, backend, backend),
		}
	}

	erc1271, err := abi.JSON(strings.NewReader(ERC1271ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc1271 abi: %w", err)
	}
	c.erc1271 = erc1271

	return c, nil
}

// Relayer is the address paying for and signing every write.
func (c *Client) Relayer() common.Address { return c.auth.From }

func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// transact sends method on ct and waits for a successful receipt. Once the
// transaction is sent the returned receipt is non-nil, even on error.
func (c *Client) transact(ctx context.Context, ct contract, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	opts := *c.auth
	opts.Context = ctx
	opts.Value = value

	c.sendMu.Lock()
	tx, err := ct.bound.Transact(&opts, method, args...)
	c.sendMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}

	start := time.Now()
	receipt, err := waitMined(ctx, c.backend, tx.Hash(), c.wait)
	if err != nil {
		// the transaction may still be mined later; keep its hash
		return &types.Receipt{TxHash: tx.Hash()}, fmt.Errorf("wait %s %s: %w", method, tx.Hash().Hex(), err)
	}

	c.logger.Info("ledger transaction mined",
		logger.String("method", method),
		logger.String("tx_hash", tx.Hash().Hex()),
		logger.Int64("block", receipt.BlockNumber.Int64()),
		logger.Duration("waited", time.Since(start)),
	)

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%s %s: %w", method, tx.Hash().Hex(), domain.ErrTxReverted)
	}
	return receipt, nil
}

func (c *Client) call(ctx context.Context, ct contract, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := ct.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result", method)
	}
	return out, nil
}

// emittedID returns the first indexed topic of the named event emitted by ct.
func emittedID(receipt *types.Receipt, ct contract, event string) (uint64, bool) {
	ev, ok := ct.abi.Events[event]
	if !ok || receipt == nil {
		return 0, false
	}
	for _, l := range receipt.Logs {
		if l.Address != ct.address || len(l.Topics) < 2 || l.Topics[0] != ev.ID {
			continue
		}
		id := new(big.Int).SetBytes(l.Topics[1].Bytes())
		if !id.IsUint64() || id.Sign() == 0 {
			return 0, false
		}
		return id.Uint64(), true
	}
	return 0, false
}

func parseKey(hexKey string) (*ecdsa.PrivateKey, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("relayer key is not configured")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse relayer key: %w", err)
	}
	return key, nil
}

func unixTime(v *big.Int) time.Time {
	if v == nil {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}

func unixBig(t time.Time) *big.Int {
	return big.NewInt(t.Unix())
}

func idBig(id uint64) *big.Int {
	return new(big.Int).SetUint64(id)
}
