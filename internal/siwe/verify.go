package siwe

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ContractWallet checks ERC-1271 signatures for smart-contract accounts.
type ContractWallet interface {
	IsValidSignature(ctx context.Context, wallet common.Address, hash common.Hash, signature []byte) (bool, error)
}

type Verifier struct {
	chainID   int64
	domain    string
	contracts ContractWallet
	now       func() time.Time
}

type Option func(*Verifier)

// WithDomain pins the message domain. Empty accepts any domain.
func WithDomain(domain string) Option {
	return func(v *Verifier) { v.domain = domain }
}

// WithContractWallets enables the ERC-1271 path for addresses whose
// signature does not recover to an externally owned key.
func WithContractWallets(c ContractWallet) Option {
	return func(v *Verifier) { v.contracts = c }
}

func WithClock(now func() time.Time) Option {
	return func(v *Verifier) { v.now = now }
}

func NewVerifier(chainID int64, opts ...Option) *Verifier {
	v := &Verifier{chainID: chainID, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify parses raw, checks it was issued for nonce and address, and checks
// the signature. Any failure is returned as an error; there is no lenient path.
func (v *Verifier) Verify(ctx context.Context, raw, signature, nonce string, address common.Address) (*Message, error) {
	m, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if m.GetNonce() != nonce {
		return nil, ErrNonceMismatch
	}
	if m.GetAddress() != address {
		return nil, ErrAddressMismatch
	}
	if v.chainID != 0 && int64(m.GetChainID()) != v.chainID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrChainMismatch, m.GetChainID(), v.chainID)
	}
	if v.domain != "" && m.GetDomain() != v.domain {
		return nil, fmt.Errorf("%w: %q", ErrDomainMismatch, m.GetDomain())
	}
	if _, err := m.ValidAt(v.now()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessageNotValid, err)
	}

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: decode signature: %v", ErrSignatureMismatch, err)
	}

	hash := accounts.TextHash([]byte(raw))
	if recovered, ok := recoverSigner(hash, sig); ok && recovered == address {
		return m, nil
	}

	if v.contracts == nil {
		return nil, ErrSignatureMismatch
	}
	valid, err := v.contracts.IsValidSignature(ctx, address, common.BytesToHash(hash), sig)
	if err != nil {
		return nil, fmt.Errorf("erc1271 check: %w", err)
	}
	if !valid {
		return nil, ErrSignatureMismatch
	}

	return m, nil
}

func recoverSigner(hash, sig []byte) (common.Address, bool) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, false
	}
	s := make([]byte, len(sig))
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, s)
	if err != nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(*pub), true
}
