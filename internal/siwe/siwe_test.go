package siwe

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	siwego "github.com/spruceid/siwe-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey)
}

func sign(t *testing.T, key *ecdsa.PrivateKey, msg string) string {
	t.Helper()
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

func testMessage(t *testing.T, addr common.Address, nonce string, opts ...func(map[string]interface{})) string {
	t.Helper()
	fields := map[string]interface{}{
		"statement":      "Sign in to book stays.",
		"chainId":        480,
		"issuedAt":       issuedAt.Format(time.RFC3339),
		"expirationTime": issuedAt.Add(10 * time.Minute).Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(fields)
	}
	m, err := siwego.InitMessage("stay.example", addr.Hex(), "https://stay.example", nonce, fields)
	require.NoError(t, err)
	return m.String()
}

func fixedClock() time.Time { return issuedAt.Add(time.Minute) }

func TestParse_RoundTrip(t *testing.T) {
	_, addr := newKey(t)

	parsed, err := Parse(testMessage(t, addr, "abc123def456"))

	require.NoError(t, err)
	assert.Equal(t, "stay.example", parsed.GetDomain())
	assert.Equal(t, addr, parsed.GetAddress())
	require.NotNil(t, parsed.GetStatement())
	assert.Equal(t, "Sign in to book stays.", *parsed.GetStatement())
	assert.Equal(t, 480, parsed.GetChainID())
	assert.Equal(t, "abc123def456", parsed.GetNonce())
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"no preamble": "hello\n0x0000000000000000000000000000000000000001",
		"bad address": "stay.example wants you to sign in with your Ethereum account:\nnot-an-address",
		"no nonce": "stay.example wants you to sign in with your Ethereum account:\n" +
			"0x0000000000000000000000000000000000000001\n\nURI: https://x\nVersion: 1\nChain ID: 1\nIssued At: 2026-01-01T00:00:00Z",
	}
	for name, raw := range cases {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrMalformedMessage, name)
	}
}

func TestVerifier_Verify_Success(t *testing.T) {
	key, addr := newKey(t)
	raw := testMessage(t, addr, "n0nce1234")
	sig := sign(t, key, raw)

	v := NewVerifier(480, WithDomain("stay.example"), WithClock(fixedClock))
	m, err := v.Verify(context.Background(), raw, sig, "n0nce1234", addr)

	require.NoError(t, err)
	assert.Equal(t, addr, m.GetAddress())
}

func TestVerifier_Verify_NonceMismatch(t *testing.T) {
	key, addr := newKey(t)
	raw := testMessage(t, addr, "issued1234")
	sig := sign(t, key, raw)

	v := NewVerifier(480, WithClock(fixedClock))
	_, err := v.Verify(context.Background(), raw, sig, "other1234", addr)

	assert.ErrorIs(t, err, ErrNonceMismatch)
}

func TestVerifier_Verify_WrongSigner(t *testing.T) {
	_, addr := newKey(t)
	otherKey, _ := newKey(t)
	raw := testMessage(t, addr, "nonce5678")
	sig := sign(t, otherKey, raw)

	v := NewVerifier(480, WithClock(fixedClock))
	_, err := v.Verify(context.Background(), raw, sig, "nonce5678", addr)

	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifier_Verify_Expired(t *testing.T) {
	key, addr := newKey(t)
	raw := testMessage(t, addr, "nonce5678")
	sig := sign(t, key, raw)

	v := NewVerifier(480, WithClock(func() time.Time { return issuedAt.Add(time.Hour) }))
	_, err := v.Verify(context.Background(), raw, sig, "nonce5678", addr)

	assert.ErrorIs(t, err, ErrMessageNotValid)
}

func TestVerifier_Verify_NotBefore(t *testing.T) {
	key, addr := newKey(t)
	raw := testMessage(t, addr, "nonce5678", func(f map[string]interface{}) {
		f["notBefore"] = issuedAt.Add(5 * time.Minute).Format(time.RFC3339)
	})
	sig := sign(t, key, raw)

	_, err := NewVerifier(480, WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", addr)

	assert.ErrorIs(t, err, ErrMessageNotValid)
}

func TestVerifier_Verify_ChainAndDomain(t *testing.T) {
	key, addr := newKey(t)
	raw := testMessage(t, addr, "nonce5678")
	sig := sign(t, key, raw)

	_, err := NewVerifier(1, WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", addr)
	assert.ErrorIs(t, err, ErrChainMismatch)

	_, err = NewVerifier(480, WithDomain("evil.example"), WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", addr)
	assert.ErrorIs(t, err, ErrDomainMismatch)
}

func TestVerifier_Verify_AddressMismatch(t *testing.T) {
	key, addr := newKey(t)
	_, other := newKey(t)
	raw := testMessage(t, addr, "nonce5678")
	sig := sign(t, key, raw)

	_, err := NewVerifier(480, WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", other)
	assert.ErrorIs(t, err, ErrAddressMismatch)
}

type stubWallet struct {
	valid bool
	err   error
	calls int
}

func (s *stubWallet) IsValidSignature(_ context.Context, _ common.Address, _ common.Hash, _ []byte) (bool, error) {
	s.calls++
	return s.valid, s.err
}

func TestVerifier_Verify_ContractWallet(t *testing.T) {
	safe := common.HexToAddress("0x5afe000000000000000000000000000000000001")
	ownerKey, _ := newKey(t)
	raw := testMessage(t, safe, "nonce5678")
	sig := sign(t, ownerKey, raw)

	ok := &stubWallet{valid: true}
	_, err := NewVerifier(480, WithContractWallets(ok), WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", safe)
	require.NoError(t, err)
	assert.Equal(t, 1, ok.calls)

	rejected := &stubWallet{valid: false}
	_, err = NewVerifier(480, WithContractWallets(rejected), WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", safe)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// RPC failure is fatal, never treated as success
	failing := &stubWallet{err: errors.New("dial tcp: connection refused")}
	_, err = NewVerifier(480, WithContractWallets(failing), WithClock(fixedClock)).Verify(context.Background(), raw, sig, "nonce5678", safe)
	assert.Error(t, err)
}
