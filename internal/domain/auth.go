package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AuthNonce is the sign-in challenge. It is also handed to the browser in the
// siwe cookie and consumed on the first successful verification.
type AuthNonce struct {
	Nonce      string     `json:"nonce"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
}

type PaymentIntentStatus string

const (
	PaymentIntentInitiated PaymentIntentStatus = "initiated"
	PaymentIntentConfirmed PaymentIntentStatus = "confirmed"
	PaymentIntentConsumed  PaymentIntentStatus = "consumed"
)

// PaymentIntent correlates an off-chain payment with the booking it pays for.
type PaymentIntent struct {
	Reference     string              `json:"reference"`
	Wallet        common.Address      `json:"wallet"`
	Status        PaymentIntentStatus `json:"status"`
	TransactionID string              `json:"transaction_id,omitempty"`
	BookingID     *uint64             `json:"booking_id,omitempty"`
	PaidAmount    *big.Int            `json:"paid_amount,omitempty"`
	Recipient     common.Address      `json:"recipient"`
	CreatedAt     time.Time           `json:"created_at"`
	ExpiresAt     time.Time           `json:"expires_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// PaymentConfirmation is what the payment protocol reported for an intent.
type PaymentConfirmation struct {
	TransactionID string
	Amount        *big.Int
	Recipient     common.Address
}

// Covers reports whether the confirmed payment went to one of recipients and
// is at least total.
func (p *PaymentIntent) Covers(total *big.Int, recipients ...common.Address) error {
	if p.PaidAmount == nil || p.PaidAmount.Cmp(total) < 0 {
		return fmt.Errorf("%w: paid %s, stay costs %s", ErrPaymentRejected, FormatTokenAmount(p.PaidAmount), FormatTokenAmount(total))
	}
	for _, r := range recipients {
		if r != (common.Address{}) && p.Recipient == r {
			return nil
		}
	}
	return fmt.Errorf("%w: paid to %s", ErrPaymentRejected, p.Recipient.Hex())
}

// Session is the wallet identity carried by the session cookie.
type Session struct {
	Address common.Address
	Human   bool
}

// SIWEPayload is what the wallet SDK returns from a sign-in request.
type SIWEPayload struct {
	Status    string
	Message   string
	Signature string
	Address   string
	Version   int
}

// PersonhoodProof is an incognito-action proof produced by the identity SDK.
type PersonhoodProof struct {
	Proof             string `json:"proof"`
	MerkleRoot        string `json:"merkle_root"`
	NullifierHash     string `json:"nullifier_hash"`
	VerificationLevel string `json:"verification_level"`
}

// PersonhoodResult is the cloud verifier's answer, passed through to the client.
type PersonhoodResult struct {
	Success   bool   `json:"success"`
	Code      string `json:"code,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Action    string `json:"action,omitempty"`
	Nullifier string `json:"nullifier_hash,omitempty"`
}

// PaymentPayload is the success payload handed back by the payment SDK.
type PaymentPayload struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	From          string `json:"from"`
	Chain         string `json:"chain"`
}

// PaymentTransactionFailed is the protocol status of a transfer that will not settle.
const PaymentTransactionFailed = "failed"

// PaymentTransaction is the payment protocol's record of a transfer.
type PaymentTransaction struct {
	TransactionID     string `json:"transactionId"`
	TransactionHash   string `json:"transactionHash"`
	TransactionStatus string `json:"transactionStatus"`
	Reference         string `json:"reference"`
	From              string `json:"from"`
	To                string `json:"to"`
	Token             string `json:"token"`
	TokenAmount       string `json:"tokenAmount"`
	Chain             string `json:"chain"`
}
