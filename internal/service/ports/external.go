package ports

import (
	"context"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/siwe"
)

type SignatureVerifier interface {
	Verify(ctx context.Context, raw, signature, nonce string, address common.Address) (*siwe.Message, error)
}

type SessionIssuer interface {
	Issue(s domain.Session) (string, error)
}

type PersonhoodVerifier interface {
	Verify(ctx context.Context, proof domain.PersonhoodProof, action, signal string) (domain.PersonhoodResult, error)
}

type PaymentVerifier interface {
	Configured() bool
	Transaction(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error)
}

type ImageStore interface {
	Add(ctx context.Context, name string, r io.Reader) (string, error)
}
