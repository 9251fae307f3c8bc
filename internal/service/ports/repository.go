package ports

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

type NonceRepo interface {
	Create(ctx context.Context, n *domain.AuthNonce) error
	Consume(ctx context.Context, nonce string, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type PaymentIntentRepo interface {
	Create(ctx context.Context, p *domain.PaymentIntent) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error)
	MarkConfirmed(ctx context.Context, reference string, wallet common.Address, c domain.PaymentConfirmation, now time.Time) error
	Claim(ctx context.Context, reference string, wallet common.Address, now time.Time) (*domain.PaymentIntent, error)
	AttachBooking(ctx context.Context, reference string, bookingID uint64, now time.Time) error
	Release(ctx context.Context, reference string, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
