package ports

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

type PropertyLedger interface {
	ListProperty(ctx context.Context, in domain.CreatePropertyInput) (domain.LedgerReceipt, error)
	GetProperty(ctx context.Context, id uint64) (*domain.Property, error)
	ActiveProperties(ctx context.Context) ([]*domain.Property, error)
}

type BookingLedger interface {
	CreateBooking(ctx context.Context, b domain.LedgerBooking) (domain.LedgerReceipt, error)
	GetBooking(ctx context.Context, id uint64) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, id uint64, reason string) (domain.LedgerReceipt, error)
	ReleaseFunds(ctx context.Context, id uint64) (domain.LedgerReceipt, error)
}

type StakingLedger interface {
	IsStaked(ctx context.Context, holder common.Address) (bool, error)
	StakeOf(ctx context.Context, holder common.Address) (*big.Int, error)
	StakeCall(holder common.Address) (domain.StakeCall, error)
	SubmitStake(ctx context.Context, holder common.Address, signedTx []byte) (domain.LedgerReceipt, error)
}

type DisputeLedger interface {
	FileDispute(ctx context.Context, d domain.Dispute) (domain.LedgerReceipt, error)
}

// StakeGate rejects wallets that have not staked when staking is enforced.
type StakeGate interface {
	Require(ctx context.Context, holder common.Address) error
}
