package ports

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string)
	NotifyFundsReleased(ctx context.Context, b *domain.Booking, txHash common.Hash)
	NotifyDisputeFiled(ctx context.Context, d *domain.Dispute)
}
