package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type DisputeService struct {
	ledger   ports.DisputeLedger
	bookings ports.BookingLedger
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewDisputeService(
	ledger ports.DisputeLedger,
	bookings ports.BookingLedger,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *DisputeService {
	return &DisputeService{
		ledger:   ledger,
		bookings: bookings,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *DisputeService) File(ctx context.Context, in domain.FileDisputeInput) (*domain.Dispute, domain.LedgerReceipt, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		return nil, domain.LedgerReceipt{}, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	b, err := s.bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, domain.LedgerReceipt{}, fmt.Errorf("get booking: %w", err)
	}
	if !b.IsParty(in.Initiator) {
		return nil, domain.LedgerReceipt{}, domain.ErrNotBookingParty
	}

	d := &domain.Dispute{
		BookingID:      in.BookingID,
		Initiator:      in.Initiator,
		IsGuestDispute: in.Initiator == b.Guest,
		Reason:         in.Reason,
		Evidence:       strings.TrimSpace(in.Evidence),
		Status:         domain.DisputeStatusFiled,
	}

	receipt, err := s.ledger.FileDispute(ctx, *d)
	if err != nil {
		return nil, receipt, fmt.Errorf("file dispute: %w", err)
	}
	d.ID = receipt.ID

	s.logger.Info("dispute filed",
		logger.Int64("dispute_id", int64(d.ID)),
		logger.Int64("booking_id", int64(d.BookingID)),
		logger.String("initiator", d.Initiator.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	go s.notifier.NotifyDisputeFiled(context.WithoutCancel(ctx), d)

	return d, receipt, nil
}
