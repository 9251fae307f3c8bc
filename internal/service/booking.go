package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	ledger     ports.BookingLedger
	properties ports.PropertyLedger
	intents    ports.PaymentIntentRepo
	gate       ports.StakeGate
	notifier   ports.BookingNotifier
	escrow     common.Address
	logger     logger.Logger
	now        func() time.Time

	// ids with a release in flight from this process
	mu       sync.Mutex
	inflight map[uint64]struct{}
}

func NewBookingService(
	ledger ports.BookingLedger,
	properties ports.PropertyLedger,
	intents ports.PaymentIntentRepo,
	gate ports.StakeGate,
	notifier ports.BookingNotifier,
	escrow common.Address,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		ledger:     ledger,
		properties: properties,
		intents:    intents,
		gate:       gate,
		notifier:   notifier,
		escrow:     escrow,
		logger:     logger,
		now:        time.Now,
		inflight:   make(map[uint64]struct{}),
	}
}

// Complete turns a confirmed payment into a booking on the ledger.
func (s *BookingService) Complete(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error) {
	if in.PropertyID == 0 {
		return nil, fmt.Errorf("%w: property id is required", domain.ErrValidation)
	}
	in.PaymentReference = strings.TrimSpace(in.PaymentReference)
	if in.PaymentReference == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrValidation)
	}
	if _, err := domain.Nights(in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}
	if today := s.now().UTC().Truncate(24 * time.Hour); in.CheckIn.Before(today) {
		return nil, fmt.Errorf("%w: check-in is in the past", domain.ErrValidation)
	}

	if err := s.gate.Require(ctx, in.Guest); err != nil {
		return nil, err
	}

	property, err := s.properties.GetProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if !property.IsActive {
		return nil, domain.ErrPropertyInactive
	}

	quote, err := domain.QuoteStay(property.PricePerNight, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	// захватываем оплату, чтобы одна ссылка не дала две брони
	intent, err := s.intents.Claim(ctx, in.PaymentReference, in.Guest, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("claim payment: %w", err)
	}
	// оплата должна покрыть стоимость и уйти хосту или в эскроу
	if err = intent.Covers(quote.TotalAmount, property.Host, s.escrow); err != nil {
		s.logger.Warn("payment does not cover the stay",
			logger.String("reference", in.PaymentReference),
			logger.String("error", err.Error()),
		)
		s.releaseIntent(ctx, in.PaymentReference)
		return nil, err
	}

	receipt, err := s.ledger.CreateBooking(ctx, domain.LedgerBooking{
		PropertyID:       in.PropertyID,
		Guest:            in.Guest,
		CheckIn:          in.CheckIn,
		CheckOut:         in.CheckOut,
		TotalAmount:      quote.TotalAmount,
		PaymentReference: in.PaymentReference,
	})
	if err != nil {
		if receipt.TxHash == (common.Hash{}) || errors.Is(err, domain.ErrTxReverted) {
			// бронь не создана, оплату можно использовать повторно
			s.releaseIntent(ctx, in.PaymentReference)
		} else {
			s.logger.Error("booking outcome unknown, payment stays claimed",
				logger.String("reference", in.PaymentReference),
				logger.String("tx_hash", receipt.TxHash.Hex()),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err = s.intents.AttachBooking(ctx, in.PaymentReference, receipt.ID, s.now().UTC()); err != nil {
		s.logger.Error("failed to attach booking to payment intent",
			logger.String("reference", in.PaymentReference),
			logger.Int64("booking_id", int64(receipt.ID)),
			logger.String("error", err.Error()),
		)
	}

	booking := &domain.Booking{
		ID:               receipt.ID,
		PropertyID:       in.PropertyID,
		Guest:            in.Guest,
		Host:             property.Host,
		CheckIn:          in.CheckIn,
		CheckOut:         in.CheckOut,
		TotalAmount:      quote.TotalAmount,
		PlatformFee:      quote.PlatformFee,
		HostAmount:       quote.HostAmount,
		IsConfirmed:      true,
		PaymentReference: in.PaymentReference,
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", int64(receipt.ID)),
		logger.Int64("property_id", int64(in.PropertyID)),
		logger.String("guest", in.Guest.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return &domain.BookingResult{
		BookingID: receipt.ID,
		TxHash:    receipt.TxHash,
		Quote:     quote,
	}, nil
}

func (s *BookingService) releaseIntent(ctx context.Context, reference string) {
	if err := s.intents.Release(ctx, reference, s.now().UTC()); err != nil {
		s.logger.Error("failed to release payment intent",
			logger.String("reference", reference),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) GetByID(ctx context.Context, id uint64) (*domain.Booking, error) {
	return s.ledger.GetBooking(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	all, err := s.ledger.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Match(b) {
			res = append(res, b)
		}
	}
	return res, nil
}

func (s *BookingService) Cancel(ctx context.Context, caller common.Address, id uint64, reason string) (domain.LedgerReceipt, error) {
	b, err := s.ledger.GetBooking(ctx, id)
	if err != nil {
		return domain.LedgerReceipt{}, fmt.Errorf("get booking: %w", err)
	}
	if err = b.CancelError(caller); err != nil {
		return domain.LedgerReceipt{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		if caller == b.Guest {
			reason = "cancelled by guest"
		} else {
			reason = "cancelled by host"
		}
	}

	receipt, err := s.ledger.CancelBooking(ctx, id, reason)
	if err != nil {
		return domain.LedgerReceipt{}, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", int64(id)),
		logger.String("by", caller.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	b.IsCancelled = true
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), b, reason)

	return receipt, nil
}

// Release pays out the host share of an eligible booking.
func (s *BookingService) Release(ctx context.Context, id uint64) (*domain.ReleaseResult, error) {
	if !s.acquire(id) {
		return nil, domain.ErrReleaseInProgress
	}
	defer s.done(id)

	b, err := s.ledger.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return s.release(ctx, b)
}

func (s *BookingService) release(ctx context.Context, b *domain.Booking) (*domain.ReleaseResult, error) {
	if err := b.ReleaseError(s.now()); err != nil {
		return nil, err
	}

	receipt, err := s.ledger.ReleaseFunds(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("release funds: %w", err)
	}

	s.logger.Info("funds released",
		logger.Int64("booking_id", int64(b.ID)),
		logger.String("host", b.Host.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	b.FundsReleased = true
	go s.notifier.NotifyFundsReleased(context.WithoutCancel(ctx), b, receipt.TxHash)

	return &domain.ReleaseResult{
		BookingID:   b.ID,
		TxHash:      receipt.TxHash,
		HostAmount:  b.HostAmount,
		PlatformFee: b.PlatformFee,
	}, nil
}

// ReleaseDue releases every booking whose check-in has been reached. A
// failure on one booking does not stop the others.
func (s *BookingService) ReleaseDue(ctx context.Context) ([]*domain.ReleaseResult, error) {
	all, err := s.ledger.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	now := s.now()
	var res []*domain.ReleaseResult
	for _, b := range all {
		if !b.CanRelease(now) {
			continue
		}
		if !s.acquire(b.ID) {
			continue
		}

		r, err := s.release(ctx, b)
		s.done(b.ID)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return res, err
			}
			s.logger.Error("failed to release funds",
				logger.Int64("booking_id", int64(b.ID)),
				logger.String("error", err.Error()),
			)
			continue
		}
		res = append(res, r)
	}

	return res, nil
}

func (s *BookingService) acquire(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *BookingService) done(id uint64) {
	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()
}
