package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

// bookingRecord mirrors the Booking tuple; field order must match the ABI.
type bookingRecord struct {
	Id               *big.Int
	PropertyId       *big.Int
	Guest            common.Address
	Host             common.Address
	CheckInDate      *big.Int
	CheckOutDate     *big.Int
	TotalAmount      *big.Int
	PlatformFee      *big.Int
	HostAmount       *big.Int
	IsConfirmed      bool
	IsCancelled      bool
	FundsReleased    bool
	PaymentReference string
}

func (r bookingRecord) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:               r.Id.Uint64(),
		PropertyID:       r.PropertyId.Uint64(),
		Guest:            r.Guest,
		Host:             r.Host,
		CheckIn:          unixTime(r.CheckInDate),
		CheckOut:         unixTime(r.CheckOutDate),
		TotalAmount:      r.TotalAmount,
		PlatformFee:      r.PlatformFee,
		HostAmount:       r.HostAmount,
		IsConfirmed:      r.IsConfirmed,
		IsCancelled:      r.IsCancelled,
		FundsReleased:    r.FundsReleased,
		PaymentReference: r.PaymentReference,
	}
}

func (c *Client) CreateBooking(ctx context.Context, b domain.LedgerBooking) (domain.LedgerReceipt, error) {
	receipt, err := c.transact(ctx, c.bookings, nil, "createBooking",
		idBig(b.PropertyID), b.Guest, unixBig(b.CheckIn), unixBig(b.CheckOut),
		b.TotalAmount, b.PaymentReference,
	)
	if err != nil {
		var sent domain.LedgerReceipt
		if receipt != nil {
			sent.TxHash = receipt.TxHash
		}
		return sent, fmt.Errorf("%w: %w", domain.ErrBookingIDUnavailable, err)
	}

	id, ok := emittedID(receipt, c.bookings, "BookingCreated")
	if !ok {
		return domain.LedgerReceipt{TxHash: receipt.TxHash}, domain.ErrBookingIDUnavailable
	}
	return domain.LedgerReceipt{ID: id, TxHash: receipt.TxHash}, nil
}

func (c *Client) GetBooking(ctx context.Context, id uint64) (*domain.Booking, error) {
	out, err := c.call(ctx, c.bookings, "getBooking", idBig(id))
	if err != nil {
		return nil, err
	}

	rec := *abi.ConvertType(out[0], new(bookingRecord)).(*bookingRecord)
	if rec.Id == nil || rec.Id.Sign() == 0 {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrBookingNotFound)
	}
	return rec.toDomain(), nil
}

func (c *Client) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	out, err := c.call(ctx, c.bookings, "getAllBookings")
	if err != nil {
		return nil, err
	}

	recs := *abi.ConvertType(out[0], new([]bookingRecord)).(*[]bookingRecord)
	res := make([]*domain.Booking, 0, len(recs))
	for _, r := range recs {
		res = append(res, r.toDomain())
	}
	return res, nil
}

func (c *Client) CancelBooking(ctx context.Context, id uint64, reason string) (domain.LedgerReceipt, error) {
	receipt, err := c.transact(ctx, c.bookings, nil, "cancelBooking", idBig(id), reason)
	if err != nil {
		return domain.LedgerReceipt{}, err
	}
	return domain.LedgerReceipt{ID: id, TxHash: receipt.TxHash}, nil
}

func (c *Client) ReleaseFunds(ctx context.Context, id uint64) (domain.LedgerReceipt, error) {
	receipt, err := c.transact(ctx, c.bookings, nil, "releaseFunds", idBig(id))
	if err != nil {
		return domain.LedgerReceipt{}, err
	}
	return domain.LedgerReceipt{ID: id, TxHash: receipt.TxHash}, nil
}
