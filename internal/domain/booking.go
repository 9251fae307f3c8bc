package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusReleased  BookingStatus = "released"
)

type Booking struct {
	ID               uint64         `json:"id"`
	PropertyID       uint64         `json:"property_id"`
	Guest            common.Address `json:"guest"`
	Host             common.Address `json:"host"`
	CheckIn          time.Time      `json:"check_in_date"`
	CheckOut         time.Time      `json:"check_out_date"`
	TotalAmount      *big.Int       `json:"total_amount"`
	PlatformFee      *big.Int       `json:"platform_fee"`
	HostAmount       *big.Int       `json:"host_amount"`
	IsConfirmed      bool           `json:"is_confirmed"`
	IsCancelled      bool           `json:"is_cancelled"`
	FundsReleased    bool           `json:"funds_released"`
	PaymentReference string         `json:"payment_reference"`
}

// Status flattens the ledger flags. Cancellation wins over release because a
// cancelled booking is excluded from every further transition.
func (b *Booking) Status() BookingStatus {
	switch {
	case b.IsCancelled:
		return BookingStatusCancelled
	case b.FundsReleased:
		return BookingStatusReleased
	case b.IsConfirmed:
		return BookingStatusConfirmed
	default:
		return BookingStatusPending
	}
}

func (b *Booking) IsParty(addr common.Address) bool {
	return addr == b.Guest || addr == b.Host
}

// ReleaseError reports why funds cannot be released at now, or nil when the
// booking is eligible: confirmed, not released, not cancelled, check-in reached.
func (b *Booking) ReleaseError(now time.Time) error {
	switch {
	case b.IsCancelled:
		return ErrBookingCancelled
	case b.FundsReleased:
		return ErrFundsAlreadyReleased
	case !b.IsConfirmed:
		return ErrBookingNotConfirmed
	case now.Before(b.CheckIn):
		return ErrCheckInNotReached
	}
	return nil
}

func (b *Booking) CanRelease(now time.Time) bool {
	return b.ReleaseError(now) == nil
}

// CancelError reports why the booking cannot be cancelled by addr.
func (b *Booking) CancelError(addr common.Address) error {
	switch {
	case !b.IsParty(addr):
		return ErrNotBookingParty
	case b.IsCancelled:
		return ErrBookingCancelled
	case b.FundsReleased:
		return ErrFundsAlreadyReleased
	}
	return nil
}

type CreateBookingInput struct {
	PropertyID       uint64
	Guest            common.Address
	CheckIn          time.Time
	CheckOut         time.Time
	PaymentReference string
}

// LedgerBooking is the payload of the createBooking call.
type LedgerBooking struct {
	PropertyID       uint64
	Guest            common.Address
	CheckIn          time.Time
	CheckOut         time.Time
	TotalAmount      *big.Int
	PaymentReference string
}

type BookingFilter struct {
	Guest *common.Address
	Host  *common.Address
}

func (f BookingFilter) Match(b *Booking) bool {
	if f.Guest != nil && *f.Guest != b.Guest {
		return false
	}
	if f.Host != nil && *f.Host != b.Host {
		return false
	}
	return true
}

// BookingResult is returned to the guest once the ledger accepted the booking.
type BookingResult struct {
	BookingID uint64
	TxHash    common.Hash
	Quote     Quote
}

type ReleaseResult struct {
	BookingID   uint64
	TxHash      common.Hash
	HostAmount  *big.Int
	PlatformFee *big.Int
}
