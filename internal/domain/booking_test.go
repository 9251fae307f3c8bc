package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

var (
	guest    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	host     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func TestBooking_CanRelease_MatchesConjunction(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		b := &Booking{
			CheckIn:       base.Add(time.Duration(r.Intn(96)-48) * time.Hour),
			IsConfirmed:   r.Intn(2) == 0,
			IsCancelled:   r.Intn(2) == 0,
			FundsReleased: r.Intn(2) == 0,
		}
		now := base

		want := b.IsConfirmed && !b.FundsReleased && !b.IsCancelled && !now.Before(b.CheckIn)

		assert.Equal(t, want, b.CanRelease(now), "booking=%+v", b)
	}
}

func TestBooking_ReleaseError_Reasons(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	b := &Booking{IsConfirmed: true, CheckIn: now.Add(time.Hour)}
	assert.ErrorIs(t, b.ReleaseError(now), ErrCheckInNotReached)

	b = &Booking{IsConfirmed: true, CheckIn: now}
	assert.NoError(t, b.ReleaseError(now))

	b = &Booking{IsConfirmed: false, CheckIn: now.Add(-time.Hour)}
	assert.ErrorIs(t, b.ReleaseError(now), ErrBookingNotConfirmed)

	b = &Booking{IsConfirmed: true, FundsReleased: true, CheckIn: now.Add(-time.Hour)}
	assert.ErrorIs(t, b.ReleaseError(now), ErrFundsAlreadyReleased)

	b = &Booking{IsConfirmed: true, IsCancelled: true, CheckIn: now.Add(-time.Hour)}
	assert.ErrorIs(t, b.ReleaseError(now), ErrBookingCancelled)
}

func TestBooking_CancelError(t *testing.T) {
	b := &Booking{Guest: guest, Host: host, IsConfirmed: true}

	assert.NoError(t, b.CancelError(guest))
	assert.NoError(t, b.CancelError(host))
	assert.ErrorIs(t, b.CancelError(stranger), ErrNotBookingParty)

	b.FundsReleased = true
	assert.ErrorIs(t, b.CancelError(guest), ErrFundsAlreadyReleased)

	b.IsCancelled = true
	assert.ErrorIs(t, b.CancelError(host), ErrBookingCancelled)
}

func TestBooking_Status(t *testing.T) {
	assert.Equal(t, BookingStatusPending, (&Booking{}).Status())
	assert.Equal(t, BookingStatusConfirmed, (&Booking{IsConfirmed: true}).Status())
	assert.Equal(t, BookingStatusReleased, (&Booking{IsConfirmed: true, FundsReleased: true}).Status())
	assert.Equal(t, BookingStatusCancelled, (&Booking{IsConfirmed: true, IsCancelled: true}).Status())
}

func TestBookingFilter_Match(t *testing.T) {
	b := &Booking{Guest: guest, Host: host}

	assert.True(t, BookingFilter{}.Match(b))
	assert.True(t, BookingFilter{Guest: &guest}.Match(b))
	assert.True(t, BookingFilter{Guest: &guest, Host: &host}.Match(b))
	assert.False(t, BookingFilter{Host: &guest}.Match(b))
}
