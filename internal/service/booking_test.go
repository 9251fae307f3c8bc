package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingDeps struct {
	ledger     *mocks.MockBookingLedger
	properties *mocks.MockPropertyLedger
	intents    *mocks.MockPaymentIntentRepo
	gate       *mocks.MockStakeGate
	notifier   *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	d := bookingDeps{
		ledger:     mocks.NewMockBookingLedger(t),
		properties: mocks.NewMockPropertyLedger(t),
		intents:    mocks.NewMockPaymentIntentRepo(t),
		gate:       mocks.NewMockStakeGate(t),
		notifier:   mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.ledger, d.properties, d.intents, d.gate, d.notifier, escrow, newTestLogger(t))
	svc.now = clockAt(baseTime)

	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Maybe()
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	d.notifier.EXPECT().NotifyFundsReleased(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return svc, d
}

var escrow = common.HexToAddress("0x00000000000000000000000000000000000000e5")

func paidIntent(amount int64, to common.Address) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		Reference:  "ref1",
		Wallet:     guest,
		Status:     domain.PaymentIntentConsumed,
		PaidAmount: big.NewInt(amount),
		Recipient:  to,
	}
}

func activeProperty(id uint64, price int64) *domain.Property {
	return &domain.Property{
		ID:            id,
		Host:          host,
		Name:          "Loft",
		Location:      "Lisbon",
		PricePerNight: big.NewInt(price),
		IsActive:      true,
	}
}

func stayInput() domain.CreateBookingInput {
	checkIn := baseTime.Add(48 * time.Hour)
	return domain.CreateBookingInput{
		PropertyID:       1,
		Guest:            guest,
		CheckIn:          checkIn,
		CheckOut:         checkIn.Add(3 * 24 * time.Hour),
		PaymentReference: "ref1",
	}
}

func confirmedBooking(id uint64, checkIn time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		PropertyID:  1,
		Guest:       guest,
		Host:        host,
		CheckIn:     checkIn,
		CheckOut:    checkIn.Add(72 * time.Hour),
		TotalAmount: big.NewInt(300),
		PlatformFee: big.NewInt(9),
		HostAmount:  big.NewInt(291),
		IsConfirmed: true,
	}
}

// list property at 100 per night -> book 3 nights -> 300 / 9 / 291
func TestBooking_ListThenBookThreeNights(t *testing.T) {
	log := newTestLogger(t)
	propertyLedger := mocks.NewMockPropertyLedger(t)
	gate := mocks.NewMockStakeGate(t)
	props := NewPropertyService(propertyLedger, gate, mocks.NewMockImageStore(t), log)

	gate.EXPECT().Require(mock.Anything, host).Return(nil)
	propertyLedger.EXPECT().ListProperty(mock.Anything, mock.MatchedBy(func(in domain.CreatePropertyInput) bool {
		return in.Host == host && in.PricePerNight.Int64() == 100
	})).Return(domain.LedgerReceipt{ID: 1, TxHash: common.HexToHash("0xaa")}, nil)

	listed, err := props.List(context.Background(), domain.Session{Address: host, Human: true}, domain.CreatePropertyInput{
		Name:          "Loft",
		Location:      "Lisbon",
		PricePerNight: big.NewInt(100),
	})
	require.NoError(t, err)

	svc, d := newBookingService(t)
	in := stayInput()
	in.PropertyID = listed.ID

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
	d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(paidIntent(300, host), nil)
	d.ledger.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(b domain.LedgerBooking) bool {
		return b.PropertyID == 1 && b.Guest == guest && b.TotalAmount.Int64() == 300 && b.PaymentReference == "ref1"
	})).Return(domain.LedgerReceipt{ID: 5, TxHash: common.HexToHash("0xbb")}, nil)
	d.intents.EXPECT().AttachBooking(mock.Anything, "ref1", uint64(5), baseTime).Return(nil)

	res, err := svc.Complete(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.BookingID)
	assert.Equal(t, int64(3), res.Quote.Nights)
	assert.Equal(t, int64(300), res.Quote.TotalAmount.Int64())
	assert.Equal(t, int64(9), res.Quote.PlatformFee.Int64())
	assert.Equal(t, int64(291), res.Quote.HostAmount.Int64())
}

func TestBookingService_Complete_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateBookingInput)
	}{
		{name: "no property", mutate: func(in *domain.CreateBookingInput) { in.PropertyID = 0 }},
		{name: "no reference", mutate: func(in *domain.CreateBookingInput) { in.PaymentReference = "  " }},
		{name: "check-out before check-in", mutate: func(in *domain.CreateBookingInput) { in.CheckOut = in.CheckIn.Add(-time.Hour) }},
		{name: "same day", mutate: func(in *domain.CreateBookingInput) { in.CheckOut = in.CheckIn }},
		{name: "check-in in the past", mutate: func(in *domain.CreateBookingInput) {
			in.CheckIn = baseTime.Add(-36 * time.Hour)
			in.CheckOut = baseTime.Add(48 * time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)
			in := stayInput()
			tt.mutate(&in)

			_, err := svc.Complete(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Complete_StakeRequired(t *testing.T) {
	svc, d := newBookingService(t)
	d.gate.EXPECT().Require(mock.Anything, guest).Return(domain.ErrStakeRequired)

	_, err := svc.Complete(context.Background(), stayInput())

	assert.ErrorIs(t, err, domain.ErrStakeRequired)
}

func TestBookingService_Complete_InactiveProperty(t *testing.T) {
	svc, d := newBookingService(t)
	p := activeProperty(1, 100)
	p.IsActive = false

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(p, nil)

	_, err := svc.Complete(context.Background(), stayInput())

	assert.ErrorIs(t, err, domain.ErrPropertyInactive)
}

func TestBookingService_Complete_PaymentNotConfirmed(t *testing.T) {
	svc, d := newBookingService(t)

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
	d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(nil, domain.ErrIntentNotPending)

	_, err := svc.Complete(context.Background(), stayInput())

	assert.ErrorIs(t, err, domain.ErrIntentNotPending)
}

func TestBookingService_Complete_CheckInToday(t *testing.T) {
	svc, d := newBookingService(t)
	in := stayInput()
	in.CheckIn = baseTime.Truncate(24 * time.Hour)
	in.CheckOut = in.CheckIn.Add(24 * time.Hour)

	d.gate.EXPECT().Require(mock.Anything, guest).Return(domain.ErrStakeRequired)

	_, err := svc.Complete(context.Background(), in)

	// past the date check, stopped by the gate
	assert.ErrorIs(t, err, domain.ErrStakeRequired)
}

func TestBookingService_Complete_PaymentMustCoverStay(t *testing.T) {
	tests := []struct {
		name   string
		intent *domain.PaymentIntent
	}{
		{name: "underpaid", intent: paidIntent(299, host)},
		{name: "one base unit", intent: paidIntent(1, host)},
		{name: "paid to stranger", intent: paidIntent(300, stranger)},
		{name: "no amount recorded", intent: &domain.PaymentIntent{Reference: "ref1", Wallet: guest, Recipient: host}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)

			d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
			d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
			d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(tt.intent, nil)
			d.intents.EXPECT().Release(mock.Anything, "ref1", baseTime).Return(nil)

			res, err := svc.Complete(context.Background(), stayInput())

			assert.ErrorIs(t, err, domain.ErrPaymentRejected)
			assert.Nil(t, res)
			d.ledger.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_Complete_PaidToEscrow(t *testing.T) {
	svc, d := newBookingService(t)

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
	d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(paidIntent(300, escrow), nil)
	d.ledger.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(domain.LedgerReceipt{ID: 6, TxHash: common.HexToHash("0xbe")}, nil)
	d.intents.EXPECT().AttachBooking(mock.Anything, "ref1", uint64(6), baseTime).Return(nil)

	res, err := svc.Complete(context.Background(), stayInput())

	require.NoError(t, err)
	assert.Equal(t, uint64(6), res.BookingID)
}

func TestBookingService_Complete_LedgerRejectedReleasesPayment(t *testing.T) {
	svc, d := newBookingService(t)

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
	d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(paidIntent(300, host), nil)
	d.ledger.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(domain.LedgerReceipt{TxHash: common.HexToHash("0xcc")}, fmt.Errorf("%w: %w", domain.ErrBookingIDUnavailable, domain.ErrTxReverted))
	d.intents.EXPECT().Release(mock.Anything, "ref1", baseTime).Return(nil)

	_, err := svc.Complete(context.Background(), stayInput())

	assert.ErrorIs(t, err, domain.ErrBookingIDUnavailable)
}

func TestBookingService_Complete_UnknownOutcomeKeepsClaim(t *testing.T) {
	svc, d := newBookingService(t)

	d.gate.EXPECT().Require(mock.Anything, guest).Return(nil)
	d.properties.EXPECT().GetProperty(mock.Anything, uint64(1)).Return(activeProperty(1, 100), nil)
	d.intents.EXPECT().Claim(mock.Anything, "ref1", guest, baseTime).Return(paidIntent(300, host), nil)
	d.ledger.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(domain.LedgerReceipt{TxHash: common.HexToHash("0xdd")}, domain.ErrBookingIDUnavailable)

	_, err := svc.Complete(context.Background(), stayInput())

	assert.ErrorIs(t, err, domain.ErrBookingIDUnavailable)
	d.intents.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_List_Filters(t *testing.T) {
	svc, d := newBookingService(t)
	mine := confirmedBooking(1, baseTime)
	other := confirmedBooking(2, baseTime)
	other.Guest = stranger

	d.ledger.EXPECT().ListBookings(mock.Anything).Return([]*domain.Booking{mine, other}, nil)

	g := guest
	res, err := svc.List(context.Background(), domain.BookingFilter{Guest: &g})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, uint64(1), res[0].ID)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, d := newBookingService(t)
	hash := common.HexToHash("0xee")

	d.ledger.EXPECT().GetBooking(mock.Anything, uint64(1)).Return(confirmedBooking(1, baseTime.Add(time.Hour)), nil)
	d.ledger.EXPECT().CancelBooking(mock.Anything, uint64(1), "cancelled by guest").
		Return(domain.LedgerReceipt{ID: 1, TxHash: hash}, nil)

	receipt, err := svc.Cancel(context.Background(), guest, 1, "")

	require.NoError(t, err)
	assert.Equal(t, hash, receipt.TxHash)
}

func TestBookingService_Cancel_Rejected(t *testing.T) {
	released := confirmedBooking(1, baseTime)
	released.FundsReleased = true
	cancelled := confirmedBooking(1, baseTime)
	cancelled.IsCancelled = true

	tests := []struct {
		name    string
		booking *domain.Booking
		caller  common.Address
		wantErr error
	}{
		{name: "stranger", booking: confirmedBooking(1, baseTime), caller: stranger, wantErr: domain.ErrNotBookingParty},
		{name: "already released", booking: released, caller: host, wantErr: domain.ErrFundsAlreadyReleased},
		{name: "already cancelled", booking: cancelled, caller: guest, wantErr: domain.ErrBookingCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.ledger.EXPECT().GetBooking(mock.Anything, uint64(1)).Return(tt.booking, nil)

			_, err := svc.Cancel(context.Background(), tt.caller, 1, "changed plans")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// release before check-in fails, after check-in succeeds once, then fails
func TestBookingService_Release_ExactlyOnceAfterCheckIn(t *testing.T) {
	svc, d := newBookingService(t)
	checkIn := baseTime.Add(24 * time.Hour)
	hash := common.HexToHash("0xff")

	d.ledger.EXPECT().GetBooking(mock.Anything, uint64(7)).Return(confirmedBooking(7, checkIn), nil).Twice()

	_, err := svc.Release(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrCheckInNotReached)

	svc.now = clockAt(checkIn)
	d.ledger.EXPECT().ReleaseFunds(mock.Anything, uint64(7)).Return(domain.LedgerReceipt{ID: 7, TxHash: hash}, nil).Once()

	res, err := svc.Release(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, hash, res.TxHash)
	assert.Equal(t, int64(291), res.HostAmount.Int64())
	assert.Equal(t, int64(9), res.PlatformFee.Int64())

	released := confirmedBooking(7, checkIn)
	released.FundsReleased = true
	d.ledger.EXPECT().GetBooking(mock.Anything, uint64(7)).Return(released, nil).Once()

	_, err = svc.Release(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrFundsAlreadyReleased)
}

func TestBookingService_Release_NotConfirmed(t *testing.T) {
	svc, d := newBookingService(t)
	b := confirmedBooking(3, baseTime)
	b.IsConfirmed = false

	d.ledger.EXPECT().GetBooking(mock.Anything, uint64(3)).Return(b, nil)

	_, err := svc.Release(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrBookingNotConfirmed)
}

func TestBookingService_Release_ConcurrentGuard(t *testing.T) {
	svc, d := newBookingService(t)
	entered := make(chan struct{})
	unblock := make(chan struct{})

	d.ledger.EXPECT().GetBooking(mock.Anything, uint64(9)).Return(confirmedBooking(9, baseTime), nil).Once()
	d.ledger.EXPECT().ReleaseFunds(mock.Anything, uint64(9)).
		RunAndReturn(func(context.Context, uint64) (domain.LedgerReceipt, error) {
			close(entered)
			<-unblock
			return domain.LedgerReceipt{ID: 9}, nil
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Release(context.Background(), 9)
		assert.NoError(t, err)
	}()

	<-entered
	_, err := svc.Release(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrReleaseInProgress)

	close(unblock)
	wg.Wait()
}

func TestBookingService_ReleaseDue(t *testing.T) {
	svc, d := newBookingService(t)

	due := confirmedBooking(1, baseTime.Add(-time.Hour))
	future := confirmedBooking(2, baseTime.Add(time.Hour))
	failing := confirmedBooking(3, baseTime.Add(-2*time.Hour))
	done := confirmedBooking(4, baseTime.Add(-time.Hour))
	done.FundsReleased = true

	d.ledger.EXPECT().ListBookings(mock.Anything).Return([]*domain.Booking{due, future, failing, done}, nil)
	d.ledger.EXPECT().ReleaseFunds(mock.Anything, uint64(1)).Return(domain.LedgerReceipt{ID: 1}, nil)
	d.ledger.EXPECT().ReleaseFunds(mock.Anything, uint64(3)).Return(domain.LedgerReceipt{}, errors.New("reverted"))

	res, err := svc.ReleaseDue(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, uint64(1), res[0].BookingID)
}
