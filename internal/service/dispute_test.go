package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDisputeService(t *testing.T) (*DisputeService, *mocks.MockDisputeLedger, *mocks.MockBookingLedger) {
	disputes := mocks.NewMockDisputeLedger(t)
	bookings := mocks.NewMockBookingLedger(t)
	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyDisputeFiled(mock.Anything, mock.Anything).Return().Maybe()

	return NewDisputeService(disputes, bookings, notifier, newTestLogger(t)), disputes, bookings
}

func TestDisputeService_File_ByGuest(t *testing.T) {
	svc, disputes, bookings := newDisputeService(t)

	bookings.EXPECT().GetBooking(mock.Anything, uint64(1)).Return(confirmedBooking(1, baseTime), nil)
	disputes.EXPECT().FileDispute(mock.Anything, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.BookingID == 1 && d.IsGuestDispute && d.Reason == "no keys"
	})).Return(domain.LedgerReceipt{ID: 11, TxHash: common.HexToHash("0x11")}, nil)

	d, receipt, err := svc.File(context.Background(), domain.FileDisputeInput{
		BookingID: 1, Initiator: guest, Reason: " no keys ", Evidence: "ipfs://photo",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(11), d.ID)
	assert.Equal(t, domain.DisputeStatusFiled, d.Status)
	assert.Equal(t, common.HexToHash("0x11"), receipt.TxHash)
}

func TestDisputeService_File_ByHost(t *testing.T) {
	svc, disputes, bookings := newDisputeService(t)

	bookings.EXPECT().GetBooking(mock.Anything, uint64(1)).Return(confirmedBooking(1, baseTime), nil)
	disputes.EXPECT().FileDispute(mock.Anything, mock.MatchedBy(func(d domain.Dispute) bool {
		return !d.IsGuestDispute && d.Initiator == host
	})).Return(domain.LedgerReceipt{ID: 12}, nil)

	d, _, err := svc.File(context.Background(), domain.FileDisputeInput{BookingID: 1, Initiator: host, Reason: "damage"})

	require.NoError(t, err)
	assert.False(t, d.IsGuestDispute)
}

func TestDisputeService_File_Rejected(t *testing.T) {
	t.Run("no reason", func(t *testing.T) {
		svc, _, _ := newDisputeService(t)

		_, _, err := svc.File(context.Background(), domain.FileDisputeInput{BookingID: 1, Initiator: guest})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, bookings := newDisputeService(t)
		bookings.EXPECT().GetBooking(mock.Anything, uint64(9)).Return(nil, domain.ErrBookingNotFound)

		_, _, err := svc.File(context.Background(), domain.FileDisputeInput{BookingID: 9, Initiator: guest, Reason: "x"})

		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})

	t.Run("not a party", func(t *testing.T) {
		svc, _, bookings := newDisputeService(t)
		bookings.EXPECT().GetBooking(mock.Anything, uint64(1)).Return(confirmedBooking(1, baseTime), nil)

		_, _, err := svc.File(context.Background(), domain.FileDisputeInput{BookingID: 1, Initiator: stranger, Reason: "x"})

		assert.ErrorIs(t, err, domain.ErrNotBookingParty)
	})
}
