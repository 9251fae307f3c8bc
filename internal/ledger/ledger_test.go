package ledger

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseABI(t *testing.T, raw string) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(raw))
	require.NoError(t, err)
	return parsed
}

func TestABIs_Parse(t *testing.T) {
	for name, raw := range map[string]string{
		"property": PropertyHostingABI,
		"booking":  BookingEscrowABI,
		"staking":  StakingABI,
		"dispute":  DisputeResolutionABI,
		"erc1271":  ERC1271ABI,
	} {
		t.Run(name, func(t *testing.T) {
			parseABI(t, raw)
		})
	}
}

func TestBookingRecord_Unpack(t *testing.T) {
	escrow := parseABI(t, BookingEscrowABI)
	guest := common.HexToAddress("0x1111111111111111111111111111111111111111")
	host := common.HexToAddress("0x2222222222222222222222222222222222222222")
	checkIn := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)

	in := bookingRecord{
		Id:               big.NewInt(7),
		PropertyId:       big.NewInt(3),
		Guest:            guest,
		Host:             host,
		CheckInDate:      unixBig(checkIn),
		CheckOutDate:     unixBig(checkIn.Add(72 * time.Hour)),
		TotalAmount:      big.NewInt(300),
		PlatformFee:      big.NewInt(9),
		HostAmount:       big.NewInt(291),
		IsConfirmed:      true,
		PaymentReference: "ref",
	}
	data, err := escrow.Methods["getBooking"].Outputs.Pack(in)
	require.NoError(t, err)

	out, err := escrow.Methods["getBooking"].Outputs.Unpack(data)
	require.NoError(t, err)
	rec := *abi.ConvertType(out[0], new(bookingRecord)).(*bookingRecord)
	b := rec.toDomain()

	assert.Equal(t, uint64(7), b.ID)
	assert.Equal(t, uint64(3), b.PropertyID)
	assert.Equal(t, guest, b.Guest)
	assert.Equal(t, host, b.Host)
	assert.True(t, b.CheckIn.Equal(checkIn))
	assert.Equal(t, int64(291), b.HostAmount.Int64())
	assert.True(t, b.IsConfirmed)
	assert.Equal(t, "ref", b.PaymentReference)
}

func TestPropertyRecord_UnpackList(t *testing.T) {
	hosting := parseABI(t, PropertyHostingABI)
	host := common.HexToAddress("0x2222222222222222222222222222222222222222")

	in := []propertyRecord{
		{Id: big.NewInt(1), Host: host, Name: "Loft", PricePerNight: big.NewInt(100), IsActive: true, CreatedAt: big.NewInt(1700000000), ImageHash: "bafy"},
		{Id: big.NewInt(2), Host: host, Name: "Hut", PricePerNight: big.NewInt(50), CreatedAt: big.NewInt(1700000000)},
	}
	data, err := hosting.Methods["getActiveProperties"].Outputs.Pack(in)
	require.NoError(t, err)

	out, err := hosting.Methods["getActiveProperties"].Outputs.Unpack(data)
	require.NoError(t, err)
	recs := *abi.ConvertType(out[0], new([]propertyRecord)).(*[]propertyRecord)

	require.Len(t, recs, 2)
	p := recs[0].toDomain()
	assert.Equal(t, uint64(1), p.ID)
	assert.Equal(t, "Loft", p.Name)
	assert.Equal(t, "bafy", p.ImageReference)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), p.CreatedAt)
}

func TestEmittedID(t *testing.T) {
	escrow := parseABI(t, BookingEscrowABI)
	addr := common.HexToAddress("0x3333333333333333333333333333333333333333")
	ct := contract{address: addr, abi: escrow}
	created := escrow.Events["BookingCreated"].ID

	idTopic := common.BigToHash(big.NewInt(42))

	tests := []struct {
		name   string
		logs   []*types.Log
		wantID uint64
		wantOK bool
	}{
		{
			name:   "matching event",
			logs:   []*types.Log{{Address: addr, Topics: []common.Hash{created, idTopic}}},
			wantID: 42,
			wantOK: true,
		},
		{
			name:   "event from another contract",
			logs:   []*types.Log{{Address: common.HexToAddress("0x01"), Topics: []common.Hash{created, idTopic}}},
			wantOK: false,
		},
		{
			name:   "other event",
			logs:   []*types.Log{{Address: addr, Topics: []common.Hash{escrow.Events["FundsReleased"].ID, idTopic}}},
			wantOK: false,
		},
		{
			name:   "zero id",
			logs:   []*types.Log{{Address: addr, Topics: []common.Hash{created, {}}}},
			wantOK: false,
		},
		{
			name:   "no logs",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := emittedID(&types.Receipt{Logs: tt.logs}, ct, "BookingCreated")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

type fakeReceipts struct {
	failures int
	calls    int
}

func (f *fakeReceipts) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("not found")
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
}

var fastPolicy = WaitPolicy{
	Timeout:  time.Second,
	Attempts: 4,
	Delay:    time.Millisecond,
	MaxDelay: 4 * time.Millisecond,
	Factor:   2,
}

func TestWaitMined_RetriesUntilMined(t *testing.T) {
	src := &fakeReceipts{failures: 2}

	receipt, err := waitMined(context.Background(), src, common.Hash{}, fastPolicy)

	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, 3, src.calls)
}

func TestWaitMined_StopsAfterAttempts(t *testing.T) {
	src := &fakeReceipts{failures: 100}

	_, err := waitMined(context.Background(), src, common.Hash{}, fastPolicy)

	assert.ErrorIs(t, err, ErrReceiptTimeout)
	assert.Equal(t, fastPolicy.Attempts, src.calls)
}

func TestWaitMined_ContextCancelled(t *testing.T) {
	src := &fakeReceipts{failures: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := fastPolicy
	p.Delay = time.Hour
	p.MaxDelay = time.Hour

	_, err := waitMined(ctx, src, common.Hash{}, p)

	assert.ErrorIs(t, err, ErrReceiptTimeout)
	assert.Equal(t, 1, src.calls)
}

func TestWaitPolicy_Defaults(t *testing.T) {
	p := WaitPolicy{}.withDefaults()

	assert.Equal(t, 2*time.Minute, p.Timeout)
	assert.Equal(t, 12, p.Attempts)
	assert.Equal(t, time.Second, p.Delay)
	assert.Equal(t, 15*time.Second, p.MaxDelay)
	assert.Equal(t, 2.0, p.Factor)
}
