package notification

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() *domain.Booking {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(domain.TokenDecimals), nil)
	return &domain.Booking{
		ID:          42,
		PropertyID:  7,
		Guest:       common.HexToAddress("0xa1"),
		Host:        common.HexToAddress("0xb2"),
		CheckIn:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount: new(big.Int).Mul(big.NewInt(300), unit),
		PlatformFee: new(big.Int).Mul(big.NewInt(9), unit),
		HostAmount:  new(big.Int).Mul(big.NewInt(291), unit),
	}
}

func TestTelegram_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 100, newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), testBooking())
	})
}

func TestTelegram_BookingCreated(t *testing.T) {
	fs := &fakeSender{}
	n := &TelegramNotifier{bot: fs, chatID: 100, logger: newTestLogger(t)}

	n.NotifyBookingCreated(context.Background(), testBooking())

	require.Len(t, fs.sent, 1)
	msg := fs.sent[0]
	assert.Equal(t, int64(100), msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "#42")
	assert.Contains(t, msg.Text, "01.07.2026 - 04.07.2026")
	assert.Contains(t, msg.Text, "300 (комиссия 9)")
}

func TestTelegram_FundsReleasedAndDispute(t *testing.T) {
	fs := &fakeSender{}
	n := &TelegramNotifier{bot: fs, chatID: 100, logger: newTestLogger(t)}

	hash := common.HexToHash("0xf00d")
	n.NotifyFundsReleased(context.Background(), testBooking(), hash)
	n.NotifyDisputeFiled(context.Background(), &domain.Dispute{ID: 3, BookingID: 42, IsGuestDispute: true, Reason: "no keys"})

	require.Len(t, fs.sent, 2)
	assert.Contains(t, fs.sent[0].Text, "291")
	assert.Contains(t, fs.sent[0].Text, hash.Hex())
	assert.Contains(t, fs.sent[1].Text, "гость")
	assert.Contains(t, fs.sent[1].Text, "no keys")
}

func TestTelegram_EscapesUserText(t *testing.T) {
	fs := &fakeSender{}
	n := &TelegramNotifier{bot: fs, chatID: 100, logger: newTestLogger(t)}

	n.NotifyBookingCancelled(context.Background(), testBooking(), "late_checkin *again*")
	n.NotifyDisputeFiled(context.Background(), &domain.Dispute{ID: 3, BookingID: 42, Reason: "see [photo](x) `now`"})

	require.Len(t, fs.sent, 2)
	assert.Contains(t, fs.sent[0].Text, `late\_checkin \*again\*`)
	assert.Contains(t, fs.sent[1].Text, "see \\[photo](x) \\`now\\`")
	// markup of the template itself stays intact
	assert.Contains(t, fs.sent[0].Text, "*Бронирование #42 отменено*")
}

func TestTelegram_SkipsWithoutChatOrContext(t *testing.T) {
	fs := &fakeSender{}
	n := &TelegramNotifier{bot: fs, logger: newTestLogger(t)}
	n.NotifyBookingCancelled(context.Background(), testBooking(), "cancelled by guest")
	assert.Empty(t, fs.sent)

	n.chatID = 100
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyBookingCancelled(ctx, testBooking(), "cancelled by guest")
	assert.Empty(t, fs.sent)
}

func TestTelegram_SendErrorIsLogged(t *testing.T) {
	fs := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: fs, chatID: 100, logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		n.NotifyBookingCancelled(context.Background(), testBooking(), "cancelled by host")
	})
	assert.Len(t, fs.sent, 1)
}
