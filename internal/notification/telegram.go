package notification

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts escrow events to an operations chat. Wallets have no
// chat binding, so every message goes to the single configured chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Новое бронирование #%d*\n\n"+"Объект: #%d\n"+"Гость: `%s`\n"+"Даты (UTC): %s - %s\n"+"Сумма: %s (комиссия %s)",
		b.ID, b.PropertyID, b.Guest.Hex(),
		b.CheckIn.UTC().Format(dateLayout), b.CheckOut.UTC().Format(dateLayout),
		domain.FormatTokenAmount(b.TotalAmount), domain.FormatTokenAmount(b.PlatformFee),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) {
	text := fmt.Sprintf(
		"*Бронирование #%d отменено*\n\n"+"Объект: #%d\n"+"Причина: %s",
		b.ID, b.PropertyID, escape(reason),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyFundsReleased(ctx context.Context, b *domain.Booking, txHash common.Hash) {
	text := fmt.Sprintf(
		"*Средства по бронированию #%d переведены*\n\n"+"Хост: `%s`\n"+"Сумма: %s\n"+"Транзакция: `%s`",
		b.ID, b.Host.Hex(), domain.FormatTokenAmount(b.HostAmount), txHash.Hex(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyDisputeFiled(ctx context.Context, d *domain.Dispute) {
	side := "хост"
	if d.IsGuestDispute {
		side = "гость"
	}
	text := fmt.Sprintf(
		"*Открыт спор #%d*\n\n"+"Бронирование: #%d\n"+"Инициатор: %s `%s`\n"+"Причина: %s",
		d.ID, d.BookingID, side, d.Initiator.Hex(), escape(d.Reason),
	)
	n.send(ctx, text)
}

// escape keeps user text from breaking the Markdown of the message.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
