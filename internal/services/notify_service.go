package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"estateoffice/internal/models"
)

// DealNotifier announces newly registered deals to the office chat.
type DealNotifier interface {
	NotifyDealCreated(d *models.Deal) error
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier connects the bot; the caller decides whether a failed
// connection is fatal (it is not: deals work fine without alerts).
func NewTelegramNotifier(token string, chatID int64) (DealNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *telegramNotifier) NotifyDealCreated(d *models.Deal) error {
	status := ""
	if d.Status != nil {
		status = " [" + *d.Status + "]"
	}
	text := fmt.Sprintf("New deal #%d: %s on %s, amount %s%s",
		d.ID, d.DealType, d.DealDate.String(), d.Amount, status)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
