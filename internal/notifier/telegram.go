package notifier

import (
	"context"

	"github.com/go-telegram/bot"

	"github.com/stakeforge/stakeforge/pkg/logger"
)

// TelegramNotifier posts alerts to the operations chat.
type TelegramNotifier struct {
	logger *logger.Logger
	bot    *bot.Bot

	opsChatID string
}

func NewTelegramNotifier(logger *logger.Logger, token, opsChatID string) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{
		logger:    logger,
		bot:       b,
		opsChatID: opsChatID,
	}, nil
}

func (t *TelegramNotifier) SendNotification(message string) {
	params := &bot.SendMessageParams{
		ChatID: t.opsChatID,
		Text:   message,
	}
	_, err := t.bot.SendMessage(context.Background(), params)
	if err != nil {
		t.logger.Error("Failed to send telegram notification: ", err)
	}
}
