package telegram

import (
	"fmt"
	"log"

	"quiz-bot-backend/internal/ws"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *UpdateHandler
}

func NewBot(token string, gateway Gateway, hub *ws.Hub, drawSize int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	state := NewStateManager()
	handler := NewUpdateHandler(api, state, gateway, hub, drawSize)

	return &Bot{api: api, handler: handler}, nil
}

// Start consumes the long-poll update channel until it is closed. Updates
// are handled one at a time, so a user's next message is never processed
// before the previous one finishes.
func (b *Bot) Start() {
	log.Printf("bot authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		b.handler.Handle(update)
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}
