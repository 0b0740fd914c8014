// Package notify sends new-posting announcements to a Telegram chat.
// The notifier is optional: without a configured token it is a no-op.
package notify

import (
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"entrypoint/internal/config"
	"entrypoint/internal/posting"
)

// Notifier announces user-created postings. A nil Notifier is valid and
// does nothing, so callers never need to branch on configuration.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New builds a Notifier from config. Returns nil when the token or chat
// is unset; returns an error only when a configured token is rejected.
func New(cfg *config.Config) (*Notifier, error) {
	if cfg == nil || cfg.TelegramBotToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Notifier{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

// PostingCreated announces a new posting. Fire and forget: delivery
// failures are logged, never propagated, so submission does not depend
// on the notifier.
func (n *Notifier) PostingCreated(p *posting.Posting) {
	if n == nil {
		return
	}
	go func() {
		text := fmt.Sprintf(
			"🆕 <b>%s</b>\n"+
				"🏢 %s\n"+
				"💰 %s\n"+
				"📍 %s\n"+
				"🛠 %s",
			html.EscapeString(p.RoleTitle),
			html.EscapeString(p.Company),
			html.EscapeString(p.SalaryLabel),
			html.EscapeString(p.LocationLabel),
			html.EscapeString(strings.Join(p.Stack, ", ")),
		)
		msg := tgbotapi.NewMessage(n.chatID, text)
		msg.ParseMode = "HTML"
		if _, err := n.bot.Send(msg); err != nil {
			log.Printf("notify: telegram send failed: %v", err)
		}
	}()
}
