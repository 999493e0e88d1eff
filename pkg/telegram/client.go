package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLength is the Telegram limit for a single text message.
const maxMessageLength = 4096

// Notifier delivers plain alert text to a chat.
type Notifier interface {
	SendMessage(text string) error
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type botNotifier struct {
	bot    sender
	chatID int64
}

type nopNotifier struct{}

func (nopNotifier) SendMessage(string) error { return nil }

// NewNotifier connects to the Bot API. Without a token or chat id it returns a notifier
// that drops every message, so the alert worker still runs in development.
func NewNotifier(botToken string, chatID int64) (Notifier, error) {
	if botToken == "" || chatID == 0 {
		return nopNotifier{}, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &botNotifier{bot: bot, chatID: chatID}, nil
}

// SendMessage sends text as Markdown, split on line boundaries when it exceeds the message limit.
func (n *botNotifier) SendMessage(text string) error {
	for _, part := range splitMessage(text, maxMessageLength) {
		msg := tgbotapi.NewMessage(n.chatID, part)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.DisableWebPagePreview = true
		if _, err := n.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			parts = append(parts, line[:limit])
			line = line[limit:]
		}
		if current.Len()+len(line) > limit {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
