package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"action-item-extractor/internal/extraction"
	pkgLog "action-item-extractor/pkg/log"
	pkgTelegram "action-item-extractor/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Bot API used to reply.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type handler struct {
	l      pkgLog.Logger
	uc     extraction.UseCase
	bot    Sender
	secret string
}

// New creates a new Telegram delivery handler. When secret is set, updates
// without the matching secret token header are rejected.
func New(l pkgLog.Logger, uc extraction.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}

var _ Sender = (*pkgTelegram.Bot)(nil)
