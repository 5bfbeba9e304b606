package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/internal/model"
	"action-item-extractor/pkg/actionitem"
	pkgErrors "action-item-extractor/pkg/errors"
	pkgResponse "action-item-extractor/pkg/response"
	pkgTelegram "action-item-extractor/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds immediately and processes the message in a background goroutine
// because Telegram expects a reply within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid secret token"))
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, "Markdown")
	}

	sc := model.Scope{Source: model.SourceTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	if err := h.bot.SendMessage(ctx, msg.Chat.ID, msgWorking); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	output, err := h.uc.Extract(ctx, sc, extraction.ExtractInput{Dialogue: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Extract failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}

	if len(output.Items) == 0 {
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgNone)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatItems(output.Items))
}

// command returns the bot command of text without any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return cmd
}

// formatItems renders a numbered plain-text list; transcript text is never
// sent with a parse mode.
func formatItems(items []actionitem.ActionItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d action item(s):\n", len(items))
	for i, it := range items {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, it.Task)
		if it.Owner != "" {
			fmt.Fprintf(&sb, "\n   👤 %s", it.Owner)
		}
		if it.DueDate != "" {
			fmt.Fprintf(&sb, "\n   📅 %s", it.DueDate)
		}
	}
	return sb.String()
}
