package handler

import (
	"strings"
	"unicode"

	"glosor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callbacks from dynamically built buttons
// (categories, ratio labels, bulk update toggles).
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	userID := c.Sender().ID

	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", userID),
	)

	switch {
	case strings.HasPrefix(data, "cat_"):
		return h.handleCategoryPick(c, strings.TrimPrefix(data, "cat_"))

	case strings.HasPrefix(data, "ratio_"):
		if !h.authService.IsAdmin(userID) {
			return c.Respond()
		}
		return h.handleRatioPick(c, domain.Label(strings.TrimPrefix(data, "ratio_")))

	case strings.HasPrefix(data, "bulk"):
		if !h.authService.IsAdmin(userID) {
			return c.Respond()
		}
		return h.handleBulkAdjust(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
