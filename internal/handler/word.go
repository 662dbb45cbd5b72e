package handler

import (
	"fmt"
	"strconv"
	"strings"

	"glosor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on the session state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.Session(userID)

	switch sess.State {
	case domain.StateWaitingPassword:
		if !h.authService.CheckPassword(text) {
			return c.Send("Incorrect password.")
		}

		h.authService.GrantAdmin(userID)
		h.logger.Info("Admin access granted", zap.Int64("user_id", userID))
		sess.ResetFlow()
		return h.sendAdminPanel(c)

	case domain.StateWaitingWord:
		sess.State = domain.StateWaitingTranslation
		sess.PendingWord = text
		return c.Send("Now the English meaning:", cancelMarkup())

	case domain.StateWaitingTranslation:
		sess.State = domain.StateWaitingCategory
		sess.PendingTranslation = text
		return c.Send("And a category (e.g. at home, in the office):", cancelMarkup())

	case domain.StateWaitingCategory:
		word := sess.PendingWord
		translation := sess.PendingTranslation
		category := text

		added, err := h.vocabService.Add(word, translation, category)
		if err != nil {
			h.logger.Error("Failed to add word",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			sess.ResetFlow()
			return c.Send("Could not save the word. Try again.")
		}

		// Stay in the flow so the next message starts another word.
		sess.ResetFlow()
		sess.State = domain.StateWaitingWord

		if !added {
			return c.Send(fmt.Sprintf("⚠️ The word '%s' already exists.\n\nSend another Swedish word or go /start", word))
		}

		h.logger.Info("Word added",
			zap.Int64("user_id", userID),
			zap.String("word", word),
			zap.String("category", category),
		)
		return c.Send(fmt.Sprintf("✅ Added '%s'!\n\nSend the next Swedish word or go /start", word))

	case domain.StateWaitingRatio:
		value, err := strconv.ParseFloat(text, 64)
		if err != nil || value < 0 || value > 1 {
			return c.Send("Send a number between 0 and 1, e.g. 0.25")
		}

		label := sess.PendingRatioLabel
		sess.Ratios[label] = value
		sess.ResetFlow()

		return c.Send(
			fmt.Sprintf("✅ Ratio for %s set to %.2f\n\n%s", label, value, formatRatios(sess.Ratios)),
			adminPanelMarkup(),
		)

	default:
		return c.Send("Pick an action from the menu:", mainMenuMarkup())
	}
}

// handleAddWord starts the three-step add flow.
func (h *Handler) handleAddWord(c tele.Context) error {
	sess := h.Session(c.Sender().ID)
	sess.ResetFlow()
	sess.State = domain.StateWaitingWord

	return c.Send("Send the Swedish word:", cancelMarkup())
}

// handleListWords shows the whole vocabulary with progress.
func (h *Handler) handleListWords(c tele.Context) error {
	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	if len(words) == 0 {
		return c.Send("No words added yet.", mainMenuMarkup())
	}

	return c.Send(formatWordList(words), mainMenuMarkup())
}

// formatWordList renders the vocabulary as one message.
func formatWordList(words []domain.Word) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📚 All words (%d)\n\n", len(words)))
	for _, w := range words {
		b.WriteString(fmt.Sprintf("%s — %s (%s) · %s · seen %d\n",
			w.Word, w.Translation, w.Category, w.Label, w.Seen))
	}
	return b.String()
}
