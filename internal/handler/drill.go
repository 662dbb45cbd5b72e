package handler

import (
	"fmt"

	"glosor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const noCandidateText = "⚠️ No words available right now. Wait out the cooldown or add more words."

// renderCard formats a drawn flashcard as a message.
func renderCard(card *domain.Card) string {
	front := card.Direction.Front(card.Word)
	if !card.Revealed() {
		return fmt.Sprintf("🃏 %s", front)
	}
	return fmt.Sprintf("🃏 %s\n— — —\n%s", front, card.Direction.Back(card.Word))
}

// cardMarkup returns the keyboard shown under a card.
func cardMarkup(card *domain.Card) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if card.Revealed() {
		markup.Inline(
			markup.Row(btnDrawAgain),
			markup.Row(btnMainMenu),
		)
	} else {
		markup.Inline(
			markup.Row(btnReveal),
			markup.Row(btnDrawAgain),
			markup.Row(btnMainMenu),
		)
	}
	return markup
}

// handleDrawMixed draws a Swedish-first card from the weighted mixture.
func (h *Handler) handleDrawMixed(c tele.Context) error {
	return h.draw(c, domain.SwedishToEnglish)
}

// handleDrawReverse draws an English-first card from the weighted mixture.
func (h *Handler) handleDrawReverse(c tele.Context) error {
	return h.draw(c, domain.EnglishToSwedish)
}

// handleDrawAgain repeats the last drill direction.
func (h *Handler) handleDrawAgain(c tele.Context) error {
	sess := h.Session(c.Sender().ID)

	dir := domain.SwedishToEnglish
	if sess.Card != nil {
		dir = sess.Card.Direction
	}
	return h.draw(c, dir)
}

func (h *Handler) draw(c tele.Context, dir domain.Direction) error {
	userID := c.Sender().ID
	sess := h.Session(userID)

	card, err := h.drillService.DrawMixed(sess, dir)
	if err != nil {
		h.logger.Error("Failed to draw card",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Something went wrong. Try again later.")
	}

	if card == nil {
		return c.Send(noCandidateText, mainMenuMarkup())
	}

	h.logger.Info("Card drawn",
		zap.Int64("user_id", userID),
		zap.String("word", card.Word.Word),
		zap.String("direction", string(dir)),
	)

	return c.Send(renderCard(card), cardMarkup(card))
}

// handleReveal flips the current card face-up.
func (h *Handler) handleReveal(c tele.Context) error {
	sess := h.Session(c.Sender().ID)

	if sess.Card == nil {
		return c.Send("Nothing is drawn yet.", mainMenuMarkup())
	}

	sess.Card.Reveal()
	return c.Send(renderCard(sess.Card), cardMarkup(sess.Card))
}

// handleByCategory lists categories to drill from.
func (h *Handler) handleByCategory(c tele.Context) error {
	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	categories := domain.Categories(words)
	if len(categories) == 0 {
		return c.Send("No categories yet. Add some words first.", mainMenuMarkup())
	}

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, cat := range categories {
		rows = append(rows, markup.Row(markup.Data("📂 "+cat, "cat_"+cat)))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return c.Send("Pick a category:", markup)
}

// handleCategoryPick draws uniformly from the chosen category.
func (h *Handler) handleCategoryPick(c tele.Context, category string) error {
	userID := c.Sender().ID
	sess := h.Session(userID)

	card, err := h.drillService.DrawByCategory(sess, category)
	if err != nil {
		h.logger.Error("Failed to draw from category",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", category),
		)
		return c.Send("Something went wrong. Try again later.")
	}

	if card == nil {
		return c.Send("⚠️ No words in this category.", mainMenuMarkup())
	}

	return c.Send(renderCard(card), cardMarkup(card))
}
