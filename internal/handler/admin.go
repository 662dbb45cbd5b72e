package handler

import (
	"fmt"
	"strings"

	"glosor/internal/domain"
	"glosor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdmin opens the admin panel, asking for the password first.
func (h *Handler) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID

	if !h.authService.IsAdmin(userID) {
		sess := h.Session(userID)
		sess.ResetFlow()
		sess.State = domain.StateWaitingPassword
		return c.Send("🔐 Enter the admin password:", cancelMarkup())
	}

	return h.sendAdminPanel(c)
}

func (h *Handler) sendAdminPanel(c tele.Context) error {
	sess := h.Session(c.Sender().ID)
	text := "🛠 Admin panel\n\n" + formatRatios(sess.Ratios)
	return c.Send(text, adminPanelMarkup())
}

func adminPanelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRatios),
		menu.Row(btnResetLabels),
		menu.Row(btnResetSeen),
		menu.Row(btnBulk),
		menu.Row(btnMainMenu),
	)
	return menu
}

// formatRatios renders the session's ratio mix with its total.
func formatRatios(ratios domain.RatioMix) string {
	var b strings.Builder
	b.WriteString("📊 Label ratios (sum should stay ≤ 1.0):\n")
	total := 0.0
	for _, label := range domain.Labels() {
		b.WriteString(fmt.Sprintf("  %s → %.2f\n", label, ratios[label]))
		total += ratios[label]
	}
	b.WriteString(fmt.Sprintf("Total: %.2f", total))
	return b.String()
}

// handleResetLabels sets every word back to the minimum bucket.
func (h *Handler) handleResetLabels(c tele.Context) error {
	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	if err := h.vocabService.ResetAllLabels(words); err != nil {
		h.logger.Error("Failed to reset labels", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	h.logger.Info("All labels reset", zap.Int64("user_id", c.Sender().ID))
	return c.Send("✅ All labels reset to 0%!", adminPanelMarkup())
}

// handleResetSeen zeroes every seen counter.
func (h *Handler) handleResetSeen(c tele.Context) error {
	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	if err := h.vocabService.ResetAllSeen(words); err != nil {
		h.logger.Error("Failed to reset seen counts", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	h.logger.Info("All seen counts reset", zap.Int64("user_id", c.Sender().ID))
	return c.Send("✅ All seen counts reset to 0!", adminPanelMarkup())
}

// handleRatios lists the labels so the admin can pick one to adjust.
func (h *Handler) handleRatios(c tele.Context) error {
	sess := h.Session(c.Sender().ID)

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, label := range domain.Labels() {
		text := fmt.Sprintf("%s (now %.2f)", label, sess.Ratios[label])
		rows = append(rows, markup.Row(markup.Data(text, "ratio_"+string(label))))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return c.Send("Pick a label to adjust:", markup)
}

// handleRatioPick asks for the new weight of one label.
func (h *Handler) handleRatioPick(c tele.Context, label domain.Label) error {
	if !label.Valid() {
		return c.Respond()
	}

	sess := h.Session(c.Sender().ID)
	sess.ResetFlow()
	sess.State = domain.StateWaitingRatio
	sess.PendingRatioLabel = label

	return c.Send(
		fmt.Sprintf("Send the new ratio for %s (0 to 1, now %.2f):", label, sess.Ratios[label]),
		cancelMarkup(),
	)
}

// Bulk update flow. The draft lives in the session; every toggle
// re-renders the same screen.

// maxBulkRows caps the number of per-word toggle buttons Telegram is
// asked to render in one message.
const maxBulkRows = 20

func (h *Handler) handleBulk(c tele.Context) error {
	sess := h.Session(c.Sender().ID)
	if sess.Bulk == nil {
		sess.Bulk = domain.NewBulkDraft()
	}
	return h.sendBulkScreen(c, sess.Bulk)
}

func (h *Handler) sendBulkScreen(c tele.Context, draft *domain.BulkDraft) error {
	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	text, markup := renderBulkScreen(words, draft)
	return c.Send(text, markup)
}

// renderBulkScreen builds the bulk update message and its keyboard.
func renderBulkScreen(words []domain.Word, draft *domain.BulkDraft) (string, *tele.ReplyMarkup) {
	sel := service.BulkSelection{
		Labels:  draft.FilterLabels(),
		MinSeen: draft.MinSeen,
		MaxSeen: draft.MaxSeen,
	}

	var b strings.Builder
	b.WriteString("📦 Bulk update\n\n")
	b.WriteString(fmt.Sprintf("Label filter: %s\n", formatLabelFilter(draft)))
	b.WriteString(fmt.Sprintf("Seen range: %d – %d\n", draft.MinSeen, draft.MaxSeen))
	b.WriteString(fmt.Sprintf("New label: %s, new seen: %d\n\n", draft.NewLabel, draft.NewSeen))
	b.WriteString("Check the words to change, then apply.")

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	// Filter label toggles.
	var filterRow []tele.Btn
	for _, label := range domain.Labels() {
		mark := "☐"
		if draft.LabelFilter[label] {
			mark = "☑"
		}
		filterRow = append(filterRow, markup.Data(mark+" "+string(label), "bulkfilter_"+string(label)))
	}
	rows = append(rows, markup.Row(filterRow...))

	// Seen range and target adjusters.
	rows = append(rows, markup.Row(
		markup.Data("min −", "bulkmin_down"),
		markup.Data("min +", "bulkmin_up"),
		markup.Data("max −", "bulkmax_down"),
		markup.Data("max +", "bulkmax_up"),
	))
	rows = append(rows, markup.Row(
		markup.Data("label ▸ "+string(draft.NewLabel), "bulklabel_next"),
		markup.Data("seen −", "bulkseen_down"),
		markup.Data("seen +", "bulkseen_up"),
	))

	// Per-word checkboxes for the eligible words.
	shown := 0
	for i, w := range words {
		if !sel.Eligible(w) {
			continue
		}
		if shown >= maxBulkRows {
			break
		}
		mark := "☐"
		if draft.Checked[i] {
			mark = "☑"
		}
		text := fmt.Sprintf("%s %s (%s, seen %d)", mark, w.Word, w.Label, w.Seen)
		rows = append(rows, markup.Row(markup.Data(text, fmt.Sprintf("bulkcheck_%d", i))))
		shown++
	}

	rows = append(rows, markup.Row(btnBulkApply))
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return b.String(), markup
}

func formatLabelFilter(draft *domain.BulkDraft) string {
	labels := draft.FilterLabels()
	if len(labels) == 0 {
		return "none (matches all)"
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// nextLabel cycles to the following bucket, wrapping around.
func nextLabel(l domain.Label) domain.Label {
	labels := domain.Labels()
	for i, cur := range labels {
		if cur == l {
			return labels[(i+1)%len(labels)]
		}
	}
	return domain.MinLabel
}

// handleBulkAdjust mutates the draft according to one button press and
// re-renders the screen.
func (h *Handler) handleBulkAdjust(c tele.Context, action string) error {
	sess := h.Session(c.Sender().ID)
	if sess.Bulk == nil {
		sess.Bulk = domain.NewBulkDraft()
	}
	draft := sess.Bulk

	switch {
	case strings.HasPrefix(action, "bulkfilter_"):
		label := domain.Label(strings.TrimPrefix(action, "bulkfilter_"))
		if label.Valid() {
			draft.LabelFilter[label] = !draft.LabelFilter[label]
		}
	case strings.HasPrefix(action, "bulkcheck_"):
		var i int
		if _, err := fmt.Sscanf(action, "bulkcheck_%d", &i); err == nil {
			draft.Checked[i] = !draft.Checked[i]
		}
	case action == "bulkmin_down" && draft.MinSeen > 0:
		draft.MinSeen--
	case action == "bulkmin_up":
		draft.MinSeen++
	case action == "bulkmax_down" && draft.MaxSeen > 0:
		draft.MaxSeen--
	case action == "bulkmax_up":
		draft.MaxSeen++
	case action == "bulklabel_next":
		draft.NewLabel = nextLabel(draft.NewLabel)
	case action == "bulkseen_down" && draft.NewSeen > 0:
		draft.NewSeen--
	case action == "bulkseen_up":
		draft.NewSeen++
	}

	return h.sendBulkScreen(c, draft)
}

// handleBulkApply runs the update for the checked words.
func (h *Handler) handleBulkApply(c tele.Context) error {
	userID := c.Sender().ID
	sess := h.Session(userID)
	if sess.Bulk == nil {
		return h.handleBulk(c)
	}
	draft := sess.Bulk

	words, err := h.vocabService.Load()
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	sel := service.BulkSelection{
		Labels:  draft.FilterLabels(),
		MinSeen: draft.MinSeen,
		MaxSeen: draft.MaxSeen,
		Checked: draft.CheckedIndexes(),
	}

	updated, err := h.vocabService.ApplyBulkUpdate(words, sel, draft.NewLabel, draft.NewSeen)
	if err != nil {
		h.logger.Error("Failed to apply bulk update",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Something went wrong. Try again later.")
	}

	h.logger.Info("Bulk update applied",
		zap.Int64("user_id", userID),
		zap.Int("updated", updated),
	)

	sess.Bulk = domain.NewBulkDraft()
	return c.Send(fmt.Sprintf("✅ Updated %d word(s).", updated), adminPanelMarkup())
}
