package handler

import (
	"sync"
	"time"

	"glosor/internal/domain"
	"glosor/internal/middleware"
	"glosor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	vocabService   *service.VocabService
	drillService   *service.DrillService
	logger         *zap.Logger
	cooldownWindow time.Duration

	// Per-chat drill sessions (in-memory, never persisted)
	sessions   map[int64]*domain.DrillSession
	sessionMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabService,
	drillService *service.DrillService,
	cooldownWindow time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		vocabService:   vocabService,
		drillService:   drillService,
		logger:         logger,
		cooldownWindow: cooldownWindow,
		sessions:       make(map[int64]*domain.DrillSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnDrawMixed, h.handleDrawMixed)
	h.bot.Handle(&btnDrawReverse, h.handleDrawReverse)
	h.bot.Handle(&btnDrawAgain, h.handleDrawAgain)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnByCategory, h.handleByCategory)
	h.bot.Handle(&btnAddWord, h.handleAddWord)
	h.bot.Handle(&btnListWords, h.handleListWords)
	h.bot.Handle(&btnAdmin, h.handleAdmin)

	adminOnly := middleware.AdminOnly(h.authService, h.logger)
	h.bot.Handle(&btnResetLabels, h.handleResetLabels, adminOnly)
	h.bot.Handle(&btnResetSeen, h.handleResetSeen, adminOnly)
	h.bot.Handle(&btnRatios, h.handleRatios, adminOnly)
	h.bot.Handle(&btnBulk, h.handleBulk, adminOnly)
	h.bot.Handle(&btnBulkApply, h.handleBulkApply, adminOnly)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Session returns the chat's drill session, creating it on first use.
func (h *Handler) Session(chatID int64) *domain.DrillSession {
	h.sessionMux.RLock()
	sess, exists := h.sessions[chatID]
	h.sessionMux.RUnlock()
	if exists {
		return sess
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if sess, exists = h.sessions[chatID]; exists {
		return sess
	}
	sess = domain.NewDrillSession(h.cooldownWindow)
	h.sessions[chatID] = sess
	return sess
}

// Inline keyboard buttons
var (
	btnDrawMixed = tele.Btn{
		Unique: "draw_mixed",
		Text:   "🧠 Draw word",
	}
	btnDrawReverse = tele.Btn{
		Unique: "draw_reverse",
		Text:   "🔁 English → Swedish",
	}
	btnDrawAgain = tele.Btn{
		Unique: "draw_again",
		Text:   "🔀 Draw again",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👁 Show translation",
	}
	btnByCategory = tele.Btn{
		Unique: "by_category",
		Text:   "📂 By category",
	}
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Add word",
	}
	btnListWords = tele.Btn{
		Unique: "list_words",
		Text:   "📖 All words",
	}
	btnAdmin = tele.Btn{
		Unique: "admin",
		Text:   "🛠 Admin panel",
	}
	btnResetLabels = tele.Btn{
		Unique: "reset_labels",
		Text:   "🔁 Reset all labels",
	}
	btnResetSeen = tele.Btn{
		Unique: "reset_seen",
		Text:   "🔁 Reset all seen counts",
	}
	btnRatios = tele.Btn{
		Unique: "ratios",
		Text:   "📊 Adjust ratios",
	}
	btnBulk = tele.Btn{
		Unique: "bulk",
		Text:   "📦 Bulk update",
	}
	btnBulkApply = tele.Btn{
		Unique: "bulk_apply",
		Text:   "✅ Apply to checked",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnDrawMixed),
		menu.Row(btnDrawReverse),
		menu.Row(btnByCategory),
		menu.Row(btnAddWord),
		menu.Row(btnListWords),
		menu.Row(btnAdmin),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// handleCancel aborts any multi-step flow and shows the menu again.
func (h *Handler) handleCancel(c tele.Context) error {
	h.Session(c.Sender().ID).ResetFlow()
	return c.Send("🏠 Main menu\n\nPick an action:", mainMenuMarkup())
}
