package domain

import "time"

// Card is a drawn flashcard. It starts face-down and can only move
// forward to the revealed state; drawing a new card replaces it.
type Card struct {
	Word      Word
	Direction Direction
	revealed  bool
}

// NewCard returns a face-down card for w in the given direction.
func NewCard(w Word, d Direction) *Card {
	return &Card{Word: w, Direction: d}
}

// Reveal turns the card face-up. Further calls are no-ops.
func (c *Card) Reveal() {
	c.revealed = true
}

// Revealed reports whether the translation side is visible.
func (c *Card) Revealed() bool {
	return c.revealed
}

// ChatState represents the chat's current interaction state
type ChatState string

const (
	StateIdle               ChatState = "idle"
	StateWaitingWord        ChatState = "waiting_word"
	StateWaitingTranslation ChatState = "waiting_translation"
	StateWaitingCategory    ChatState = "waiting_category"
	StateWaitingPassword    ChatState = "waiting_password"
	StateWaitingRatio       ChatState = "waiting_ratio"
)

// BulkDraft accumulates the admin's bulk-update choices before apply.
type BulkDraft struct {
	LabelFilter map[Label]bool
	MinSeen     int
	MaxSeen     int
	Checked     map[int]bool
	NewLabel    Label
	NewSeen     int
}

// NewBulkDraft returns a draft with the admin panel defaults.
func NewBulkDraft() *BulkDraft {
	return &BulkDraft{
		LabelFilter: make(map[Label]bool),
		MinSeen:     0,
		MaxSeen:     10,
		Checked:     make(map[int]bool),
		NewLabel:    MinLabel,
		NewSeen:     0,
	}
}

// FilterLabels returns the enabled filter labels.
func (b *BulkDraft) FilterLabels() []Label {
	var out []Label
	for _, l := range Labels() {
		if b.LabelFilter[l] {
			out = append(out, l)
		}
	}
	return out
}

// CheckedIndexes returns the explicitly checked word indexes.
func (b *BulkDraft) CheckedIndexes() []int {
	var out []int
	for i, on := range b.Checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// DrillSession holds all per-chat drill state: the current card, the
// cooldown tracker, the ratio mix and whatever multi-step input flow is
// in progress. Nothing here is shared between chats or persisted.
type DrillSession struct {
	State ChatState

	// Add-word flow accumulators.
	PendingWord        string
	PendingTranslation string

	// Ratio adjustment flow target.
	PendingRatioLabel Label

	Card     *Card
	Cooldown *Cooldown
	Ratios   RatioMix
	Bulk     *BulkDraft
}

// NewDrillSession creates an idle session with default ratios.
func NewDrillSession(cooldownWindow time.Duration) *DrillSession {
	return &DrillSession{
		State:    StateIdle,
		Cooldown: NewCooldown(cooldownWindow),
		Ratios:   DefaultRatios(),
	}
}

// Draw replaces the current card and resets it to face-down.
func (s *DrillSession) Draw(w Word, d Direction) *Card {
	s.Card = NewCard(w, d)
	return s.Card
}

// ResetFlow clears any multi-step input flow without touching the
// card, cooldown or ratios.
func (s *DrillSession) ResetFlow() {
	s.State = StateIdle
	s.PendingWord = ""
	s.PendingTranslation = ""
	s.PendingRatioLabel = ""
}
