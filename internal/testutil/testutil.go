package testutil

import (
	"glosor/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(word, translation, category string, label domain.Label, seen int) domain.Word {
	return domain.Word{
		Word:        word,
		Translation: translation,
		Category:    category,
		Label:       label,
		Seen:        seen,
	}
}

// NewTestVocabulary creates a small vocabulary spanning several labels
// and categories.
func NewTestVocabulary() []domain.Word {
	return []domain.Word{
		NewTestWord("hund", "dog", "animals", domain.Label0, 0),
		NewTestWord("katt", "cat", "animals", domain.Label25, 2),
		NewTestWord("stol", "chair", "furniture", domain.Label50, 5),
		NewTestWord("bord", "table", "furniture", domain.Label75, 8),
		NewTestWord("fönster", "window", "at home", domain.Label100, 12),
	}
}
