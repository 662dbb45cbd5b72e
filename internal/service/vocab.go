package service

import (
	"fmt"

	"glosor/internal/domain"
	"glosor/internal/repository"
)

// VocabService handles vocabulary store operations
type VocabService struct {
	repo repository.VocabularyRepository
}

// NewVocabService creates a new vocabulary service
func NewVocabService(repo repository.VocabularyRepository) *VocabService {
	return &VocabService{repo: repo}
}

// Load returns the full vocabulary in insertion order.
func (s *VocabService) Load() ([]domain.Word, error) {
	return s.repo.Load()
}

// Save persists the full vocabulary.
func (s *VocabService) Save(words []domain.Word) error {
	return s.repo.Save(words)
}

// Exists reports whether a word with this key is already stored,
// comparing case-insensitively. It re-reads storage on every call.
func (s *VocabService) Exists(word string) (bool, error) {
	words, err := s.repo.Load()
	if err != nil {
		return false, err
	}
	for _, w := range words {
		if domain.EqualKeys(w.Word, word) {
			return true, nil
		}
	}
	return false, nil
}

// Add appends a new word with default label and seen count. It returns
// false without mutating anything when the key already exists; a
// duplicate is a normal outcome, not an error.
func (s *VocabService) Add(word, translation, category string) (bool, error) {
	if word == "" || translation == "" {
		return false, fmt.Errorf("word and translation cannot be empty")
	}

	exists, err := s.Exists(word)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	words, err := s.repo.Load()
	if err != nil {
		return false, err
	}

	words = append(words, domain.Word{
		Word:        word,
		Translation: translation,
		Category:    category,
		Label:       domain.MinLabel,
		Seen:        0,
	})

	if err := s.repo.Save(words); err != nil {
		return false, err
	}

	return true, nil
}

// ResetAllLabels sets every word back to the minimum bucket and persists.
func (s *VocabService) ResetAllLabels(words []domain.Word) error {
	for i := range words {
		words[i].Label = domain.MinLabel
	}
	return s.repo.Save(words)
}

// ResetAllSeen zeroes every seen counter and persists.
func (s *VocabService) ResetAllSeen(words []domain.Word) error {
	for i := range words {
		words[i].Seen = 0
	}
	return s.repo.Save(words)
}

// BulkSelection describes which words an admin bulk update may touch.
// A word is eligible when the label filter is empty, or its label is in
// the filter, or its seen count falls inside [MinSeen, MaxSeen] — an OR
// across the two filters, kept exactly as the admin panel always
// behaved. Only eligible words explicitly listed in Checked are mutated.
type BulkSelection struct {
	Labels  []domain.Label
	MinSeen int
	MaxSeen int
	Checked []int
}

// Eligible reports whether w passes the selection filters.
func (sel BulkSelection) Eligible(w domain.Word) bool {
	labelMatch := len(sel.Labels) == 0
	for _, l := range sel.Labels {
		if w.Label == l {
			labelMatch = true
			break
		}
	}
	seenMatch := sel.MinSeen <= w.Seen && w.Seen <= sel.MaxSeen
	return labelMatch || seenMatch
}

// ApplyBulkUpdate sets label and seen on every checked eligible word,
// then persists the whole vocabulary once. It returns how many words
// changed. The in-memory mutation is all-or-nothing before the single
// save.
func (s *VocabService) ApplyBulkUpdate(words []domain.Word, sel BulkSelection, newLabel domain.Label, newSeen int) (int, error) {
	if !newLabel.Valid() {
		return 0, fmt.Errorf("invalid target label %q", newLabel)
	}
	if newSeen < 0 {
		return 0, fmt.Errorf("target seen count cannot be negative")
	}

	updated := 0
	for _, i := range sel.Checked {
		if i < 0 || i >= len(words) {
			continue
		}
		if !sel.Eligible(words[i]) {
			continue
		}
		words[i].Label = newLabel
		words[i].Seen = newSeen
		updated++
	}

	if err := s.repo.Save(words); err != nil {
		return 0, err
	}

	return updated, nil
}
