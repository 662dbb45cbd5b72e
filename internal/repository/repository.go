package repository

import (
	"glosor/internal/domain"
)

// VocabularyRepository defines vocabulary persistence operations.
// Load returns the whole collection in insertion order; Save rewrites
// it completely. There are no partial or incremental writes.
type VocabularyRepository interface {
	Load() ([]domain.Word, error)
	Save(words []domain.Word) error
}
