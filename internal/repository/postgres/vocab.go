package postgres

import (
	"database/sql"
	"fmt"

	"glosor/internal/domain"
)

// VocabRepo implements repository.VocabularyRepository on PostgreSQL.
// It keeps the same whole-collection semantics as the file backend:
// Load returns every word in insertion order and Save rewrites the
// table in one transaction.
type VocabRepo struct {
	db *sql.DB
}

// NewVocabRepo creates a new vocabulary repository
func NewVocabRepo(db *sql.DB) *VocabRepo {
	return &VocabRepo{db: db}
}

// Load returns all words ordered by their stored position.
func (r *VocabRepo) Load() ([]domain.Word, error) {
	query := `
		SELECT word, translation, category, label, seen
		FROM words
		ORDER BY position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		var label string
		if err := rows.Scan(&w.Word, &w.Translation, &w.Category, &label, &w.Seen); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Label = domain.Label(label)
		if !w.Label.Valid() {
			w.Label = domain.MinLabel
		}
		if w.Seen < 0 {
			w.Seen = 0
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	return words, nil
}

// Save replaces the table contents with words, preserving their order.
func (r *VocabRepo) Save(words []domain.Word) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}

	insert := `
		INSERT INTO words (position, word, translation, category, label, seen)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, w := range words {
		if _, err := tx.Exec(insert, i, w.Word, w.Translation, w.Category, string(w.Label), w.Seen); err != nil {
			return fmt.Errorf("insert word %q: %w", w.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}
