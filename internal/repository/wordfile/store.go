package wordfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"glosor/internal/domain"
)

// ErrMalformed is returned when the vocabulary file exists but cannot
// be decoded. Missing optional fields are healed; broken structure is not.
var ErrMalformed = errors.New("malformed vocabulary file")

// record is the on-disk shape of one word. Seen is a pointer so a
// missing field can be told apart from an explicit zero.
type record struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Category    string `json:"category"`
	Label       string `json:"label,omitempty"`
	Seen        *int   `json:"seen,omitempty"`
}

// Store implements repository.VocabularyRepository over a single JSON
// file. The whole collection is rewritten on every save; concurrent
// writers are last-writer-wins at file granularity.
type Store struct {
	path string
}

// NewStore creates a store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the vocabulary file. A missing file yields an empty
// collection. Words missing label or seen are normalized to the
// defaults and the healed collection is written back immediately.
func (s *Store) Load() ([]domain.Word, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []domain.Word{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	words := make([]domain.Word, 0, len(records))
	for _, r := range records {
		words = append(words, normalize(r))
	}

	// Self-healing migration: persist the defaults so a second load
	// sees the same collection.
	if err := s.Save(words); err != nil {
		return nil, err
	}

	return words, nil
}

// Save serializes the complete collection, overwriting prior contents.
func (s *Store) Save(words []domain.Word) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	records := make([]record, 0, len(words))
	for _, w := range words {
		seen := w.Seen
		records = append(records, record{
			Word:        w.Word,
			Translation: w.Translation,
			Category:    w.Category,
			Label:       string(w.Label),
			Seen:        &seen,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write vocabulary file: %w", err)
	}

	return nil
}

// normalize applies the defaults for missing or out-of-range fields.
func normalize(r record) domain.Word {
	label := domain.Label(r.Label)
	if !label.Valid() {
		label = domain.MinLabel
	}

	seen := 0
	if r.Seen != nil && *r.Seen > 0 {
		seen = *r.Seen
	}

	return domain.Word{
		Word:        r.Word,
		Translation: r.Translation,
		Category:    r.Category,
		Label:       label,
		Seen:        seen,
	}
}
