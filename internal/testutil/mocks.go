package testutil

import (
	"glosor/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Load() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockVocabularyRepository) Save(words []domain.Word) error {
	args := m.Called(words)
	return args.Error(0)
}

// FakeVocabularyRepository keeps the collection in memory. It stands in
// for a real backend when a test needs full load/save round trips
// instead of per-call expectations.
type FakeVocabularyRepository struct {
	Words     []domain.Word
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (f *FakeVocabularyRepository) Load() ([]domain.Word, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	out := make([]domain.Word, len(f.Words))
	copy(out, f.Words)
	return out, nil
}

func (f *FakeVocabularyRepository) Save(words []domain.Word) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.SaveCalls++
	f.Words = make([]domain.Word, len(words))
	copy(f.Words, words)
	return nil
}
