package service

import (
	"fmt"
	"testing"

	"glosor/internal/domain"
	"glosor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabService_Exists(t *testing.T) {
	tests := []struct {
		name     string
		stored   []domain.Word
		query    string
		expected bool
	}{
		{
			name:     "exact match",
			stored:   []domain.Word{{Word: "hund", Translation: "dog"}},
			query:    "hund",
			expected: true,
		},
		{
			name:     "case-insensitive match",
			stored:   []domain.Word{{Word: "Hund", Translation: "dog"}},
			query:    "hUND",
			expected: true,
		},
		{
			name:     "not stored",
			stored:   []domain.Word{{Word: "hund", Translation: "dog"}},
			query:    "katt",
			expected: false,
		},
		{
			name:     "empty vocabulary",
			stored:   []domain.Word{},
			query:    "hund",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &testutil.FakeVocabularyRepository{Words: tt.stored}
			service := NewVocabService(repo)

			exists, err := service.Exists(tt.query)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestVocabService_ExistsLoadError(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("Load").Return(nil, fmt.Errorf("disk error"))

	service := NewVocabService(mockRepo)

	_, err := service.Exists("hund")

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestVocabService_Add(t *testing.T) {
	tests := []struct {
		name          string
		stored        []domain.Word
		word          string
		translation   string
		category      string
		expectedAdded bool
		expectedError bool
		expectedLen   int
	}{
		{
			name:          "new word",
			stored:        []domain.Word{},
			word:          "hund",
			translation:   "dog",
			category:      "animals",
			expectedAdded: true,
			expectedLen:   1,
		},
		{
			name:          "duplicate key",
			stored:        []domain.Word{{Word: "hund", Translation: "dog", Label: domain.Label0}},
			word:          "hund",
			translation:   "hound",
			category:      "animals",
			expectedAdded: false,
			expectedLen:   1,
		},
		{
			name:          "duplicate key different case",
			stored:        []domain.Word{{Word: "Hund", Translation: "dog", Label: domain.Label0}},
			word:          "hund",
			translation:   "hound",
			category:      "animals",
			expectedAdded: false,
			expectedLen:   1,
		},
		{
			name:          "empty word",
			word:          "",
			translation:   "dog",
			expectedError: true,
		},
		{
			name:          "empty translation",
			word:          "hund",
			translation:   "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &testutil.FakeVocabularyRepository{Words: tt.stored}
			service := NewVocabService(repo)

			added, err := service.Add(tt.word, tt.translation, tt.category)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAdded, added)
			assert.Len(t, repo.Words, tt.expectedLen)

			if tt.expectedAdded {
				last := repo.Words[len(repo.Words)-1]
				assert.Equal(t, tt.word, last.Word)
				assert.Equal(t, domain.MinLabel, last.Label)
				assert.Equal(t, 0, last.Seen)
			}
		})
	}
}

func TestVocabService_AddDuplicateDoesNotSave(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{
		Words: []domain.Word{{Word: "hund", Translation: "dog"}},
	}
	service := NewVocabService(repo)

	added, err := service.Add("HUND", "hound", "animals")

	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestVocabService_ResetAllLabels(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{}
	service := NewVocabService(repo)

	words := testutil.NewTestVocabulary()
	err := service.ResetAllLabels(words)

	require.NoError(t, err)
	require.Len(t, repo.Words, len(words))
	for _, w := range repo.Words {
		assert.Equal(t, domain.MinLabel, w.Label)
	}
	// Seen counts are untouched.
	assert.Equal(t, 12, repo.Words[4].Seen)
}

func TestVocabService_ResetAllSeen(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{}
	service := NewVocabService(repo)

	words := testutil.NewTestVocabulary()
	err := service.ResetAllSeen(words)

	require.NoError(t, err)
	require.Len(t, repo.Words, len(words))
	for _, w := range repo.Words {
		assert.Equal(t, 0, w.Seen)
	}
	// Labels are untouched.
	assert.Equal(t, domain.Label100, repo.Words[4].Label)
}

func TestBulkSelection_Eligible(t *testing.T) {
	tests := []struct {
		name     string
		sel      BulkSelection
		word     domain.Word
		expected bool
	}{
		{
			name:     "empty label filter matches everything via label clause",
			sel:      BulkSelection{Labels: nil, MinSeen: 5, MaxSeen: 10},
			word:     domain.Word{Label: domain.Label100, Seen: 0},
			expected: true,
		},
		{
			name:     "label filter match",
			sel:      BulkSelection{Labels: []domain.Label{domain.Label50}, MinSeen: 5, MaxSeen: 10},
			word:     domain.Word{Label: domain.Label50, Seen: 99},
			expected: true,
		},
		{
			name:     "seen range match even though label filter misses",
			sel:      BulkSelection{Labels: []domain.Label{domain.Label50}, MinSeen: 0, MaxSeen: 3},
			word:     domain.Word{Label: domain.Label0, Seen: 2},
			expected: true,
		},
		{
			name:     "neither clause matches",
			sel:      BulkSelection{Labels: []domain.Label{domain.Label50}, MinSeen: 0, MaxSeen: 3},
			word:     domain.Word{Label: domain.Label0, Seen: 9},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.Eligible(tt.word))
		})
	}
}

// Only the explicitly checked word changes, even though the empty label
// filter makes both words eligible.
func TestVocabService_ApplyBulkUpdatePrecision(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{}
	service := NewVocabService(repo)

	words := []domain.Word{
		{Word: "hund", Translation: "dog", Label: domain.Label0, Seen: 1},
		{Word: "stol", Translation: "chair", Label: domain.Label50, Seen: 9},
	}

	sel := BulkSelection{
		Labels:  nil,
		MinSeen: 0,
		MaxSeen: 2,
		Checked: []int{0},
	}

	updated, err := service.ApplyBulkUpdate(words, sel, domain.Label75, 4)

	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	assert.Equal(t, domain.Label75, repo.Words[0].Label)
	assert.Equal(t, 4, repo.Words[0].Seen)

	assert.Equal(t, domain.Label50, repo.Words[1].Label)
	assert.Equal(t, 9, repo.Words[1].Seen)
}

func TestVocabService_ApplyBulkUpdateValidation(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{}
	service := NewVocabService(repo)

	words := []domain.Word{{Word: "hund", Label: domain.Label0}}

	_, err := service.ApplyBulkUpdate(words, BulkSelection{Checked: []int{0}}, domain.Label("banana"), 0)
	assert.Error(t, err)

	_, err = service.ApplyBulkUpdate(words, BulkSelection{Checked: []int{0}}, domain.Label25, -1)
	assert.Error(t, err)

	assert.Equal(t, 0, repo.SaveCalls)
}

func TestVocabService_ApplyBulkUpdateIgnoresOutOfRangeIndexes(t *testing.T) {
	repo := &testutil.FakeVocabularyRepository{}
	service := NewVocabService(repo)

	words := []domain.Word{{Word: "hund", Label: domain.Label0, Seen: 0}}

	updated, err := service.ApplyBulkUpdate(words, BulkSelection{Checked: []int{-1, 5}}, domain.Label25, 1)

	require.NoError(t, err)
	assert.Equal(t, 0, updated)
	assert.Equal(t, domain.Label0, repo.Words[0].Label)
}
