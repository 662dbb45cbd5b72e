package handler

import (
	"testing"

	"glosor/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderCard(t *testing.T) {
	word := domain.Word{Word: "hund", Translation: "dog"}

	tests := []struct {
		name      string
		direction domain.Direction
		reveal    bool
		expected  string
	}{
		{
			name:      "face down swedish first",
			direction: domain.SwedishToEnglish,
			reveal:    false,
			expected:  "🃏 hund",
		},
		{
			name:      "revealed swedish first",
			direction: domain.SwedishToEnglish,
			reveal:    true,
			expected:  "🃏 hund\n— — —\ndog",
		},
		{
			name:      "face down english first",
			direction: domain.EnglishToSwedish,
			reveal:    false,
			expected:  "🃏 dog",
		},
		{
			name:      "revealed english first",
			direction: domain.EnglishToSwedish,
			reveal:    true,
			expected:  "🃏 dog\n— — —\nhund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := domain.NewCard(word, tt.direction)
			if tt.reveal {
				card.Reveal()
			}
			assert.Equal(t, tt.expected, renderCard(card))
		})
	}
}

func TestFormatWordList(t *testing.T) {
	words := []domain.Word{
		{Word: "hund", Translation: "dog", Category: "animals", Label: domain.Label25, Seen: 3},
		{Word: "stol", Translation: "chair", Category: "furniture", Label: domain.Label0, Seen: 0},
	}

	out := formatWordList(words)

	assert.Contains(t, out, "All words (2)")
	assert.Contains(t, out, "hund — dog (animals) · 25% · seen 3")
	assert.Contains(t, out, "stol — chair (furniture) · 0% · seen 0")
}
