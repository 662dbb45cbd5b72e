package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel_Valid(t *testing.T) {
	tests := []struct {
		name     string
		label    Label
		expected bool
	}{
		{name: "minimum bucket", label: Label0, expected: true},
		{name: "middle bucket", label: Label50, expected: true},
		{name: "maximum bucket", label: Label100, expected: true},
		{name: "empty", label: Label(""), expected: false},
		{name: "unknown value", label: Label("42%"), expected: false},
		{name: "missing percent sign", label: Label("50"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.label.Valid())
		})
	}
}

func TestLabels_Order(t *testing.T) {
	assert.Equal(t, []Label{Label0, Label25, Label50, Label75, Label100}, Labels())
	assert.Equal(t, Label0, MinLabel)
}

func TestDirection_Sides(t *testing.T) {
	w := Word{Word: "hund", Translation: "dog"}

	assert.Equal(t, "hund", SwedishToEnglish.Front(w))
	assert.Equal(t, "dog", SwedishToEnglish.Back(w))
	assert.Equal(t, "hund", SwedishToEnglish.ExposureKey(w))

	assert.Equal(t, "dog", EnglishToSwedish.Front(w))
	assert.Equal(t, "hund", EnglishToSwedish.Back(w))
	assert.Equal(t, "dog", EnglishToSwedish.ExposureKey(w))
}

func TestRatioMix_Clone(t *testing.T) {
	original := DefaultRatios()
	clone := original.Clone()

	clone[Label0] = 0.1

	assert.Equal(t, 0.6, original[Label0])
	assert.Equal(t, 0.1, clone[Label0])
}

func TestEqualKeys(t *testing.T) {
	assert.True(t, EqualKeys("Hund", "hund"))
	assert.True(t, EqualKeys("HUND", "hund"))
	assert.False(t, EqualKeys("hund", "katt"))
}

func TestCategories(t *testing.T) {
	words := []Word{
		{Word: "hund", Category: "animals"},
		{Word: "katt", Category: "animals"},
		{Word: "stol", Category: "furniture"},
		{Word: "okänd", Category: ""},
	}

	assert.Equal(t, []string{"animals", "furniture"}, Categories(words))
}
