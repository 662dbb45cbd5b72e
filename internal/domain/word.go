package domain

import "strings"

// Label is a proficiency bucket for a word.
type Label string

const (
	Label0   Label = "0%"
	Label25  Label = "25%"
	Label50  Label = "50%"
	Label75  Label = "75%"
	Label100 Label = "100%"
)

// MinLabel is the bucket assigned to new and reset words.
const MinLabel = Label0

// Labels returns all buckets in ascending proficiency order.
func Labels() []Label {
	return []Label{Label0, Label25, Label50, Label75, Label100}
}

// Valid reports whether l is one of the five known buckets.
func (l Label) Valid() bool {
	switch l {
	case Label0, Label25, Label50, Label75, Label100:
		return true
	}
	return false
}

// Word represents a word-translation pair with learning progress
type Word struct {
	Word        string
	Translation string
	Category    string
	Label       Label
	Seen        int
}

// Direction selects which side of a word is shown first during a drill.
type Direction string

const (
	SwedishToEnglish Direction = "sv_en"
	EnglishToSwedish Direction = "en_sv"
)

// Front returns the side shown on the face of the card.
func (d Direction) Front(w Word) string {
	if d == EnglishToSwedish {
		return w.Translation
	}
	return w.Word
}

// Back returns the hidden side revealed on request.
func (d Direction) Back(w Word) string {
	if d == EnglishToSwedish {
		return w.Word
	}
	return w.Translation
}

// ExposureKey returns the identity used for cooldown tracking in this
// direction. It matches the side shown first.
func (d Direction) ExposureKey(w Word) string {
	return d.Front(w)
}

// RatioMix maps labels to sampling weights. Weights do not have to sum
// to 1; a label present with weight 0 is still eligible for sampling.
type RatioMix map[Label]float64

// DefaultRatios biases drilling toward the weakest words.
func DefaultRatios() RatioMix {
	return RatioMix{
		Label0:   0.6,
		Label25:  0.2,
		Label50:  0.15,
		Label75:  0.0,
		Label100: 0.05,
	}
}

// Clone returns an independent copy of the mix.
func (r RatioMix) Clone() RatioMix {
	c := make(RatioMix, len(r))
	for l, w := range r {
		c[l] = w
	}
	return c
}

// EqualKeys reports whether two word keys match case-insensitively.
func EqualKeys(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Categories returns the distinct categories of words, in first-seen order.
func Categories(words []Word) []string {
	found := make(map[string]bool)
	var out []string
	for _, w := range words {
		if w.Category == "" || found[w.Category] {
			continue
		}
		found[w.Category] = true
		out = append(out, w.Category)
	}
	return out
}
