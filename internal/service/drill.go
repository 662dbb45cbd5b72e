package service

import (
	"math/rand"
	"time"

	"glosor/internal/domain"
	"glosor/internal/repository"
)

// DrillService implements the adaptive card selection engine. Drawing
// is split into a pure candidate query and an explicit exposure
// command so the sampling logic stays testable on its own.
type DrillService struct {
	repo repository.VocabularyRepository
	now  func() time.Time
}

// NewDrillService creates a new drill service
func NewDrillService(repo repository.VocabularyRepository) *DrillService {
	return &DrillService{
		repo: repo,
		now:  time.Now,
	}
}

// mixtureCandidates samples word indexes biased by the ratio mix.
// The pool is every word whose label appears as a key in the mix, even
// with weight zero. Each bucket contributes floor(|pool| * weight)
// candidates but never fewer than one, so weak weights still surface
// some variety. The result is shuffled.
func mixtureCandidates(words []domain.Word, ratios domain.RatioMix) []int {
	var pool []int
	for i, w := range words {
		if _, ok := ratios[w.Label]; ok {
			pool = append(pool, i)
		}
	}

	var result []int
	for label, weight := range ratios {
		var bucket []int
		for _, i := range pool {
			if words[i].Label == label {
				bucket = append(bucket, i)
			}
		}
		if len(bucket) == 0 {
			continue
		}

		count := max(1, int(float64(len(pool))*weight))
		if count > len(bucket) {
			count = len(bucket)
		}

		// Sample without replacement: shuffle, take a prefix.
		rand.Shuffle(len(bucket), func(a, b int) {
			bucket[a], bucket[b] = bucket[b], bucket[a]
		})
		result = append(result, bucket[:count]...)
	}

	rand.Shuffle(len(result), func(a, b int) {
		result[a], result[b] = result[b], result[a]
	})

	return result
}

// SelectCandidate runs the full selection pipeline — mixture sampling,
// cooldown filtering, uniform pick — and returns the index of the word
// to present, or -1 when nothing is drawable. It mutates no word and
// performs no I/O; the cooldown map is only pruned.
func (s *DrillService) SelectCandidate(words []domain.Word, ratios domain.RatioMix, cd *domain.Cooldown, dir domain.Direction, now time.Time) int {
	var drawable []int
	for _, i := range mixtureCandidates(words, ratios) {
		if !cd.Blocked(dir.ExposureKey(words[i]), now) {
			drawable = append(drawable, i)
		}
	}

	if len(drawable) == 0 {
		return -1
	}

	return drawable[rand.Intn(len(drawable))]
}

// RecordExposure marks words[i] as shown: bumps its seen counter,
// persists the vocabulary and stamps the cooldown map. If the save
// fails the exposure is not considered to have taken effect.
func (s *DrillService) RecordExposure(words []domain.Word, i int, cd *domain.Cooldown, dir domain.Direction, now time.Time) error {
	words[i].Seen++
	if err := s.repo.Save(words); err != nil {
		return err
	}
	cd.Stamp(dir.ExposureKey(words[i]), now)
	return nil
}

// DrawMixed draws the next card for the session using the weighted
// mixture and the session's cooldown map. A nil card with nil error
// means nothing is drawable right now — the caller should suggest
// waiting out the cooldown or adding words.
func (s *DrillService) DrawMixed(sess *domain.DrillSession, dir domain.Direction) (*domain.Card, error) {
	words, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	i := s.SelectCandidate(words, sess.Ratios, sess.Cooldown, dir, now)
	if i < 0 {
		return nil, nil
	}

	if err := s.RecordExposure(words, i, sess.Cooldown, dir, now); err != nil {
		return nil, err
	}

	return sess.Draw(words[i], dir), nil
}

// DrawByCategory draws uniformly from one category, ignoring the ratio
// mix and the cooldown map. Seen counting and persistence behave the
// same as the mixture draw.
func (s *DrillService) DrawByCategory(sess *domain.DrillSession, category string) (*domain.Card, error) {
	words, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	var filtered []int
	for i, w := range words {
		if w.Category == category {
			filtered = append(filtered, i)
		}
	}

	if len(filtered) == 0 {
		return nil, nil
	}

	i := filtered[rand.Intn(len(filtered))]

	words[i].Seen++
	if err := s.repo.Save(words); err != nil {
		return nil, err
	}

	return sess.Draw(words[i], domain.SwedishToEnglish), nil
}
