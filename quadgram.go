package main

import (
	"errors"
	"fmt"
	"math"
)

const nrQuadgrams = 26 * 26 * 26 * 26

var (
	ErrInvalidQuadgram = errors.New("invalid quadgram")
	ErrTooShort        = errors.New("text must contain at least 4 letters")
)

// QuadgramScorer holds the log likelihood of every possible four letter
// sequence. It is never modified after construction, so one scorer may be
// shared by any number of searches.
type QuadgramScorer struct {
	logLikelihood [nrQuadgrams]float64
}

// Index of a quadgram in the table, most significant letter first.
// The caller has already checked that q is 4 uppercase letters.
func quadgramIndex(q string) int {
	idx := 0
	for i := 0; i < 4; i++ {
		idx = idx*26 + int(q[i]-'A')
	}
	return idx
}

func checkQuadgram(q string) error {
	if len(q) != 4 {
		return fmt.Errorf("%w: <%s> is not length 4", ErrInvalidQuadgram, q)
	}
	for i := 0; i < len(q); i++ {
		if !isUpper(q[i]) {
			return fmt.Errorf("%w: <%s> has character(s) that are not uppercase letters", ErrInvalidQuadgram, q)
		}
	}
	return nil
}

// NewQuadgramScorer builds the table from parallel slices of quadgrams and
// their observed counts. Every entry is log10(count/total); quadgrams that
// were never observed score -log10(total).
func NewQuadgramScorer(quadgrams []string, counts []int) (*QuadgramScorer, error) {
	if len(quadgrams) != len(counts) {
		return nil, fmt.Errorf("%d quadgrams but %d counts", len(quadgrams), len(counts))
	}

	var total float64
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("negative count %d for quadgram %s", c, quadgrams[i])
		}
		total += float64(c)
	}

	s := &QuadgramScorer{}
	notFound := -math.Log10(total)
	for i := range s.logLikelihood {
		s.logLikelihood[i] = notFound
	}

	for i, q := range quadgrams {
		if err := checkQuadgram(q); err != nil {
			return nil, err
		}
		s.logLikelihood[quadgramIndex(q)] = math.Log10(float64(counts[i])) + notFound
	}

	return s, nil
}

// GetScore returns the log likelihood of a single quadgram.
func (s *QuadgramScorer) GetScore(q string) (float64, error) {
	if err := checkQuadgram(q); err != nil {
		return 0, err
	}
	return s.logLikelihood[quadgramIndex(q)], nil
}

// ScoreString sums the score of every overlapping quadgram in text, which
// must be at least 4 uppercase letters long. Higher is more English-like.
func (s *QuadgramScorer) ScoreString(text string) (float64, error) {
	if len(text) < 4 {
		return 0, fmt.Errorf("%w: got %d", ErrTooShort, len(text))
	}
	for i := 0; i < len(text); i++ {
		if !isUpper(text[i]) {
			return 0, fmt.Errorf("%w: <%s> has character(s) that are not uppercase letters", ErrInvalidQuadgram, text)
		}
	}
	return s.score([]byte(text)), nil
}

// score is ScoreString without the validation, used in the search loop
// where the text is always cleaned output of Key.apply.
func (s *QuadgramScorer) score(text []byte) float64 {
	var total float64
	for i := 0; i+4 <= len(text); i++ {
		idx := int(text[i]-'A')*17576 + int(text[i+1]-'A')*676 + int(text[i+2]-'A')*26 + int(text[i+3]-'A')
		total += s.logLikelihood[idx]
	}
	return total
}
