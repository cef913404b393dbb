package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// wordMap is the Caesar dictionary. Each word maps to the number of times
// it was listed, so repeated entries count the way a linear scan would.
type wordMap map[string]int

func (m wordMap) store(w string) {
	m[w]++
}

func (m wordMap) find(w string) int {
	return m[w]
}

func newWordMap(words []string) wordMap {
	m := make(wordMap, len(words))
	for _, w := range words {
		m.store(w)
	}
	return m
}

// readWordList reads one word per line. Words are trimmed and
// uppercased, blank lines are skipped.
func readWordList(r io.Reader) (wordMap, error) {
	var words []string

	s := bufio.NewScanner(r)
	for s.Scan() {
		w := bytes.ToUpper(bytes.TrimSpace(s.Bytes()))
		if len(w) == 0 {
			continue
		}
		words = append(words, string(w))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return newWordMap(words), nil
}

func loadWordList(fn string, log logrus.FieldLogger) (wordMap, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	m, err := readWordList(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	log.WithFields(logrus.Fields{"file": fn, "words": len(m)}).Debug("dictionary loaded")
	return m, nil
}

// Given a line of quadgram counts like:
// TION,13168375
// where the quadgram is exactly four uppercase letters and the number is
// how often it was seen in a body of English text, return both parts.
// ok is false for lines with no comma, which are skipped.
func parseQuadgramLine(line []byte) (quad string, count int, ok bool, err error) {
	l := bytes.SplitN(line, []byte(","), 2)
	if len(l) != 2 {
		return "", 0, false, nil
	}

	quad = string(bytes.TrimSpace(l[0]))
	if err := checkQuadgram(quad); err != nil {
		return "", 0, false, err
	}

	count, err = strconv.Atoi(string(bytes.TrimSpace(l[1])))
	if err != nil {
		return "", 0, false, fmt.Errorf("invalid count %q", l[1])
	}
	if count < 0 {
		return "", 0, false, fmt.Errorf("negative count %d", count)
	}
	return quad, count, true, nil
}

func readQuadgrams(r io.Reader, log logrus.FieldLogger) (quadgrams []string, counts []int, err error) {
	s := bufio.NewScanner(r)
	lno := 0
	for s.Scan() {
		lno++
		q, c, ok, err := parseQuadgramLine(s.Bytes())
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lno, err)
		}
		if !ok {
			log.WithField("line", lno).Warn("skipping quadgram line without a comma")
			continue
		}
		quadgrams = append(quadgrams, q)
		counts = append(counts, c)
	}
	if err := s.Err(); err != nil {
		return nil, nil, err
	}
	return quadgrams, counts, nil
}

// loadQuadgramScorer builds a scorer from a QUAD,count file.
func loadQuadgramScorer(fn string, log logrus.FieldLogger) (*QuadgramScorer, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	quads, counts, err := readQuadgrams(fh, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	scorer, err := NewQuadgramScorer(quads, counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	log.WithFields(logrus.Fields{"file": fn, "quadgrams": len(quads)}).Debug("quadgrams loaded")
	return scorer, nil
}
