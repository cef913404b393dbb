package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// cryptogram is a ciphertext as given plus the letters-only view the
// search scores against.
type cryptogram struct {
	text    string
	cleaned []byte
}

func newCryptogram(text string) (cryptogram, error) {
	cg := cryptogram{text: text, cleaned: []byte(Clean(text))}
	if len(cg.cleaned) < 4 {
		return cg, fmt.Errorf("%w: ciphertext has %d", ErrTooShort, len(cg.cleaned))
	}
	return cg, nil
}

func (cg cryptogram) nrLetters() int {
	return len(cg.cleaned)
}

type searchConfig struct {
	Restarts   int `mapstructure:"restarts"`
	StallLimit int `mapstructure:"stall_limit"`
	Top        int `mapstructure:"top"`
}

func defaultSearchConfig() searchConfig {
	return searchConfig{Restarts: 25, StallLimit: 1000, Top: 3}
}

// solver runs the restarts of a substitution cipher search. All random
// draws come from rng, in restart order.
type solver struct {
	scorer *QuadgramScorer
	rng    *Random
	cfg    searchConfig
	log    logrus.FieldLogger
}

func newSolver(scorer *QuadgramScorer, rng *Random, cfg searchConfig, log logrus.FieldLogger) *solver {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &solver{scorer: scorer, rng: rng, cfg: cfg, log: log}
}

// Result is the best key found for a ciphertext.
type Result struct {
	Key       Key
	Score     float64
	Plaintext string
	Restarts  int // restarts that ran to completion
	Partial   bool
	solutions solutionSet
}

// solve runs cfg.Restarts hill climbs and keeps the highest scoring key.
// If ctx ends after at least one restart has finished, the best key so far
// is returned with Partial set.
func (cg cryptogram) solve(ctx context.Context, sv *solver) (Result, error) {
	ss := newSolutionSet(sv.cfg.Top, cg)
	res := Result{}

	for i := 0; i < sv.cfg.Restarts; i++ {
		if ctx.Err() != nil {
			res.Partial = true
			break
		}

		key, err := sv.climb(ctx, cg)
		if err != nil {
			res.Partial = true
			break
		}

		buf := make([]byte, cg.nrLetters())
		key.apply(buf, cg.cleaned)
		s := solution{restart: i + 1, key: key, score: sv.scorer.score(buf)}
		res.Restarts++

		sv.log.WithFields(logrus.Fields{
			"restart": s.restart,
			"score":   s.score,
			"key":     s.key.String(),
		}).Debug("restart finished")

		ss.add(s)
	}

	best, ok := ss.best()
	if !ok {
		if err := context.Cause(ctx); err != nil {
			return res, fmt.Errorf("no restart finished: %w", err)
		}
		return res, errors.New("no restarts configured")
	}

	res.Key = best.key
	res.Score = best.score
	res.Plaintext = best.key.Apply(cg.text)
	res.solutions = ss

	sv.log.WithFields(logrus.Fields{
		"score":    res.Score,
		"key":      res.Key.String(),
		"restarts": res.Restarts,
		"partial":  res.Partial,
	}).Info("decryption finished")

	return res, nil
}

// decrypt recovers the key for ciphertext and applies it to the text as
// given, so spacing and punctuation survive.
func (sv *solver) decrypt(ctx context.Context, ciphertext string) (Result, error) {
	cg, err := newCryptogram(ciphertext)
	if err != nil {
		return Result{}, err
	}
	return cg.solve(ctx, sv)
}
