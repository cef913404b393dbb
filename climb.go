package main

import (
	"context"
)

// How many swap attempts run between checks of the context.
const ctxCheckInterval = 256

// climber is the state of one hill climbing restart.
type climber struct {
	scorer *QuadgramScorer
	text   []byte
	buf    []byte
	key    Key
	score  float64
}

func newClimber(scorer *QuadgramScorer, text []byte, key Key) *climber {
	c := &climber{scorer: scorer, text: text, buf: make([]byte, len(text)), key: key}
	c.score = c.rescore()
	return c
}

func (c *climber) rescore() float64 {
	c.key.apply(c.buf, c.text)
	return c.scorer.score(c.buf)
}

// step swaps key positions a and b and keeps the swap only when it
// strictly raises the score. Equal scores are rejected.
func (c *climber) step(a, b int) bool {
	c.key.swap(a, b)
	if s := c.rescore(); s > c.score {
		c.score = s
		return true
	}
	c.key.swap(a, b)
	return false
}

// climb is one restart: a random starting key improved by random swaps
// until cfg.StallLimit attempts in a row fail to improve it.
func (sv *solver) climb(ctx context.Context, cg cryptogram) (Key, error) {
	c := newClimber(sv.scorer, cg.cleaned, GenRandomSubstCipher(sv.rng))

	stalled := 0
	for n := 1; stalled < sv.cfg.StallLimit; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return c.key, err
			}
		}

		a := sv.rng.RandInt(25)
		b := sv.rng.RandInt(25)
		for b == a {
			b = sv.rng.RandInt(25)
		}

		if c.step(a, b) {
			stalled = 0
		} else {
			stalled++
		}
	}

	return c.key, nil
}
