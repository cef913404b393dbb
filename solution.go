package main

import (
	"fmt"
)

// solution is the outcome of one hill climbing restart.
type solution struct {
	restart int
	key     Key
	score   float64
}

func (s solution) String() string {
	return s.key.String()
}

func (s solution) decodedString(cg cryptogram) string {
	return fmt.Sprintf("Score: %0.4f  Restart: %d  %s", s.score, s.restart, s.key.Apply(cg.text))
}
