package main

import (
	"fmt"
	"io"
	"sort"
)

// solutionSet keeps the best nr distinct solutions, highest score first.
// A solution only displaces another if it scores strictly higher, so among
// equal scores the earliest restart stays in front.
type solutionSet struct {
	set  []solution
	seen map[Key]bool
	nr   int
	cg   cryptogram
}

func newSolutionSet(size int, cg cryptogram) solutionSet {
	if size < 1 {
		size = 1
	}
	return solutionSet{make([]solution, 0, size+1), make(map[Key]bool), size, cg}
}

// return true if we added s to the set
func (ss *solutionSet) add(s solution) bool {
	if ss.seen[s.key] {
		return false
	}
	ss.seen[s.key] = true

	if len(ss.set) >= ss.nr {
		if s.score <= ss.set[len(ss.set)-1].score {
			return false
		}
	}

	ss.set = append(ss.set, s)
	sort.SliceStable(ss.set, func(i, j int) bool { return ss.set[i].score > ss.set[j].score })

	if len(ss.set) > ss.nr {
		ss.set = ss.set[:ss.nr]
	}

	return true
}

func (ss solutionSet) best() (solution, bool) {
	if len(ss.set) == 0 {
		return solution{}, false
	}
	return ss.set[0], true
}

func (ss solutionSet) solutions() []solution {
	return append([]solution(nil), ss.set...)
}

func (ss solutionSet) dump(w io.Writer, includeKey bool) {
	for _, s := range ss.set {
		if includeKey {
			fmt.Fprintln(w, "encoded", alphabet)
			fmt.Fprintln(w, "decoded", s)
		}
		fmt.Fprintln(w, s.decodedString(ss.cg))
	}
}
