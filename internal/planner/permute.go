package planner

import (
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"golang.org/x/exp/slices"
)

// permutations calls fn for every distinct ordering of moves.
// fn must not retain its argument.
func permutations(moves []keypad.Move, fn func(perm []keypad.Move)) {
	perm := slices.Clone(moves)
	slices.Sort(perm)
	for {
		fn(perm)
		if !nextPermutation(perm) {
			return
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor; it reports false if p is the last permutation.
func nextPermutation(p []keypad.Move) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}
