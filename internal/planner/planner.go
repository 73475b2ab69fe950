// Package planner computes the canonical button sequence moving a robot arm between two keys.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"golang.org/x/exp/slices"
)

// ErrNoPath is returned if no move sequence connects two keys without crossing the blank cell.
var ErrNoPath = errors.New("no path avoiding the blank cell")

// Planner plans segments on one layout.
// Segments are cached, so a Planner must not be shared between goroutines.
type Planner struct {
	layout *keypad.Layout
	cache  map[packed.Pair]string
}

// New returns a planner for layout.
func New(layout *keypad.Layout) *Planner {
	return &Planner{layout: layout, cache: make(map[packed.Pair]string)}
}

// walk reports whether moves lead from c to the target without leaving the valid cells.
func (p *Planner) walk(c keypad.Coord, moves []keypad.Move) bool {
	for _, m := range moves {
		c = c.Add(m.Delta())
		if !p.layout.Valid(c) {
			return false
		}
	}
	return true
}

// Candidates returns every shortest move sequence from key from to key to
// that avoids the blank cell, each terminated by the activation key.
func (p *Planner) Candidates(from, to byte) ([]string, error) {
	fromPos, err := p.layout.Position(from)
	if err != nil {
		return nil, err
	}
	toPos, err := p.layout.Position(to)
	if err != nil {
		return nil, err
	}

	var candidates []string
	permutations(keypad.Decompose(toPos.Sub(fromPos)), func(perm []keypad.Move) {
		if !p.walk(fromPos, perm) {
			return
		}
		var b strings.Builder
		for _, m := range perm {
			b.WriteByte(byte(m))
		}
		b.WriteByte(byte(keypad.Activate))
		candidates = append(candidates, b.String())
	})
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s: %q to %q: %w", p.layout.Name(), from, to, ErrNoPath)
	}
	return candidates, nil
}

// Segment returns the canonical move sequence, terminated by the activation key,
// moving the arm from key from to key to and pressing it.
func (p *Planner) Segment(from, to byte) (string, error) {
	pair := packed.Pack(from, to)
	if segment, ok := p.cache[pair]; ok {
		return segment, nil
	}

	candidates, err := p.Candidates(from, to)
	if err != nil {
		return "", err
	}
	slices.SortStableFunc(candidates, compare)
	for _, segment := range candidates {
		if batched(segment) {
			p.cache[pair] = segment
			return segment, nil
		}
	}
	return "", fmt.Errorf("%s: %q to %q: every path fragments a direction: %w", p.layout.Name(), from, to, ErrNoPath)
}

// Encode returns the move sequence typing seq, starting with the arm on the activation key.
func (p *Planner) Encode(seq string) (string, error) {
	var b strings.Builder
	for _, pair := range packed.Pairs(byte(keypad.Activate), seq) {
		segment, err := p.Segment(pair.Unpack())
		if err != nil {
			return "", err
		}
		b.WriteString(segment)
	}
	return b.String(), nil
}
