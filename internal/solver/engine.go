package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"github.com/go-ricrob/keypadsolver/internal/planner"
)

var (
	// ErrDepth is returned for an invalid indirection depth.
	ErrDepth = errors.New("invalid depth")
	// ErrOverflow is returned if a press count or complexity exceeds the int range.
	ErrOverflow = errors.New("press count overflows int")
)

func add(a, b int) (int, error) {
	if b > math.MaxInt-a {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func mul(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// Engine computes the number of presses the operator needs to make a chain
// of directional keypad robots type a sequence.
type Engine struct {
	directional *planner.Planner
	memo        *partmap.Map
}

// NewEngine returns an engine planning on the directional planner and caching in memo.
func NewEngine(directional *planner.Planner, memo *partmap.Map) *Engine {
	return &Engine{directional: directional, memo: memo}
}

// Cost returns the number of presses needed to type seq on the directional keypad
// at the bottom of a chain of depth directional keypads.
// Depth zero means the operator types seq directly.
func (e *Engine) Cost(seq string, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%d: %w", depth, ErrDepth)
	}
	if depth > 0 {
		for i := 0; i < len(seq); i++ {
			if _, err := keypad.ParseMove(seq[i]); err != nil {
				return 0, err
			}
		}
	}

	switch depth {
	case 0:
		return len(seq), nil
	case 1:
		encoded, err := e.directional.Encode(seq)
		if err != nil {
			return 0, err
		}
		return len(encoded), nil
	}

	presses := 0
	for _, pair := range packed.Pairs(byte(keypad.Activate), seq) {
		n, err := e.pairCost(pair, depth)
		if err != nil {
			return 0, err
		}
		if presses, err = add(presses, n); err != nil {
			return 0, fmt.Errorf("depth %d: %w", depth, err)
		}
	}
	return presses, nil
}

func (e *Engine) pairCost(pair packed.Pair, depth int) (int, error) {
	if n, ok := e.memo.Load(depth, pair); ok {
		return n, nil
	}

	segment, err := e.directional.Segment(pair.Unpack())
	if err != nil {
		return 0, err
	}
	presses := 0
	for _, chunk := range Chunks(segment) {
		n, err := e.Cost(chunk, depth-1)
		if err != nil {
			return 0, err
		}
		if presses, err = add(presses, n); err != nil {
			return 0, fmt.Errorf("depth %d: %w", depth, err)
		}
	}
	e.memo.Store(depth, pair, presses)
	return presses, nil
}
