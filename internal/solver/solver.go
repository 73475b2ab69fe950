// Package solver implements the keypad chain press count calculation.
package solver

import (
	"fmt"
	"log/slog"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/logging"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"github.com/go-ricrob/keypadsolver/internal/planner"
)

// MaxTraceDepth is the deepest chain Trace materializes.
const MaxTraceDepth = 8

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger of the aggregator.
func WithLogger(log *slog.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// Aggregator computes press counts and complexities of door codes.
// All calculations on one Aggregator share its memo, so an Aggregator
// must not be used by more than one goroutine.
type Aggregator struct {
	numeric     *planner.Planner
	directional *planner.Planner
	engine      *Engine
	memo        *partmap.Map
	log         *slog.Logger
}

// New returns an aggregator with an empty memo.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		numeric:     planner.New(keypad.Numeric()),
		directional: planner.New(keypad.Directional()),
		memo:        partmap.New(0),
		log:         logging.NewNop(),
	}
	a.engine = NewEngine(a.directional, a.memo)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Presses returns the number of presses the operator needs to make the
// numeric keypad robot type code through depth directional keypad robots.
func (a *Aggregator) Presses(code string, depth int) (int, error) {
	if _, err := ParseCode(code); err != nil {
		return 0, err
	}
	if depth < 0 {
		return 0, fmt.Errorf("%d: %w", depth, ErrDepth)
	}

	presses := 0
	for _, pair := range packed.Pairs(byte(keypad.Activate), code) {
		segment, err := a.numeric.Segment(pair.Unpack())
		if err != nil {
			return 0, err
		}
		for _, chunk := range Chunks(segment) {
			n, err := a.engine.Cost(chunk, depth)
			if err != nil {
				return 0, err
			}
			if presses, err = add(presses, n); err != nil {
				return 0, fmt.Errorf("%q: %w", code, err)
			}
		}
	}
	return presses, nil
}

// Complexity returns the number of presses for code weighted by its numeric value.
func (a *Aggregator) Complexity(code string, depth int) (int, error) {
	value, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	presses, err := a.Presses(code, depth)
	if err != nil {
		return 0, err
	}
	complexity, err := mul(value, presses)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", code, err)
	}
	a.log.Debug("code", "code", code, "depth", depth, "presses", presses, "complexity", complexity)
	return complexity, nil
}

// Sum returns the sum of the complexities of codes.
func (a *Aggregator) Sum(codes []string, depth int) (int, error) {
	sum := 0
	for _, code := range codes {
		complexity, err := a.Complexity(code, depth)
		if err != nil {
			return 0, err
		}
		if sum, err = add(sum, complexity); err != nil {
			return 0, err
		}
	}
	stats := a.memo.Stats()
	a.log.Debug("memo", "depth", depth, "partitions", a.memo.NumPart(), "size", stats.Size, "hits", stats.Hits, "misses", stats.Misses)
	return sum, nil
}

// Trace returns the sequences typed on every directional keypad of the chain:
// index zero drives the numeric keypad robot, index depth is typed by the operator.
func (a *Aggregator) Trace(code string, depth int) ([]string, error) {
	if _, err := ParseCode(code); err != nil {
		return nil, err
	}
	if depth < 0 || depth > MaxTraceDepth {
		return nil, fmt.Errorf("%d not in [0, %d]: %w", depth, MaxTraceDepth, ErrDepth)
	}

	seq, err := a.numeric.Encode(code)
	if err != nil {
		return nil, err
	}
	layers := []string{seq}
	for i := 0; i < depth; i++ {
		if seq, err = a.directional.Encode(seq); err != nil {
			return nil, err
		}
		layers = append(layers, seq)
	}
	return layers, nil
}

// MemoStats returns the usage statistics of the memo.
func (a *Aggregator) MemoStats() partmap.Stats { return a.memo.Stats() }
