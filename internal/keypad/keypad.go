// Package keypad provides keypad layouts and the moves driving a robot arm across them.
package keypad

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Blank marks the cell of a layout the robot arm must never enter.
const Blank = ' '

var (
	// ErrUnknownKey is returned if a key is not part of a layout.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey is returned if a key appears more than once in a layout.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrBlank is returned if a layout does not have exactly one blank cell.
	ErrBlank = errors.New("layout needs exactly one blank cell")
	// ErrShape is returned if the rows of a layout differ in length.
	ErrShape = errors.New("layout rows differ in length")
)

// Coord is a cell of a layout.
type Coord struct{ Row, Col int }

// Delta is the distance between two cells.
type Delta struct{ Row, Col int }

// Add returns the cell reached by moving c by d.
func (c Coord) Add(d Delta) Coord { return Coord{c.Row + d.Row, c.Col + d.Col} }

// Sub returns the delta leading from o to c.
func (c Coord) Sub(o Coord) Delta { return Delta{c.Row - o.Row, c.Col - o.Col} }

// Layout is an immutable keypad grid with exactly one blank cell.
type Layout struct {
	name  string
	rows  []string
	blank Coord
	index map[byte]Coord
	keys  []byte
}

// New returns a layout named name consisting of rows.
func New(name string, rows ...string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrShape)
	}
	l := &Layout{
		name:  name,
		rows:  append([]string(nil), rows...),
		index: make(map[byte]Coord),
	}
	numBlank := 0
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%s: row %d: %w", name, r, ErrShape)
		}
		for c := 0; c < len(row); c++ {
			key := row[c]
			if key == Blank {
				numBlank++
				l.blank = Coord{r, c}
				continue
			}
			if _, ok := l.index[key]; ok {
				return nil, fmt.Errorf("%s: key %q: %w", name, key, ErrDuplicateKey)
			}
			l.index[key] = Coord{r, c}
			l.keys = append(l.keys, key)
		}
	}
	if numBlank != 1 {
		return nil, fmt.Errorf("%s: %d blank cells: %w", name, numBlank, ErrBlank)
	}
	return l, nil
}

// MustNew is like New but panics if the layout is invalid.
func MustNew(name string, rows ...string) *Layout {
	l, err := New(name, rows...)
	if err != nil {
		panic(err)
	}
	return l
}

// Numeric returns the numeric door keypad.
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
func Numeric() *Layout { return MustNew("numeric", "789", "456", "123", " 0A") }

// Directional returns the directional keypad controlling a robot arm.
//
//	  ^ A
//	< v >
func Directional() *Layout { return MustNew("directional", " ^A", "<v>") }

// Name returns the name of the layout.
func (l *Layout) Name() string { return l.name }

// Keys returns the keys of the layout in row order.
func (l *Layout) Keys() []byte { return append([]byte(nil), l.keys...) }

// Blank returns the coordinate of the blank cell.
func (l *Layout) Blank() Coord { return l.blank }

// Position returns the coordinate of key.
func (l *Layout) Position(key byte) (Coord, error) {
	c, ok := l.index[key]
	if !ok {
		return Coord{}, fmt.Errorf("%s: key %q: %w", l.name, key, ErrUnknownKey)
	}
	return c, nil
}

// Valid reports whether c lies on the layout and is not the blank cell.
func (l *Layout) Valid(c Coord) bool {
	if c.Row < 0 || c.Row >= len(l.rows) || c.Col < 0 || c.Col >= len(l.rows[0]) {
		return false
	}
	return c != l.blank
}

// Key returns the key at c; ok is false for the blank cell and cells outside the layout.
func (l *Layout) Key(c Coord) (key byte, ok bool) {
	if !l.Valid(c) {
		return 0, false
	}
	return l.rows[c.Row][c.Col], true
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
