package keypad

import (
	"errors"
	"fmt"
)

// Move is a key of the directional keypad.
type Move byte

// Moves.
const (
	Up       Move = '^'
	Down     Move = 'v'
	Left     Move = '<'
	Right    Move = '>'
	Activate Move = 'A'
)

// ErrInvalidMove is returned for a key that is not on the directional keypad.
var ErrInvalidMove = errors.New("invalid move")

// ParseMove returns the move for key b.
func ParseMove(b byte) (Move, error) {
	switch m := Move(b); m {
	case Up, Down, Left, Right, Activate:
		return m, nil
	default:
		return 0, fmt.Errorf("%q: %w", b, ErrInvalidMove)
	}
}

func (m Move) String() string { return string(rune(m)) }

// Delta returns the unit step of a directional move.
func (m Move) Delta() Delta {
	switch m {
	case Up:
		return Delta{-1, 0}
	case Down:
		return Delta{1, 0}
	case Left:
		return Delta{0, -1}
	case Right:
		return Delta{0, 1}
	case Activate:
		panic("activate does not move the arm")
	default:
		panic(fmt.Sprintf("invalid move %q", byte(m)))
	}
}

// Rank orders directional moves by how early they should be pressed
// within a segment: left first, then vertical moves, right last.
func (m Move) Rank() int {
	switch m {
	case Left:
		return 0
	case Up:
		return 1
	case Down:
		return 2
	case Right:
		return 3
	case Activate:
		return 4
	default:
		panic(fmt.Sprintf("invalid move %q", byte(m)))
	}
}

// Decompose returns the unit moves covering d, vertical moves first.
func Decompose(d Delta) []Move {
	moves := make([]Move, 0, abs(d.Row)+abs(d.Col))
	vertical, horizontal := Down, Right
	if sign(d.Row) < 0 {
		vertical = Up
	}
	if sign(d.Col) < 0 {
		horizontal = Left
	}
	for i := 0; i < abs(d.Row); i++ {
		moves = append(moves, vertical)
	}
	for i := 0; i < abs(d.Col); i++ {
		moves = append(moves, horizontal)
	}
	return moves
}
