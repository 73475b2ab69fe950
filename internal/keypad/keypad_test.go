package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	numeric := Numeric()
	directional := Directional()

	tests := []struct {
		layout *Layout
		key    byte
		coord  Coord
	}{
		{numeric, '7', Coord{0, 0}},
		{numeric, '5', Coord{1, 1}},
		{numeric, '3', Coord{2, 2}},
		{numeric, '0', Coord{3, 1}},
		{numeric, 'A', Coord{3, 2}},
		{directional, '^', Coord{0, 1}},
		{directional, 'A', Coord{0, 2}},
		{directional, '<', Coord{1, 0}},
		{directional, 'v', Coord{1, 1}},
		{directional, '>', Coord{1, 2}},
	}

	for _, test := range tests {
		c, err := test.layout.Position(test.key)
		require.NoError(t, err)
		assert.Equal(t, test.coord, c, "%s %q", test.layout.Name(), test.key)
	}
}

func TestPositionUnknownKey(t *testing.T) {
	for _, key := range []byte{'^', 'B', Blank} {
		_, err := Numeric().Position(key)
		assert.ErrorIs(t, err, ErrUnknownKey, "%q", key)
	}
	_, err := Directional().Position('5')
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestBlank(t *testing.T) {
	assert.Equal(t, Coord{3, 0}, Numeric().Blank())
	assert.Equal(t, Coord{0, 0}, Directional().Blank())

	l := Directional()
	assert.False(t, l.Valid(l.Blank()))
	assert.False(t, l.Valid(Coord{2, 0}))
	assert.False(t, l.Valid(Coord{0, -1}))
	assert.True(t, l.Valid(Coord{1, 2}))

	key, ok := l.Key(Coord{1, 1})
	assert.True(t, ok)
	assert.Equal(t, byte('v'), key)
	_, ok = l.Key(l.Blank())
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []byte("7894561230A"), Numeric().Keys())
	assert.Equal(t, []byte("^A<v>"), Directional().Keys())
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		rows []string
		err  error
	}{
		{nil, ErrShape},
		{[]string{"12", "3"}, ErrShape},
		{[]string{"12", "34"}, ErrBlank},
		{[]string{" 1", "2 "}, ErrBlank},
		{[]string{" 1", "21"}, ErrDuplicateKey},
	}

	for _, test := range tests {
		_, err := New("test", test.rows...)
		assert.ErrorIs(t, err, test.err, "%q", test.rows)
	}

	assert.Panics(t, func() { MustNew("test", "12") })
}

func TestMove(t *testing.T) {
	for _, b := range []byte("^v<>A") {
		m, err := ParseMove(b)
		require.NoError(t, err)
		assert.Equal(t, string(b), m.String())
	}
	_, err := ParseMove('x')
	assert.ErrorIs(t, err, ErrInvalidMove)

	assert.Equal(t, Delta{-1, 0}, Up.Delta())
	assert.Equal(t, Delta{0, 1}, Right.Delta())
	assert.Panics(t, func() { Activate.Delta() })
	assert.Panics(t, func() { Move('x').Rank() })

	assert.Less(t, Left.Rank(), Up.Rank())
	assert.Less(t, Down.Rank(), Right.Rank())
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		delta Delta
		moves []Move
	}{
		{Delta{0, 0}, []Move{}},
		{Delta{0, -1}, []Move{Left}},
		{Delta{-3, 1}, []Move{Up, Up, Up, Right}},
		{Delta{1, -2}, []Move{Down, Left, Left}},
	}

	for _, test := range tests {
		assert.Equal(t, test.moves, Decompose(test.delta), "%v", test.delta)
	}

	from, _ := Numeric().Position('A')
	to, _ := Numeric().Position('7')
	assert.Equal(t, []Move{Up, Up, Up, Left, Left}, Decompose(to.Sub(from)))
}
