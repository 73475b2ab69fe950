package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `029A
980A
179A
456A
379A
`

func TestAggregate(t *testing.T) {
	codes, err := ReadCodes(strings.NewReader(sampleInput))
	require.NoError(t, err)

	sum, err := Aggregate(codes, 2)
	require.NoError(t, err)
	assert.Equal(t, 126384, sum)

	sum, err = Aggregate([]string{"029A"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1972, sum)

	_, err = Aggregate([]string{"029"}, 2)
	assert.ErrorIs(t, err, ErrMalformedCode)
	_, err = Aggregate(codes, -2)
	assert.ErrorIs(t, err, ErrDepth)
	_, err = Aggregate(codes, 50)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRunner(t *testing.T) {
	codes, err := ReadCodes(strings.NewReader(sampleInput))
	require.NoError(t, err)

	results, err := New(codes, []int{25, 2}).Run()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 25, results[0].Depth)
	assert.Equal(t, 154115708116294, results[0].Sum)
	assert.Positive(t, results[0].MemoSize)
	assert.Equal(t, 2, results[1].Depth)
	assert.Equal(t, 126384, results[1].Sum)

	results, err = New(codes, nil).Run()
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = New([]string{"1B"}, []int{2, 25}).Run()
	assert.ErrorIs(t, err, ErrMalformedCode)
}

func TestReadCodes(t *testing.T) {
	codes, err := ReadCodes(strings.NewReader("  029A\r\n\n980A\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"029A", "980A"}, codes)

	codes, err = ReadCodes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, codes)

	_, err = ReadCodes(strings.NewReader("029A\n98x0A\n"))
	assert.ErrorIs(t, err, ErrMalformedCode)
	assert.ErrorContains(t, err, "line 2")
}
