package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	require := require.New(t)

	table := NewTable()
	for dest := 0; dest < DestCount; dest++ {
		require.Empty(table.Path(uint8(dest)))
		for hop := 0; hop < MaxHops; hop++ {
			require.Equal(InvalidHop, table[dest][hop])
		}
	}
}

func TestSetPath(t *testing.T) {
	require := require.New(t)

	table := NewTable()
	require.NoError(table.SetPath(3, []uint8{0, 1, 4}))
	require.Equal([]uint8{0, 1, 4}, table.Path(3))
	require.Equal(InvalidHop, table[3][3])

	// shrinking a path pads the tail with the invalid marker again
	require.NoError(table.SetPath(3, []uint8{2}))
	require.Equal([]uint8{2}, table.Path(3))
	require.Equal(InvalidHop, table[3][1])

	// an empty path clears the entry
	require.NoError(table.SetPath(3, nil))
	require.Empty(table.Path(3))
}

func TestSetPathTooManyHops(t *testing.T) {
	require := require.New(t)

	table := NewTable()
	hops := make([]uint8, MaxHops+1)
	require.ErrorIs(table.SetPath(0, hops), ErrTooManyHops)
}

func TestPathFullLength(t *testing.T) {
	require := require.New(t)

	table := NewTable()
	hops := make([]uint8, MaxHops)
	for i := range hops {
		hops[i] = uint8(i)
	}
	require.NoError(table.SetPath(7, hops))
	require.Len(table.Path(7), MaxHops)
}
