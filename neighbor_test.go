package geohash

import (
	"testing"

	"github.com/arloliu/geohash/errs"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	set, err := Neighbors("e71150dc99")
	require.NoError(t, err)
	require.Equal(t, NeighborSet{
		SW: "e71150dc92",
		S:  "e71150dc98",
		SE: "e71150dc9a",
		W:  "e71150dc93",
		E:  "e71150dc9b",
		NW: "e71150dc96",
		N:  "e71150dc9c",
		NE: "e71150dc9e",
	}, set)
}

func TestNeighbors_OddLength(t *testing.T) {
	// Shorter hash, coarser cells. The west-side neighbors cross a parent
	// cell boundary, so their prefix differs from the source hash.
	set, err := Neighbors("e7115")
	require.NoError(t, err)
	require.Equal(t, NeighborSet{
		SW: "e5bbe",
		S:  "e7114",
		SE: "e7116",
		W:  "e5bbf",
		E:  "e7117",
		NW: "e5bea",
		N:  "e7140",
		NE: "e7142",
	}, set)
}

func TestNeighbor_SingleDirection(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "e71150dc9c"},
		{NorthEast, "e71150dc9e"},
		{East, "e71150dc9b"},
		{SouthEast, "e71150dc9a"},
		{South, "e71150dc98"},
		{SouthWest, "e71150dc92"},
		{West, "e71150dc93"},
		{NorthWest, "e71150dc96"},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			hash, err := Neighbor("e71150dc99", tt.dir)
			require.NoError(t, err)
			require.Equal(t, tt.want, hash)
			require.Len(t, hash, len("e71150dc99"))
		})
	}
}

func TestNeighbor_InvalidHash(t *testing.T) {
	_, err := Neighbor("wwgj", North)
	require.ErrorIs(t, err, errs.ErrInvalidHashCharacter)

	_, err = Neighbors("wwgj")
	require.ErrorIs(t, err, errs.ErrInvalidHashCharacter)
}

func TestNeighbor_EdgeOfWorld(t *testing.T) {
	// "7" covers longitude -90..0, latitude 45..90. Stepping north shifts
	// the center latitude past the pole, and there is no clamping, so the
	// re-encode rejects the coordinate.
	_, err := Neighbor("7", North)
	require.ErrorIs(t, err, errs.ErrInvalidCoordinateRange)

	// The whole set aborts on the first failing direction.
	_, err = Neighbors("7")
	require.ErrorIs(t, err, errs.ErrInvalidCoordinateRange)
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir        Direction
		dLat, dLon float64
	}{
		{North, 1, 0},
		{NorthEast, 1, 1},
		{East, 0, 1},
		{SouthEast, -1, 1},
		{South, -1, 0},
		{SouthWest, -1, -1},
		{West, 0, -1},
		{NorthWest, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dLat, dLon := tt.dir.Delta()
			require.Equal(t, tt.dLat, dLat)
			require.Equal(t, tt.dLon, dLon)
		})
	}
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "n", North.String())
	require.Equal(t, "sw", SouthWest.String())
	require.Equal(t, "unknown", Direction(200).String())
}
