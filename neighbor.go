package geohash

import "math"

// Neighbor returns the geohash of the cell adjacent to hash in the given
// compass direction, at the same precision.
//
// It decodes the hash to its center and per-axis error margins, shifts the
// center by exactly one cell width (2x the margin) along each signed axis
// of the direction, and re-encodes at len(hash) characters.
//
// There is no longitude wraparound at +/-180 degrees and no latitude
// clamping at the poles: stepping off the edge of the world either fails
// with errs.ErrInvalidCoordinateRange or yields a degenerate cell. Errors
// from decoding or re-encoding propagate unwrapped.
func Neighbor(hash string, dir Direction) (string, error) {
	center, lonErr, latErr, err := Decode(hash)
	if err != nil {
		return "", err
	}

	dLat, dLon := dir.Delta()
	shifted := Point{
		Lon: center.Lon + 2*math.Abs(lonErr)*dLon,
		Lat: center.Lat + 2*math.Abs(latErr)*dLat,
	}

	return Encode(shifted, len(hash))
}

// Neighbors returns the geohashes of all eight cells adjacent to hash.
//
// Any single direction failing aborts the whole lookup and returns that
// direction's error; there are no partial results.
func Neighbors(hash string) (NeighborSet, error) {
	var (
		set NeighborSet
		err error
	)

	dirs := []struct {
		dir  Direction
		dest *string
	}{
		{SouthWest, &set.SW},
		{South, &set.S},
		{SouthEast, &set.SE},
		{West, &set.W},
		{East, &set.E},
		{NorthWest, &set.NW},
		{North, &set.N},
		{NorthEast, &set.NE},
	}

	for _, d := range dirs {
		*d.dest, err = Neighbor(hash, d.dir)
		if err != nil {
			return NeighborSet{}, err
		}
	}

	return set, nil
}
