package geohash

// Point is a longitude/latitude coordinate in degrees.
//
// Construction enforces no invariant; range validation (longitude within
// -180..180, latitude within -90..90) happens at encode time only.
type Point struct {
	Lon float64 // longitude in degrees, valid range -180..180
	Lat float64 // latitude in degrees, valid range -90..90
}

// Box is the axis-aligned bounding rectangle a geohash cell covers.
//
// Min.Lon <= Max.Lon and Min.Lat <= Max.Lat always hold; the decoding
// binary search only ever narrows one bound toward the midpoint.
type Box struct {
	Min Point // south-west corner
	Max Point // north-east corner
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{
		Lon: (b.Min.Lon + b.Max.Lon) / 2,
		Lat: (b.Min.Lat + b.Max.Lat) / 2,
	}
}

// LonError returns half the longitude span of the box. It is the maximum
// deviation between the center longitude and any point inside the cell.
func (b Box) LonError() float64 {
	return (b.Max.Lon - b.Min.Lon) / 2
}

// LatError returns half the latitude span of the box. It is the maximum
// deviation between the center latitude and any point inside the cell.
func (b Box) LatError() float64 {
	return (b.Max.Lat - b.Min.Lat) / 2
}

// Direction is one of the eight compass directions used for neighbor
// lookups.
type Direction uint8

const (
	North     Direction = iota // North moves one cell up.
	NorthEast                  // NorthEast moves one cell up and right.
	East                       // East moves one cell right.
	SouthEast                  // SouthEast moves one cell down and right.
	South                      // South moves one cell down.
	SouthWest                  // SouthWest moves one cell down and left.
	West                       // West moves one cell left.
	NorthWest                  // NorthWest moves one cell up and left.
)

// Delta returns the unit-sign (latitude, longitude) step for the direction:
// +1 north/east, -1 south/west, 0 on the unchanged axis.
func (d Direction) Delta() (dLat, dLon float64) {
	switch d {
	case North:
		return 1, 0
	case NorthEast:
		return 1, 1
	case East:
		return 0, 1
	case SouthEast:
		return -1, 1
	case South:
		return -1, 0
	case SouthWest:
		return -1, -1
	case West:
		return 0, -1
	case NorthWest:
		return 1, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case NorthEast:
		return "ne"
	case East:
		return "e"
	case SouthEast:
		return "se"
	case South:
		return "s"
	case SouthWest:
		return "sw"
	case West:
		return "w"
	case NorthWest:
		return "nw"
	default:
		return "unknown"
	}
}

// NeighborSet holds the eight geohashes adjacent to a cell, one per compass
// direction, each at the same precision as the source hash.
type NeighborSet struct {
	N  string
	NE string
	E  string
	SE string
	S  string
	SW string
	W  string
	NW string
}
