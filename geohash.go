// Package geohash encodes longitude/latitude coordinates into short
// base-16 geohash strings and back.
//
// A geohash names a rectangular cell produced by recursive binary
// subdivision of the longitude and latitude ranges, one bit at a time,
// longitude first. Every 4 bits map to one character, so each extra
// character quarters the cell extent on both axes.
//
// # Alphabet
//
// This package uses a 16-symbol alphabet ("0123456789abcdef", 4 bits per
// character), not the conventional 32-symbol geohash alphabet. Hashes
// produced here are NOT interchangeable with standard geohash
// implementations; the reduced alphabet is a deliberate format choice kept
// for compatibility with existing encoded data.
//
// # Basic Usage
//
// Encoding a coordinate to a length-five geohash:
//
//	hash, err := geohash.Encode(geohash.Point{Lon: -120.6623, Lat: 35.3003}, 5)
//	// hash == "4d8c0"
//
// Decoding returns the cell center plus the maximum per-axis deviation:
//
//	center, lonErr, latErr, err := geohash.Decode("4d8c0")
//
// Finding adjacent cells of equal precision:
//
//	north, err := geohash.Neighbor("4d8c0", geohash.North)
//	all, err := geohash.Neighbors("4d8c0")
//
// All functions are pure: no shared state, safe for concurrent use without
// coordination.
package geohash

import (
	"fmt"
	"strings"

	"github.com/arloliu/geohash/errs"
)

// alphabet maps a 4-bit cell value (0-15) to its hash character.
// The inverse mapping lives in charValue.
const alphabet = "0123456789abcdef"

const bitsPerChar = 4

// Global coordinate bounds; encoding and decoding both start their binary
// search from these.
const (
	lonMin = -180.0
	lonMax = 180.0
	latMin = -90.0
	latMax = 90.0
)

// Encode returns the geohash of p with the given length in characters.
//
// The coordinate is validated against the global bounds first; a longitude
// outside -180..180 or latitude outside -90..90 returns
// errs.ErrInvalidCoordinateRange. A zero length yields an empty string
// after validation.
//
// Encoding is a lossy, deterministic projection: every point inside the
// final cell encodes to the same string, and the same (point, length) pair
// always yields the same output.
//
// The bit stream alternates axes per bit, longitude on even bit positions,
// and the position counter carries across character boundaries. Each
// bisection keeps the half containing p: the bit is 1 and the lower bound
// rises to the midpoint when p lies above it, else the bit is 0 and the
// upper bound drops.
func Encode(p Point, length int) (string, error) {
	if p.Lon < lonMin || p.Lon > lonMax || p.Lat < latMin || p.Lat > latMax {
		return "", fmt.Errorf("%w: (%v, %v)", errs.ErrInvalidCoordinateRange, p.Lon, p.Lat)
	}

	var out strings.Builder
	out.Grow(max(length, 0))

	minLon, maxLon := lonMin, lonMax
	minLat, maxLat := latMin, latMax
	bitsTotal := 0
	cell := 0

	for out.Len() < length {
		for i := 0; i < bitsPerChar; i++ {
			if bitsTotal%2 == 0 {
				mid := (minLon + maxLon) / 2
				if p.Lon > mid {
					cell = cell<<1 | 1
					minLon = mid
				} else {
					cell <<= 1
					maxLon = mid
				}
			} else {
				mid := (minLat + maxLat) / 2
				if p.Lat > mid {
					cell = cell<<1 | 1
					minLat = mid
				} else {
					cell <<= 1
					maxLat = mid
				}
			}
			bitsTotal++
		}

		out.WriteByte(alphabet[cell])
		cell = 0
	}

	return out.String(), nil
}

// DecodeBBox returns the bounding box of the cell the hash names.
//
// It is the exact inverse of Encode: each character maps back to its 4-bit
// value and the bits replay the same bisection, most significant bit first,
// longitude first. Re-encoding any point inside the returned box at
// len(hash) characters reproduces hash.
//
// A character outside 0-9/a-f (lowercase only, no case normalization)
// returns errs.ErrInvalidHashCharacter. An empty hash decodes to the
// full-world box.
func DecodeBBox(hash string) (Box, error) {
	minLon, maxLon := lonMin, lonMax
	minLat, maxLat := latMin, latMax
	isLon := true

	for i := 0; i < len(hash); i++ {
		cell, err := charValue(hash[i])
		if err != nil {
			return Box{}, err
		}

		for bit := bitsPerChar - 1; bit >= 0; bit-- {
			if isLon {
				mid := (minLon + maxLon) / 2
				if cell>>bit&1 == 1 {
					minLon = mid
				} else {
					maxLon = mid
				}
			} else {
				mid := (minLat + maxLat) / 2
				if cell>>bit&1 == 1 {
					minLat = mid
				} else {
					maxLat = mid
				}
			}
			isLon = !isLon
		}
	}

	return Box{
		Min: Point{Lon: minLon, Lat: minLat},
		Max: Point{Lon: maxLon, Lat: maxLat},
	}, nil
}

// Decode returns the center of the cell the hash names, together with the
// maximum per-axis deviation between that center and any point that
// encodes to the same hash.
//
// The error margins are half the cell extent on each axis; they shrink by
// a factor of four per additional hash character. Invalid characters
// surface errs.ErrInvalidHashCharacter unchanged from DecodeBBox.
func Decode(hash string) (center Point, lonErr, latErr float64, err error) {
	box, err := DecodeBBox(hash)
	if err != nil {
		return Point{}, 0, 0, err
	}

	return box.Center(), box.LonError(), box.LatError(), nil
}

// charValue maps a hash character to its 4-bit cell value.
func charValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidHashCharacter, c)
	}
}
