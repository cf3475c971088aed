// Package errs defines sentinel errors returned by the geohash package.
//
// All errors are input-validation failures, not transient conditions;
// retrying the same call always fails the same way. Callers should match
// error kinds with errors.Is:
//
//	hash, err := geohash.Encode(p, 8)
//	if errors.Is(err, errs.ErrInvalidCoordinateRange) {
//	    // coordinate outside the valid longitude/latitude range
//	}
package errs

import "errors"

var (
	// ErrInvalidCoordinateRange indicates a coordinate outside the valid
	// global range (longitude -180..180, latitude -90..90). The wrapped
	// message carries the offending coordinate.
	ErrInvalidCoordinateRange = errors.New("coordinate outside valid range")

	// ErrInvalidHashCharacter indicates a geohash string containing a
	// character outside the 16-symbol alphabet (0-9, lowercase a-f).
	// The wrapped message carries the offending character.
	ErrInvalidHashCharacter = errors.New("invalid geohash character")
)
