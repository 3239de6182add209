package htable

import "github.com/pkg/errors"

var (
	// ErrInvalidKey is returned by Insert for the empty key, which stands in
	// for a missing key.
	ErrInvalidKey = errors.New("htable: invalid key")

	// ErrCapacityOverflow is returned when growing would exceed the largest
	// supported capacity.
	ErrCapacityOverflow = errors.New("htable: capacity overflow")
)
