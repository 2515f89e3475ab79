package partition

import "errors"

var (
	// ErrDegenerateGeometry is returned when a construction input collapses
	// below the precision tolerance, such as a line through two equal points.
	ErrDegenerateGeometry = errors.New("partition: degenerate geometry")

	// ErrIncompatibleHyperplanes is returned when an operation requires two
	// sub-hyperplanes to lie on the same hyperplane and they do not.
	ErrIncompatibleHyperplanes = errors.New("partition: incompatible hyperplanes")
)
