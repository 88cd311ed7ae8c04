package kdtree

import "errors"

var (
	// ErrInvalidDimension signals a point type whose axis count is outside 1..MaxDims.
	ErrInvalidDimension = errors.New("kdtree: invalid dimension")
	// ErrDimensionMismatch signals points of differing axis counts in one input.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")
	// ErrInvalidConfig signals an invalid Config value.
	ErrInvalidConfig = errors.New("kdtree: invalid configuration")
	// ErrUnknownStrategy signals a split strategy name ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("kdtree: unknown split strategy")
	// ErrCorrupt signals a violated structural invariant found by Check.
	ErrCorrupt = errors.New("kdtree: corrupt tree")
)
