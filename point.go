package kdtree

import "golang.org/x/exp/constraints"

// MaxDims is the largest number of axes a tree supports.
const MaxDims = 4

// Point is the capability a caller's point type must provide. P is the
// implementing type itself, so DistanceSquared is statically typed:
//
//	type City struct{ Lat, Lon float64 }
//	func (c City) Dims() int { return 2 }
//	...
//
// All three methods must be pure functions of the point's own data.
// DistanceSquared must be consistent with Coord: it is the sum of squared
// per-axis differences, so that a single axis difference squared is never
// larger than the full squared distance. The tree relies on this for pruning.
type Point[P any] interface {
	// Dims returns the number of axes, 1 to MaxDims.
	Dims() int
	// Coord returns the coordinate along axis. Behavior is undefined for
	// axis >= Dims().
	Coord(axis int) float64
	// DistanceSquared returns the squared Euclidean distance to other.
	DistanceSquared(other P) float64
}

// Scalar is the set of numeric element types accepted by the VecN points.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec1 is a one-axis point.
type Vec1[T Scalar] [1]T

// Vec2 is a two-axis point.
type Vec2[T Scalar] [2]T

// Vec3 is a three-axis point.
type Vec3[T Scalar] [3]T

// Vec4 is a four-axis point.
type Vec4[T Scalar] [4]T

func (Vec1[T]) Dims() int                { return 1 }
func (v Vec1[T]) Coord(axis int) float64 { return float64(v[axis]) }
func (Vec2[T]) Dims() int                { return 2 }
func (v Vec2[T]) Coord(axis int) float64 { return float64(v[axis]) }
func (Vec3[T]) Dims() int                { return 3 }
func (v Vec3[T]) Coord(axis int) float64 { return float64(v[axis]) }
func (Vec4[T]) Dims() int                { return 4 }
func (v Vec4[T]) Coord(axis int) float64 { return float64(v[axis]) }

func (v Vec1[T]) DistanceSquared(o Vec1[T]) float64 { return sumOfSquares(v[:], o[:]) }
func (v Vec2[T]) DistanceSquared(o Vec2[T]) float64 { return sumOfSquares(v[:], o[:]) }
func (v Vec3[T]) DistanceSquared(o Vec3[T]) float64 { return sumOfSquares(v[:], o[:]) }
func (v Vec4[T]) DistanceSquared(o Vec4[T]) float64 { return sumOfSquares(v[:], o[:]) }

// sumOfSquares widens to float64 before subtracting so integer points
// cannot overflow or wrap.
func sumOfSquares[T Scalar](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// DistanceSquared computes the squared Euclidean distance between two
// points through their Coord accessors. It is a convenience for Point
// implementations that have no faster way to do it.
func DistanceSquared[P Point[P]](a, b P) float64 {
	var sum float64
	for axis := 0; axis < a.Dims(); axis++ {
		d := a.Coord(axis) - b.Coord(axis)
		sum += d * d
	}
	return sum
}
