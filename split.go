package kdtree

import (
	"fmt"
	"strings"
)

// StrategyName names a built-in split strategy.
type StrategyName string

const (
	StrategyRoundRobin StrategyName = "round_robin"
	StrategyMaxSpread  StrategyName = "max_spread"
)

// SplitStrategy selects the axis a node splits on. It is consulted once per
// node while the tree is built and must not retain r. The pivot is always
// the balanced median of r along the returned axis (see Range.Median), which
// keeps the tree complete no matter which axes are chosen.
//
// Implementations must be stateless or treat their state as read-only once
// construction begins. Returning an axis outside [0, r.Dims()) panics.
type SplitStrategy interface {
	SplitAxis(depth int, r Range) int
}

// SplitFunc adapts a plain function into a SplitStrategy.
type SplitFunc func(depth int, r Range) int

func (f SplitFunc) SplitAxis(depth int, r Range) int { return f(depth, r) }

// RoundRobin cycles through the axes by tree depth. It is the default:
// choosing an axis costs nothing and query shape is predictable.
type RoundRobin struct{}

func (RoundRobin) SplitAxis(depth int, r Range) int { return depth % r.Dims() }

func (RoundRobin) String() string { return string(StrategyRoundRobin) }

// MaxSpread splits on the axis with the greatest coordinate range among the
// points of the current node. Ties go to the lowest axis. It costs one
// comparison per axis per node and can improve query locality on skewed data.
type MaxSpread struct{}

func (MaxSpread) SplitAxis(_ int, r Range) int {
	best := 0
	bestSpread := r.Spread(0)
	for axis := 1; axis < r.Dims(); axis++ {
		if s := r.Spread(axis); s > bestSpread {
			best, bestSpread = axis, s
		}
	}
	return best
}

func (MaxSpread) String() string { return string(StrategyMaxSpread) }

// ParseStrategy returns the built-in strategy registered under name.
// Matching is case-insensitive; an empty name selects RoundRobin.
func ParseStrategy(name string) (SplitStrategy, error) {
	switch StrategyName(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyRoundRobin:
		return RoundRobin{}, nil
	case StrategyMaxSpread:
		return MaxSpread{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// strategyName is used for logging.
func strategyName(s SplitStrategy) string {
	if st, ok := s.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", s)
}

// Range is the read-only view of the points a node is being built from.
// Every per-axis order holds the same set of indices, sorted by that axis
// with ties broken by the lower index.
type Range struct {
	orders [][]int
	lo, hi int
	src    coordSource
}

// Len returns the number of points in the range. It is always >= 1 when a
// strategy sees the range.
func (r Range) Len() int { return r.hi - r.lo }

// Dims returns the number of axes.
func (r Range) Dims() int { return len(r.orders) }

// Order returns the indices of the range sorted along axis. The returned
// slice aliases builder state and must not be modified.
func (r Range) Order(axis int) []int { return r.orders[axis][r.lo:r.hi:r.hi] }

// Coord returns the coordinate of the point at index ref along axis.
func (r Range) Coord(ref, axis int) float64 { return r.src.coord(ref, axis) }

// Spread returns the difference between the largest and smallest
// coordinate along axis.
func (r Range) Spread(axis int) float64 {
	o := r.orders[axis]
	return r.src.coord(o[r.hi-1], axis) - r.src.coord(o[r.lo], axis)
}

// Median returns the rank, within any axis order, of the pivot the node
// will hold.
func (r Range) Median() int { return medianRank(r.Len()) }

// coordSource gives the builder coordinate access without making Range generic.
type coordSource interface {
	coord(ref, axis int) float64
}

type pointSet[P Point[P]] []P

func (s pointSet[P]) coord(ref, axis int) float64 { return s[ref].Coord(axis) }
