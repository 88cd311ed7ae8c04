package kdtree

import (
	"fmt"
	"math/bits"
)

// Check validates structural tree invariants: every point index appears
// exactly once, the height is ceil(log2(Len()+1)), and every node lies on the
// correct side of the splitting hyperplane of each of its ancestors.
// It is O(n log n) and intended for tests and debugging.
func (t *Tree[P]) Check() error {
	if t == nil {
		return nil
	}
	n := len(t.nodes)
	if len(t.axes) != n {
		return fmt.Errorf("%w: %d nodes but %d axes", ErrCorrupt, n, len(t.axes))
	}
	if n != len(t.points) {
		return fmt.Errorf("%w: %d nodes for %d points", ErrCorrupt, n, len(t.points))
	}
	if want := bits.Len(uint(n)); t.height != want {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupt, t.height, want)
	}

	seen := make([]bool, n)
	for pos, ref := range t.nodes {
		if ref < 0 || ref >= n {
			return fmt.Errorf("%w: node %d holds out-of-range index %d", ErrCorrupt, pos, ref)
		}
		if seen[ref] {
			return fmt.Errorf("%w: index %d appears more than once", ErrCorrupt, ref)
		}
		seen[ref] = true
		if int(t.axes[pos]) >= t.dims {
			return fmt.Errorf("%w: node %d splits on axis %d of %d", ErrCorrupt, pos, t.axes[pos], t.dims)
		}
	}

	for pos := 1; pos < n; pos++ {
		p := t.points[t.nodes[pos]]
		for child := pos; child > 0; {
			parent := (child - 1) / 2
			axis := int(t.axes[parent])
			split := t.points[t.nodes[parent]].Coord(axis)
			c := p.Coord(axis)
			left, _ := ChildNodes(parent)
			if child == left && c > split {
				return fmt.Errorf("%w: node %d (%g) is left of ancestor %d (%g) on axis %d",
					ErrCorrupt, pos, c, parent, split, axis)
			}
			if child != left && c < split {
				return fmt.Errorf("%w: node %d (%g) is right of ancestor %d (%g) on axis %d",
					ErrCorrupt, pos, c, parent, split, axis)
			}
			child = parent
		}
	}
	return nil
}
