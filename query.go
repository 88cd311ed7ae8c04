package kdtree

import (
	"cmp"
	"container/heap"
	"slices"
)

// Neighbor is a query result: a point index and its squared distance to
// the query point.
type Neighbor struct {
	Index           int
	DistanceSquared float64
}

// less orders neighbors by distance, then by index.
func (a Neighbor) less(b Neighbor) bool {
	if a.DistanceSquared != b.DistanceSquared {
		return a.DistanceSquared < b.DistanceSquared
	}
	return a.Index < b.Index
}

func compareNeighbors(a, b Neighbor) int {
	if c := cmp.Compare(a.DistanceSquared, b.DistanceSquared); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

// maxStack is the traversal stack capacity that never needs to grow. A
// depth-first walk holds at most one pending sibling per level plus the near
// child, and a tree indexed by int has fewer than 64 levels.
const maxStack = 2 * 64

// frame is a node still to visit with a lower bound on the squared distance
// from the query to anything in its subtree.
type frame struct {
	pos   int
	bound float64
}

func queryCoords[P Point[P]](q P, dims int) (c [MaxDims]float64) {
	for axis := 0; axis < dims; axis++ {
		c[axis] = q.Coord(axis)
	}
	return c
}

// descend pushes the children of the node in f, the far side first so that
// the side of the splitting hyperplane holding the query is popped next.
// diff is the query coordinate minus the node coordinate on the split axis.
func (t *Tree[P]) descend(stack []frame, f frame, diff float64) []frame {
	near, far := ChildNodes(f.pos)
	if diff > 0 {
		near, far = far, near
	}
	n := len(t.nodes)
	if far < n {
		stack = append(stack, frame{pos: far, bound: max(f.bound, diff*diff)})
	}
	if near < n {
		stack = append(stack, frame{pos: near, bound: f.bound})
	}
	return stack
}

// Nearest returns the index of the point closest to q. Among points at the
// same minimum distance the lowest index wins. ok is false for an empty tree.
func (t *Tree[P]) Nearest(q P) (ref int, ok bool) {
	nb, ok := t.NearestNeighbor(q)
	return nb.Index, ok
}

// NearestNeighbor is like Nearest but also reports the squared distance.
func (t *Tree[P]) NearestNeighbor(q P) (Neighbor, bool) {
	if t.Len() == 0 {
		return Neighbor{}, false
	}
	qc := queryCoords(q, t.dims)
	best := Neighbor{Index: -1}

	var buf [maxStack]frame
	stack := append(buf[:0], frame{pos: 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Equal bounds are still visited: they may hold a tie with a lower index.
		if best.Index >= 0 && f.bound > best.DistanceSquared {
			continue
		}

		ref := t.nodes[f.pos]
		p := t.points[ref]
		nb := Neighbor{Index: ref, DistanceSquared: q.DistanceSquared(p)}
		if best.Index < 0 || nb.less(best) {
			best = nb
		}

		axis := int(t.axes[f.pos])
		stack = t.descend(stack, f, qc[axis]-p.Coord(axis))
	}
	return best, true
}

// KNearest returns the indices of the min(k, Len()) points closest to q,
// ascending by distance with ties broken by the lower index. k <= 0 yields
// an empty result.
func (t *Tree[P]) KNearest(q P, k int) []int {
	nbs := t.KNearestNeighbors(q, k)
	refs := make([]int, len(nbs))
	for i, nb := range nbs {
		refs[i] = nb.Index
	}
	return refs
}

// KNearestNeighbors is like KNearest but also reports squared distances.
func (t *Tree[P]) KNearestNeighbors(q P, k int) []Neighbor {
	if k <= 0 || t.Len() == 0 {
		return []Neighbor{}
	}
	k = min(k, t.Len())
	qc := queryCoords(q, t.dims)
	h := make(neighborHeap, 0, k)

	var buf [maxStack]frame
	stack := append(buf[:0], frame{pos: 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(h) == k && f.bound > h[0].DistanceSquared {
			continue
		}

		ref := t.nodes[f.pos]
		p := t.points[ref]
		nb := Neighbor{Index: ref, DistanceSquared: q.DistanceSquared(p)}
		if len(h) < k {
			heap.Push(&h, nb)
		} else if nb.less(h[0]) {
			h[0] = nb
			heap.Fix(&h, 0)
		}

		axis := int(t.axes[f.pos])
		stack = t.descend(stack, f, qc[axis]-p.Coord(axis))
	}

	slices.SortFunc(h, compareNeighbors)
	return h
}

// neighborHeap is a max-heap of Neighbor (worst candidate on top) used as a
// bounded priority queue for k-nearest queries.
type neighborHeap []Neighbor

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[j].less(h[i]) } // max-heap
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x interface{}) { *h = append(*h, x.(Neighbor)) }
func (h *neighborHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
