package kdtree

import "slices"

// LinearScan answers the same queries as Tree by examining every point.
// It needs no construction, so it can beat a tree for a handful of points
// or a single query, and its results follow the same tie-break rules, which
// makes it a reference for checking a Tree.
type LinearScan[P Point[P]] []P

// Len returns the number of points.
func (s LinearScan[P]) Len() int { return len(s) }

// Nearest returns the lowest index among the points closest to q.
func (s LinearScan[P]) Nearest(q P) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	best := Neighbor{Index: 0, DistanceSquared: q.DistanceSquared(s[0])}
	for i := 1; i < len(s); i++ {
		if nb := (Neighbor{Index: i, DistanceSquared: q.DistanceSquared(s[i])}); nb.less(best) {
			best = nb
		}
	}
	return best.Index, true
}

// KNearest returns the min(k, Len()) closest points ordered by distance,
// then index.
func (s LinearScan[P]) KNearest(q P, k int) []int {
	if k <= 0 || len(s) == 0 {
		return []int{}
	}
	all := make([]Neighbor, len(s))
	for i := range s {
		all[i] = Neighbor{Index: i, DistanceSquared: q.DistanceSquared(s[i])}
	}
	slices.SortFunc(all, compareNeighbors)
	refs := make([]int, min(k, len(s)))
	for i := range refs {
		refs[i] = all[i].Index
	}
	return refs
}

// Within returns, in ascending index order, every point whose squared
// distance to q is at most r*r.
func (s LinearScan[P]) Within(q P, r float64) []int {
	refs := []int{}
	if !(r >= 0) {
		return refs
	}
	r2 := r * r
	for i := range s {
		if q.DistanceSquared(s[i]) <= r2 {
			refs = append(refs, i)
		}
	}
	return refs
}
