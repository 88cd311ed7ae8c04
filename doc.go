// Package kdtree implements a static kd-tree over caller-owned points of
// one to four axes, for nearest-neighbor, k-nearest and radius queries.
//
// The tree never copies points. It stores one index into the caller's slice
// per node, in a complete binary tree laid out as a flat array, and reads
// coordinates back through the [Point] capability while searching. The
// caller must keep the slice alive and unmodified while the tree is in use.
//
// Basic usage:
//
//	pts := []kdtree.Vec2[float64]{{0, 0}, {1, 0}, {0, 1}, {5, 5}}
//	t, err := kdtree.New(pts, kdtree.DefaultConfig())
//	i, ok := t.Nearest(kdtree.Vec2[float64]{0.2, 0.1}) // index into pts
//	knn := t.KNearest(q, 2)                             // ascending by distance
//	for i := range t.WithinSeq(q, 1.5) {                // lazy radius query
//		...
//	}
//
// # Construction
//
// Each axis is sorted once up front. Nodes are then built from an explicit
// work stack: the chosen axis order supplies the pivot, and the other axis
// orders are split around it with a stable filter, so no level re-sorts and
// nothing recurses. The [SplitStrategy] in [Config] chooses each node's axis:
//
//	cfg.Strategy = kdtree.RoundRobin{} // axis = depth mod dims (default)
//	cfg.Strategy = kdtree.MaxSpread{}  // axis with the widest coordinate range
//
// # Queries
//
// All traversals are iterative with a fixed-capacity stack and prune a
// subtree only when the splitting hyperplane is strictly farther than the
// current threshold. Ties are resolved by the lowest point index, so results
// do not depend on the split strategy: Nearest returns the lowest index at
// the minimum distance and KNearest the k smallest by (distance, index).
//
// A built tree is immutable; any number of goroutines may query it at once.
// KNearestBatch and WithinBatch do exactly that over Config.Workers goroutines.
package kdtree
