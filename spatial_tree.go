package kdtree

// Searcher is the read interface shared by Tree and LinearScan.
type Searcher[P any] interface {
	// Len returns the number of indexed points.
	Len() int

	// Nearest returns the index of the point closest to q; ties go to the
	// lowest index. ok is false when there are no points.
	Nearest(q P) (ref int, ok bool)

	// KNearest returns up to k indices ascending by distance, then index.
	KNearest(q P, k int) []int

	// Within returns every index within distance r of q, in no guaranteed order.
	Within(q P, r float64) []int
}

var (
	_ Searcher[Vec2[float64]] = (*Tree[Vec2[float64]])(nil)
	_ Searcher[Vec2[float64]] = LinearScan[Vec2[float64]](nil)
)
