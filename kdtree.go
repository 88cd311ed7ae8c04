package kdtree

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
	"time"
)

// Tree is a kd-tree spatial index over a caller-owned slice of points.
// It stores only indices into that slice; the caller must keep the slice
// alive and unmodified for as long as the tree is used.
//
// The tree is stored as a complete binary tree in array form:
//   - node i has children at 2*i+1 and 2*i+2, present when < Len()
//   - node i holds exactly one point index and the axis it splits on
//
// A built tree is immutable and safe for concurrent queries. A nil *Tree
// behaves like an empty one.
type Tree[P Point[P]] struct {
	points  []P     // caller-owned point storage, never copied or written
	nodes   []int   // nodes[i] = index into points held by node i
	axes    []uint8 // axes[i] = split axis of node i
	dims    int
	height  int
	workers int
}

// New builds a tree over points. Each axis is sorted exactly once; the
// per-axis orders are then partitioned level by level with an explicit work
// stack, so neither construction time nor goroutine stack depth depends on
// re-sorting or recursion.
//
// An empty slice produces a valid empty tree. All points must report the
// same Dims(), between 1 and MaxDims.
func New[P Point[P]](points []P, cfg Config) (*Tree[P], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	start := time.Now()
	n := len(points)
	t := &Tree[P]{points: points, workers: cfg.Workers}

	if n > 0 {
		dims := points[0].Dims()
		if dims < 1 || dims > MaxDims {
			return nil, fmt.Errorf("%w: point type has %d axes, want 1..%d", ErrInvalidDimension, dims, MaxDims)
		}
		for i := 1; i < n; i++ {
			if d := points[i].Dims(); d != dims {
				return nil, fmt.Errorf("%w: point %d has %d axes, point 0 has %d", ErrDimensionMismatch, i, d, dims)
			}
		}

		b := newBuilder(pointSet[P](points), n, dims, cfg.Strategy)
		b.build()
		t.nodes, t.axes = b.nodes, b.axes
		t.dims = dims
		t.height = bits.Len(uint(n))
	}

	cfg.Logger.Debug("kdtree built",
		"points", n,
		"dims", t.dims,
		"height", t.height,
		"strategy", strategyName(cfg.Strategy),
		"elapsed", time.Since(start),
	)
	return t, nil
}

// MustNew is like New but panics if the tree cannot be built.
func MustNew[P Point[P]](points []P, cfg Config) *Tree[P] {
	t, err := New(points, cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of points in the tree.
func (t *Tree[P]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Dims returns the number of axes, or 0 for an empty tree.
func (t *Tree[P]) Dims() int {
	if t == nil {
		return 0
	}
	return t.dims
}

// Height returns the number of levels, ceil(log2(Len()+1)).
func (t *Tree[P]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Points returns the caller's point slice the tree indexes.
func (t *Tree[P]) Points() []P {
	if t == nil {
		return nil
	}
	return t.points
}

// Indices returns the point index held by every node, in array order.
// The slice is owned by the tree and must not be modified.
func (t *Tree[P]) Indices() []int {
	if t == nil {
		return nil
	}
	return t.nodes
}

// Node returns the point index and split axis of the node at array
// position pos. ok is false if no such node exists.
func (t *Tree[P]) Node(pos int) (ref, axis int, ok bool) {
	if pos < 0 || pos >= t.Len() {
		return 0, 0, false
	}
	return t.nodes[pos], int(t.axes[pos]), true
}

// ChildNodes returns the array positions of the children of pos. Either may
// be >= Len(), meaning the child does not exist.
func ChildNodes(pos int) (left, right int) {
	return 2*pos + 1, 2*pos + 2
}

// medianRank returns the size of the left subtree of a complete binary tree
// with n nodes. Used as the pivot rank, it is the median of n points adjusted
// so that every subtree is itself complete.
func medianRank(n int) int {
	if n <= 1 {
		return 0
	}
	h := bits.Len(uint(n))
	half := 1 << (h - 2)         // bottom-level capacity of the left subtree
	bottom := n - (1<<(h-1) - 1) // nodes on the bottom level
	return half - 1 + min(bottom, half)
}

const (
	sideLess int8 = iota
	sidePivot
	sideGreater
)

// builder holds the scratch state of one construction. It is discarded once
// the tree is materialized.
type builder struct {
	src      coordSource
	strategy SplitStrategy
	// orders[axis] is a permutation of 0..n-1. For every pending job, the
	// segment [lo, hi) of each order holds the same set of indices sorted
	// along that order's axis.
	orders  [][]int
	scratch []int
	side    []int8 // side[ref] relative to the pivot of the job being split
	nodes   []int
	axes    []uint8
}

type buildJob struct {
	lo, hi int // segment of every axis order
	pos    int // tree array position
	depth  int
}

func newBuilder(src coordSource, n, dims int, strategy SplitStrategy) *builder {
	b := &builder{
		src:      src,
		strategy: strategy,
		orders:   make([][]int, dims),
		scratch:  make([]int, n),
		side:     make([]int8, n),
		nodes:    make([]int, n),
		axes:     make([]uint8, n),
	}
	for axis := range dims {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(x, y int) int {
			if c := cmp.Compare(src.coord(x, axis), src.coord(y, axis)); c != 0 {
				return c
			}
			return cmp.Compare(x, y)
		})
		b.orders[axis] = order
	}
	return b
}

// build places one pivot per job and queues the two child segments until no
// work is left. The stack never holds more than one pending sibling per level.
func (b *builder) build() {
	n := len(b.nodes)
	dims := len(b.orders)
	stack := make([]buildJob, 0, bits.Len(uint(n))+1)
	stack = append(stack, buildJob{lo: 0, hi: n})

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r := Range{orders: b.orders, lo: job.lo, hi: job.hi, src: b.src}
		axis := b.strategy.SplitAxis(job.depth, r)
		if axis < 0 || axis >= dims {
			panic(fmt.Sprintf("kdtree: split strategy %s returned axis %d, want 0..%d",
				strategyName(b.strategy), axis, dims-1))
		}

		mid := job.lo + medianRank(job.hi-job.lo)
		b.nodes[job.pos] = b.orders[axis][mid]
		b.axes[job.pos] = uint8(axis)
		b.partition(job.lo, job.hi, mid, axis)

		left, right := ChildNodes(job.pos)
		if job.hi > mid+1 {
			stack = append(stack, buildJob{lo: mid + 1, hi: job.hi, pos: right, depth: job.depth + 1})
		}
		if mid > job.lo {
			stack = append(stack, buildJob{lo: job.lo, hi: mid, pos: left, depth: job.depth + 1})
		}
	}
}

// partition rearranges the segment [lo, hi) of every order other than axis
// so that indices ranked below the pivot along axis occupy [lo, mid) and
// those ranked above occupy (mid, hi). It is a stable filter: each half stays
// sorted along its own axis and nothing is re-sorted.
func (b *builder) partition(lo, hi, mid, axis int) {
	if hi-lo == 1 || len(b.orders) == 1 {
		return
	}
	split := b.orders[axis]
	for i := lo; i < hi; i++ {
		switch {
		case i < mid:
			b.side[split[i]] = sideLess
		case i == mid:
			b.side[split[i]] = sidePivot
		default:
			b.side[split[i]] = sideGreater
		}
	}

	for other, order := range b.orders {
		if other == axis {
			continue
		}
		seg := b.scratch[:hi-lo]
		copy(seg, order[lo:hi])
		less, greater := lo, mid+1
		for _, ref := range seg {
			switch b.side[ref] {
			case sideLess:
				order[less] = ref
				less++
			case sideGreater:
				order[greater] = ref
				greater++
			}
		}
		order[mid] = split[mid]
	}
}
