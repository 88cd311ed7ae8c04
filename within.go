package kdtree

import "iter"

// Within returns the indices of every point whose squared distance to q is
// at most r*r, in no particular order. A negative or NaN radius matches
// nothing.
//
// The result is materialized eagerly; use WithinSeq or WithinCursor to
// consume matches one at a time or stop early.
func (t *Tree[P]) Within(q P, r float64) []int {
	return t.AppendWithin([]int{}, q, r)
}

// AppendWithin appends the matches of Within(q, r) to dst and returns the
// extended slice, so a caller issuing many queries can reuse one buffer.
func (t *Tree[P]) AppendWithin(dst []int, q P, r float64) []int {
	c := Cursor[P]{t: t}
	c.Reset(q, r)
	for ref, ok := c.Next(); ok; ref, ok = c.Next() {
		dst = append(dst, ref)
	}
	return dst
}

// WithinSeq returns a single-use sequence over the matches of Within(q, r).
// Breaking out of the range loop stops the traversal.
func (t *Tree[P]) WithinSeq(q P, r float64) iter.Seq[int] {
	return func(yield func(int) bool) {
		c := Cursor[P]{t: t}
		c.Reset(q, r)
		for ref, ok := c.Next(); ok; ref, ok = c.Next() {
			if !yield(ref) {
				return
			}
		}
	}
}

// WithinCursor starts a radius query and returns a cursor over its matches.
func (t *Tree[P]) WithinCursor(q P, r float64) *Cursor[P] {
	c := &Cursor[P]{t: t}
	c.Reset(q, r)
	return c
}

// Cursor pulls the matches of a radius query one at a time. It walks the
// tree with its own fixed-capacity stack, so advancing never allocates.
// A Cursor is not safe for concurrent use; the tree it reads is.
type Cursor[P Point[P]] struct {
	t     *Tree[P]
	q     P
	qc    [MaxDims]float64
	r2    float64
	stack []frame
	buf   [maxStack]frame
}

// Reset restarts the cursor on a new query against the same tree, dropping
// whatever the previous query had not yet produced.
func (c *Cursor[P]) Reset(q P, r float64) {
	c.q = q
	c.stack = c.buf[:0]
	// !(r >= 0) also rejects NaN.
	if c.t.Len() == 0 || !(r >= 0) {
		return
	}
	c.r2 = r * r
	c.qc = queryCoords(q, c.t.dims)
	c.stack = append(c.stack, frame{pos: 0})
}

// Next returns the next matching point index. ok is false once the query is
// exhausted.
func (c *Cursor[P]) Next() (int, bool) {
	t := c.t
	for len(c.stack) > 0 {
		f := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		// The radius is fixed, so only a hyperplane farther than r prunes.
		if f.bound > c.r2 {
			continue
		}

		ref := t.nodes[f.pos]
		p := t.points[ref]
		axis := int(t.axes[f.pos])
		c.stack = t.descend(c.stack, f, c.qc[axis]-p.Coord(axis))

		if c.q.DistanceSquared(p) <= c.r2 {
			return ref, true
		}
	}
	return 0, false
}
