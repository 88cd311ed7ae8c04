package gonumpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TrevorS/kdtree"
)

func TestR2(t *testing.T) {
	p := R2{X: 1, Y: 2}
	assert.Equal(t, 2, p.Dims())
	assert.Equal(t, 1.0, p.Coord(0))
	assert.Equal(t, 2.0, p.Coord(1))
	assert.Panics(t, func() { p.Coord(2) })
	assert.Equal(t, 25.0, R2{}.DistanceSquared(R2{X: 3, Y: 4}))
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, p.Vec())
}

func TestR3(t *testing.T) {
	p := R3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, 3, p.Dims())
	assert.Equal(t, 3.0, p.Coord(2))
	assert.Panics(t, func() { p.Coord(-1) })
	assert.Equal(t, 9.0, R3{}.DistanceSquared(R3{X: 1, Y: 2, Z: 2}))
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, p.Vec())
}

func TestFromR3_Tree(t *testing.T) {
	pts := FromR3([]r3.Vec{{X: 0}, {X: 1}, {Y: 1}, {X: 5, Y: 5, Z: 5}})
	tree, err := kdtree.New(pts, kdtree.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, tree.Check())

	q := R3{X: 0.9, Y: 0.1}
	ref, ok := tree.Nearest(q)
	require.True(t, ok)
	assert.Equal(t, 1, ref)
	assert.Equal(t, []int{1, 0}, tree.KNearest(q, 2))
	assert.ElementsMatch(t, []int{0, 1, 2}, tree.Within(R3{}, 1))
}

func TestFromR2(t *testing.T) {
	vs := []r2.Vec{{X: 1, Y: 1}, {X: 2, Y: 3}}
	pts := FromR2(vs)
	require.Len(t, pts, 2)
	assert.Equal(t, vs[1], pts[1].Vec())

	vs[0].X = 9
	assert.Equal(t, 1.0, pts[0].X, "FromR2 copies")
}
