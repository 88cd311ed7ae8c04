// Package gonumpoint adapts gonum's spatial vector types to the kdtree
// point capability.
//
//	pts := []gonumpoint.R3{{X: 1, Y: 2, Z: 3}, ...}
//	t, err := kdtree.New(pts, kdtree.DefaultConfig())
//
// FromR2 and FromR3 copy an existing gonum slice. The tree never copies
// points itself, so storage declared as []R3 from the start is indexed in place.
package gonumpoint

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 is a two-axis point backed by r2.Vec.
type R2 r2.Vec

// R3 is a three-axis point backed by r3.Vec.
type R3 r3.Vec

func (R2) Dims() int { return 2 }

func (p R2) Coord(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic("gonumpoint: R2 axis out of range")
}

func (p R2) DistanceSquared(o R2) float64 {
	return r2.Norm2(r2.Sub(r2.Vec(p), r2.Vec(o)))
}

// Vec returns p as an r2.Vec.
func (p R2) Vec() r2.Vec { return r2.Vec(p) }

func (R3) Dims() int { return 3 }

func (p R3) Coord(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic("gonumpoint: R3 axis out of range")
}

func (p R3) DistanceSquared(o R3) float64 {
	return r3.Norm2(r3.Sub(r3.Vec(p), r3.Vec(o)))
}

// Vec returns p as an r3.Vec.
func (p R3) Vec() r3.Vec { return r3.Vec(p) }

// FromR2 converts a slice of r2.Vec into R2 points.
func FromR2(vs []r2.Vec) []R2 {
	out := make([]R2, len(vs))
	for i, v := range vs {
		out[i] = R2(v)
	}
	return out
}

// FromR3 converts a slice of r3.Vec into R3 points.
func FromR3(vs []r3.Vec) []R3 {
	out := make([]R3, len(vs))
	for i, v := range vs {
		out[i] = R3(v)
	}
	return out
}
