/*
Package ablast implements 3D points, affine transformations and
the numeric helpers shared by the waypoint motion engine.

Sub-packages build on these types: package spline constructs Catmull-Rom
paths through waypoints, package motion plays them back tick by tick.

# BSD License

# Copyright (c) The a-blast Authors

All rights reserved.

Please refer to the license file for more information.
*/
package ablast

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ablast'
func tracer() tracing.Trace {
	return tracing.Select("ablast")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Vector Data Type ======================================================

// Vec3 is a point or direction in 3D space. Waypoints are Vec3s.
type Vec3 struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0,0).
var Origin = V(0, 0, 0)

// V is a quick notation for contructing a vector from floats.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Pretty Stringer for vectors.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// XY projects v onto the XY plane.
func (v Vec3) XY() (float64, float64) {
	return v.X, v.Y
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return V(v.X+w.X, v.Y+w.Y, v.Z+w.Z)
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return V(v.X-w.X, v.Y-w.Y, v.Z-w.Z)
}

// Dot is the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Len is the euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist is the euclidean distance between v and w.
func (v Vec3) Dist(w Vec3) float64 {
	return w.Sub(v).Len()
}

// Zap rounds all components to Epsilon.
func (v Vec3) Zap() Vec3 {
	return V(Zap(v.X), Zap(v.Y), Zap(v.Z))
}

// IsFinite is a predicate: are all components finite?
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// Equal compares two vectors, up to Epsilon.
func (v Vec3) Equal(w Vec3) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 4x4 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 16)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*4+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*4+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*4 : (row+1)*4]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 4)
	for row := 0; row < 4; row++ {
		c[row] = m[row*4+col]
	}
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	for i := 0; i < 4; i++ {
		m.set(i, i, 1.0)
	}
	return m
}

// Translation transform. Translate a point by (dx,dy,dz).
func Translation(v Vec3) AT {
	m := Identity()
	m.set(0, 3, v.X)
	m.set(1, 3, v.Y)
	m.set(2, 3, v.Z)
	return m
}

// Scaling transform. Scale a point per axis, relative to the origin.
func Scaling(v Vec3) AT {
	m := Identity()
	m.set(0, 0, v.X)
	m.set(1, 1, v.Y)
	m.set(2, 2, v.Z)
	return m
}

// RotationZ transform. Rotate a point counter-clockwise around the z-axis.
// Argument is in radians.
func RotationZ(theta float64) AT {
	m := Identity()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// RotationY transform. Rotate a point counter-clockwise around the y-axis.
// Argument is in radians.
func RotationY(theta float64) AT {
	m := Identity()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 2, sin)
	m.set(2, 0, -sin)
	m.set(2, 2, cos)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := "["
	for row := 0; row < 4; row++ {
		if row > 0 {
			s += "|"
		}
		s += fmt.Sprintf("%g,%g,%g,%g", m.get(row, 0), m.get(row, 1), m.get(row, 2), m.get(row, 3))
	}
	return s + "]"
}

// v1 × v2, v.n = [a,b,c,d]
func dotProd(vec1, vec2 []float64) float64 {
	var p float64
	for i := 0; i < 4; i++ {
		p += vec1[i] * vec2[i]
	}
	return p
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m *AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 4)
	for row := 0; row < 4; row++ {
		c[row] = dotProd(m.row(row), v)
	}
	return c
}

// Transform a 3D-point. The argument is unchanged and a new vector is returned.
func (m AT) Transform(v Vec3) Vec3 {
	c := []float64{v.X, v.Y, v.Z, 1.0}
	c = m.multiplyVector(c)
	r := V(c[0], c[1], c[2])
	if !r.IsFinite() {
		tracer().Errorf("transform of %s produced non-finite point", v)
		return Origin
	}
	return r
}
