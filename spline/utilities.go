package spline

import (
	"fmt"

	ablast "github.com/vikasviakamsa/a-blast"
)

// Catmull-Rom basis for one axis, tangent scale 1/2.
// p1 and p2 are the segment's end points, p0 and p3 their outer neighbours.
func catmullRom(p0, p1, p2, p3, t, t2, t3 float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	return (2*(p1-p2)+v0+v1)*t3 + (-3*(p1-p2)-2*v0-v1)*t2 + v0*t + p1
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func ptstring(p ablast.Vec3) string {
	if !p.IsFinite() {
		return "(<invalid>)"
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p.X), round(p.Y), round(p.Z))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
