package spline

import (
	"github.com/akavel/polyclip-go"
	ablast "github.com/vikasviakamsa/a-blast"
)

// footprintSamples is the number of curve samples per segment used to find
// a path's footprint.
const footprintSamples = 16

// PointAt samples the Catmull-Rom curve through points. fraction runs from 0
// (at points[segment]) to 1 (at points[segment+1]).
//
// Neighbours missing at either end of the curve are replaced by the end
// point, i.e. control point indices are clamped rather than wrapped. This holds
// for Loop paths as well: their closing point is just another curve point.
func PointAt(points []ablast.Vec3, segment int, fraction float64) ablast.Vec3 {
	if len(points) == 0 {
		tracer().Errorf("sampling empty curve")
		return ablast.Origin
	}
	a, b, c, d := controlIndices(segment, len(points))
	pa, pb, pc, pd := points[a], points[b], points[c], points[d]
	t := fraction
	t2 := t * t
	t3 := t * t2
	return ablast.V(
		catmullRom(pa.X, pb.X, pc.X, pd.X, t, t2, t3),
		catmullRom(pa.Y, pb.Y, pc.Y, pd.Y, t, t2, t3),
		catmullRom(pa.Z, pb.Z, pc.Z, pd.Z, t, t2, t3),
	)
}

// PointAt samples segment i of the path at fraction (0…1).
func (path *Path) PointAt(segment int, fraction float64) ablast.Vec3 {
	return PointAt(path.points, segment, fraction)
}

// Indices of the four control points for segment i of a curve of n points.
func controlIndices(i, n int) (a, b, c, d int) {
	b = clamp(i, 0, n-1)
	a = b - 1
	if b == 0 {
		a = 0
	}
	c = b + 1
	if b > n-2 {
		c = n - 1
	}
	d = b + 2
	if b > n-3 {
		d = n - 1
	}
	return
}

// Locate maps a travelled distance onto a segment and the fraction of that
// segment's length covered. Distances beyond either end are clamped.
// The fraction is linear in distance; it is not corrected for the curve's
// parametrization.
func (path *Path) Locate(distance float64) (int, float64) {
	if distance <= 0 {
		return 0, 0
	}
	if distance >= path.TotalLength() {
		return path.LastSegment(), 1
	}
	_, v := path.index.Floor(distance)
	if v == nil {
		return 0, 0
	}
	i := v.(int)
	seglen := path.lengths[i+1] - path.lengths[i]
	if seglen <= _epsilon {
		return i, 0
	}
	return i, (distance - path.lengths[i]) / seglen
}

// Footprint returns the bounding box of the path projected onto the
// XY-plane. It covers the curve between the waypoints, too, which may bulge
// beyond the waypoints' own bounding box.
func (path *Path) Footprint() polyclip.Rectangle {
	contour := polyclip.Contour{}
	for i := 0; i < path.N()-1; i++ {
		for k := 0; k < footprintSamples; k++ {
			x, y := path.PointAt(i, float64(k)/footprintSamples).XY()
			contour.Add(polyclip.Point{X: x, Y: y})
		}
	}
	x, y := path.points[path.N()-1].XY()
	contour.Add(polyclip.Point{X: x, Y: y})
	return contour.BoundingBox()
}
