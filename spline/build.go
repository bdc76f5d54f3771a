package spline

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	ablast "github.com/vikasviakamsa/a-blast"
)

// Validate checks if a skeleton may be built into a path.
func (sk *Skeleton) Validate() error {
	if sk == nil {
		return ErrNilPath
	}
	n := sk.N()
	if n < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", ErrTooFewWaypoints, n)
	}
	for i, z := range sk.waypoints {
		if !z.IsFinite() {
			return fmt.Errorf("%w at waypoint %d", ErrInvalidWaypoint, i)
		}
	}
	if !sk.mode.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(sk.mode))
	}
	if sk.mode != Single && (sk.loopStart < 0 || sk.loopStart >= n) {
		return fmt.Errorf("%w: %s path with %d waypoints cannot start at %d",
			ErrLoopStartRange, sk.mode, n, sk.loopStart)
	}
	if !(sk.speed > 0) || math.IsInf(sk.speed, 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidSpeed, sk.speed)
	}
	return nil
}

// Build constructs a timed path through waypoints. For Loop paths a copy of
// waypoints[loopStart] is appended to the curve points. Speed is in distance
// units per second; segment durations are in milliseconds.
//
// Build returns an error for fewer than two waypoints, non-finite coordinates,
// a non-positive speed or an out-of-range loop start.
func Build(waypoints []ablast.Vec3, mode Mode, loopStart int, speed float64) (*Path, error) {
	return BuildPath(newSkeleton(waypoints).Mode(mode, loopStart).Speed(speed))
}

// BuildPath constructs a timed path from a skeleton.
// It validates the skeleton and returns an error for empty/invalid geometry.
// The skeleton is not modified and may be re-used.
func BuildPath(sk *Skeleton) (*Path, error) {
	if err := sk.Validate(); err != nil {
		tracer().Debugf("rejecting path: %v", err)
		return nil, err
	}
	path := &Path{
		mode:      sk.mode,
		loopStart: sk.loopStart,
		speed:     sk.speed,
	}
	path.points = make([]ablast.Vec3, len(sk.waypoints), len(sk.waypoints)+1)
	copy(path.points, sk.waypoints)
	if sk.mode == Loop {
		path.points = append(path.points, sk.waypoints[sk.loopStart])
	}
	if sk.subdivisions > 0 {
		path.lengths = sampledLengths(path.points, sk.subdivisions)
	} else {
		path.lengths = chordLengths(path.points)
	}
	path.durations = make([]float64, path.N()-1)
	for i := 1; i < path.N(); i++ {
		path.durations[i-1] = (path.lengths[i] - path.lengths[i-1]) / path.speed * 1000
		if path.durations[i-1] <= _epsilon {
			tracer().Debugf("segment %d of %s path has zero length", i-1, path.mode)
		}
	}
	path.index = treemap.NewWith(utils.Float64Comparator)
	for i := 0; i < path.N()-1; i++ {
		path.index.Put(path.lengths[i], i)
	}
	tracer().Infof("built %s path, %d curve points, length %.4g, %.4gms",
		path.mode, path.N(), path.TotalLength(), path.TotalDuration())
	return path, nil
}

// MustBuildPath is a compatibility helper which panics on validation errors.
func MustBuildPath(sk *Skeleton) *Path {
	path, err := BuildPath(sk)
	if err != nil {
		panic(err)
	}
	return path
}

// Cumulative straight-line distance at each point.
func chordLengths(points []ablast.Vec3) []float64 {
	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		lengths[i] = lengths[i-1] + points[i-1].Dist(points[i])
	}
	return lengths
}

// Cumulative curve length at each point, measured by walking each segment
// in n steps.
func sampledLengths(points []ablast.Vec3, n int) []float64 {
	lengths := make([]float64, len(points))
	for i := 0; i < len(points)-1; i++ {
		var seglen float64
		prev := points[i]
		for k := 1; k <= n; k++ {
			pt := PointAt(points, i, float64(k)/float64(n))
			seglen += prev.Dist(pt)
			prev = pt
		}
		lengths[i+1] = lengths[i] + seglen
	}
	return lengths
}
