package spline

import (
	ablast "github.com/vikasviakamsa/a-blast"
)

func newSkeleton(points []ablast.Vec3) *Skeleton {
	sk := &Skeleton{
		mode:  Single,
		speed: DefaultSpeed,
	}
	sk.waypoints = make([]ablast.Vec3, len(points), len(points)*2)
	copy(sk.waypoints, points)
	return sk
}

// Nullpath creates an empty skeleton, to be extended by subsequent builder
// calls. The following example builds a looping path of three waypoints,
// travelled at 5 units per second and wrapping around to the first waypoint:
//
//	skeleton := Nullpath().Waypoint(V(0,0,0)).Waypoint(V(10,0,0)).
//	   Waypoint(V(10,10,0)).Speed(5).Loop(0)
//	path, err := BuildPath(skeleton)
//
// A fresh skeleton plays in mode Single at DefaultSpeed.
func Nullpath() *Skeleton {
	return newSkeleton(nil)
}

// Waypoint appends a waypoint. Part of builder functionality.
func (sk *Skeleton) Waypoint(p ablast.Vec3) *Skeleton {
	sk.waypoints = append(sk.waypoints, p)
	return sk
}

// Waypoints appends a list of waypoints. Part of builder functionality.
func (sk *Skeleton) Waypoints(points ...ablast.Vec3) *Skeleton {
	sk.waypoints = append(sk.waypoints, points...)
	return sk
}

// Speed sets the travel speed in distance units per second.
// Part of builder functionality.
func (sk *Skeleton) Speed(v float64) *Skeleton {
	sk.speed = v
	return sk
}

// Sampled makes segment lengths be measured along the curve, with n samples
// per segment, instead of as straight-line distance between waypoints.
// n ≤ 0 switches back to straight-line distance.
// Part of builder functionality.
func (sk *Skeleton) Sampled(n int) *Skeleton {
	if n < 0 {
		n = 0
	}
	sk.subdivisions = n
	return sk
}

// Single makes the path play once. Part of builder functionality.
func (sk *Skeleton) Single() *Skeleton {
	sk.mode = Single
	return sk
}

// PingPong makes the path reverse at its ends. On the way back the mover
// turns at waypoint lower instead of the first waypoint.
// Part of builder functionality.
func (sk *Skeleton) PingPong(lower int) *Skeleton {
	sk.mode = PingPong
	sk.loopStart = lower
	return sk
}

// Loop closes the path by wrapping around to waypoint start.
// Part of builder functionality.
func (sk *Skeleton) Loop(start int) *Skeleton {
	sk.mode = Loop
	sk.loopStart = start
	return sk
}

// Mode sets the play mode and loop start index in one call.
// Part of builder functionality.
func (sk *Skeleton) Mode(mode Mode, loopStart int) *Skeleton {
	sk.mode = mode
	sk.loopStart = loopStart
	return sk
}

// N returns the number of waypoints added so far.
func (sk *Skeleton) N() int {
	return len(sk.waypoints)
}

// --- Path accessors --------------------------------------------------------

// N returns the number of curve points. For Loop paths this includes the
// appended copy of the loop start waypoint.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns curve point i. i is clamped to the valid range.
func (path *Path) Z(i int) ablast.Vec3 {
	return path.points[clamp(i, 0, path.N()-1)]
}

// Points returns a copy of the curve points.
func (path *Path) Points() []ablast.Vec3 {
	pts := make([]ablast.Vec3, len(path.points))
	copy(pts, path.points)
	return pts
}

// Segments returns the number of segments, N()-1.
func (path *Path) Segments() int {
	return path.N() - 1
}

// LastSegment is the index of the final segment, which ends at the last
// curve point.
func (path *Path) LastSegment() int {
	return path.N() - 2
}

// Duration returns the travel time of segment i in milliseconds.
// Segments outside the path have duration 0.
func (path *Path) Duration(i int) float64 {
	if i < 0 || i >= len(path.durations) {
		return 0
	}
	return path.durations[i]
}

// Durations returns a copy of all segment durations (ms), indexed by segment.
func (path *Path) Durations() []float64 {
	d := make([]float64, len(path.durations))
	copy(d, path.durations)
	return d
}

// TotalDuration is the time in ms to travel the path once from start to end.
func (path *Path) TotalDuration() float64 {
	var total float64
	for _, d := range path.durations {
		total += d
	}
	return total
}

// Length returns the cumulative length from the first curve point up to
// curve point i.
func (path *Path) Length(i int) float64 {
	return path.lengths[clamp(i, 0, path.N()-1)]
}

// TotalLength returns the length of the complete path.
func (path *Path) TotalLength() float64 {
	return path.lengths[len(path.lengths)-1]
}

// Mode returns the play mode of the path.
func (path *Path) Mode() Mode {
	return path.mode
}

// LoopStart returns the waypoint index Loop paths wrap to and PingPong paths
// turn at.
func (path *Path) LoopStart() int {
	return path.loopStart
}

// Speed returns the travel speed in distance units per second.
func (path *Path) Speed() float64 {
	return path.speed
}

// IsCycle is a predicate: is this path closed?
func (path *Path) IsCycle() bool {
	return path.mode == Loop
}
