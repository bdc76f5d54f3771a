package motion

import (
	"github.com/akavel/polyclip-go"
	ablast "github.com/vikasviakamsa/a-blast"
)

// TransformSink receives the position of a moving entity once per tick.
type TransformSink interface {
	SetPosition(pos ablast.Vec3)
}

// SinkFunc adapts a function to the TransformSink interface.
type SinkFunc func(pos ablast.Vec3)

// SetPosition calls f(pos).
func (f SinkFunc) SetPosition(pos ablast.Vec3) {
	f(pos)
}

// TransformedSink maps positions from path space into a parent space before
// handing them on. Components within ε of 0 are snapped to 0.
type TransformedSink struct {
	Sink      TransformSink
	Transform ablast.AT
}

// SetPosition transforms pos and forwards it.
func (ts TransformedSink) SetPosition(pos ablast.Vec3) {
	if ts.Transform != nil {
		pos = ts.Transform.Transform(pos).Zap()
	}
	ts.Sink.SetPosition(pos)
}

// LineRenderer draws a path for debugging. ShowPath receives the curve
// points and the path's XY footprint; HidePath withdraws the drawing.
type LineRenderer interface {
	ShowPath(points []ablast.Vec3, bounds polyclip.Rectangle)
	HidePath()
}

// WaypointProvider supplies the waypoints of a path, e.g. from a path
// description.
type WaypointProvider interface {
	Waypoints() ([]ablast.Vec3, error)
}

// Waypoints is a fixed list of waypoints. It is a WaypointProvider.
type Waypoints []ablast.Vec3

// Waypoints returns a copy of the list.
func (w Waypoints) Waypoints() ([]ablast.Vec3, error) {
	pts := make([]ablast.Vec3, len(w))
	copy(pts, w)
	return pts, nil
}
