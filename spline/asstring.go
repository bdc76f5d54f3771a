package spline

import "fmt"

// AsString returns
// a path -- optionally including segment durations -- as a (debugging)
// string.
//
// Example, a closed triangle travelled at 5 units per second:
//
//	(0,0,0) ..[2000ms].. (10,0,0) ..[2000ms].. (10,10,0) ..[2828ms].. cycle
//
// A Loop path which does not wrap to its first waypoint names the
// waypoint it wraps to, e.g. "cycle(1)".
func AsString(path *Path, timed bool) string {
	if path == nil {
		return "<nil>"
	}
	var s string
	last := path.N() - 1
	for i := 0; i <= last; i++ {
		if i > 0 {
			if timed {
				s += fmt.Sprintf(" ..[%.0fms].. ", path.Duration(i-1))
			} else {
				s += " .. "
			}
		}
		if i == last && path.IsCycle() {
			if path.loopStart == 0 {
				s += "cycle"
			} else {
				s += fmt.Sprintf("cycle(%d)", path.loopStart)
			}
			break
		}
		s += ptstring(path.points[i])
	}
	return s
}
