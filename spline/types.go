package spline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	ablast "github.com/vikasviakamsa/a-blast"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

const _epsilon = 0.0000001

// DefaultSpeed is the travel speed of a skeleton which never had Speed(…) called,
// in distance units per second.
const DefaultSpeed = 3.0

var (
	// ErrNilPath indicates a nil skeleton pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewWaypoints indicates that a path has less than two waypoints.
	ErrTooFewWaypoints = errors.New("path has too few waypoints")
	// ErrInvalidWaypoint indicates a waypoint coordinate contains NaN/Inf.
	ErrInvalidWaypoint = errors.New("path has invalid waypoint coordinate")
	// ErrLoopStartRange indicates a loop start index outside the waypoint list.
	ErrLoopStartRange = errors.New("loop start out of range")
	// ErrInvalidSpeed indicates a travel speed which is not a positive number.
	ErrInvalidSpeed = errors.New("speed must be positive")
	// ErrUnknownMode indicates a play mode outside of Single, PingPong and Loop.
	ErrUnknownMode = errors.New("unknown play mode")
)

// Mode tells how a path is played back once the mover reaches its end.
type Mode int

// Play modes
const (
	Single   Mode = iota // play once, stop at the last waypoint
	PingPong             // reverse at both ends, never stop
	Loop                 // wrap around to the loop start, never stop
)

var modeNames = [...]string{"single", "pingpong", "loop"}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) valid() bool {
	return m >= Single && m <= Loop
}

// ParseMode returns the mode for a mode name. Names are matched
// case-insensitively.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return Single, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Skeleton is a path under construction. Start with Nullpath() and extend
// it with the builder methods, then hand it to BuildPath.
type Skeleton struct {
	waypoints    []ablast.Vec3 // waypoint i
	mode         Mode          // play mode
	loopStart    int           // waypoint to wrap to (Loop) or turn at (PingPong)
	speed        float64       // distance units per second
	subdivisions int           // > 0: measure segments by sampling the curve
}

// Path is an immutable, timed Catmull-Rom path. Create it with Build or
// BuildPath.
type Path struct {
	points    []ablast.Vec3 // curve points, including the loop point for Loop
	lengths   []float64     // cumulative length at curve point i
	durations []float64     // duration of segment i -> i+1, in ms
	mode      Mode
	loopStart int
	speed     float64
	index     *treemap.Map // cumulative length -> segment index
}
