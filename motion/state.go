package motion

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'motion'
func tracer() tracing.Trace {
	return tracing.Select("motion")
}

// Direction of travel along a path.
type Direction int

// Directions
const (
	Forward Direction = 1
	Reverse Direction = -1
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Status is the coarse state of a mover.
type Status int

// A mover is Idle until started, then Running. Only Single paths ever
// become Finished.
const (
	Idle Status = iota
	Running
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// PlayState is the mutable playback state of one mover. It belongs to
// exactly one mover and is changed by Start and Advance only.
type PlayState struct {
	Segment      int       // current segment index
	Direction    Direction // +1 forward, -1 reverse
	Elapsed      float64   // ms spent in the current segment, as of the last Advance
	Reference    float64   // timestamp of start or of the last boundary crossing
	Terminal     bool      // set when a Single path arrived at its end
	LastFraction float64   // last eased fraction, for debug consumers
	phase        float64   // start offset, used by the latching tick
	latched      bool      // Reference is valid
	started      bool
}

// Status reports whether the mover is idle, running or finished.
func (st PlayState) Status() Status {
	switch {
	case !st.started:
		return Idle
	case st.Terminal:
		return Finished
	}
	return Running
}

func (st PlayState) String() string {
	return fmt.Sprintf("[seg=%d dir=%s t=%.4gms f=%.4g %s]", st.Segment, st.Direction,
		st.Elapsed, st.LastFraction, st.Status())
}
