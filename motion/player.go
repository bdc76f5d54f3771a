package motion

import (
	ablast "github.com/vikasviakamsa/a-blast"
	"github.com/vikasviakamsa/a-blast/spline"
)

// Start (re-)arms playback: segment 0, forward, not terminal. The reference
// timestamp is latched by the next call to Advance. timeOffset (ms) is a
// start phase: the latching tick samples the first segment as if timeOffset
// ms had passed.
func Start(st *PlayState, timeOffset float64) {
	*st = PlayState{
		Direction: Forward,
		Elapsed:   timeOffset,
		phase:     timeOffset,
		started:   true,
	}
}

// Advance moves the mover to timestamp now (ms) and returns its position on
// path. It returns false if there is no position update for this tick:
// before Start, after a Single path has finished, or while the elapsed time
// is negative (which happens right after a reset with a negative offset or a
// clock running backwards).
//
// Elapsed time is the start offset on the tick latching the reference
// timestamp and now minus the reference afterwards. When it exceeds the
// current segment's duration the mover is placed at the segment's end and
// crosses into the next segment; the next tick measures from now.
func Advance(path *spline.Path, st *PlayState, now float64) (ablast.Vec3, bool) {
	if path == nil || !st.started {
		return ablast.Origin, false
	}
	latching := !st.latched
	if latching {
		st.Reference = now
		st.latched = true
	}
	if st.Terminal {
		return ablast.Origin, false
	}
	if path.Mode() != spline.Loop && st.Segment >= path.N()-1 {
		return ablast.Origin, false // arrived, stay
	}
	elapsed := now - st.Reference
	if latching {
		elapsed = st.phase
	}
	st.Elapsed = elapsed
	if elapsed < 0 {
		tracer().Debugf("suppressing tick at %g, elapsed %g < 0", now, elapsed)
		return ablast.Origin, false
	}
	duration := path.Duration(st.Segment)
	var t float64
	crossing := false
	if elapsed > duration || duration <= 0 {
		t, crossing = 1, true
	} else {
		t = elapsed / duration
	}
	if st.Direction == Reverse {
		t = 1 - t
	}
	f := EasingFor(path.Mode())(t)
	pos := path.PointAt(st.Segment, f)
	st.LastFraction = f
	if crossing {
		cross(path, st, now)
	}
	return pos, true
}

// Boundary crossing: step to the next segment or handle the end of the path.
func cross(path *spline.Path, st *PlayState, now float64) {
	if st.Direction == Forward {
		if st.Segment >= path.LastSegment() {
			pathEnd[path.Mode()](path, st)
		} else {
			st.Segment++
		}
	} else {
		st.Segment--
		if st.Segment < path.LoopStart() {
			// a loop start on the final waypoint turns on the last segment
			st.Segment = min(path.LoopStart(), path.LastSegment())
			st.Direction = Forward
			tracer().Debugf("turning forward at segment %d", st.Segment)
		}
	}
	st.Reference = now
	st.Elapsed = 0
}

// What a forward mover does at the end of the path, per mode.
var pathEnd = [...]func(*spline.Path, *PlayState){
	spline.Single: func(path *spline.Path, st *PlayState) {
		st.Terminal = true
		tracer().Debugf("arrived at end of path")
	},
	spline.PingPong: func(path *spline.Path, st *PlayState) {
		st.Direction = Reverse
		tracer().Debugf("turning back at segment %d", st.Segment)
	},
	spline.Loop: func(path *spline.Path, st *PlayState) {
		st.Segment = path.LoopStart()
		tracer().Debugf("wrapping around to segment %d", st.Segment)
	},
}

// Player bundles a path with the play state of a single mover.
type Player struct {
	path  *spline.Path
	state PlayState
}

// NewPlayer creates an idle player for path.
func NewPlayer(path *spline.Path) *Player {
	return &Player{path: path}
}

// Start (re-)arms playback, see Start.
func (p *Player) Start(timeOffset float64) {
	Start(&p.state, timeOffset)
}

// Advance moves the player to timestamp now, see Advance.
func (p *Player) Advance(now float64) (ablast.Vec3, bool) {
	return Advance(p.path, &p.state, now)
}

// Path returns the path the player follows.
func (p *Player) Path() *spline.Path {
	return p.path
}

// State returns a copy of the play state.
func (p *Player) State() PlayState {
	return p.state
}

// Status reports whether the player is idle, running or finished.
func (p *Player) Status() Status {
	return p.state.Status()
}

// LastFraction returns the eased fraction of the last position update.
func (p *Player) LastFraction() float64 {
	return p.state.LastFraction
}
