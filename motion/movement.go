package motion

import (
	"fmt"

	ablast "github.com/vikasviakamsa/a-blast"
	"github.com/vikasviakamsa/a-blast/spline"
)

// Config holds the movement parameters of an entity.
type Config struct {
	Mode         spline.Mode // single, pingpong or loop
	Speed        float64     // distance units per second
	LoopStart    int         // waypoint to wrap to (loop) or turn at (pingpong)
	TimeOffset   float64     // start phase in ms
	Debug        bool        // show the path on the line renderer
	Subdivisions int         // > 0: time segments by sampled curve length
}

// DefaultConfig returns the parameters of a freshly created movement.
func DefaultConfig() Config {
	return Config{
		Mode:      spline.Single,
		Speed:     spline.DefaultSpeed,
		LoopStart: 1,
	}
}

// Movement moves one entity along waypoints. It owns the entity's path and
// play state, writes positions to a TransformSink and optionally shows the
// path on a LineRenderer.
type Movement struct {
	config    Config
	sink      TransformSink
	renderer  LineRenderer
	waypoints []ablast.Vec3
	path      *spline.Path
	state     PlayState
	showing   bool
}

// NewMovement creates a movement without waypoints. sink may be nil.
func NewMovement(cfg Config, sink TransformSink) *Movement {
	return &Movement{
		config: cfg,
		sink:   sink,
	}
}

func buildPath(points []ablast.Vec3, cfg Config) (*spline.Path, error) {
	sk := spline.Nullpath().Waypoints(points...).Mode(cfg.Mode, cfg.LoopStart).
		Speed(cfg.Speed).Sampled(cfg.Subdivisions)
	return spline.BuildPath(sk)
}

// SetWaypoints rebuilds the path through points and re-arms playback.
// If the points do not form a valid path, the movement keeps its previous
// path and the error is returned.
func (mv *Movement) SetWaypoints(points []ablast.Vec3) error {
	path, err := buildPath(points, mv.config)
	if err != nil {
		tracer().Errorf("cannot set waypoints: %v", err)
		return err
	}
	mv.waypoints = append(mv.waypoints[:0], points...)
	mv.install(path)
	return nil
}

// Refresh pulls waypoints from provider, see SetWaypoints.
func (mv *Movement) Refresh(provider WaypointProvider) error {
	points, err := provider.Waypoints()
	if err != nil {
		return fmt.Errorf("fetching waypoints: %w", err)
	}
	return mv.SetWaypoints(points)
}

// Configure replaces the movement parameters. If waypoints are present the
// path is rebuilt and playback re-armed; on error nothing changes.
func (mv *Movement) Configure(cfg Config) error {
	if len(mv.waypoints) == 0 {
		mv.config = cfg
		mv.updateDebug()
		return nil
	}
	path, err := buildPath(mv.waypoints, cfg)
	if err != nil {
		tracer().Errorf("cannot configure movement: %v", err)
		return err
	}
	mv.config = cfg
	mv.install(path)
	return nil
}

// Load replaces parameters and waypoints at once, e.g. after a path
// description changed. On error nothing changes.
func (mv *Movement) Load(cfg Config, points []ablast.Vec3) error {
	path, err := buildPath(points, cfg)
	if err != nil {
		tracer().Errorf("cannot load movement: %v", err)
		return err
	}
	mv.config = cfg
	mv.waypoints = append(mv.waypoints[:0], points...)
	mv.install(path)
	return nil
}

// SetMode switches the play mode, rebuilding the path.
func (mv *Movement) SetMode(mode spline.Mode) error {
	cfg := mv.config
	cfg.Mode = mode
	return mv.Configure(cfg)
}

// SetDebug shows or withdraws the path on the line renderer.
func (mv *Movement) SetDebug(on bool) {
	mv.config.Debug = on
	mv.updateDebug()
}

// SetRenderer sets the line renderer for debug mode. r may be nil.
func (mv *Movement) SetRenderer(r LineRenderer) {
	if mv.renderer != nil && mv.showing {
		mv.renderer.HidePath()
	}
	mv.renderer = r
	mv.showing = false
	mv.updateDebug()
}

func (mv *Movement) install(path *spline.Path) {
	mv.path = path
	Start(&mv.state, mv.config.TimeOffset)
	mv.updateDebug()
}

func (mv *Movement) updateDebug() {
	if mv.renderer == nil {
		return
	}
	if mv.config.Debug && mv.path != nil {
		mv.renderer.ShowPath(mv.path.Points(), mv.path.Footprint())
		mv.showing = true
	} else if mv.showing {
		mv.renderer.HidePath()
		mv.showing = false
	}
}

// Play re-arms playback from the start of the path, with the configured time
// offset.
func (mv *Movement) Play() {
	Start(&mv.state, mv.config.TimeOffset)
}

// Tick advances the movement to timestamp now (ms) and writes the new
// position to the sink. Positions depend on now only; delta is not used.
// Tick reports whether the position changed.
func (mv *Movement) Tick(now, delta float64) bool {
	pos, ok := Advance(mv.path, &mv.state, now)
	if !ok {
		return false
	}
	if mv.sink != nil {
		mv.sink.SetPosition(pos)
	}
	return true
}

// Path returns the current path, or nil if no waypoints have been set.
func (mv *Movement) Path() *spline.Path {
	return mv.path
}

// Config returns the movement parameters.
func (mv *Movement) Config() Config {
	return mv.config
}

// State returns a copy of the play state.
func (mv *Movement) State() PlayState {
	return mv.state
}

// Status reports whether the movement is idle, running or finished.
func (mv *Movement) Status() Status {
	return mv.state.Status()
}

// LastFraction returns the eased fraction of the last position update.
func (mv *Movement) LastFraction() float64 {
	return mv.state.LastFraction
}
