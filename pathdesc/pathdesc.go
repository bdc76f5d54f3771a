// Package pathdesc reads path descriptions: YAML documents holding the
// waypoints of a path together with the movement parameters of the entity
// following it.
//
// A path description looks like this:
//
//	movement:
//	  type: loop        # single | pingpong | loop
//	  speed: 3          # units per second
//	  loop_start: 1
//	  time_offset: 0    # ms
//	  debug: false
//	  subdivisions: 0   # > 0: time segments by sampled curve length
//	placement:          # optional, maps path space to the parent space
//	  scale: 1
//	  rotate_y: 0       # degrees
//	  rotate_z: 90      # degrees
//	  at: [0, 0, 0]
//	waypoints:
//	  - [0, 0, 0]
//	  - {x: 10, y: 0, z: 0}
//
// Keys missing from the movement section take the values of
// motion.DefaultConfig.
package pathdesc

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	ablast "github.com/vikasviakamsa/a-blast"
	"github.com/vikasviakamsa/a-blast/motion"
	"github.com/vikasviakamsa/a-blast/spline"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'pathdesc'
func tracer() tracing.Trace {
	return tracing.Select("pathdesc")
}

// ErrInvalidDocument indicates a path description that does not describe a
// movement.
var ErrInvalidDocument = errors.New("invalid path description")

// Document is a parsed path description.
type Document struct {
	Movement  MovementSpec `yaml:"movement"`
	Placement Placement    `yaml:"placement"`
	Points    []Point      `yaml:"waypoints"`
}

// MovementSpec is the movement section of a path description.
type MovementSpec struct {
	Type         string  `yaml:"type"`
	Speed        float64 `yaml:"speed"`
	LoopStart    int     `yaml:"loop_start"`
	TimeOffset   float64 `yaml:"time_offset"`
	Debug        bool    `yaml:"debug"`
	Subdivisions int     `yaml:"subdivisions"`
}

// Placement positions a path in its parent space. The path is scaled first,
// then rotated around the y-axis and the z-axis, then moved to At.
type Placement struct {
	Scale   float64 `yaml:"scale"`
	RotateY float64 `yaml:"rotate_y"`
	RotateZ float64 `yaml:"rotate_z"`
	At      Point   `yaml:"at"`
}

// Transform returns the placement as an affine transform.
func (pl Placement) Transform() ablast.AT {
	m := ablast.Identity()
	if !ablast.Is1(pl.Scale) {
		m = m.Combine(ablast.Scaling(ablast.V(pl.Scale, pl.Scale, pl.Scale)))
	}
	if !ablast.Is0(pl.RotateY) {
		m = m.Combine(ablast.RotationY(pl.RotateY * ablast.Deg2Rad))
	}
	if !ablast.Is0(pl.RotateZ) {
		m = m.Combine(ablast.RotationZ(pl.RotateZ * ablast.Deg2Rad))
	}
	return m.Combine(ablast.Translation(pl.At.Vec()))
}

func (pl Placement) validate() error {
	for _, x := range []float64{pl.Scale, pl.RotateY, pl.RotateZ} {
		if !ablast.IsFinite(x) {
			return fmt.Errorf("%w: placement is not finite", ErrInvalidDocument)
		}
	}
	if ablast.Is0(pl.Scale) {
		return fmt.Errorf("%w: placement scale is 0", ErrInvalidDocument)
	}
	if !pl.At.Vec().IsFinite() {
		return fmt.Errorf("%w: placement is not finite", ErrInvalidDocument)
	}
	return nil
}

// Point is a waypoint, written either as a sequence [x, y, z] or as a mapping
// {x: …, y: …, z: …}.
type Point struct {
	X, Y, Z float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xyz []float64
		if err := value.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("%w: line %d: waypoint needs 3 coordinates, has %d",
				ErrInvalidDocument, value.Line, len(xyz))
		}
		*p = Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	case yaml.MappingNode:
		var xyz struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := value.Decode(&xyz); err != nil {
			return err
		}
		*p = Point{X: xyz.X, Y: xyz.Y, Z: xyz.Z}
	default:
		return fmt.Errorf("%w: line %d: waypoint must be a sequence or a mapping",
			ErrInvalidDocument, value.Line)
	}
	return nil
}

// Vec returns p as a vector.
func (p Point) Vec() ablast.Vec3 {
	return ablast.V(p.X, p.Y, p.Z)
}

func defaultSpec() MovementSpec {
	cfg := motion.DefaultConfig()
	return MovementSpec{
		Type:         cfg.Mode.String(),
		Speed:        cfg.Speed,
		LoopStart:    cfg.LoopStart,
		TimeOffset:   cfg.TimeOffset,
		Debug:        cfg.Debug,
		Subdivisions: cfg.Subdivisions,
	}
}

// Parse reads a path description from YAML data.
func Parse(data []byte) (*Document, error) {
	doc := &Document{
		Movement:  defaultSpec(),
		Placement: Placement{Scale: 1},
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("pathdesc: unmarshal: %w", err)
	}
	if _, err := doc.Config(); err != nil {
		return nil, err
	}
	if err := doc.Placement.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads a path description from a file.
func Load(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("pathdesc: load %s: %w", filename, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pathdesc: %s: %w", filename, err)
	}
	tracer().Infof("loaded %s: %s path, %d waypoints", filename, doc.Movement.Type, len(doc.Points))
	return doc, nil
}

// Config returns the movement parameters of the document.
func (doc *Document) Config() (motion.Config, error) {
	mode, err := spline.ParseMode(doc.Movement.Type)
	if err != nil {
		return motion.Config{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return motion.Config{
		Mode:         mode,
		Speed:        doc.Movement.Speed,
		LoopStart:    doc.Movement.LoopStart,
		TimeOffset:   doc.Movement.TimeOffset,
		Debug:        doc.Movement.Debug,
		Subdivisions: doc.Movement.Subdivisions,
	}, nil
}

// Waypoints returns the waypoints of the document. Document is a
// motion.WaypointProvider.
func (doc *Document) Waypoints() ([]ablast.Vec3, error) {
	pts := make([]ablast.Vec3, len(doc.Points))
	for i, p := range doc.Points {
		pts[i] = p.Vec()
	}
	return pts, nil
}

// Apply configures mv from the document and hands it the document's
// waypoints. Playback is re-armed. On error mv is left unchanged.
func (doc *Document) Apply(mv *motion.Movement) error {
	cfg, err := doc.Config()
	if err != nil {
		return err
	}
	pts, _ := doc.Waypoints()
	if err := mv.Load(cfg, pts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}
