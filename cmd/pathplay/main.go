// Pathplay simulates an entity following a path description and prints its
// positions, one line per frame:
//
//	pathplay -f corner.yaml -ms 8000 -step 16
//
// With -watch, frames follow the wall clock and the path description is
// re-read whenever it changes on disk:
//
//	pathplay -f corner.yaml -ms 60000 -watch
//
// Profiling:
//
//	pathplay -f corner.yaml -ms 10000000 -profile cpu
//	go tool pprof -http=":8000" ./pathplay cpu.pprof
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/profile"
	ablast "github.com/vikasviakamsa/a-blast"
	"github.com/vikasviakamsa/a-blast/motion"
	"github.com/vikasviakamsa/a-blast/pathdesc"
	"github.com/vikasviakamsa/a-blast/spline"
)

// tracer writes to trace with key 'pathplay'
func tracer() tracing.Trace {
	return tracing.Select("pathplay")
}

type options struct {
	file    string
	mode    string
	until   float64
	step    float64
	quiet   bool
	watch   bool
	trace   bool
	profile string
}

func main() {
	os.Exit(pathplay(os.Args[1:], os.Stdout, os.Stderr))
}

// pathplay runs the command and returns its exit code. Deferred profile
// writes are done when it returns.
func pathplay(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("pathplay", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.file, "f", "", "path description (YAML)")
	flags.StringVar(&opts.mode, "mode", "", "override play mode: single, pingpong or loop")
	flags.Float64Var(&opts.until, "ms", 5000, "simulated time in ms")
	flags.Float64Var(&opts.step, "step", 16, "frame time in ms")
	flags.BoolVar(&opts.quiet, "q", false, "print the path only, no positions")
	flags.BoolVar(&opts.watch, "watch", false, "run in real time and reload the path description on change")
	flags.BoolVar(&opts.trace, "trace", false, "trace state transitions")
	flags.StringVar(&opts.profile, "profile", "", "write a profile: cpu or mem")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if opts.file == "" || opts.step <= 0 {
		flags.Usage()
		return 2
	}
	switch opts.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}
	if err := run(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "pathplay: %v\n", err)
		return 1
	}
	return 0
}

// player is the simulated entity.
type player struct {
	opts options
	out  io.Writer
	mv   *motion.Movement
	pos  *printSink
	sink *motion.TransformedSink
}

func run(opts options, out io.Writer) error {
	if opts.trace {
		for _, key := range []string{"spline", "motion", "pathdesc", "pathplay"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	if opts.mode != "" {
		if _, err := spline.ParseMode(opts.mode); err != nil {
			return err
		}
	}
	doc, err := pathdesc.Load(opts.file)
	if err != nil {
		return err
	}
	p := &player{opts: opts, out: out, pos: &printSink{}}
	p.sink = &motion.TransformedSink{Sink: p.pos}
	p.mv = motion.NewMovement(motion.DefaultConfig(), p.sink)
	p.mv.SetRenderer(&printRenderer{out: out})
	if err := p.apply(doc); err != nil {
		return err
	}
	if opts.quiet {
		return nil
	}
	p.mv.Play()
	if opts.watch {
		return p.follow()
	}
	frames := 0
	for now := 0.0; now <= opts.until; now += opts.step {
		if p.frame(now) {
			frames++
		} else if p.mv.Status() == motion.Finished {
			break
		}
	}
	tracer().Infof("%d frames with position updates, status %s", frames, p.mv.Status())
	return nil
}

// apply installs doc on the movement and prints the resulting path.
func (p *player) apply(doc *pathdesc.Document) error {
	if p.opts.mode != "" {
		doc.Movement.Type = p.opts.mode
	}
	if err := doc.Apply(p.mv); err != nil {
		return err
	}
	p.sink.Transform = doc.Placement.Transform()
	fmt.Fprintln(p.out, spline.AsString(p.mv.Path(), true))
	return nil
}

// frame ticks the movement and prints the new position, if any.
func (p *player) frame(now float64) bool {
	if !p.mv.Tick(now, p.opts.step) {
		return false
	}
	st := p.mv.State()
	fmt.Fprintf(p.out, "t=%g seg=%d dir=%s f=%.4f %s\n", now, st.Segment,
		st.Direction, st.LastFraction, p.pos.pos)
	return true
}

// follow plays in real time until opts.until ms have passed, re-applying the
// path description whenever it changes. A broken description is reported and
// the movement keeps its previous path.
func (p *player) follow() error {
	w, err := pathdesc.Watch(p.opts.file)
	if err != nil {
		return err
	}
	defer w.Close()
	ticker := time.NewTicker(time.Duration(p.opts.step * float64(time.Millisecond)))
	defer ticker.Stop()
	start := time.Now()
	p.frame(0)
	for {
		select {
		case r, ok := <-w.Reloads():
			if !ok {
				return nil
			}
			if r.Err == nil {
				r.Err = p.apply(r.Doc)
			}
			if r.Err != nil {
				fmt.Fprintf(p.out, "reload: %v\n", r.Err)
				continue
			}
			fmt.Fprintf(p.out, "reloaded %s\n", r.File)
		case t := <-ticker.C:
			now := float64(t.Sub(start)) / float64(time.Millisecond)
			if now > p.opts.until {
				return nil
			}
			p.frame(now)
		}
	}
}

// printSink keeps the last position for the frame printer.
type printSink struct {
	pos ablast.Vec3
}

func (s *printSink) SetPosition(pos ablast.Vec3) {
	s.pos = pos
}

type printRenderer struct {
	out io.Writer
}

func (r *printRenderer) ShowPath(points []ablast.Vec3, bounds polyclip.Rectangle) {
	fmt.Fprintf(r.out, "debug: %d curve points, footprint (%.4g,%.4g)-(%.4g,%.4g)\n",
		len(points), bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
}

func (r *printRenderer) HidePath() {
	fmt.Fprintln(r.out, "debug: off")
}
