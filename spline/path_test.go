package spline

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ablast "github.com/vikasviakamsa/a-blast"
)

var v = ablast.V

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func mustBuild(t *testing.T, sk *Skeleton) *Path {
	t.Helper()
	path, err := BuildPath(sk)
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}
	return path
}

// the corner path: right 10, then up 10
func testskeleton() *Skeleton {
	return Nullpath().Waypoint(v(0, 0, 0)).Waypoint(v(10, 0, 0)).Waypoint(v(10, 10, 0)).Speed(5)
}

func TestCreateSkeleton(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sk := testskeleton()
	if sk.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, Single, sk.mode)
}

func TestModeNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, m := range []Mode{Single, PingPong, Loop} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	m, err := ParseMode(" PingPong ")
	require.NoError(t, err)
	assert.Equal(t, PingPong, m)
	_, err = ParseMode("bounce")
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestDurationsSingle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton())
	require.Equal(t, 3, path.N())
	require.Equal(t, []float64{2000, 2000}, path.Durations())
	assert.InDelta(t, 20.0, path.TotalLength(), 1e-9)
	assert.InDelta(t, 4000.0, path.TotalDuration(), 1e-9)
	assert.Equal(t, 1, path.LastSegment())
}

func TestBuildFunctionMatchesBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	wps := []ablast.Vec3{v(0, 0, 0), v(10, 0, 0), v(10, 10, 0)}
	path, err := Build(wps, Single, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, mustBuild(t, testskeleton()).Durations(), path.Durations())
	wps[1] = v(99, 99, 99) // path must not alias caller's slice
	assert.True(t, path.Z(1).Equal(v(10, 0, 0)))
}

func TestLoopAppendsStartPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton().Loop(0))
	require.Equal(t, 4, path.N())
	assert.True(t, path.Z(3).Equal(path.Z(0)))
	d := path.Durations()
	require.Len(t, d, 3)
	assert.InDelta(t, 2000.0, d[0], 1e-9)
	assert.InDelta(t, 2000.0, d[1], 1e-9)
	assert.InDelta(t, math.Sqrt(200)/5*1000, d[2], 1e-9)
	//
	path = mustBuild(t, testskeleton().Loop(1))
	assert.True(t, path.Z(3).Equal(v(10, 0, 0)))
	assert.Equal(t, 1, path.LoopStart())
}

func TestPingPongKeepsPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton().PingPong(0))
	assert.Equal(t, 3, path.N())
	assert.Equal(t, PingPong, path.Mode())
	assert.False(t, path.IsCycle())
}

func TestPointAtInterpolatesWaypoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sk := Nullpath().Waypoints(v(0, 0, 0), v(3, 1, -2), v(5, 7, 1), v(-2, 4, 4), v(0, 9, 0))
	for _, mode := range []Mode{Single, PingPong, Loop} {
		path := mustBuild(t, sk.Mode(mode, 0))
		for i := 0; i < path.N()-1; i++ {
			p0 := path.PointAt(i, 0)
			assert.True(t, p0.Equal(path.Z(i)), "%s: PointAt(%d,0) = %v, want %v", mode, i, p0, path.Z(i))
			p1 := path.PointAt(i, 1)
			assert.True(t, p1.Equal(path.PointAt(i+1, 0)), "%s: discontinuity at %d", mode, i+1)
		}
	}
}

func TestPointAtCornerScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton())
	// eased fraction at half of segment 0 is 0.5
	p := path.PointAt(0, 0.5)
	assert.InDelta(t, 5.0, p.X, 1e-9)
	assert.InDelta(t, -0.625, p.Y, 1e-9)
	assert.InDelta(t, 0.0, p.Z, 1e-9)
}

func TestControlIndices(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b, c, d := controlIndices(0, 3)
	assert.Equal(t, []int{0, 0, 1, 2}, []int{a, b, c, d})
	a, b, c, d = controlIndices(1, 3)
	assert.Equal(t, []int{0, 1, 2, 2}, []int{a, b, c, d})
	a, b, c, d = controlIndices(2, 4)
	assert.Equal(t, []int{1, 2, 3, 3}, []int{a, b, c, d})
	a, b, c, d = controlIndices(7, 4)
	assert.Equal(t, []int{2, 3, 3, 3}, []int{a, b, c, d})
}

func TestSampledLengths(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	chord := mustBuild(t, testskeleton())
	sampled := mustBuild(t, testskeleton().Sampled(100))
	for i, d := range sampled.Durations() {
		assert.Greater(t, d, chord.Duration(i), "segment %d", i)
		assert.Less(t, d, chord.Duration(i)*1.05, "segment %d", i)
	}
	// a straight line is as long as its chord
	line := mustBuild(t, Nullpath().Waypoints(v(0, 0, 0), v(1, 0, 0), v(2, 0, 0)).Speed(1).Sampled(50))
	assert.InDelta(t, 2.0, line.TotalLength(), 1e-6)
}

func TestDurationsPositive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, Nullpath().Waypoints(v(1, 2, 3), v(4, 0, 0), v(4, 5, 6), v(-1, -1, -1)).Speed(0.5))
	for i := 1; i < path.N(); i++ {
		assert.Greater(t, path.Length(i), path.Length(i-1))
		assert.Greater(t, path.Duration(i-1), 0.0)
	}
	assert.Equal(t, 0.0, path.Duration(-1))
	assert.Equal(t, 0.0, path.Duration(path.N()))
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton().Loop(0))
	for i := 0; i < path.N()-1; i++ {
		seg, f := path.Locate(path.Length(i))
		assert.Equal(t, i, seg)
		assert.InDelta(t, 0.0, f, 1e-9)
	}
	seg, f := path.Locate(15)
	assert.Equal(t, 1, seg)
	assert.InDelta(t, 0.5, f, 1e-9)
	seg, f = path.Locate(-3)
	assert.Equal(t, 0, seg)
	assert.Equal(t, 0.0, f)
	seg, f = path.Locate(1000)
	assert.Equal(t, path.LastSegment(), seg)
	assert.Equal(t, 1.0, f)
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton())
	bb := path.Footprint()
	for _, p := range path.Points() {
		assert.True(t, p.X >= bb.Min.X && p.X <= bb.Max.X, "x of %v outside %v", p, bb)
		assert.True(t, p.Y >= bb.Min.Y && p.Y <= bb.Max.Y, "y of %v outside %v", p, bb)
	}
	// the corner bulges below the x-axis
	assert.Less(t, bb.Min.Y, 0.0)
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mustBuild(t, testskeleton())
	if got, want := AsString(path, false), "(0,0,0) .. (10,0,0) .. (10,10,0)"; got != want {
		t.Fatalf("open AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	if got, want := AsString(path, true), "(0,0,0) ..[2000ms].. (10,0,0) ..[2000ms].. (10,10,0)"; got != want {
		t.Fatalf("timed AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	cycle := mustBuild(t, testskeleton().Loop(0))
	if got, want := AsString(cycle, true), "(0,0,0) ..[2000ms].. (10,0,0) ..[2000ms].. (10,10,0) ..[2828ms].. cycle"; got != want {
		t.Fatalf("cycle AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	cycle = mustBuild(t, testskeleton().Loop(1))
	if got, want := AsString(cycle, false), "(0,0,0) .. (10,0,0) .. (10,10,0) .. cycle(1)"; got != want {
		t.Fatalf("cycle AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestZeroLengthLoopSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	path := mustBuild(t, testskeleton().Loop(2))
	assert.Equal(t, 0.0, path.Duration(2))
	seg, f := path.Locate(path.TotalLength() - 1e-3)
	assert.Equal(t, 1, seg)
	assert.Less(t, f, 1.0)
}

func TestBuildRejectsNilSkeleton(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := BuildPath(nil)
	if !errors.Is(err, ErrNilPath) {
		t.Fatalf("expected ErrNilPath, got %v", err)
	}
}

func TestBuildRejectsTooFewWaypoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := BuildPath(Nullpath().Waypoint(v(0, 0, 0)))
	if !errors.Is(err, ErrTooFewWaypoints) {
		t.Fatalf("expected ErrTooFewWaypoints, got %v", err)
	}
	_, err = Build(nil, Loop, 0, 1)
	if !errors.Is(err, ErrTooFewWaypoints) {
		t.Fatalf("expected ErrTooFewWaypoints, got %v", err)
	}
}

func TestBuildRejectsInvalidWaypoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := BuildPath(Nullpath().Waypoint(v(0, 0, 0)).Waypoint(v(math.NaN(), 0, 0)))
	if !errors.Is(err, ErrInvalidWaypoint) {
		t.Fatalf("expected ErrInvalidWaypoint, got %v", err)
	}
}

func TestBuildRejectsLoopStart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, start := range []int{-1, 3, 17} {
		_, err := BuildPath(testskeleton().Loop(start))
		assert.True(t, errors.Is(err, ErrLoopStartRange), "loop start %d: %v", start, err)
		_, err = BuildPath(testskeleton().PingPong(start))
		assert.True(t, errors.Is(err, ErrLoopStartRange), "pingpong lower %d: %v", start, err)
	}
	// single paths ignore the loop start
	_, err := BuildPath(testskeleton().Mode(Single, 42))
	assert.NoError(t, err)
}

func TestBuildRejectsSpeed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := BuildPath(testskeleton().Speed(speed))
		assert.True(t, errors.Is(err, ErrInvalidSpeed), "speed %g: %v", speed, err)
	}
}

func TestBuildRejectsMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := BuildPath(testskeleton().Mode(Mode(5), 0))
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestMustBuildPathPanicsOnInvalidPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { MustBuildPath(Nullpath().Waypoint(v(0, 0, 0))) })
}

// Build a closed triangle, travelled at 5 units per second. Loop paths get
// the loop start waypoint appended, so the last segment leads back to the
// start.
func ExampleAsString() {
	path := MustBuildPath(Nullpath().Waypoint(ablast.V(0, 0, 0)).Waypoint(ablast.V(10, 0, 0)).
		Waypoint(ablast.V(10, 10, 0)).Speed(5).Loop(0))
	fmt.Println(AsString(path, true))
	fmt.Println(path.N(), path.Segments())
	// Output:
	// (0,0,0) ..[2000ms].. (10,0,0) ..[2000ms].. (10,10,0) ..[2828ms].. cycle
	// 4 3
}
