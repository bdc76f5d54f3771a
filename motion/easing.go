package motion

import (
	"math"

	"github.com/vikasviakamsa/a-blast/spline"
)

// Easing remaps a segment fraction t ∈ [0,1] onto [0,1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// InOutSine eases in and out with a raised cosine half period.
func InOutSine(t float64) float64 {
	return 0.5 * (1 - math.Cos(math.Pi*t))
}

var easings = [...]Easing{
	spline.Single:   InOutSine,
	spline.PingPong: Linear,
	spline.Loop:     Linear,
}

// EasingFor returns the easing a path of mode m is played with.
// Single paths slow down at every waypoint, the others move linearly.
func EasingFor(m spline.Mode) Easing {
	if m < 0 || int(m) >= len(easings) {
		return Linear
	}
	return easings[m]
}
