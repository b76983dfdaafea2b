package main

import (
	"errors"
	"fmt"

	"github.com/gonewx/easing/internal/keyframe"
	"github.com/gonewx/easing/pkg/interpolator"
)

var errShortTrack = errors.New("track needs at least two keyframes with distinct times")

// sampleTrack evaluates a keyframe track at steps+1 evenly spaced times over its span.
// Stats and bars use values normalized so the first keyframe maps to 0 and the last to 1.
func sampleTrack(spec string, steps int) (sampleResult, error) {
	track, err := keyframe.Parse(spec)
	if err != nil {
		return sampleResult{}, fmt.Errorf("invalid track: %w", err)
	}
	if steps < 1 {
		return sampleResult{}, interpolator.ErrInvalidSteps
	}

	duration := track.Duration()
	if duration <= 0 {
		return sampleResult{}, errShortTrack
	}

	start := track.Keyframes[0].Time
	points := make([]interpolator.Point, steps+1)
	for k := 0; k <= steps; k++ {
		t := start + duration*float64(k)/float64(steps)
		points[k] = interpolator.Point{T: float32(t), Value: float32(track.Evaluate(t))}
	}

	first := track.Keyframes[0].Value
	last := track.Keyframes[len(track.Keyframes)-1].Value
	normalize := func(v float32) float32 { return v }
	if last != first {
		normalize = func(v float32) float32 {
			return float32((float64(v) - first) / (last - first))
		}
	}

	normalized := make([]interpolator.Point, len(points))
	for k, p := range points {
		normalized[k] = interpolator.Point{T: p.T, Value: normalize(p.Value)}
	}

	return sampleResult{
		label:     fmt.Sprintf("track (%s)", track.CurveName),
		points:    points,
		stats:     interpolator.Analyze(normalized),
		normalize: normalize,
	}, nil
}
