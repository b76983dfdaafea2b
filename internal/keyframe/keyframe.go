// Package keyframe parses and evaluates keyframed value tracks whose segments
// are eased through a named interpolator.
package keyframe

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gonewx/easing/pkg/interpolator"
)

// ErrMalformedPair is returned when a "time,value" token cannot be parsed.
var ErrMalformedPair = errors.New("malformed keyframe pair")

// Keyframe represents a single keyframe in a value track.
type Keyframe struct {
	Time  float64 // Normalized time (0-1) or absolute time
	Value float64 // Value at this keyframe
}

// Track is a sorted list of keyframes plus the curve used inside each segment.
type Track struct {
	Keyframes []Keyframe
	CurveName string
	Curve     interpolator.Interpolator
}

// Parse parses a track string.
// Supports:
//   - Keyframes: "0,2 1,2 4,21" → {0:2} {1:2} {4:21}
//   - Curve keyword: "0,0 1,100 ElasticInOut" → keyframes eased with ElasticInOut
//   - Leading initial value: "5 1,10" → {0:5} {1:10}
//
// Unknown curve keywords fall back to Linear. An empty string yields an empty track.
func Parse(s string) (Track, error) {
	track := Track{CurveName: "Linear", Curve: interpolator.Linear}

	parts := strings.Fields(s)
	for i, part := range parts {
		if strings.Contains(part, ",") {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				return Track{}, fmt.Errorf("%w: %q", ErrMalformedPair, part)
			}
			t, err1 := strconv.ParseFloat(pair[0], 64)
			v, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 != nil || err2 != nil || !isFinite(t) || !isFinite(v) {
				return Track{}, fmt.Errorf("%w: %q", ErrMalformedPair, part)
			}
			track.Keyframes = append(track.Keyframes, Keyframe{Time: t, Value: v})
			continue
		}

		// 单独的数值只允许作为首个初始值
		if v, err := strconv.ParseFloat(part, 64); err == nil {
			if !isFinite(v) {
				return Track{}, fmt.Errorf("%w: non-finite value %q", ErrMalformedPair, part)
			}
			if i != 0 {
				return Track{}, fmt.Errorf("%w: bare value %q must come first", ErrMalformedPair, part)
			}
			track.Keyframes = append(track.Keyframes, Keyframe{Time: 0, Value: v})
			continue
		}

		curve, err := interpolator.Lookup(part)
		if err != nil {
			log.Printf("[Keyframe] Warning: %v, falling back to Linear", err)
			continue
		}
		track.CurveName = part
		track.Curve = curve
	}

	sort.SliceStable(track.Keyframes, func(a, b int) bool {
		return track.Keyframes[a].Time < track.Keyframes[b].Time
	})
	return track, nil
}

// Evaluate returns the eased value at time t.
// t before the first keyframe returns the first value, after the last returns the last value.
func (tr Track) Evaluate(t float64) float64 {
	if len(tr.Keyframes) == 0 {
		return 0
	}
	if len(tr.Keyframes) == 1 || t <= tr.Keyframes[0].Time {
		return tr.Keyframes[0].Value
	}

	curve := tr.Curve
	if curve == nil {
		curve = interpolator.Linear
	}

	for i := 0; i < len(tr.Keyframes)-1; i++ {
		k0 := tr.Keyframes[i]
		k1 := tr.Keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}

		duration := k1.Time - k0.Time
		if duration <= 0 {
			return k1.Value
		}
		ratio := curve.Interpolation(float32((t - k0.Time) / duration))
		return interpolator.Lerp(k0.Value, k1.Value, float64(ratio))
	}

	return tr.Keyframes[len(tr.Keyframes)-1].Value
}

// Duration returns the time span covered by the track.
func (tr Track) Duration() float64 {
	if len(tr.Keyframes) < 2 {
		return 0
	}
	return tr.Keyframes[len(tr.Keyframes)-1].Time - tr.Keyframes[0].Time
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
