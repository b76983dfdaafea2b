package interpolator

import (
	"errors"
	"math"
)

// ErrInvalidSteps 采样步数必须 >= 1
var ErrInvalidSteps = errors.New("sample steps must be >= 1")

// Point 曲线上的一个采样点
type Point struct {
	T     float32 `yaml:"t"`
	Value float32 `yaml:"value"`
}

// Stats 采样曲线的统计信息
type Stats struct {
	Min           float32 `yaml:"min"`
	Max           float32 `yaml:"max"`
	Undershoot    float32 `yaml:"undershoot"`     // 低于 0 的最大深度
	Overshoot     float32 `yaml:"overshoot"`      // 高于 1 的最大高度
	ZeroCrossings int     `yaml:"zero_crossings"` // 穿过 0 的次数
}

// Sample 在 [0, 1] 上均匀采样 steps+1 个点（包含两个端点）
func Sample(i Interpolator, steps int) ([]Point, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}

	points := make([]Point, steps+1)
	for k := 0; k <= steps; k++ {
		t := float32(k) / float32(steps)
		points[k] = Point{T: t, Value: i.Interpolation(t)}
	}
	return points, nil
}

// Analyze 统计采样点的极值与过冲
func Analyze(points []Point) Stats {
	if len(points) == 0 {
		return Stats{}
	}

	stats := Stats{
		Min: float32(math.Inf(1)),
		Max: float32(math.Inf(-1)),
	}
	// 恰好为 0 的采样点不改变符号，穿越跨过它时仍计一次
	var lastSign float32
	for _, p := range points {
		stats.Min = min(stats.Min, p.Value)
		stats.Max = max(stats.Max, p.Value)

		var sign float32
		switch {
		case p.Value > 0:
			sign = 1
		case p.Value < 0:
			sign = -1
		}
		if sign != 0 {
			if lastSign != 0 && sign != lastSign {
				stats.ZeroCrossings++
			}
			lastSign = sign
		}
	}
	if stats.Min < 0 {
		stats.Undershoot = -stats.Min
	}
	if stats.Max > 1 {
		stats.Overshoot = stats.Max - 1
	}
	return stats
}
