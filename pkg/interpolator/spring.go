package interpolator

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// 弹簧曲线默认参数
const (
	DefaultSpringFrequency = 15.0 // 角频率（rad/s）
	DefaultSpringDamping   = 0.4  // 阻尼比，< 1 为欠阻尼（会过冲）
	DefaultSpringSteps     = 60   // 采样帧数，按 60 FPS 覆盖 1 秒
)

// ErrInvalidSpring 弹簧参数非法
var ErrInvalidSpring = errors.New("invalid spring parameters")

// Spring 基于阻尼弹簧物理模拟的插值曲线
//
// 构造时按固定帧率模拟一次 0 → 1 的弹簧运动并缓存轨迹，
// Interpolation 只做查表和线性插值，因此构造后不可变，可并发调用。
type Spring struct {
	positions []float64
}

// NewSpring 创建弹簧曲线
//
// 参数：
//   - frequency: 角频率，必须 > 0
//   - damping: 阻尼比，必须 >= 0
//   - steps: 模拟帧数，必须 >= 1
//
// 轨迹按最后一帧归一化，保证 t=1 时精确落在 1
func NewSpring(frequency, damping float64, steps int) (*Spring, error) {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency <= 0 ||
		math.IsNaN(damping) || math.IsInf(damping, 0) || damping < 0 || steps < 1 {
		return nil, fmt.Errorf("%w: frequency=%v damping=%v steps=%d",
			ErrInvalidSpring, frequency, damping, steps)
	}

	spring := harmonica.NewSpring(harmonica.FPS(steps), frequency, damping)
	positions := make([]float64, steps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= steps; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		positions[i] = pos
	}

	final := positions[steps]
	if final <= 0 {
		return nil, fmt.Errorf("%w: trajectory does not move toward target", ErrInvalidSpring)
	}
	for i := range positions {
		positions[i] /= final
	}

	return &Spring{positions: positions}, nil
}

// DefaultSpring 使用默认参数创建弹簧曲线
func DefaultSpring() *Spring {
	s, err := NewSpring(DefaultSpringFrequency, DefaultSpringDamping, DefaultSpringSteps)
	if err != nil {
		panic(err)
	}
	return s
}

// Interpolation 实现 Interpolator 接口
// t 超出 [0, 1] 时返回端点值
func (s *Spring) Interpolation(t float32) float32 {
	last := len(s.positions) - 1
	if t <= 0 {
		return float32(s.positions[0])
	}
	if t >= 1 {
		return float32(s.positions[last])
	}

	x := float64(t) * float64(last)
	i := int(x)
	return float32(Lerp(s.positions[i], s.positions[i+1], x-float64(i)))
}
