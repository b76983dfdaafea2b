package interpolator

import (
	"errors"
	"fmt"
	"math"
)

// 弹性缓入缓出的固定参数
const (
	// ElasticAmplitude 振幅（过冲幅度的缩放系数）
	ElasticAmplitude = 1.0
	// ElasticPeriod 周期（控制振荡频率）
	ElasticPeriod = 0.45
)

var (
	// ErrInvalidAmplitude 振幅小于 1 时 asin(1/amplitude) 越界
	ErrInvalidAmplitude = errors.New("elastic amplitude must be >= 1")
	// ErrInvalidPeriod 周期必须为正数
	ErrInvalidPeriod = errors.New("elastic period must be > 0")
)

// ElasticInOut 弹性缓入缓出插值器（振幅 1，周期 0.45）
var ElasticInOut Interpolator = Func(EaseInOutElastic)

// EaseInOutElastic 弹性缓入缓出
// 特点：前半段在 0 附近反向振荡后加速，后半段冲过 1 再回弹收敛（弹簧效果）
// 公式（t1 = 2t, t2 = t1 - 1, s = p/2π · asin(1/a)）：
//
//	t1 < 1:  f(t) = -0.5 · a · 2^(10·t2) · sin((t2-s)·2π/p)
//	t1 >= 1: f(t) = a · 2^(-10·t2) · sin((t2-s)·2π/p) · 0.5 + 1
//
// 注意：
//   - 不校验输入，[0, 1] 之外的 t 按公式外推
//   - 中点 t=0.5 走第二个分支（严格小于比较），结果为 0.5
//   - 端点 f(0)、f(1) 与 0、1 相差约 8.5e-5（公式本身决定）
func EaseInOutElastic(t float32) float32 {
	return elasticInOut(t, ElasticAmplitude, ElasticPeriod)
}

// elasticInOut 以单精度计算 t1/t2，超越函数使用双精度，最终收窄为 float32
func elasticInOut(t float32, amplitude, period float64) float32 {
	const pi2 = math.Pi * 2

	t1 := t * 2
	t2 := t1 - 1

	s := period / pi2 * math.Asin(1/amplitude)
	wave := math.Sin((float64(t2) - s) * pi2 / period)
	if t1 < 1 {
		return float32(-0.5 * (amplitude * math.Pow(2, float64(10*t2)) * wave))
	}
	return float32(amplitude*math.Pow(2, float64(-10*t2))*wave*0.5 + 1)
}

// Elastic 可调参数的弹性缓入缓出曲线
// 零值不可用，请通过 NewElastic 创建
type Elastic struct {
	Amplitude float64
	Period    float64
}

// NewElastic 创建弹性曲线
//
// 参数：
//   - amplitude: 振幅，必须 >= 1
//   - period: 周期，必须 > 0
//
// 返回：
//   - Elastic: 曲线值
//   - error: 参数越界时返回 ErrInvalidAmplitude / ErrInvalidPeriod
func NewElastic(amplitude, period float64) (Elastic, error) {
	if math.IsNaN(amplitude) || amplitude < 1 {
		return Elastic{}, fmt.Errorf("%w: got %v", ErrInvalidAmplitude, amplitude)
	}
	if math.IsNaN(period) || period <= 0 {
		return Elastic{}, fmt.Errorf("%w: got %v", ErrInvalidPeriod, period)
	}
	return Elastic{Amplitude: amplitude, Period: period}, nil
}

// DefaultElastic 返回与 ElasticInOut 完全一致的参数
func DefaultElastic() Elastic {
	return Elastic{Amplitude: ElasticAmplitude, Period: ElasticPeriod}
}

// Interpolation 实现 Interpolator 接口
func (e Elastic) Interpolation(t float32) float32 {
	return elasticInOut(t, e.Amplitude, e.Period)
}
