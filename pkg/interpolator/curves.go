package interpolator

import "math"

// 常用缓动曲线
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 参考：https://easings.net/

var (
	// Linear 线性（无缓动）
	Linear Interpolator = Func(func(t float32) float32 { return t })
	// EaseInQuad 二次方缓入
	EaseInQuad Interpolator = Func(easeInQuad)
	// EaseOutQuad 二次方缓出
	EaseOutQuad Interpolator = Func(easeOutQuad)
	// EaseInCubic 三次方缓入
	EaseInCubic Interpolator = Func(easeInCubic)
	// EaseOutCubic 三次方缓出
	EaseOutCubic Interpolator = Func(easeOutCubic)
	// EaseInOutCubic 三次方缓入缓出
	EaseInOutCubic Interpolator = Func(easeInOutCubic)
	// EaseOutExpo 指数缓出
	EaseOutExpo Interpolator = Func(easeOutExpo)
)

// easeInQuad 开始慢，结束较快
// 公式：f(t) = t²
func easeInQuad(t float32) float32 {
	return t * t
}

// easeOutQuad 开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func easeOutQuad(t float32) float32 {
	return 1 - (1-t)*(1-t)
}

// easeInCubic 公式：f(t) = t³
func easeInCubic(t float32) float32 {
	return t * t * t
}

// easeOutCubic 开始快，结束慢（适合"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// easeInOutCubic 开始慢，中间快，结束慢
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func easeInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// easeOutExpo 开始非常快，结束非常慢
// 公式：f(t) = 1 - 2^(-10t)，t >= 1 时固定为 1
func easeOutExpo(t float32) float32 {
	if t >= 1.0 {
		return 1.0
	}
	return float32(1 - math.Pow(2, -10*float64(t)))
}
