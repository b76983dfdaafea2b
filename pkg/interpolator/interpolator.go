// Package interpolator 提供动画时间插值器（缓动曲线）。
//
// 插值器把归一化的已流逝时间 t ∈ [0, 1] 映射为缓动后的进度值。
// 本包中的所有插值器都是纯函数或不可变值，可以在任意 goroutine 中并发调用。
package interpolator

// Interpolator 时间插值器
//
// 动画框架每帧调用一次 Interpolation，传入 已流逝时间/总时长，
// 并用返回值去缩放、平移或旋转某个视觉属性。
type Interpolator interface {
	Interpolation(t float32) float32
}

// Func 把普通函数适配为 Interpolator
type Func func(t float32) float32

// Interpolation 实现 Interpolator 接口
func (f Func) Interpolation(t float32) float32 {
	return f(t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
