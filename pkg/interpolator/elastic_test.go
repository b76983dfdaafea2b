package interpolator

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// TestEaseInOutElastic 测试弹性缓入缓出的关键采样点
func TestEaseInOutElastic(t *testing.T) {
	tests := []struct {
		name      string
		input     float32
		expected  float64
		tolerance float64
	}{
		{"起点", 0.0, 0.0, 1e-3},
		{"终点", 1.0, 1.0, 1e-3},
		{"中点走第二分支", 0.5, 0.5, 1e-6},
		{"前半段反向过冲", 0.4, -0.117462, 1e-4},
		{"后半段正向过冲", 0.6, 1.117462, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := float64(EaseInOutElastic(tt.input))
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("EaseInOutElastic(%v) = %v, 期望 %v (±%v)", tt.input, result, tt.expected, tt.tolerance)
			}
		})
	}
}

// TestEaseInOutElasticEndpoints 端点偏差由公式本身决定（约 8.5e-5）
func TestEaseInOutElasticEndpoints(t *testing.T) {
	start := EaseInOutElastic(0)
	if start <= 0 || start > 1e-4 {
		t.Errorf("EaseInOutElastic(0) = %v, 期望略大于 0", start)
	}
	end := EaseInOutElastic(1)
	if end >= 1 || end < 1-1e-4 {
		t.Errorf("EaseInOutElastic(1) = %v, 期望略小于 1", end)
	}
}

// TestEaseInOutElasticMidpointBranch 中点两侧连续，且 0.5 使用第二分支
func TestEaseInOutElasticMidpointBranch(t *testing.T) {
	const pi2 = math.Pi * 2
	s := ElasticPeriod / pi2 * math.Asin(1/ElasticAmplitude)

	// 第二分支在 t2 = 0 处的值
	elseBranch := float32(ElasticAmplitude*math.Pow(2, 0)*math.Sin((0-s)*pi2/ElasticPeriod)*0.5 + 1)
	if got := EaseInOutElastic(0.5); got != elseBranch {
		t.Errorf("EaseInOutElastic(0.5) = %v, 期望第二分支结果 %v", got, elseBranch)
	}

	before := EaseInOutElastic(0.4999)
	if math.Abs(float64(before)-0.5) > 0.01 {
		t.Errorf("EaseInOutElastic(0.4999) = %v, 期望接近 0.5（曲线连续）", before)
	}
}

// TestEaseInOutElasticSymmetry f(t) + f(1-t) = 1
func TestEaseInOutElasticSymmetry(t *testing.T) {
	for k := 1; k < 50; k++ {
		x := float32(k) / 100
		sum := float64(EaseInOutElastic(x)) + float64(EaseInOutElastic(1-x))
		if math.Abs(sum-1) > 1e-4 {
			t.Errorf("f(%v) + f(%v) = %v, 期望 1", x, 1-x, sum)
		}
	}
}

// TestEaseInOutElasticBounce 验证弹性过冲：前半段低于 0，后半段高于 1
func TestEaseInOutElasticBounce(t *testing.T) {
	var minFirst, maxSecond float32 = 1, 0
	for k := 1; k < 100; k++ {
		x := float32(k) / 100
		v := EaseInOutElastic(x)
		if x < 0.5 {
			minFirst = min(minFirst, v)
		} else if x > 0.5 {
			maxSecond = max(maxSecond, v)
		}
	}

	if minFirst >= 0 {
		t.Errorf("前半段最小值 %v, 期望小于 0", minFirst)
	}
	if maxSecond <= 1 {
		t.Errorf("后半段最大值 %v, 期望大于 1", maxSecond)
	}
}

// TestEaseInOutElasticDeterministic 同一输入两次调用结果逐位相同
func TestEaseInOutElasticDeterministic(t *testing.T) {
	for k := 0; k <= 1000; k++ {
		x := float32(k) / 1000
		a := math.Float32bits(EaseInOutElastic(x))
		b := math.Float32bits(ElasticInOut.Interpolation(x))
		if a != b {
			t.Fatalf("t=%v: %08x != %08x", x, a, b)
		}
	}
}

// TestEaseInOutElasticExtrapolation 超出 [0, 1] 的输入按公式外推，不报错
func TestEaseInOutElasticExtrapolation(t *testing.T) {
	inputs := []float32{-1, -0.25, 1.25, 2}
	for _, x := range inputs {
		v := EaseInOutElastic(x)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Errorf("EaseInOutElastic(%v) = %v, 期望有限值", x, v)
		}
	}
}

// TestEaseInOutElasticConcurrent 并发调用结果一致
func TestEaseInOutElasticConcurrent(t *testing.T) {
	want := make([]float32, 101)
	for k := range want {
		want[k] = EaseInOutElastic(float32(k) / 100)
	}

	var wg sync.WaitGroup
	errs := make(chan float32, 8*len(want))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range want {
				x := float32(k) / 100
				if got := ElasticInOut.Interpolation(x); got != want[k] {
					errs <- x
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for x := range errs {
		t.Errorf("并发调用 t=%v 结果不一致", x)
	}
}

// TestElasticDefaultMatches 默认参数的 Elastic 与 ElasticInOut 逐位一致
func TestElasticDefaultMatches(t *testing.T) {
	e, err := NewElastic(1.0, 0.45)
	if err != nil {
		t.Fatalf("NewElastic() error: %v", err)
	}
	if e != DefaultElastic() {
		t.Errorf("NewElastic(1, 0.45) = %+v, 期望 %+v", e, DefaultElastic())
	}

	for k := 0; k <= 200; k++ {
		x := float32(k) / 200
		if e.Interpolation(x) != EaseInOutElastic(x) {
			t.Fatalf("t=%v: Elastic = %v, EaseInOutElastic = %v", x, e.Interpolation(x), EaseInOutElastic(x))
		}
	}
}

// TestNewElasticInvalid 测试参数校验
func TestNewElasticInvalid(t *testing.T) {
	tests := []struct {
		name      string
		amplitude float64
		period    float64
		wantErr   error
	}{
		{"振幅小于1", 0.5, 0.45, ErrInvalidAmplitude},
		{"振幅NaN", math.NaN(), 0.45, ErrInvalidAmplitude},
		{"周期为0", 1, 0, ErrInvalidPeriod},
		{"周期为负", 1.5, -0.3, ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewElastic(tt.amplitude, tt.period)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewElastic(%v, %v) error = %v, 期望 %v", tt.amplitude, tt.period, err, tt.wantErr)
			}
		})
	}
}

// TestElasticLargerAmplitude 振幅越大过冲越明显
func TestElasticLargerAmplitude(t *testing.T) {
	e, err := NewElastic(2.0, 0.45)
	if err != nil {
		t.Fatalf("NewElastic() error: %v", err)
	}

	points, err := Sample(e, 200)
	if err != nil {
		t.Fatalf("Sample() error: %v", err)
	}
	base, _ := Sample(ElasticInOut, 200)

	if Analyze(points).Overshoot <= Analyze(base).Overshoot {
		t.Errorf("振幅 2 的过冲 %v 应大于默认过冲 %v", Analyze(points).Overshoot, Analyze(base).Overshoot)
	}
}

func BenchmarkEaseInOutElastic(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += EaseInOutElastic(float32(i%1000) / 1000)
	}
	_ = sink
}
