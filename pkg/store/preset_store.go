// Package store 持久化曲线预览工具的用户预设
package store

import (
	"fmt"
	"log"

	"github.com/gonewx/easing/pkg/interpolator"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 参数调节范围
const (
	MinPeriod    = 0.05
	MaxPeriod    = 2.0
	MinAmplitude = 1.0
	MaxAmplitude = 4.0
)

// 存储路径常量
const (
	presetObject   = "preview"
	presetProperty = "preset"
)

// Preset 预览工具的当前选择
type Preset struct {
	Curve     string  `yaml:"curve"`     // 曲线名称（注册表名称或配置预设名称）
	Amplitude float64 `yaml:"amplitude"` // 弹性振幅
	Period    float64 `yaml:"period"`    // 弹性周期
	Steps     int     `yaml:"steps"`     // 采样步数
}

// DefaultPreset 返回默认预设（固定参数的弹性缓入缓出）
func DefaultPreset() *Preset {
	return &Preset{
		Curve:     "ElasticInOut",
		Amplitude: interpolator.ElasticAmplitude,
		Period:    interpolator.ElasticPeriod,
		Steps:     200,
	}
}

// Elastic 按预设参数构建弹性曲线
func (p *Preset) Elastic() (interpolator.Elastic, error) {
	return interpolator.NewElastic(p.Amplitude, p.Period)
}

// PresetStore 预设管理器
// 负责预设的加载、保存和内存管理
type PresetStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	preset       *Preset
}

// NewPresetStore 创建预设管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，记录日志并使用默认预设
func NewPresetStore(gdataManager *gdata.Manager) *PresetStore {
	ps := &PresetStore{
		gdataManager: gdataManager,
		preset:       DefaultPreset(),
	}

	if err := ps.Load(); err != nil {
		log.Printf("[PresetStore] Warning: Failed to load preset: %v (using defaults)", err)
	}
	return ps
}

// Load 从 gdata 加载预设
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认预设
func (ps *PresetStore) Load() error {
	if ps.gdataManager == nil || !ps.gdataManager.ObjectPropExists(presetObject, presetProperty) {
		ps.preset = DefaultPreset()
		return nil
	}

	data, err := ps.gdataManager.LoadObjectProp(presetObject, presetProperty)
	if err != nil {
		ps.preset = DefaultPreset()
		return fmt.Errorf("failed to load preset: %w", err)
	}

	loaded := DefaultPreset()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		ps.preset = DefaultPreset()
		return fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	// 旧数据可能超出当前调节范围
	loaded.Amplitude = clamp(loaded.Amplitude, MinAmplitude, MaxAmplitude)
	loaded.Period = clamp(loaded.Period, MinPeriod, MaxPeriod)
	if loaded.Steps < 1 {
		loaded.Steps = DefaultPreset().Steps
	}

	ps.preset = loaded
	log.Printf("[PresetStore] Preset loaded (curve=%s)", loaded.Curve)
	return nil
}

// Save 保存预设到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (ps *PresetStore) Save() error {
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if err := ps.gdataManager.SaveObjectProp(presetObject, presetProperty, data); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	log.Printf("[PresetStore] Preset saved (curve=%s)", ps.preset.Curve)
	return nil
}

// Preset 获取当前预设
func (ps *PresetStore) Preset() *Preset {
	return ps.preset
}

// SetCurve 设置曲线名称
// 注意：仅修改内存，需调用 Save() 持久化
func (ps *PresetStore) SetCurve(name string) {
	ps.preset.Curve = name
}

// SetAmplitude 设置振幅，限制在 [MinAmplitude, MaxAmplitude]
func (ps *PresetStore) SetAmplitude(amplitude float64) {
	ps.preset.Amplitude = clamp(amplitude, MinAmplitude, MaxAmplitude)
}

// SetPeriod 设置周期，限制在 [MinPeriod, MaxPeriod]
func (ps *PresetStore) SetPeriod(period float64) {
	ps.preset.Period = clamp(period, MinPeriod, MaxPeriod)
}

// Reset 恢复默认预设
func (ps *PresetStore) Reset() {
	ps.preset = DefaultPreset()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
