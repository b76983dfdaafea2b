package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gonewx/easing/pkg/interpolator"
	"gopkg.in/yaml.v3"
)

// 曲线类型
const (
	CurveTypeElastic = "elastic" // 可调参数的弹性缓入缓出
	CurveTypeSpring  = "spring"  // 阻尼弹簧
)

// CurveConfigFile 曲线预设配置文件
//
// 配置文件位置: data/curves.yaml
type CurveConfigFile struct {
	Version string `yaml:"version"`

	// Default 默认使用的预设名称
	Default string `yaml:"default"`

	// Curves 预设表
	// key: 预设名称（如 "backdropReveal"）
	Curves map[string]CurvePreset `yaml:"curves"`
}

// CurvePreset 单个曲线预设
//
// Type 为 "elastic"、"spring"，或任意已注册曲线名称（如 "easeOutCubic"）。
// 未填写的参数使用默认值。
type CurvePreset struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`

	// elastic 参数
	Amplitude *float64 `yaml:"amplitude,omitempty"` // 默认 1.0
	Period    *float64 `yaml:"period,omitempty"`    // 默认 0.45

	// spring 参数
	Frequency *float64 `yaml:"frequency,omitempty"`
	Damping   *float64 `yaml:"damping,omitempty"`
	Steps     *int     `yaml:"steps,omitempty"`
}

// LoadCurveConfig 加载曲线预设配置
//
// 参数:
//   - path: 配置文件路径（如 "data/curves.yaml"）
//
// 返回:
//   - *CurveConfigFile: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadCurveConfig(path string) (*CurveConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve config: %w", err)
	}

	config, err := ParseCurveConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[CurveConfig] Loaded curve config '%s' (version=%s, curves=%d)",
		path, config.Version, len(config.Curves))
	return config, nil
}

// ParseCurveConfig 从 YAML 字节解析并验证曲线预设配置
func ParseCurveConfig(data []byte) (*CurveConfigFile, error) {
	var config CurveConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse curve config: %w", err)
	}

	if config.Version == "" {
		log.Printf("[CurveConfig] Warning: Config has no version field")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid curve config: %w", err)
	}
	return &config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少定义一个预设
//   - Default（如果填写）必须存在于预设表中
//   - 每个预设都能成功构建出插值器
func (c *CurveConfigFile) Validate() error {
	if len(c.Curves) == 0 {
		return fmt.Errorf("no curves defined")
	}

	if c.Default != "" {
		if _, ok := c.Curves[c.Default]; !ok {
			return fmt.Errorf("default curve '%s' is not defined", c.Default)
		}
	}

	for _, name := range c.Names() {
		if _, err := c.Curves[name].Build(); err != nil {
			return fmt.Errorf("curve '%s': %w", name, err)
		}
	}
	return nil
}

// Names 返回预设名称（按字母排序）
func (c *CurveConfigFile) Names() []string {
	names := make([]string, 0, len(c.Curves))
	for name := range c.Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build 按预设名称构建插值器
//
// 参数:
//   - name: 预设名称；为空时使用 Default
func (c *CurveConfigFile) Build(name string) (interpolator.Interpolator, error) {
	if name == "" {
		name = c.Default
	}
	preset, ok := c.Curves[name]
	if !ok {
		return nil, fmt.Errorf("curve preset '%s' not found", name)
	}
	return preset.Build()
}

// Build 根据预设类型构建插值器
func (p CurvePreset) Build() (interpolator.Interpolator, error) {
	switch strings.ToLower(p.Type) {
	case CurveTypeElastic:
		amplitude := valueOr(p.Amplitude, interpolator.ElasticAmplitude)
		period := valueOr(p.Period, interpolator.ElasticPeriod)
		// 默认参数直接返回固定插值器
		if amplitude == interpolator.ElasticAmplitude && period == interpolator.ElasticPeriod {
			return interpolator.ElasticInOut, nil
		}
		return interpolator.NewElastic(amplitude, period)

	case CurveTypeSpring:
		return interpolator.NewSpring(
			valueOr(p.Frequency, interpolator.DefaultSpringFrequency),
			valueOr(p.Damping, interpolator.DefaultSpringDamping),
			valueOr(p.Steps, interpolator.DefaultSpringSteps),
		)

	case "":
		return nil, fmt.Errorf("curve type is empty")

	default:
		return interpolator.Lookup(p.Type)
	}
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
