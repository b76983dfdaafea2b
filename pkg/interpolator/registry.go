package interpolator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCurve 未注册的曲线名称
var ErrUnknownCurve = errors.New("unknown curve")

// 注册表键统一为小写
var registry = map[string]Interpolator{
	"linear":         Linear,
	"easeinquad":     EaseInQuad,
	"easeoutquad":    EaseOutQuad,
	"easeincubic":    EaseInCubic,
	"easeoutcubic":   EaseOutCubic,
	"easeinoutcubic": EaseInOutCubic,
	"easeoutexpo":    EaseOutExpo,
	"elasticinout":   ElasticInOut,
	"spring":         DefaultSpring(),
}

// 对外展示用的名称（保留大小写）
var displayNames = map[string]string{
	"linear":         "Linear",
	"easeinquad":     "EaseInQuad",
	"easeoutquad":    "EaseOutQuad",
	"easeincubic":    "EaseInCubic",
	"easeoutcubic":   "EaseOutCubic",
	"easeinoutcubic": "EaseInOutCubic",
	"easeoutexpo":    "EaseOutExpo",
	"elasticinout":   "ElasticInOut",
	"spring":         "Spring",
}

// Lookup 按名称查找插值器（不区分大小写）
//
// 返回：
//   - Interpolator: 找到的插值器
//   - error: 名称未注册时返回包装后的 ErrUnknownCurve
func Lookup(name string) (Interpolator, error) {
	if i, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// MustLookup 同 Lookup，未找到时 panic（仅用于包级初始化）
func MustLookup(name string) Interpolator {
	i, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return i
}

// Names 返回所有已注册曲线的名称（按字母排序）
func Names() []string {
	names := make([]string, 0, len(displayNames))
	for _, n := range displayNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
