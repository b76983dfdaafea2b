// Package main provides a curve preview tool that plots easing curves.
//
// Usage:
//
//	go run ./cmd/curve_preview [flags]
//
// Flags:
//
//	--curve <name>    Start with a specific curve or preset (overrides the saved preset)
//	--config <path>   Curve preset file (default data/curves.yaml, optional)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next curve
//	Up/Down Arrow     - Increase/decrease elastic period by 0.05
//	[ / ]             - Decrease/increase elastic amplitude by 0.1
//	R                 - Reset elastic parameters
//	S                 - Save current preset
//	Q/Escape          - Quit
package main

import (
	"flag"
	"io"
	"log"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

const (
	screenWidth  = 800
	screenHeight = 600
	appName      = "easing_preview"
)

var (
	curveFlag   = flag.String("curve", "", "Start with specific curve or preset name")
	configFlag  = flag.String("config", "data/curves.yaml", "Curve preset file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	// gdata 不可用时降级为仅内存预设
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Preview] Warning: gdata unavailable: %v", err)
		manager = nil
	}
	presets := store.NewPresetStore(manager)
	if *curveFlag != "" {
		presets.SetCurve(*curveFlag)
	}

	// 配置预设可选，加载失败只显示注册表曲线
	curves, err := config.LoadCurveConfig(*configFlag)
	if err != nil {
		log.Printf("[Preview] Warning: curve presets unavailable: %v", err)
		curves = nil
	}

	viewer, err := NewPreviewGame(presets, curves)
	if err != nil {
		log.Fatalf("Failed to create preview: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Easing Curve Preview")
	if err := ebiten.RunGame(viewer); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
