package main

import (
	"math"
	"strings"
	"testing"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/interpolator"
	"github.com/gonewx/easing/pkg/store"
)

func TestNewPreviewGameStartsFromPreset(t *testing.T) {
	presets := store.NewPresetStore(nil)
	presets.SetCurve("spring")

	g, err := NewPreviewGame(presets, nil)
	if err != nil {
		t.Fatalf("NewPreviewGame error: %v", err)
	}
	if g.names[g.currentIndex] != "Spring" {
		t.Errorf("current curve = %q, want Spring", g.names[g.currentIndex])
	}
	if len(g.points) != presets.Preset().Steps+1 {
		t.Errorf("len(points) = %d, want %d", len(g.points), presets.Preset().Steps+1)
	}
}

func TestPreviewElasticUsesPresetParameters(t *testing.T) {
	presets := store.NewPresetStore(nil)
	presets.SetAmplitude(2.0)

	g, err := NewPreviewGame(presets, nil)
	if err != nil {
		t.Fatalf("NewPreviewGame error: %v", err)
	}

	curve, err := g.currentCurve()
	if err != nil {
		t.Fatalf("currentCurve error: %v", err)
	}
	want, _ := interpolator.NewElastic(2.0, interpolator.ElasticPeriod)
	if curve.Interpolation(0.6) != want.Interpolation(0.6) {
		t.Error("ElasticInOut preview should use preset amplitude")
	}
}

func TestScreenMapping(t *testing.T) {
	if x := toScreenX(0); x != plotLeft {
		t.Errorf("toScreenX(0) = %v, want %v", x, plotLeft)
	}
	if x := toScreenX(1); x != plotLeft+plotWidth {
		t.Errorf("toScreenX(1) = %v, want %v", x, plotLeft+plotWidth)
	}
	if y := toScreenY(valueMax); math.Abs(float64(y-plotTop)) > 1e-3 {
		t.Errorf("toScreenY(max) = %v, want %v", y, plotTop)
	}
	if y := toScreenY(valueMin); math.Abs(float64(y-(plotTop+plotHeight))) > 1e-3 {
		t.Errorf("toScreenY(min) = %v, want %v", y, plotTop+plotHeight)
	}
}

func TestPreviewStartsFromConfigPreset(t *testing.T) {
	curves, err := config.LoadCurveConfig("../../data/curves.yaml")
	if err != nil {
		t.Fatalf("LoadCurveConfig error: %v", err)
	}

	presets := store.NewPresetStore(nil)
	presets.SetCurve("elasticSoft")

	g, err := NewPreviewGame(presets, curves)
	if err != nil {
		t.Fatalf("NewPreviewGame error: %v", err)
	}
	if g.names[g.currentIndex] != "elasticSoft" {
		t.Errorf("current curve = %q, want elasticSoft", g.names[g.currentIndex])
	}
	if presets.Preset().Curve != "elasticSoft" {
		t.Errorf("preset curve overwritten with %q", presets.Preset().Curve)
	}
	if g.statusMessage != "" {
		t.Errorf("unexpected status message %q", g.statusMessage)
	}

	curve, err := g.currentCurve()
	if err != nil {
		t.Fatalf("currentCurve error: %v", err)
	}
	want, _ := curves.Build("elasticSoft")
	if curve.Interpolation(0.6) != want.Interpolation(0.6) {
		t.Error("config preset should be built from the preset file")
	}
}

func TestPreviewUnknownCurveReportsStatus(t *testing.T) {
	presets := store.NewPresetStore(nil)
	presets.SetCurve("backdropReveal")

	g, err := NewPreviewGame(presets, nil)
	if err != nil {
		t.Fatalf("NewPreviewGame error: %v", err)
	}
	if !strings.Contains(g.statusMessage, "backdropReveal") {
		t.Errorf("status message = %q, want it to name the unknown curve", g.statusMessage)
	}
	if presets.Preset().Curve != g.names[0] {
		t.Errorf("preset curve = %q, want fallback %q", presets.Preset().Curve, g.names[0])
	}
}

func TestPreviewConfigNamesAreDeduplicated(t *testing.T) {
	curves := &config.CurveConfigFile{Curves: map[string]config.CurvePreset{
		"linear": {Type: "linear"},
		"slow":   {Type: "elastic", Period: ptr(0.8)},
	}}

	g, err := NewPreviewGame(store.NewPresetStore(nil), curves)
	if err != nil {
		t.Fatalf("NewPreviewGame error: %v", err)
	}
	if len(g.names) != len(interpolator.Names())+1 {
		t.Errorf("len(names) = %d, want %d", len(g.names), len(interpolator.Names())+1)
	}
}

func ptr[T any](v T) *T {
	return &v
}
