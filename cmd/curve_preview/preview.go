package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/interpolator"
	"github.com/gonewx/easing/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 绘图区域（像素）
const (
	plotLeft   = 80
	plotTop    = 80
	plotWidth  = 640
	plotHeight = 440

	// 纵轴覆盖 [-0.5, 1.5]，为过冲留出空间
	valueMin = -0.5
	valueMax = 1.5

	periodStep    = 0.05
	amplitudeStep = 0.1
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	gridColor       = color.RGBA{60, 60, 72, 255}
	guideColor      = color.RGBA{120, 120, 140, 255}
	curveColor      = color.RGBA{80, 220, 140, 255}
	overshootColor  = color.RGBA{240, 90, 90, 255}
)

// PreviewGame implements ebiten.Game for the curve preview tool
type PreviewGame struct {
	presets *store.PresetStore
	curves  *config.CurveConfigFile // 可为 nil（仅注册表曲线）

	names        []string
	currentIndex int

	points []interpolator.Point
	stats  interpolator.Stats

	statusMessage string
}

// NewPreviewGame creates a preview instance starting from the stored preset.
// curves may be nil; when present its presets are listed after the registry curves.
func NewPreviewGame(presets *store.PresetStore, curves *config.CurveConfigFile) (*PreviewGame, error) {
	g := &PreviewGame{
		presets: presets,
		curves:  curves,
		names:   interpolator.Names(),
	}
	if curves != nil {
		for _, name := range curves.Names() {
			if !containsFold(g.names, name) {
				g.names = append(g.names, name)
			}
		}
	}

	start := presets.Preset().Curve
	found := false
	for i, n := range g.names {
		if strings.EqualFold(n, start) {
			g.currentIndex = i
			found = true
			break
		}
	}
	if !found {
		g.statusMessage = fmt.Sprintf("Unknown curve %q, showing %s", start, g.names[0])
		log.Printf("[Preview] Warning: %s", g.statusMessage)
	}

	if err := g.resample(); err != nil {
		return nil, err
	}
	return g, nil
}

// currentCurve 当前曲线；ElasticInOut 使用预设中的可调参数，其余先查注册表再查配置预设
func (g *PreviewGame) currentCurve() (interpolator.Interpolator, error) {
	name := g.names[g.currentIndex]
	if strings.EqualFold(name, "ElasticInOut") {
		return g.presets.Preset().Elastic()
	}
	curve, err := interpolator.Lookup(name)
	if err == nil || g.curves == nil {
		return curve, err
	}
	return g.curves.Build(name)
}

func (g *PreviewGame) resample() error {
	curve, err := g.currentCurve()
	if err != nil {
		return fmt.Errorf("failed to build curve: %w", err)
	}

	points, err := interpolator.Sample(curve, g.presets.Preset().Steps)
	if err != nil {
		return fmt.Errorf("failed to sample curve: %w", err)
	}

	g.points = points
	g.stats = interpolator.Analyze(points)
	g.presets.SetCurve(g.names[g.currentIndex])
	return nil
}

// Update handles keyboard input
func (g *PreviewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	changed := true
	preset := g.presets.Preset()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.currentIndex = (g.currentIndex + 1) % len(g.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.currentIndex = (g.currentIndex - 1 + len(g.names)) % len(g.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.presets.SetPeriod(preset.Period + periodStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.presets.SetPeriod(preset.Period - periodStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.presets.SetAmplitude(preset.Amplitude + amplitudeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.presets.SetAmplitude(preset.Amplitude - amplitudeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.presets.SetAmplitude(interpolator.ElasticAmplitude)
		g.presets.SetPeriod(interpolator.ElasticPeriod)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		changed = false
		if err := g.presets.Save(); err != nil {
			g.statusMessage = fmt.Sprintf("Save failed: %v", err)
			log.Printf("[Preview] %s", g.statusMessage)
		} else {
			g.statusMessage = "Preset saved"
		}
	default:
		changed = false
	}

	if changed {
		if err := g.resample(); err != nil {
			g.statusMessage = err.Error()
			log.Printf("[Preview] %v", err)
		}
	}
	return nil
}

// Draw renders the plot
func (g *PreviewGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// 网格：横向每 0.25，纵向每 0.1
	for v := valueMin; v <= valueMax+1e-9; v += 0.25 {
		y := toScreenY(v)
		clr := gridColor
		if v == 0 || v == 1 {
			clr = guideColor
		}
		vector.StrokeLine(screen, plotLeft, y, plotLeft+plotWidth, y, 1, clr, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5.2f", v), 20, int(y)-8)
	}
	for k := 0; k <= 10; k++ {
		x := toScreenX(float32(k) / 10)
		vector.StrokeLine(screen, x, plotTop, x, plotTop+plotHeight, 1, gridColor, false)
	}

	// 曲线
	for k := 1; k < len(g.points); k++ {
		p0, p1 := g.points[k-1], g.points[k]
		clr := curveColor
		if p1.Value < 0 || p1.Value > 1 {
			clr = overshootColor
		}
		vector.StrokeLine(screen,
			toScreenX(p0.T), toScreenY(float64(p0.Value)),
			toScreenX(p1.T), toScreenY(float64(p1.Value)),
			2, clr, true)
	}

	// 采样点标记
	for _, p := range g.points {
		x, y := toScreenX(p.T), toScreenY(float64(p.Value))
		vector.DrawFilledRect(screen, x-1, y-1, 3, 3, curveColor, false)
	}

	preset := g.presets.Preset()
	title := fmt.Sprintf("[%d/%d] %s", g.currentIndex+1, len(g.names), g.names[g.currentIndex])
	ebitenutil.DebugPrintAt(screen, title, plotLeft, 20)
	if strings.EqualFold(g.names[g.currentIndex], "ElasticInOut") {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("amplitude %.2f  period %.2f", preset.Amplitude, preset.Period), plotLeft, 40)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"min %.4f  max %.4f  undershoot %.4f  overshoot %.4f",
		g.stats.Min, g.stats.Max, g.stats.Undershoot, g.stats.Overshoot), plotLeft, plotTop+plotHeight+20)
	ebitenutil.DebugPrintAt(screen,
		"Left/Right: curve  Up/Down: period  [ ]: amplitude  R: reset  S: save  Q: quit",
		plotLeft, plotTop+plotHeight+40)
	if g.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, plotLeft, plotTop+plotHeight+60)
	}
}

// Layout returns the logical screen size
func (g *PreviewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func toScreenX(t float32) float32 {
	return plotLeft + t*plotWidth
}

func toScreenY(v float64) float32 {
	ratio := (v - valueMin) / (valueMax - valueMin)
	return float32(plotTop + (1-ratio)*plotHeight)
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
