package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gonewx/easing/pkg/interpolator"
)

// 条形图宽度（字符），覆盖 [-0.5, 1.5]
const barWidth = 40

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right).PaddingRight(1)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Faint(true)
)

// renderTable 渲染采样表；normalize 把值映射到条形图坐标，nil 表示原值
func renderTable(name string, points []interpolator.Point, stats interpolator.Stats, normalize func(float32) float32) string {
	if normalize == nil {
		normalize = func(v float32) float32 { return v }
	}

	rows := make([]string, 0, len(points)+1)
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Render(headerStyle.Render("t")),
		cellStyle.Render(headerStyle.Render("value")),
		" ",
		headerStyle.Render("curve"),
	))

	for _, p := range points {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(fmt.Sprintf("%.3f", p.T)),
			cellStyle.Render(fmt.Sprintf("%.4f", p.Value)),
			" ",
			renderBar(normalize(p.Value)),
		))
	}

	summary := statsStyle.Render(fmt.Sprintf(
		"min %.4f  max %.4f  undershoot %.4f  overshoot %.4f  zero crossings %d",
		stats.Min, stats.Max, stats.Undershoot, stats.Overshoot, stats.ZeroCrossings))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		summary,
	)
}

// renderBar 把值映射到 [-0.5, 1.5] 区间的条形，0 和 1 处各有一条刻度
func renderBar(v float32) string {
	pos := int((float64(v) + 0.5) / 2 * barWidth)
	pos = max(0, min(barWidth-1, pos))

	zero := barWidth / 4
	one := barWidth * 3 / 4

	cells := make([]string, barWidth)
	for i := range cells {
		switch {
		case i == pos:
			if v < 0 || v > 1 {
				cells[i] = overStyle.Render("●")
			} else {
				cells[i] = barStyle.Render("●")
			}
		case i == zero || i == one:
			cells[i] = "│"
		default:
			cells[i] = " "
		}
	}
	return strings.Join(cells, "")
}
