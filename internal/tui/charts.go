package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/mwolczyk/copilot-meter/internal/core"
	"github.com/mwolczyk/copilot-meter/internal/format"
	"github.com/mwolczyk/copilot-meter/internal/history"
)

// RenderUsageGauge draws a bar that fills left to right as usage grows,
// colored by the usage level.
func RenderUsageGauge(percent float64, width int, level core.UsageLevel) string {
	if width < 5 {
		width = 5
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled < 1 && percent > 0 {
		filled = 1
	}
	empty := width - filled

	color := levelColor(level)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	track := lipgloss.NewStyle().Foreground(colorHighlight).Render(strings.Repeat("░", empty))
	pct := lipgloss.NewStyle().Foreground(color).Bold(true).Render(format.Percent(percent))

	return fmt.Sprintf("%s %s", bar+track, pct)
}

const (
	chartMaxRows  = 6
	chartBarWidth = 30
	chartLabelLen = 20
)

// RenderModelChart draws a horizontal bar per line item, scaled against the
// largest gross quantity. Items arrive pre-sorted descending.
func RenderModelChart(items []core.UsageItem) string {
	if len(items) == 0 {
		return dimStyle.Render("No usage recorded this month.")
	}

	rows := items
	if len(rows) > chartMaxRows {
		rows = rows[:chartMaxRows]
	}
	max := rows[0].GrossQuantity
	if max <= 0 {
		max = 1
	}

	barColors := []lipgloss.Color{colorBlue, colorCyan, colorMagenta, colorGreen, colorOrange, colorYellow}

	lines := lo.Map(rows, func(it core.UsageItem, i int) string {
		label := it.Model
		if label == "" {
			label = it.SKU
		}
		label = format.Truncate(label, chartLabelLen)

		w := int(it.GrossQuantity / max * chartBarWidth)
		if w < 1 && it.GrossQuantity > 0 {
			w = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(barColors[i%len(barColors)]).
			Render(strings.Repeat("▆", w))

		return fmt.Sprintf("%-*s %s %s",
			chartLabelLen, label, bar,
			dimStyle.Render(format.Number(it.GrossQuantity)))
	})

	if hidden := len(items) - len(rows); hidden > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("… and %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderTrend draws the month's recorded day totals as a sparkline.
func RenderTrend(series []history.DayTotal, color lipgloss.Color) string {
	if len(series) == 0 {
		return ""
	}

	max := 0
	for _, d := range series {
		if d.TotalRequests > max {
			max = d.TotalRequests
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, d := range series {
		idx := d.TotalRequests * (len(sparkBlocks) - 1) / max
		b.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}
