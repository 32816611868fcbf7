package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwolczyk/copilot-meter/internal/core"
	"github.com/mwolczyk/copilot-meter/internal/format"
	"github.com/mwolczyk/copilot-meter/internal/gh"
)

func (m Model) View() string {
	var body string
	switch m.view {
	case viewLoading:
		body = m.renderLoading()
	case viewSetup:
		body = m.renderSetup()
	case viewAuth:
		body = m.renderAuth()
	case viewDashboard:
		body = m.renderDashboard()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) renderLoading() string {
	frame := spinnerFrames[m.animFrame%len(spinnerFrames)]
	return panelStyle.Render(
		titleStyle.Render(frame+" Copilot Usage") + "\n" +
			subtitleStyle.Render("Loading…"))
}

func (m Model) renderSetup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Copilot Usage Setup") + "\n\n")

	if m.setup.customInput {
		b.WriteString(labelStyle.Render("Enter your monthly premium request quota:") + "\n\n")
		input := m.setup.input
		if input == "" {
			input = dimStyle.Render("e.g. 300")
		} else {
			input = valueStyle.Render(input)
		}
		b.WriteString("  > " + input + "\n")
		if m.setup.status != "" {
			b.WriteString("\n" + errorStyle.Render(m.setup.status) + "\n")
		}
		b.WriteString("\n" + m.helpLine([][2]string{
			{"enter", "confirm"}, {"esc", "back"},
		}))
		return headerPanelStyle.Render(b.String())
	}

	b.WriteString(labelStyle.Render("Select your Copilot plan:") + "\n\n")
	for i, opt := range core.PlanOptions {
		cursor := "  "
		line := fmt.Sprintf("%-12s %s", opt.Label, dimStyle.Render(opt.Description))
		if i == m.setup.cursor {
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(fmt.Sprintf("%-12s", opt.Label)) + " " + dimStyle.Render(opt.Description)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + m.helpLine([][2]string{
		{"↑/↓", "select"}, {"enter", "confirm"}, {"q", "quit"},
	}))
	return headerPanelStyle.Render(b.String())
}

func (m Model) renderAuth() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GitHub Authentication") + "\n\n")

	state := gh.StateUnknown
	if m.authChecked {
		state = m.auth.State()
	}
	b.WriteString(labelStyle.Render("Status: ") + authStateLabel(state) + "\n")
	if m.auth.Username != "" {
		b.WriteString(labelStyle.Render("Account: ") + valueStyle.Render(m.auth.Username) + "\n")
	}
	if m.ghVersion != "" {
		line := labelStyle.Render("gh version: ") + valueStyle.Render(m.ghVersion)
		if !gh.VersionSupported(m.ghVersion) {
			line += " " + errorStyle.Render("(upgrade required for usage data)")
		}
		b.WriteString(line + "\n")
	}
	if m.auth.Error != "" {
		b.WriteString("\n" + errorStyle.Render(m.auth.Error) + "\n")
	}

	b.WriteString("\n")
	for _, line := range gh.Instructions(state) {
		b.WriteString(labelStyle.Render(line) + "\n")
	}

	if m.checking {
		frame := spinnerFrames[m.animFrame%len(spinnerFrames)]
		b.WriteString("\n" + subtitleStyle.Render(frame+" checking…") + "\n")
	}

	b.WriteString("\n" + m.helpLine([][2]string{
		{"r", "retry"}, {"a", "authenticate"}, {"q", "quit"},
	}))
	return headerPanelStyle.Render(b.String())
}

func authStateLabel(state gh.AuthState) string {
	switch state {
	case gh.StateReady:
		return successStyle.Render(state.String())
	case gh.StateUnknown:
		return dimStyle.Render(state.String())
	default:
		return errorStyle.Render(state.String())
	}
}

func (m Model) renderDashboard() string {
	if m.summary == nil || m.cfg == nil {
		return m.renderLoading()
	}
	sum := *m.summary
	quota := m.cfg.Quota

	header := headerPanelStyle.Render(
		titleStyle.Render(fmt.Sprintf("GitHub Copilot Usage - %s %d", format.MonthName(sum.Month), sum.Year)) + "\n" +
			subtitleStyle.Render("User: "+sum.User))

	percent := core.UsedPercent(float64(sum.TotalRequests), quota)
	level := core.ClassifyUsageLevel(percent)

	usagePanel := panelStyle.Render(
		labelStyle.Render("Premium Requests") + "\n" +
			fmt.Sprintf("%s / %s\n", valueStyle.Render(format.Number(float64(sum.TotalRequests))), labelStyle.Render(format.Number(quota))) +
			RenderUsageGauge(percent, 40, level))

	chartPanel := panelStyle.Render(
		labelStyle.Render("By Model") + "\n" + RenderModelChart(sum.Items))

	costs := panelStyle.Render(strings.Join([]string{
		labelStyle.Render("Costs"),
		costRow("Gross", sum.GrossAmount),
		costRow("Discount", sum.DiscountAmount),
		costRow("Net", sum.NetAmount),
	}, "\n"))

	forecast := panelStyle.Render(m.renderForecast(sum, quota))

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, costs, " ", forecast)

	sections := []string{header, usagePanel, chartPanel, bottom}
	if trend := RenderTrend(m.series, levelColor(level)); trend != "" {
		sections = append(sections, panelStyle.Render(
			labelStyle.Render("Daily Trend")+"\n"+trend))
	}

	help := m.helpLine([][2]string{
		{"r", "refresh"}, {"s", "settings"}, {"q", "quit"},
	})
	if m.refreshing {
		frame := spinnerFrames[m.animFrame%len(spinnerFrames)]
		help += "  " + subtitleStyle.Render(frame+" refreshing…")
	}
	if m.statusLine != "" {
		help += "  " + errorStyle.Render(m.statusLine)
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func costRow(label string, amount float64) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-10s", label)), valueStyle.Render(format.Currency(amount)))
}

func (m Model) renderForecast(sum core.UsageSummary, quota float64) string {
	day := m.now().Day()
	days := core.DaysInMonth(sum.Year, sum.Month)
	projected := core.ProjectMonthlyUsage(float64(sum.TotalRequests), day, days)
	cost := core.ProjectOverageCost(projected, quota, core.DefaultRequestPrice)

	projectedStyle := valueStyle
	costLine := successStyle.Render("within quota")
	if float64(projected) > quota {
		projectedStyle = errorStyle
		costLine = errorStyle.Render(format.Currency(cost) + " overage")
	}

	return strings.Join([]string{
		labelStyle.Render("Forecast"),
		fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-10s", "Day")), valueStyle.Render(fmt.Sprintf("%d of %d", day, days))),
		fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-10s", "Projected")), projectedStyle.Render(format.Number(float64(projected)))),
		fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-10s", "Est. cost")), costLine),
	}, "\n")
}

func (m Model) helpLine(keys [][2]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, helpKeyStyle.Render("["+k[0]+"]")+" "+dimStyle.Render(k[1]))
	}
	return strings.Join(parts, "  ")
}
