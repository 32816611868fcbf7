package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/mwolczyk/copilot-meter/internal/config"
	"github.com/mwolczyk/copilot-meter/internal/core"
	"github.com/mwolczyk/copilot-meter/internal/gh"
	"github.com/mwolczyk/copilot-meter/internal/history"
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func dashboardModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(readyService(), &fakeStore{cfg: &config.Config{Quota: 300, Plan: "pro"}}, nil)
	m.now = func() time.Time {
		return time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	}
	return drive(t, m, m.loadConfigCmd())
}

func TestView_Loading(t *testing.T) {
	m := NewModel(readyService(), &fakeStore{}, nil)
	out := plainView(m)
	if !strings.Contains(out, "Loading") {
		t.Errorf("loading view missing label:\n%s", out)
	}
}

func TestView_SetupListsPlans(t *testing.T) {
	m := setupModel()
	out := plainView(m)

	for _, want := range []string{"Copilot Usage Setup", "Free", "Pro", "Business", "Enterprise", "Custom"} {
		if !strings.Contains(out, want) {
			t.Errorf("setup view missing %q:\n%s", want, out)
		}
	}
}

func TestView_SetupCustomInput(t *testing.T) {
	m := setupModel()
	m.setup.customInput = true
	m.setup.input = "750"

	out := plainView(m)
	if !strings.Contains(out, "750") {
		t.Errorf("custom input view missing entered quota:\n%s", out)
	}
}

func TestView_AuthShowsInstructions(t *testing.T) {
	svc := readyService()
	svc.status = gh.AuthStatus{GhInstalled: true, Error: "Not authenticated with GitHub CLI"}
	m := NewModel(svc, &fakeStore{cfg: &config.Config{Quota: 300, Plan: "pro"}}, nil)
	m = drive(t, m, m.loadConfigCmd())

	out := plainView(m)
	if !strings.Contains(out, "gh auth login") {
		t.Errorf("auth view missing remediation command:\n%s", out)
	}
	if !strings.Contains(out, "Not authenticated") {
		t.Errorf("auth view missing error line:\n%s", out)
	}
}

func TestView_AuthUnknownStateBeforeCheck(t *testing.T) {
	m := NewModel(readyService(), &fakeStore{}, nil)
	m.view = viewAuth

	out := plainView(m)
	if !strings.Contains(out, "unknown") {
		t.Errorf("auth view before any check should show unknown state:\n%s", out)
	}
}

func TestView_AuthFlagsOldGhVersion(t *testing.T) {
	svc := readyService()
	svc.status.HasUserScope = false
	svc.version = "v2.10.0"
	m := NewModel(svc, &fakeStore{cfg: &config.Config{Quota: 300, Plan: "pro"}}, nil)
	m = drive(t, m, m.loadConfigCmd())

	out := plainView(m)
	if !strings.Contains(out, "upgrade required") {
		t.Errorf("auth view missing version warning:\n%s", out)
	}
}

func TestView_DashboardShowsUsageAndForecast(t *testing.T) {
	m := dashboardModel(t)
	out := plainView(m)

	for _, want := range []string{
		"GitHub Copilot Usage - August 2026",
		"User: octocat",
		"120",    // used
		"300",    // quota
		"40.0%",  // percent
		"gpt-4o", // model chart row
		"10 of 31",
		"372", // projected: 120/10 per day * 31 days
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestView_DashboardOverageCost(t *testing.T) {
	m := dashboardModel(t)
	// Shrink the quota so the projection (372) overruns it.
	m.cfg = &config.Config{Quota: 250, Plan: core.PlanCustom}

	out := plainView(m)
	// (372-250) * 0.04 = 4.88
	if !strings.Contains(out, "$4.88") {
		t.Errorf("dashboard missing overage cost $4.88:\n%s", out)
	}
}

func TestView_DashboardTrend(t *testing.T) {
	m := dashboardModel(t)
	m.series = []history.DayTotal{{Day: 1, TotalRequests: 10}, {Day: 2, TotalRequests: 40}}

	out := plainView(m)
	if !strings.Contains(out, "Daily Trend") {
		t.Errorf("dashboard missing trend section:\n%s", out)
	}
}

func TestView_DashboardRefreshFailureNote(t *testing.T) {
	m := dashboardModel(t)
	m.statusLine = "refresh failed, showing previous data"

	out := plainView(m)
	if !strings.Contains(out, "refresh failed") {
		t.Errorf("dashboard missing stale-data note:\n%s", out)
	}
}

func TestRenderUsageGauge(t *testing.T) {
	out := ansi.Strip(RenderUsageGauge(40, 20, core.LevelNormal))
	if !strings.Contains(out, "40.0%") {
		t.Errorf("gauge missing percent: %q", out)
	}
	if !strings.Contains(out, "█") || !strings.Contains(out, "░") {
		t.Errorf("gauge missing fill/track runes: %q", out)
	}

	full := ansi.Strip(RenderUsageGauge(150, 20, core.LevelCritical))
	if strings.Contains(full, "░") {
		t.Errorf("over-100%% gauge should be fully filled: %q", full)
	}
}

func TestRenderModelChart_Empty(t *testing.T) {
	out := ansi.Strip(RenderModelChart(nil))
	if !strings.Contains(out, "No usage") {
		t.Errorf("empty chart = %q", out)
	}
}

func TestRenderModelChart_CapsRows(t *testing.T) {
	items := make([]core.UsageItem, 10)
	for i := range items {
		items[i] = core.UsageItem{Model: "model", GrossQuantity: float64(10 - i)}
	}
	out := ansi.Strip(RenderModelChart(items))
	if !strings.Contains(out, "and 4 more") {
		t.Errorf("chart should note hidden rows:\n%s", out)
	}
}

func TestRenderTrend(t *testing.T) {
	if got := RenderTrend(nil, colorGreen); got != "" {
		t.Errorf("empty trend = %q, want empty string", got)
	}

	series := []history.DayTotal{{Day: 1, TotalRequests: 0}, {Day: 2, TotalRequests: 100}}
	out := ansi.Strip(RenderTrend(series, colorGreen))
	if len([]rune(out)) != 2 {
		t.Errorf("trend length = %d runes, want 2", len([]rune(out)))
	}
}
