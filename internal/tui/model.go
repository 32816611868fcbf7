// Package tui implements the dashboard as a bubbletea program. The Model is
// the application state machine: it owns the current view, the loaded
// config, the last auth status and the latest usage summary. Every external
// call (gh probe, usage fetch, config save) runs as a tea.Cmd and reports
// back through a message, so the Update loop stays the single writer of all
// model state.
package tui

import (
	"context"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwolczyk/copilot-meter/internal/config"
	"github.com/mwolczyk/copilot-meter/internal/core"
	"github.com/mwolczyk/copilot-meter/internal/gh"
	"github.com/mwolczyk/copilot-meter/internal/history"
)

type view int

const (
	viewLoading view = iota
	viewSetup
	viewAuth
	viewDashboard
)

// Service is the slice of the gh client the state machine depends on.
type Service interface {
	CheckAuth(ctx context.Context) gh.AuthStatus
	Username(ctx context.Context) (string, bool)
	FetchUsage(ctx context.Context, username string) (*core.UsageReport, bool)
	Version(ctx context.Context) (string, bool)
	LoginCommand() *exec.Cmd
	RefreshScopeCommand() *exec.Cmd
}

// ConfigStore is the persistence pass-through for the quota record.
type ConfigStore interface {
	Exists() bool
	Load() (config.Config, bool)
	Save(config.Config) error
	Path() string
}

// UsageHistory records observed day totals and reads them back as a series.
// May be absent; a nil history is replaced by a no-op.
type UsageHistory interface {
	Record(user string, year, month, day, totalRequests int) error
	Series(user string, year, month int) ([]history.DayTotal, error)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type configLoadedMsg struct {
	cfg *config.Config
}

type configSavedMsg struct {
	cfg config.Config
	err error
}

type authCheckedMsg struct {
	status  gh.AuthStatus
	version string
}

type usernameResolvedMsg struct {
	name string
	ok   bool
}

type usageLoadedMsg struct {
	summary *core.UsageSummary
	initial bool
}

type historyMsg struct {
	series []history.DayTotal
}

type remediationDoneMsg struct {
	err error
}

// Model is the bubbletea model and the app's only mutable session state.
type Model struct {
	svc     Service
	store   ConfigStore
	history UsageHistory
	now     func() time.Time

	view        view
	cfg         *config.Config
	auth        gh.AuthStatus
	authChecked bool
	ghVersion   string
	summary     *core.UsageSummary
	series      []history.DayTotal
	username    string

	setup setupState

	width      int
	height     int
	animFrame  int
	checking   bool // auth re-check in flight
	refreshing bool // dashboard refresh in flight
	statusLine string
}

func NewModel(svc Service, store ConfigStore, hist UsageHistory) Model {
	if hist == nil {
		hist = noopHistory{}
	}
	return Model{
		svc:     svc,
		store:   store,
		history: hist,
		now:     time.Now,
		view:    viewLoading,
		setup:   newSetupState(),
	}
}

type noopHistory struct{}

func (noopHistory) Record(string, int, int, int, int) error { return nil }

func (noopHistory) Series(string, int, int) ([]history.DayTotal, error) { return nil, nil }

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadConfigCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.animFrame++
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configLoadedMsg:
		if msg.cfg == nil {
			return m.enterSetup(), nil
		}
		m.cfg = msg.cfg
		return m, m.checkAuthCmd()

	case configSavedMsg:
		// A failed save is ignored beyond a status note: the session still
		// has a valid config in memory and can proceed.
		cfg := msg.cfg
		m.cfg = &cfg
		if msg.err != nil {
			m.statusLine = "config save failed"
		}
		m.view = viewLoading
		return m, m.checkAuthCmd()

	case authCheckedMsg:
		m.auth = msg.status
		m.authChecked = true
		m.ghVersion = msg.version
		m.checking = false
		if !msg.status.HasUserScope {
			m.view = viewAuth
			return m, nil
		}
		return m, m.resolveUsernameCmd()

	case usernameResolvedMsg:
		m.username = msg.name
		if !msg.ok {
			// Fall back to the login seen by `gh auth status`, then to a
			// placeholder.
			m.username = m.auth.Username
			if m.username == "" {
				m.username = "unknown"
			}
		}
		return m, m.fetchUsageCmd(m.username, true)

	case usageLoadedMsg:
		return m.handleUsageLoaded(msg)

	case historyMsg:
		m.series = msg.series
		return m, nil

	case remediationDoneMsg:
		// Regardless of how the interactive command went, re-probe and let
		// the classification decide the next view.
		m.view = viewLoading
		m.checking = true
		return m, m.checkAuthCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleUsageLoaded(msg usageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.summary == nil {
		if msg.initial {
			// The first load has nothing to fall back on; treat the miss as
			// an authentication problem and route to the auth screen.
			m.auth = gh.AuthStatus{
				GhInstalled:   true,
				Authenticated: true,
				HasUserScope:  false,
				Error:         "Failed to fetch usage data. Check your authentication.",
			}
			m.authChecked = true
			m.view = viewAuth
			return m, nil
		}
		// A refresh miss keeps the dashboard and the stale summary. Bouncing
		// an active dashboard to the auth screen on a blip would be worse
		// than showing old numbers.
		m.refreshing = false
		m.statusLine = "refresh failed, showing previous data"
		return m, nil
	}

	m.summary = msg.summary
	m.refreshing = false
	m.statusLine = ""
	m.view = viewDashboard
	return m, m.recordHistoryCmd(*msg.summary)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The setup view owns its keys entirely while active.
	if m.view == viewSetup {
		return m.handleSetupKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		switch m.view {
		case viewAuth:
			m.checking = true
			return m, m.checkAuthCmd()
		case viewDashboard:
			if m.refreshing {
				return m, nil
			}
			m.refreshing = true
			return m, m.fetchUsageCmd(m.username, false)
		}

	case "a":
		if m.view == viewAuth {
			return m, m.remediationCmd()
		}

	case "s":
		if m.view == viewDashboard {
			return m.enterSetup(), nil
		}
	}
	return m, nil
}

func (m Model) enterSetup() Model {
	m.view = viewSetup
	m.setup = newSetupState()
	m.statusLine = ""
	return m
}

// ─── Commands ───────────────────────────────────────────────────────────────

func (m Model) loadConfigCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if !store.Exists() {
			return configLoadedMsg{}
		}
		cfg, ok := store.Load()
		if !ok {
			// Present but invalid reads the same as absent.
			return configLoadedMsg{}
		}
		return configLoadedMsg{cfg: &cfg}
	}
}

func (m Model) saveConfigCmd(cfg config.Config) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return configSavedMsg{cfg: cfg, err: store.Save(cfg)}
	}
}

func (m Model) checkAuthCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		status := svc.CheckAuth(context.Background())
		version, _ := svc.Version(context.Background())
		return authCheckedMsg{status: status, version: version}
	}
}

func (m Model) resolveUsernameCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		name, ok := svc.Username(context.Background())
		return usernameResolvedMsg{name: name, ok: ok}
	}
}

func (m Model) fetchUsageCmd(username string, initial bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		report, ok := svc.FetchUsage(context.Background(), username)
		if !ok {
			return usageLoadedMsg{initial: initial}
		}
		summary := core.Summarize(*report)
		return usageLoadedMsg{summary: &summary, initial: initial}
	}
}

func (m Model) recordHistoryCmd(summary core.UsageSummary) tea.Cmd {
	hist := m.history
	day := m.now().Day()
	return func() tea.Msg {
		// Best effort: the dashboard works without a trend line.
		_ = hist.Record(summary.User, summary.Year, summary.Month, day, summary.TotalRequests)
		series, err := hist.Series(summary.User, summary.Year, summary.Month)
		if err != nil {
			return historyMsg{}
		}
		return historyMsg{series: series}
	}
}

// remediationCmd hands the terminal to the gh CLI for interactive login or
// scope elevation, then resumes with a fresh auth check. tea.ExecProcess
// releases the renderer before the child runs and reacquires it after.
func (m Model) remediationCmd() tea.Cmd {
	cmd := m.svc.LoginCommand()
	if m.auth.Authenticated {
		cmd = m.svc.RefreshScopeCommand()
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return remediationDoneMsg{err: err}
	})
}
