package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwolczyk/copilot-meter/internal/config"
	"github.com/mwolczyk/copilot-meter/internal/core"
	"github.com/mwolczyk/copilot-meter/internal/format"
	"github.com/mwolczyk/copilot-meter/internal/gh"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// newStatusCommand builds the one-shot, non-interactive counterpart of the
// dashboard: probe auth, fetch usage, print a plain-text report.
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print authentication and usage status without starting the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context())
		},
	}
}

func runStatus(ctx context.Context) error {
	client := gh.NewClient()
	status := client.CheckAuth(ctx)
	state := status.State()

	switch state {
	case gh.StateReady:
		fmt.Printf("auth:  %s", green("ready"))
		if status.Username != "" {
			fmt.Printf(" %s", dim("("+status.Username+")"))
		}
		fmt.Println()
	default:
		fmt.Printf("auth:  %s\n", red(state.String()))
		for _, line := range gh.Instructions(state) {
			fmt.Println(dim("  " + line))
		}
		return nil
	}

	if v, ok := client.Version(ctx); ok && !gh.VersionSupported(v) {
		fmt.Printf("gh:    %s %s\n", v, yellow("(upgrade required for usage data)"))
	}

	username := status.Username
	if name, ok := client.Username(ctx); ok {
		username = name
	}
	if username == "" {
		username = "unknown"
	}

	report, ok := client.FetchUsage(ctx, username)
	if !ok {
		fmt.Printf("usage: %s\n", red("unavailable"))
		return nil
	}
	sum := core.Summarize(*report)

	line := fmt.Sprintf("%s premium requests in %s %d",
		format.Number(float64(sum.TotalRequests)), format.MonthName(sum.Month), sum.Year)

	if cfg, okCfg := config.DefaultStore().Load(); okCfg {
		percent := core.UsedPercent(float64(sum.TotalRequests), cfg.Quota)
		pct := format.Percent(percent)
		switch core.ClassifyUsageLevel(percent) {
		case core.LevelCritical:
			pct = red(pct)
		case core.LevelWarning:
			pct = yellow(pct)
		default:
			pct = green(pct)
		}
		line += fmt.Sprintf(", %s of %s quota", pct, format.Number(cfg.Quota))
	}

	fmt.Printf("usage: %s\n", line)
	fmt.Printf("net:   %s %s\n", format.Currency(sum.NetAmount), dim("(gross "+format.Currency(sum.GrossAmount)+")"))
	return nil
}
