package core

import "testing"

func TestProjectMonthlyUsage(t *testing.T) {
	tests := []struct {
		name        string
		used        float64
		currentDay  int
		daysInMonth int
		want        int
	}{
		{"linear extrapolation", 100, 10, 30, 300},
		{"full month", 250, 30, 30, 250},
		{"rounds projection", 100, 3, 31, 1033}, // 33.33../day * 31
		{"day zero returns usage unchanged", 42, 0, 30, 42},
		{"negative day returns usage unchanged", 42, -1, 30, 42},
		{"zero usage", 0, 15, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectMonthlyUsage(tt.used, tt.currentDay, tt.daysInMonth)
			if got != tt.want {
				t.Errorf("ProjectMonthlyUsage(%v, %d, %d) = %d, want %d",
					tt.used, tt.currentDay, tt.daysInMonth, got, tt.want)
			}
		})
	}
}

func TestProjectOverageCost(t *testing.T) {
	if got := ProjectOverageCost(300, 250, 0.04); got != 2.0 {
		t.Errorf("overage cost = %v, want 2.0", got)
	}
	if got := ProjectOverageCost(200, 250, 0.04); got != 0 {
		t.Errorf("below quota cost = %v, want 0", got)
	}
	if got := ProjectOverageCost(250, 250, 0.04); got != 0 {
		t.Errorf("exactly at quota cost = %v, want 0", got)
	}
}

func TestClassifyUsageLevel_Boundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    UsageLevel
	}{
		{0, LevelNormal},
		{69.999, LevelNormal},
		{70, LevelWarning},
		{89.999, LevelWarning},
		{90, LevelCritical},
		{100, LevelCritical},
		{150, LevelCritical},
	}

	for _, tt := range tests {
		if got := ClassifyUsageLevel(tt.percent); got != tt.want {
			t.Errorf("ClassifyUsageLevel(%v) = %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestUsedPercent(t *testing.T) {
	if got := UsedPercent(120, 300); got != 40 {
		t.Errorf("UsedPercent(120, 300) = %v, want 40", got)
	}
	if got := UsedPercent(600, 300); got != 100 {
		t.Errorf("over-quota percent = %v, want clamp to 100", got)
	}
	if got := UsedPercent(10, 0); got != 0 {
		t.Errorf("zero quota percent = %v, want 0", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100 but not 400
		{2026, 1, 31},
		{2026, 4, 30},
		{2026, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
