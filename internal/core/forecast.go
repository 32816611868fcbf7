package core

import (
	"math"
	"time"
)

// DefaultRequestPrice is the published price per premium request beyond quota.
const DefaultRequestPrice = 0.04

// UsageLevel grades how close the month's usage is to the quota.
type UsageLevel string

const (
	LevelNormal   UsageLevel = "normal"
	LevelWarning  UsageLevel = "warning"
	LevelCritical UsageLevel = "critical"
)

// ProjectMonthlyUsage extrapolates end-of-month usage from a partial month.
//
// This is plain linear extrapolation from the running daily average. No
// smoothing and no weighting toward recent days; a simple model kept on
// purpose. When currentDay is not positive there is no usable baseline, so
// the observed usage is returned as-is.
func ProjectMonthlyUsage(used float64, currentDay, daysInMonth int) int {
	if currentDay <= 0 {
		return int(math.Round(used))
	}
	dailyAverage := used / float64(currentDay)
	return int(math.Round(dailyAverage * float64(daysInMonth)))
}

// ProjectOverageCost prices the projected usage beyond quota. Overage is
// never negative; at or below quota the cost is zero.
func ProjectOverageCost(projected int, quota, pricePerRequest float64) float64 {
	overage := math.Max(0, float64(projected)-quota)
	return overage * pricePerRequest
}

// ClassifyUsageLevel maps a used-percentage onto a level. Boundaries are
// inclusive: 90 is already critical, 70 is already warning.
func ClassifyUsageLevel(percent float64) UsageLevel {
	switch {
	case percent >= 90:
		return LevelCritical
	case percent >= 70:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// UsedPercent returns used/quota as a percentage clamped to [0, 100].
func UsedPercent(used float64, quota float64) float64 {
	if quota <= 0 {
		return 0
	}
	return math.Min(100, used/quota*100)
}

// DaysInMonth returns the day count of the given month, leap years included.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
