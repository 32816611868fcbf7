package core

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// Summarize reduces a raw usage report into a UsageSummary.
//
// Total requests is the sum of gross quantities rounded once at the end, so
// fractional line items (model multipliers below 1x) do not compound rounding
// error. Amounts are exact sums. Items are re-sorted descending by gross
// quantity; equal quantities keep their original relative order.
func Summarize(report UsageReport) UsageSummary {
	totalRequests := lo.SumBy(report.UsageItems, func(it UsageItem) float64 {
		return it.GrossQuantity
	})

	items := make([]UsageItem, len(report.UsageItems))
	copy(items, report.UsageItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GrossQuantity > items[j].GrossQuantity
	})

	return UsageSummary{
		User:           report.User,
		Year:           report.TimePeriod.Year,
		Month:          report.TimePeriod.Month,
		TotalRequests:  int(math.Round(totalRequests)),
		GrossAmount:    lo.SumBy(report.UsageItems, func(it UsageItem) float64 { return it.GrossAmount }),
		DiscountAmount: lo.SumBy(report.UsageItems, func(it UsageItem) float64 { return it.DiscountAmount }),
		NetAmount:      lo.SumBy(report.UsageItems, func(it UsageItem) float64 { return it.NetAmount }),
		Items:          items,
	}
}
