// Package aggregation is the single source of truth for every hour and
// earnings figure derived from reports. All functions here are pure: output
// depends only on the input reports and rate table, never on a clock or any
// stored state.
package aggregation

import (
	"github.com/Antonellome/riso-server/pkg/rates"
	"github.com/Antonellome/riso-server/pkg/report"
)

// Result is the derived hour/earnings summary for a set of reports. It is
// recomputed on every query and never persisted.
type Result struct {
	TotalHours     float64                      `json:"totalHours"`
	TotalEarnings  float64                      `json:"totalEarnings"`
	HoursByType    map[report.ShiftType]float64 `json:"hoursByType"`
	EarningsByType map[report.ShiftType]float64 `json:"earningsByType"`
	ReportCount    int                          `json:"reportCount"`
}

// Aggregate computes totals and per-shift-type breakdowns over the given
// reports. Only the primary technician's hours count here; co-worker blocks
// are handled by Breakdown. A shift type missing from the rate table
// contributes its hours but zero earnings.
func Aggregate(reports []report.Report, table rates.Table) Result {
	result := Result{
		HoursByType:    map[report.ShiftType]float64{},
		EarningsByType: map[report.ShiftType]float64{},
		ReportCount:    len(reports),
	}

	for _, r := range reports {
		hours := r.Hours()
		earnings := hours * table.RateFor(r.ShiftType)

		result.TotalHours += hours
		result.TotalEarnings += earnings
		result.HoursByType[r.ShiftType] += hours
		result.EarningsByType[r.ShiftType] += earnings
	}

	return result
}
