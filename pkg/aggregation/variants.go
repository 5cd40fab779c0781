package aggregation

import (
	"github.com/Antonellome/riso-server/pkg/rates"
	"github.com/Antonellome/riso-server/pkg/report"
)

// The export payloads are tagged variants decided at construction time, so
// consumers never have to sniff the shape of an aggregation result.

type DailyAggregation struct {
	Kind      string            `json:"kind"` // always "daily"
	Date      string            `json:"date"`
	Reports   []report.Report   `json:"reports"`
	Breakdown []ReportBreakdown `json:"breakdown"`
	Result    Result            `json:"result"`
}

type MonthlyAggregation struct {
	Kind    string          `json:"kind"` // always "monthly"
	Month   string          `json:"month"`
	Reports []report.Report `json:"reports"`
	Result  Result          `json:"result"`
}

// AggregateDay builds the daily payload for reports already filtered to one
// date: the aggregate plus the per-report technician breakdowns.
func AggregateDay(date string, reports []report.Report, table rates.Table) DailyAggregation {
	breakdowns := make([]ReportBreakdown, 0, len(reports))
	for _, r := range reports {
		breakdowns = append(breakdowns, Breakdown(r))
	}
	return DailyAggregation{
		Kind:      "daily",
		Date:      date,
		Reports:   reports,
		Breakdown: breakdowns,
		Result:    Aggregate(reports, table),
	}
}

// AggregateMonth builds the monthly payload for reports already filtered to
// one month prefix.
func AggregateMonth(month string, reports []report.Report, table rates.Table) MonthlyAggregation {
	return MonthlyAggregation{
		Kind:    "monthly",
		Month:   month,
		Reports: reports,
		Result:  Aggregate(reports, table),
	}
}
