package stats

// Summary is the dashboard snapshot: today's and this month's report counts
// plus the hour and earnings totals for the current week and month.
type Summary struct {
	ReportsToday      int     `json:"reportsToday"`
	ReportsThisMonth  int     `json:"reportsThisMonth"`
	HoursThisWeek     float64 `json:"hoursThisWeek"`
	HoursThisMonth    float64 `json:"hoursThisMonth"`
	EarningsThisMonth float64 `json:"earningsThisMonth"`
}
