package stats

import (
	"context"
	"time"

	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/Antonellome/riso-server/pkg/aggregation"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/Antonellome/riso-server/pkg/settings"
)

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type ServiceImpl struct {
	reportService   report.Service
	settingsService settings.Service
	clock           utils.Clock
}

func NewService(reportService report.Service, settingsService settings.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		reportService:   reportService,
		settingsService: settingsService,
		clock:           clock,
	}
}

// Summary computes the dashboard figures at the clock's current time. The
// week window starts on the configured first day of the week, the month
// window on the first calendar day. Both windows are open above, so a
// forward-dated report counts toward the current figures.
func (s *ServiceImpl) Summary(ctx context.Context) (Summary, error) {
	now := s.clock.Now()
	today := utils.ISODate(now)

	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return Summary{}, err
	}
	table, err := s.settingsService.CurrentRates(ctx)
	if err != nil {
		return Summary{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthReports, err := s.reportService.Search(ctx, report.SearchQuery{DateFrom: utils.ISODate(monthStart)})
	if err != nil {
		return Summary{}, err
	}
	month := aggregation.Aggregate(monthReports, table)

	reportsToday := 0
	for _, r := range monthReports {
		if r.Date == today {
			reportsToday++
		}
	}

	weekStart := startOfWeek(now, appSettings.WeekFirstDay)
	weekReports, err := s.reportService.Search(ctx, report.SearchQuery{DateFrom: utils.ISODate(weekStart)})
	if err != nil {
		return Summary{}, err
	}
	week := aggregation.Aggregate(weekReports, table)

	return Summary{
		ReportsToday:      reportsToday,
		ReportsThisMonth:  month.ReportCount,
		HoursThisWeek:     week.TotalHours,
		HoursThisMonth:    month.TotalHours,
		EarningsThisMonth: month.TotalEarnings,
	}, nil
}

func startOfWeek(now time.Time, firstDay time.Weekday) time.Time {
	offset := (int(now.Weekday()) - int(firstDay) + 7) % 7
	return now.AddDate(0, 0, -offset)
}
