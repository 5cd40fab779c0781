package stats

import (
	"context"
	"testing"
	"time"

	"github.com/Antonellome/riso-server/internal/config"
	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/Antonellome/riso-server/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsWorkDefaults = config.Work{
	DefaultStartTime:    "07:30",
	DefaultEndTime:      "16:30",
	DefaultPauseMinutes: 60,
	Rates: []config.Rate{
		{Type: "Ordinaria", Rate: 18.50},
		{Type: "Straordinaria", Rate: 27.75},
	},
}

// setupStats fixes the clock on Wednesday 2025-01-15.
func setupStats(t *testing.T) (context.Context, *ServiceImpl, report.Service, settings.Service) {
	ctx := context.Background()
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)}
	reportService := report.NewService(report.NewStoreRepo(storage.NewStubStore(), clock), storage.NewStubStore(), nil)
	settingsService := settings.NewService(settings.NewStoreRepo(storage.NewStubStore()), settings.DefaultsFromConfig(statsWorkDefaults))
	return ctx, NewService(reportService, settingsService, clock), reportService, settingsService
}

func addReport(t *testing.T, ctx context.Context, service report.Service, date string, shiftType report.ShiftType, startTime, endTime string) {
	_, err := service.Create(ctx, report.Report{
		Date:         date,
		ShiftType:    shiftType,
		StartTime:    startTime,
		EndTime:      endTime,
		PauseMinutes: 60,
	})
	require.NoError(t, err)
}

func TestServiceImpl_SummaryEmpty(t *testing.T) {
	ctx, statsService, _, _ := setupStats(t)

	summary, err := statsService.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, Summary{}, summary)
}

func TestServiceImpl_Summary(t *testing.T) {
	ctx, statsService, reportService, _ := setupStats(t)

	addReport(t, ctx, reportService, "2025-01-15", report.ShiftOrdinary, "07:30", "16:30")
	addReport(t, ctx, reportService, "2025-01-13", report.ShiftOrdinary, "07:30", "16:30")
	addReport(t, ctx, reportService, "2025-01-05", report.ShiftOvertime, "08:00", "13:00")
	addReport(t, ctx, reportService, "2024-12-30", report.ShiftOrdinary, "07:30", "16:30")

	summary, err := statsService.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ReportsToday)
	assert.Equal(t, 3, summary.ReportsThisMonth)
	// Sunday-start week begins 2025-01-12.
	assert.InDelta(t, 16.0, summary.HoursThisWeek, 0.001)
	assert.InDelta(t, 20.0, summary.HoursThisMonth, 0.001)
	assert.InDelta(t, 16.0*18.50+4.0*27.75, summary.EarningsThisMonth, 0.001)
}

func TestServiceImpl_SummaryCountsForwardDatedReports(t *testing.T) {
	ctx, statsService, reportService, _ := setupStats(t)

	// The week and month windows have no upper bound, so a report logged
	// ahead of the clock still contributes.
	addReport(t, ctx, reportService, "2025-03-10", report.ShiftOrdinary, "07:30", "16:30")

	summary, err := statsService.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.ReportsToday)
	assert.Equal(t, 1, summary.ReportsThisMonth)
	assert.InDelta(t, 8.0, summary.HoursThisWeek, 0.001)
	assert.InDelta(t, 8.0, summary.HoursThisMonth, 0.001)
	assert.InDelta(t, 8.0*18.50, summary.EarningsThisMonth, 0.001)
}

func TestServiceImpl_SummaryMondayWeekStart(t *testing.T) {
	ctx, statsService, reportService, settingsService := setupStats(t)

	appSettings, err := settingsService.Get(ctx)
	require.NoError(t, err)
	appSettings.WeekFirstDay = time.Monday
	require.NoError(t, settingsService.Put(ctx, appSettings))

	// Sunday the 12th falls in the previous week once Monday starts it.
	addReport(t, ctx, reportService, "2025-01-12", report.ShiftOrdinary, "07:30", "16:30")
	addReport(t, ctx, reportService, "2025-01-13", report.ShiftOrdinary, "07:30", "16:30")

	summary, err := statsService.Summary(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, summary.HoursThisWeek, 0.001)
	assert.InDelta(t, 16.0, summary.HoursThisMonth, 0.001)
}
