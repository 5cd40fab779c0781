package app

import (
	"github.com/Antonellome/riso-server/internal/config"
	"github.com/Antonellome/riso-server/internal/event_bus"
	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/Antonellome/riso-server/pkg/aggregation"
	"github.com/Antonellome/riso-server/pkg/backup"
	"github.com/Antonellome/riso-server/pkg/notification"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/Antonellome/riso-server/pkg/settings"
	"github.com/Antonellome/riso-server/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store storage.Store
	Bus   *event_bus.EventBus
	Clock utils.Clock

	ReportRepo    report.Repo
	ReportService report.Service
	ReportHandler *report.Handler

	SettingsRepo    settings.Repo
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	CsvMonthlyRenderer *aggregation.CsvMonthlyRendererImpl
	AggregationHandler *aggregation.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler

	NotificationRepo    notification.Repo
	NotificationService notification.Service
	NotificationHandler *notification.Handler

	BackupService backup.Service
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store storage.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Store = store
	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.ReportRepo = report.NewStoreRepo(store, deps.Clock)
	deps.ReportService = report.NewService(deps.ReportRepo, store, deps.Bus)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	deps.SettingsRepo = settings.NewStoreRepo(store)
	deps.SettingsService = settings.NewService(deps.SettingsRepo, settings.DefaultsFromConfig(cfg.Work))
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.CsvMonthlyRenderer = aggregation.NewCsvMonthlyRenderer()
	deps.AggregationHandler = aggregation.NewHandler(deps.ReportService, deps.SettingsService, deps.CsvMonthlyRenderer)

	deps.StatsService = stats.NewService(deps.ReportService, deps.SettingsService, deps.Clock)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	deps.NotificationRepo = notification.NewStoreRepo(store, deps.Clock)
	deps.NotificationService = notification.NewService(deps.NotificationRepo)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	if cfg.Backup.Enabled {
		backupService := backup.NewService(deps.ReportService, deps.SettingsService, deps.Clock, cfg.Backup.Dir)
		backupService.Register(deps.Bus)
		deps.BackupService = backupService
	}

	return deps
}
