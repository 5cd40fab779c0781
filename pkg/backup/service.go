package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Antonellome/riso-server/internal/event_bus"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/Antonellome/riso-server/pkg/settings"
	log "github.com/sirupsen/logrus"
)

// Snapshot is the export document: the whole report collection plus the
// active settings. The field names match the mobile app's export format so
// a snapshot can be imported there unchanged.
type Snapshot struct {
	Settings   settings.AppSettings `json:"settings"`
	Reports    []report.Report      `json:"reports"`
	ExportDate string               `json:"exportDate"`
}

type Service interface {
	// WriteSnapshot exports the current data to a dated file under the
	// backup directory and returns its path.
	WriteSnapshot(ctx context.Context) (string, error)
	// Register subscribes the service to report lifecycle events so every
	// mutation refreshes the day's snapshot.
	Register(bus *event_bus.EventBus)
}

type ServiceImpl struct {
	reportService   report.Service
	settingsService settings.Service
	clock           utils.Clock
	dir             string
}

func NewService(reportService report.Service, settingsService settings.Service, clock utils.Clock, dir string) *ServiceImpl {
	return &ServiceImpl{
		reportService:   reportService,
		settingsService: settingsService,
		clock:           clock,
		dir:             dir,
	}
}

func (s *ServiceImpl) WriteSnapshot(ctx context.Context) (string, error) {
	reports, err := s.reportService.ListAll(ctx)
	if err != nil {
		return "", err
	}
	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	snapshot := Snapshot{
		Settings:   appSettings,
		Reports:    reports,
		ExportDate: now.Format(time.RFC3339),
	}
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode backup snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create backup directory: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("backup-%s.json", utils.ISODate(now)))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return "", fmt.Errorf("could not write backup snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("could not finalize backup snapshot: %w", err)
	}
	log.Debugf("wrote backup snapshot with %d reports to %s", len(reports), path)
	return path, nil
}

func (s *ServiceImpl) Register(bus *event_bus.EventBus) {
	handler := func(e event_bus.EventT[event_bus.ReportEvent]) error {
		if _, err := s.WriteSnapshot(e.Context()); err != nil {
			return fmt.Errorf("could not back up after report change: %w", err)
		}
		return nil
	}
	event_bus.SubscribeTyped(bus, event_bus.ReportCreated, handler)
	event_bus.SubscribeTyped(bus, event_bus.ReportUpdated, handler)
	event_bus.SubscribeTyped(bus, event_bus.ReportDeleted, handler)
}
