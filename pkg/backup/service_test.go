package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Antonellome/riso-server/internal/config"
	"github.com/Antonellome/riso-server/internal/event_bus"
	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/Antonellome/riso-server/pkg/report"
	"github.com/Antonellome/riso-server/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBackup(t *testing.T) (context.Context, *ServiceImpl, report.Service, string) {
	ctx := context.Background()
	dir := t.TempDir()
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)}
	bus := event_bus.NewEventBus()
	reportService := report.NewService(report.NewStoreRepo(storage.NewStubStore(), clock), storage.NewStubStore(), bus)
	settingsService := settings.NewService(settings.NewStoreRepo(storage.NewStubStore()), settings.DefaultsFromConfig(config.Work{}))
	service := NewService(reportService, settingsService, clock, dir)
	service.Register(bus)
	return ctx, service, reportService, dir
}

func TestServiceImpl_WriteSnapshot(t *testing.T) {
	ctx, service, reportService, _ := setupBackup(t)

	created, err := reportService.Create(ctx, report.Report{Date: "2025-03-03", ShiftType: report.ShiftOrdinary})
	require.NoError(t, err)

	path, err := service.WriteSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backup-2025-03-03.json", filepath.Base(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	require.Len(t, snapshot.Reports, 1)
	assert.Equal(t, created.ID, snapshot.Reports[0].ID)
	assert.Equal(t, "2025-03-03T18:00:00Z", snapshot.ExportDate)
}

func TestServiceImpl_SnapshotWrittenOnReportEvents(t *testing.T) {
	ctx, _, reportService, dir := setupBackup(t)

	created, err := reportService.Create(ctx, report.Report{Date: "2025-03-03", ShiftType: report.ShiftOrdinary})
	require.NoError(t, err)

	path := filepath.Join(dir, "backup-2025-03-03.json")
	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	require.Len(t, snapshot.Reports, 1)

	require.NoError(t, reportService.Delete(ctx, created.ID))

	body, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &snapshot))
	assert.Empty(t, snapshot.Reports)
}
