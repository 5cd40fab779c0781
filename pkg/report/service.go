package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Antonellome/riso-server/internal/event_bus"
	"github.com/Antonellome/riso-server/internal/storage"
	log "github.com/sirupsen/logrus"
)

const recentTechniciansKey = "recent_technicians"
const recentTechniciansLimit = 20

// SearchQuery selects one filter dimension; date range, month prefix, ship
// and location are mutually exclusive in the app's search screen and are
// applied in that order of precedence here.
type SearchQuery struct {
	DateFrom string
	DateTo   string
	Month    string
	Ship     string
	Location string
}

type Service interface {
	Create(ctx context.Context, r Report) (Report, error)
	Update(ctx context.Context, id string, r Report) (Report, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Report, error)
	ListAll(ctx context.Context) ([]Report, error)
	// Search returns matching reports sorted by date, newest first.
	Search(ctx context.Context, query SearchQuery) ([]Report, error)
	// RecentTechnicians returns the most recently logged co-worker names,
	// newest first, at most 20 entries.
	RecentTechnicians(ctx context.Context) ([]string, error)
}

type ServiceImpl struct {
	repo  Repo
	store storage.Store
	bus   *event_bus.EventBus

	recentMu sync.Mutex
}

func NewService(repo Repo, store storage.Store, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, store: store, bus: bus}
}

func (s *ServiceImpl) Create(ctx context.Context, r Report) (Report, error) {
	created, err := s.repo.Add(ctx, r)
	if err != nil {
		return Report{}, err
	}
	s.rememberTechnicians(ctx, created.Technicians)
	s.publish(ctx, event_bus.ReportCreated, created)
	return created, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, r Report) (Report, error) {
	updated, err := s.repo.Update(ctx, id, r)
	if err != nil {
		return Report{}, err
	}
	s.rememberTechnicians(ctx, updated.Technicians)
	s.publish(ctx, event_bus.ReportUpdated, updated)
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event_bus.ReportDeleted, deleted)
	return nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Report, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Search(ctx context.Context, query SearchQuery) ([]Report, error) {
	var reports []Report
	var err error
	switch {
	case query.DateFrom != "" || query.DateTo != "":
		reports, err = s.repo.FilterByDateRange(ctx, query.DateFrom, query.DateTo)
	case query.Month != "":
		reports, err = s.repo.FilterByMonth(ctx, query.Month)
	case query.Ship != "":
		reports, err = s.repo.FilterByShip(ctx, query.Ship)
	case query.Location != "":
		reports, err = s.repo.FilterByLocation(ctx, query.Location)
	default:
		reports, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date > reports[j].Date
	})
	return reports, nil
}

func (s *ServiceImpl) RecentTechnicians(ctx context.Context) ([]string, error) {
	s.recentMu.Lock()
	defer s.recentMu.Unlock()
	return s.loadRecent(ctx)
}

func (s *ServiceImpl) loadRecent(ctx context.Context) ([]string, error) {
	body, found, err := s.store.Load(ctx, recentTechniciansKey)
	if err != nil {
		return nil, fmt.Errorf("could not load recent technicians: %w", err)
	}
	names := []string{}
	if found {
		if err := json.Unmarshal([]byte(body), &names); err != nil {
			return nil, fmt.Errorf("could not parse recent technicians: %w", err)
		}
	}
	return names, nil
}

// rememberTechnicians moves the report's co-worker names to the front of the
// recent list. Failures are logged only; the report mutation has already
// succeeded.
func (s *ServiceImpl) rememberTechnicians(ctx context.Context, technicians []Technician) {
	names := make([]string, 0, len(technicians))
	for _, t := range technicians {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return
	}

	s.recentMu.Lock()
	defer s.recentMu.Unlock()

	recent, err := s.loadRecent(ctx)
	if err != nil {
		log.Warnf("skipping recent technicians update: %v", err)
		return
	}

	updated := append([]string{}, names...)
	for _, name := range recent {
		if !contains(names, name) {
			updated = append(updated, name)
		}
	}
	if len(updated) > recentTechniciansLimit {
		updated = updated[:recentTechniciansLimit]
	}

	body, err := json.Marshal(updated)
	if err != nil {
		log.Warnf("could not encode recent technicians: %v", err)
		return
	}
	if err := s.store.Save(ctx, recentTechniciansKey, string(body)); err != nil {
		log.Warnf("could not save recent technicians: %v", err)
	}
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, r Report) {
	if s.bus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, eventType, event_bus.ReportEvent{ReportId: r.ID, Date: r.Date})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("report event handlers failed: %v", err)
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
