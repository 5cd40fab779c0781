package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrReportNotFound is returned by Update and Delete for unknown ids. The
// mobile app silently ignored those; here they are surfaced.
var ErrReportNotFound = errors.New("report not found")

const reportsKey = "reports"

type Repo interface {
	// Load reads the stored collection into memory. It is called once at
	// startup; the other methods keep memory and storage in sync afterwards.
	Load(ctx context.Context) error
	List(ctx context.Context) ([]Report, error)
	Get(ctx context.Context, id string) (Report, error)
	// Add assigns the id and timestamps, appends the report and persists the
	// whole collection.
	Add(ctx context.Context, r Report) (Report, error)
	// Update replaces all caller-settable fields of the matching report,
	// preserving ID and CreatedAt and refreshing UpdatedAt.
	Update(ctx context.Context, id string, r Report) (Report, error)
	Delete(ctx context.Context, id string) error
	// FilterByDateRange returns reports with from <= date <= to. Either bound
	// may be empty to leave that side open. Bounds are inclusive and compared
	// lexicographically, which is correct for ISO dates.
	FilterByDateRange(ctx context.Context, from, to string) ([]Report, error)
	// FilterByMonth returns reports whose date starts with the "YYYY-MM" prefix.
	FilterByMonth(ctx context.Context, month string) ([]Report, error)
	FilterByShip(ctx context.Context, ship string) ([]Report, error)
	FilterByLocation(ctx context.Context, location string) ([]Report, error)
}

// StoreRepo holds the full collection in memory and writes it back to the
// persistence collaborator as a whole on every mutation. A single mutex
// serializes all read-modify-write sequences, so concurrent callers cannot
// lose updates.
type StoreRepo struct {
	store  storage.Store
	clock  utils.Clock
	mu     sync.Mutex
	loaded bool
	data   []Report
}

func NewStoreRepo(store storage.Store, clock utils.Clock) *StoreRepo {
	return &StoreRepo{store: store, clock: clock}
}

func (r *StoreRepo) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// load reads the collection from storage. Callers must hold the mutex.
func (r *StoreRepo) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	body, found, err := r.store.Load(ctx, reportsKey)
	if err != nil {
		return fmt.Errorf("could not load reports: %w", err)
	}
	if found {
		if err := json.Unmarshal([]byte(body), &r.data); err != nil {
			err := fmt.Errorf("could not parse stored reports: %w", err)
			log.Error(err)
			return err
		}
	}
	r.loaded = true
	log.Debugf("loaded %d reports", len(r.data))
	return nil
}

// persist writes the whole collection back. Callers must hold the mutex.
func (r *StoreRepo) persist(ctx context.Context) error {
	body, err := json.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("could not encode reports: %w", err)
	}
	return r.store.Save(ctx, reportsKey, string(body))
}

func (r *StoreRepo) List(ctx context.Context) ([]Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	out := make([]Report, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *StoreRepo) Get(ctx context.Context, id string) (Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return Report{}, err
	}
	idx := r.find(id)
	if idx < 0 {
		return Report{}, ErrReportNotFound
	}
	return r.data[idx], nil
}

func (r *StoreRepo) Add(ctx context.Context, report Report) (Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return Report{}, err
	}

	now := r.clock.Now().UnixMilli()
	report.ID = uuid.NewString()
	report.CreatedAt = now
	report.UpdatedAt = now
	if report.Technicians == nil {
		report.Technicians = []Technician{}
	}
	for i := range report.Technicians {
		if report.Technicians[i].ID == "" {
			report.Technicians[i].ID = uuid.NewString()
		}
	}

	r.data = append(r.data, report)
	if err := r.persist(ctx); err != nil {
		r.data = r.data[:len(r.data)-1]
		return Report{}, err
	}
	return report, nil
}

func (r *StoreRepo) Update(ctx context.Context, id string, report Report) (Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return Report{}, err
	}
	idx := r.find(id)
	if idx < 0 {
		return Report{}, ErrReportNotFound
	}

	previous := r.data[idx]
	report.ID = previous.ID
	report.CreatedAt = previous.CreatedAt
	report.UpdatedAt = r.clock.Now().UnixMilli()
	if report.Technicians == nil {
		report.Technicians = []Technician{}
	}
	r.data[idx] = report
	if err := r.persist(ctx); err != nil {
		r.data[idx] = previous
		return Report{}, err
	}
	return report, nil
}

func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return err
	}
	idx := r.find(id)
	if idx < 0 {
		return ErrReportNotFound
	}

	previous := r.data
	r.data = append(append([]Report{}, r.data[:idx]...), r.data[idx+1:]...)
	if err := r.persist(ctx); err != nil {
		r.data = previous
		return err
	}
	return nil
}

func (r *StoreRepo) FilterByDateRange(ctx context.Context, from, to string) ([]Report, error) {
	return r.filter(ctx, func(report Report) bool {
		if from != "" && report.Date < from {
			return false
		}
		if to != "" && report.Date > to {
			return false
		}
		return true
	})
}

func (r *StoreRepo) FilterByMonth(ctx context.Context, month string) ([]Report, error) {
	return r.filter(ctx, func(report Report) bool {
		return strings.HasPrefix(report.Date, month)
	})
}

func (r *StoreRepo) FilterByShip(ctx context.Context, ship string) ([]Report, error) {
	return r.filter(ctx, func(report Report) bool {
		return report.Ship == ship
	})
}

func (r *StoreRepo) FilterByLocation(ctx context.Context, location string) ([]Report, error) {
	return r.filter(ctx, func(report Report) bool {
		return report.Location == location
	})
}

func (r *StoreRepo) filter(ctx context.Context, keep func(Report) bool) ([]Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	out := make([]Report, 0, len(r.data))
	for _, report := range r.data {
		if keep(report) {
			out = append(out, report)
		}
	}
	return out, nil
}

// find returns the index of the report with the given id, or -1. Callers must
// hold the mutex.
func (r *StoreRepo) find(id string) int {
	for idx, report := range r.data {
		if report.ID == id {
			return idx
		}
	}
	return -1
}
