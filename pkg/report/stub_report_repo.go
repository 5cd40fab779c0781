package report

import (
	"context"
	"strconv"
	"strings"
)

// StubRepo is an in-memory Repo for tests of services that depend on the
// report store.
type StubRepo struct {
	nextId int
	data   []Report
}

func NewStubRepo() *StubRepo {
	return &StubRepo{}
}

func (s *StubRepo) Load(ctx context.Context) error {
	return nil
}

func (s *StubRepo) List(ctx context.Context) ([]Report, error) {
	out := make([]Report, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *StubRepo) Get(ctx context.Context, id string) (Report, error) {
	for _, r := range s.data {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrReportNotFound
}

func (s *StubRepo) Add(ctx context.Context, r Report) (Report, error) {
	s.nextId++
	r.ID = "report-" + strconv.Itoa(s.nextId)
	s.data = append(s.data, r)
	return r, nil
}

func (s *StubRepo) Update(ctx context.Context, id string, r Report) (Report, error) {
	for idx := range s.data {
		if s.data[idx].ID == id {
			r.ID = id
			r.CreatedAt = s.data[idx].CreatedAt
			s.data[idx] = r
			return r, nil
		}
	}
	return Report{}, ErrReportNotFound
}

func (s *StubRepo) Delete(ctx context.Context, id string) error {
	for idx := range s.data {
		if s.data[idx].ID == id {
			s.data = append(s.data[:idx], s.data[idx+1:]...)
			return nil
		}
	}
	return ErrReportNotFound
}

func (s *StubRepo) FilterByDateRange(ctx context.Context, from, to string) ([]Report, error) {
	return s.filter(func(r Report) bool {
		return (from == "" || r.Date >= from) && (to == "" || r.Date <= to)
	})
}

func (s *StubRepo) FilterByMonth(ctx context.Context, month string) ([]Report, error) {
	return s.filter(func(r Report) bool { return strings.HasPrefix(r.Date, month) })
}

func (s *StubRepo) FilterByShip(ctx context.Context, ship string) ([]Report, error) {
	return s.filter(func(r Report) bool { return r.Ship == ship })
}

func (s *StubRepo) FilterByLocation(ctx context.Context, location string) ([]Report, error) {
	return s.filter(func(r Report) bool { return r.Location == location })
}

func (s *StubRepo) filter(keep func(Report) bool) ([]Report, error) {
	out := make([]Report, 0, len(s.data))
	for _, r := range s.data {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *StubRepo) Cleanup() {
	s.data = nil
	s.nextId = 0
}
