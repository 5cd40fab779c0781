package settings

import (
	"context"
	"errors"
	"time"

	"github.com/Antonellome/riso-server/pkg/rates"
)

// ErrInvalidWeekFirstDay rejects settings whose week start is not a weekday
// in the Sunday..Saturday range; an out-of-range value would push the
// statistics week window into the future.
var ErrInvalidWeekFirstDay = errors.New("week first day must be between Sunday (0) and Saturday (6)")

type Service interface {
	// Get returns the stored settings, or the configured defaults when
	// nothing has been stored yet.
	Get(ctx context.Context) (AppSettings, error)
	Put(ctx context.Context, settings AppSettings) error
	// CurrentRates builds the rate table from the active settings.
	CurrentRates(ctx context.Context) (rates.Table, error)
}

type ServiceImpl struct {
	repo     Repo
	defaults AppSettings
}

func NewService(repo Repo, defaults AppSettings) *ServiceImpl {
	return &ServiceImpl{repo: repo, defaults: defaults}
}

func (s *ServiceImpl) Get(ctx context.Context) (AppSettings, error) {
	stored, found, err := s.repo.Get(ctx)
	if err != nil {
		return AppSettings{}, err
	}
	if !found {
		return s.defaults, nil
	}
	return stored, nil
}

func (s *ServiceImpl) Put(ctx context.Context, settings AppSettings) error {
	if settings.WeekFirstDay < time.Sunday || settings.WeekFirstDay > time.Saturday {
		return ErrInvalidWeekFirstDay
	}
	return s.repo.Save(ctx, settings)
}

func (s *ServiceImpl) CurrentRates(ctx context.Context) (rates.Table, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return rates.Table{}, err
	}
	return rates.NewTable(settings.Work.HourlyRates), nil
}
