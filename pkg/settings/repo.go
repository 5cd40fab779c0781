package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Antonellome/riso-server/internal/storage"
	log "github.com/sirupsen/logrus"
)

const settingsKey = "settings"

type Repo interface {
	// Get returns the stored settings document; the second return value is
	// false when none has been stored yet.
	Get(ctx context.Context) (AppSettings, bool, error)
	Save(ctx context.Context, settings AppSettings) error
}

type StoreRepo struct {
	store storage.Store
}

func NewStoreRepo(store storage.Store) *StoreRepo {
	return &StoreRepo{store: store}
}

func (r *StoreRepo) Get(ctx context.Context) (AppSettings, bool, error) {
	body, found, err := r.store.Load(ctx, settingsKey)
	if err != nil {
		return AppSettings{}, false, fmt.Errorf("could not load settings: %w", err)
	}
	if !found {
		return AppSettings{}, false, nil
	}

	var settings AppSettings
	if err := json.Unmarshal([]byte(body), &settings); err != nil {
		err := fmt.Errorf("could not parse stored settings: %w", err)
		log.Error(err)
		return AppSettings{}, false, err
	}
	return settings, true, nil
}

func (r *StoreRepo) Save(ctx context.Context, settings AppSettings) error {
	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	return r.store.Save(ctx, settingsKey, string(body))
}
