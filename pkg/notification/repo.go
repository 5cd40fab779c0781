package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/Antonellome/riso-server/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

const notificationsKey = "notifications"

type Repo interface {
	List(ctx context.Context) ([]Notification, error)
	// Add assigns the id, date and timestamp, then persists the whole
	// collection.
	Add(ctx context.Context, n Notification) (Notification, error)
	MarkRead(ctx context.Context, id string) (Notification, error)
	Delete(ctx context.Context, id string) error
}

// StoreRepo keeps the notification collection in memory and writes it back
// whole on every mutation, like the report store does.
type StoreRepo struct {
	store  storage.Store
	clock  utils.Clock
	mu     sync.Mutex
	loaded bool
	data   []Notification
}

func NewStoreRepo(store storage.Store, clock utils.Clock) *StoreRepo {
	return &StoreRepo{store: store, clock: clock}
}

// load reads the collection from storage. Callers must hold the mutex.
func (r *StoreRepo) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	body, found, err := r.store.Load(ctx, notificationsKey)
	if err != nil {
		return fmt.Errorf("could not load notifications: %w", err)
	}
	if found {
		if err := json.Unmarshal([]byte(body), &r.data); err != nil {
			err := fmt.Errorf("could not parse stored notifications: %w", err)
			log.Error(err)
			return err
		}
	}
	r.loaded = true
	return nil
}

// persist writes the whole collection back. Callers must hold the mutex.
func (r *StoreRepo) persist(ctx context.Context) error {
	body, err := json.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("could not encode notifications: %w", err)
	}
	return r.store.Save(ctx, notificationsKey, string(body))
}

func (r *StoreRepo) List(ctx context.Context) ([]Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	out := make([]Notification, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *StoreRepo) Add(ctx context.Context, notification Notification) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return Notification{}, err
	}

	now := r.clock.Now()
	notification.ID = uuid.NewString()
	notification.Date = utils.ISODate(now)
	notification.Timestamp = now.UnixMilli()
	notification.Read = false

	r.data = append(r.data, notification)
	if err := r.persist(ctx); err != nil {
		r.data = r.data[:len(r.data)-1]
		return Notification{}, err
	}
	return notification, nil
}

func (r *StoreRepo) MarkRead(ctx context.Context, id string) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return Notification{}, err
	}
	idx := r.find(id)
	if idx < 0 {
		return Notification{}, ErrNotificationNotFound
	}

	previous := r.data[idx]
	r.data[idx].Read = true
	if err := r.persist(ctx); err != nil {
		r.data[idx] = previous
		return Notification{}, err
	}
	return r.data[idx], nil
}

func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return err
	}
	idx := r.find(id)
	if idx < 0 {
		return ErrNotificationNotFound
	}

	previous := r.data
	r.data = append(append([]Notification{}, r.data[:idx]...), r.data[idx+1:]...)
	if err := r.persist(ctx); err != nil {
		r.data = previous
		return err
	}
	return nil
}

// find returns the index of the notification with the given id, or -1.
// Callers must hold the mutex.
func (r *StoreRepo) find(id string) int {
	for idx, notification := range r.data {
		if notification.ID == id {
			return idx
		}
	}
	return -1
}
