package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// FileStore keeps each collection as a JSON file in a directory, mirroring
// the key-value files the mobile app kept on device.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		err := fmt.Errorf("could not load document %q: %w", key, err)
		log.Error(err)
		return "", false, err
	}
	return string(data), true, nil
}

func (s *FileStore) Save(ctx context.Context, key string, body string) error {
	// Write to a temp file and rename so a crash mid-write cannot truncate
	// the current document.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0o644); err != nil {
		err := fmt.Errorf("%w: %q: %v", ErrSaveFailed, key, err)
		log.Error(err)
		return err
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		err := fmt.Errorf("%w: %q: %v", ErrSaveFailed, key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		err := fmt.Errorf("could not delete document %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
