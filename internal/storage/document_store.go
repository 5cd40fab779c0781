package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Antonellome/riso-server/internal/utils"
	log "github.com/sirupsen/logrus"
)

// DocumentStore keeps each collection as one row in the document table.
type DocumentStore struct {
	db     *sql.DB
	driver string
	clock  utils.Clock
}

func NewDocumentStore(db *sql.DB, driver string) *DocumentStore {
	return &DocumentStore{db: db, driver: driver, clock: &utils.SystemClock{}}
}

func (s *DocumentStore) Load(ctx context.Context, key string) (string, bool, error) {
	query := s.rebind("SELECT body FROM document WHERE doc_key = ?")
	row := s.db.QueryRowContext(ctx, query, key)

	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		err := fmt.Errorf("could not load document %q: %w", key, err)
		log.Error(err)
		return "", false, err
	}
	return body, true, nil
}

func (s *DocumentStore) Save(ctx context.Context, key string, body string) error {
	query := s.rebind(`INSERT INTO document (doc_key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (doc_key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, key, body, s.clock.Now().UnixMilli()); err != nil {
		err := fmt.Errorf("%w: %q: %v", ErrSaveFailed, key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	query := s.rebind("DELETE FROM document WHERE doc_key = ?")
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		err := fmt.Errorf("could not delete document %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

// rebind rewrites ? placeholders to the $n form the postgres driver expects.
func (s *DocumentStore) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
