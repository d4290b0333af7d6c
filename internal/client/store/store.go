// Package store is the JSON view over the raw record repository. Values are
// marshalled on write and decoded on read; undecodable values read as absent.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/dmitrijs2005/sitekeeper/internal/client/repositories/records"
	"github.com/dmitrijs2005/sitekeeper/internal/dbx"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// Stable record keys.
const (
	KeyTheme     = "theme"
	KeyLanguage  = "language"
	KeyUsers     = "users_db"
	KeyProjects  = "projects"
	KeyInventory = "inventory"
	KeyStaff     = "staff"
	KeyTasks     = "tasks"
)

// Store reads and writes JSON values by key.
type Store struct {
	db   *sql.DB
	repo records.Repository
	log  logging.Logger

	// newRepo builds a repository bound to a transaction; replaced in tests.
	newRepo func(dbx.DBTX) records.Repository
}

func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:      db,
		repo:    records.NewSQLiteRepository(db),
		log:     log,
		newRepo: func(tx dbx.DBTX) records.Repository { return records.NewSQLiteRepository(tx) },
	}
}

// Read decodes the value stored under key into dst and reports whether one
// was found. dst must be a non-nil pointer. A value that fails to decode is
// logged and reported as absent, and dst is left untouched; only repository
// failures are returned as errors.
func (s *Store) Read(ctx context.Context, key string, dst any) (bool, error) {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return false, fmt.Errorf("read %s: destination must be a non-nil pointer, got %T", key, dst)
	}

	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	// json.Unmarshal fills what it can before failing, so decode aside.
	fresh := reflect.New(target.Type().Elem())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		s.log.Warn(ctx, "ignoring corrupt record", "key", key, "error", err)
		return false, nil
	}
	target.Elem().Set(fresh.Elem())
	return true, nil
}

// Write stores value under key, replacing any previous value.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, raw)
}

// WriteAll stores every entry of values in a single transaction.
func (s *Store) WriteAll(ctx context.Context, values map[string]any) error {
	keys := make([]string, 0, len(values))
	encoded := make(map[string][]byte, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		keys = append(keys, k)
		encoded[k] = raw
	}
	sort.Strings(keys)

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		for _, k := range keys {
			if err := repo.Set(ctx, k, encoded[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Raw returns the stored bytes for key, or nil when absent.
func (s *Store) Raw(ctx context.Context, key string) ([]byte, error) {
	return s.repo.Get(ctx, key)
}

// Keys lists the keys currently stored.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	return s.repo.Keys(ctx)
}
