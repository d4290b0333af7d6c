package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitekeeper/internal/client/storage"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.New(db, logging.Nop())
}

func lightBackground() bool { return false }

func newTestState(t *testing.T, s RecordStore) *State {
	t.Helper()
	st, err := NewState(context.Background(), s, logging.Nop(), WithDarkBackground(lightBackground))
	require.NoError(t, err)
	return st
}

// flakyStore wraps a RecordStore and can fail reads or writes on demand.
type flakyStore struct {
	RecordStore

	ReadErr     error
	WriteErr    error
	WriteAllErr error

	Writes    []string
	LastWrite any
}

func (f *flakyStore) Read(ctx context.Context, key string, dst any) (bool, error) {
	if f.ReadErr != nil {
		return false, f.ReadErr
	}
	return f.RecordStore.Read(ctx, key, dst)
}

func (f *flakyStore) Write(ctx context.Context, key string, value any) error {
	f.Writes = append(f.Writes, key)
	f.LastWrite = value
	if f.WriteErr != nil {
		return f.WriteErr
	}
	return f.RecordStore.Write(ctx, key, value)
}

func (f *flakyStore) WriteAll(ctx context.Context, values map[string]any) error {
	if f.WriteAllErr != nil {
		return f.WriteAllErr
	}
	return f.RecordStore.WriteAll(ctx, values)
}

// captureLogger records warnings.
type captureLogger struct {
	Warns []string
}

func (c *captureLogger) Debug(context.Context, string, ...any) {}
func (c *captureLogger) Info(context.Context, string, ...any)  {}
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any) {
	c.Warns = append(c.Warns, msg)
}
func (c *captureLogger) Error(context.Context, string, ...any) {}
func (c *captureLogger) With(...any) logging.Logger            { return c }

var errDisk = errors.New("disk full")
