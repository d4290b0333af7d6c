package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitekeeper/internal/client/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "theme", []byte(`"dark"`)))

	v, err := r.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"dark"`), v)
}

func TestGet_Absent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "language", []byte(`"EN"`)))
	require.NoError(t, r.Set(ctx, "language", []byte(`"HI"`)))

	v, err := r.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"HI"`), v)

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"language"}, keys)
}

func TestKeys_Sorted(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, k := range []string{"tasks", "inventory", "projects"} {
		require.NoError(t, r.Set(ctx, k, []byte(`[]`)))
	}

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory", "projects", "tasks"}, keys)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM records WHERE key = ?`)).
		WithArgs("theme").WillReturnError(boom)
	_, err = r.Get(ctx, "theme")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to get record[theme]")

	mock.ExpectExec(`INSERT INTO records`).WithArgs("theme", []byte("x")).WillReturnError(boom)
	err = r.Set(ctx, "theme", []byte("x"))
	require.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key FROM records ORDER BY key`)).WillReturnError(boom)
	_, err = r.Keys(ctx)
	require.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key FROM records ORDER BY key`)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("a").RowError(0, boom))
	_, err = r.Keys(ctx)
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
