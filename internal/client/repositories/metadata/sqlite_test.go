package metadata

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "ns")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", "tok-1"))

	v, ok, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", v)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "ns")

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "ns")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestEmptyValueIsPresent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "ns")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", ""))
	v, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestDelete_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), "ns")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Delete(ctx, "x"))

	_, ok, err := r.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestNamespacesAreIsolated(t *testing.T) {
	db := setupDB(t)
	a := NewSQLiteRepository(db, "a")
	b := NewSQLiteRepository(db, "b")
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "k", "from-a"))
	require.NoError(t, b.Set(ctx, "k", "from-b"))
	require.NoError(t, b.Set(ctx, "only-b", "1"))

	_, ok, err := a.Get(ctx, "only-b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Delete(ctx, "k"))
	v, ok, err := a.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-a", v)
}

func TestDBErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, "ns")
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	require.ErrorContains(t, r.Set(ctx, "k", "v"), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
}

func TestGet_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE namespace = ? AND key = ?`)).
		WithArgs("ns", "k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(nil))

	_, _, err = NewSQLiteRepository(db, "ns").Get(context.Background(), "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("ns", "k", "v").
		WillReturnError(errors.New("disk I/O error"))

	err = NewSQLiteRepository(db, "ns").Set(context.Background(), "k", "v")
	require.ErrorContains(t, err, "failed to set metadata[k]")
	require.ErrorContains(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Failure(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db)
	require.ErrorContains(t, err, "failed to run migrations")
}
