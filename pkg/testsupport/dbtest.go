package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-agency-site/internal/storage"
)

// NewSQLiteDB opens a named shared-cache in-memory sqlite database, creates
// the tables of models and closes the database when the test ends.
func NewSQLiteDB(t testing.TB, name string, models ...any) *bun.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := storage.Open(ctx, storage.Config{
		Driver: storage.DriverSQLite,
		DSN:    "file:" + name + "?mode=memory&cache=shared&_fk=1",
	})
	if err != nil {
		t.Fatalf("open sqlite %s: %v", name, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.Migrate(ctx, db, models...); err != nil {
		t.Fatalf("migrate %s: %v", name, err)
	}
	return db
}
