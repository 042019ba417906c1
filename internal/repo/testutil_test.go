package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// newTestDriver returns an embedded driver over a private in-memory database.
func newTestDriver(t *testing.T) *SQLiteDriver {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	d, err := NewSQLiteDriver(db)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}
	t.Cleanup(func() { _ = d.Close(context.Background()) })
	return d
}
