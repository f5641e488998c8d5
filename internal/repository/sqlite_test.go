package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"

	"modernc.org/sqlite"

	"github.com/harshmriduhash/iq-procure-assist/gen/ent"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/enttest"
)

// sqliteDriver adapts modernc's CGO-free driver to the "sqlite3" name Ent's
// sqlite dialect expects.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// openTestClient returns an Ent client on a private in-memory database with
// the schema migrated.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("closing test client: %v", err)
		}
	})
	return client
}

func testRepo(t *testing.T) (ComparisonRepository, context.Context) {
	t.Helper()
	return NewComparisonRepository(openTestClient(t), nil), context.Background()
}
