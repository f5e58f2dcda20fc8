package db

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tsenart/nap"
)

// Open connects to the sqlite database at dsn and brings its schema up to
// date.
func Open(dsn string) (*nap.DB, error) {
	conn, err := nap.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// sqlite serializes writers; one connection avoids SQLITE_BUSY.
	conn.Master().SetMaxOpenConns(1)

	if err := Migrate(conn.Master()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return conn, nil
}
