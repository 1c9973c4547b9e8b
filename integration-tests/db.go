package integration_tests

import (
	"database/sql"
	"factorrank/internal/util"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/lib/pq"
)

// NewTestDb connects using the test secrets and creates the
// fixture tables when missing
func NewTestDb() (*sql.DB, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to reach db: %w", err)
	}

	_, file, _, _ := runtime.Caller(0)
	schema, err := os.ReadFile(filepath.Join(filepath.Dir(file), "testdata", "schema.sql"))
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, secrets, nil
}
