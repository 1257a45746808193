package config

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

func NewSQLite(config *koanf.Koanf, log *zap.Logger) *sql.DB {
	path := config.String("SQLITE_PATH")

	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			log.Fatal("failed to create sqlite directory", zap.Error(err))
		}
	}

	db, err := OpenSQLite(path)
	if err != nil {
		log.Fatal("failed to open sqlite database", zap.Error(err))
	}

	err = db.PingContext(context.Background())
	if err != nil {
		log.Fatal("failed to ping sqlite database", zap.Error(err))
	}

	return db
}

// OpenSQLite opens a single-connection handle so writers never hit SQLITE_BUSY.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	return db, nil
}
