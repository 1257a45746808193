package config

import (
	"errors"
	"fmt"

	"github.com/ferdian3456/postapi/db"
	"github.com/golang-migrate/migrate/v4"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// RunMigration brings the schema of the selected database up to date.
func RunMigration(database *Database, config *koanf.Koanf, log *zap.Logger) error {
	var m *migrate.Migrate
	var err error

	switch database.Driver {
	case DriverSQLite:
		m, err = db.NewSQLiteMigrate(database.SQL)
	default:
		m, err = db.NewPostgresMigrate(config.String("POSTGRES_URL"))
	}
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if database.Driver != DriverSQLite {
		defer func() { _, _ = m.Close() }()
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("database schema already in latest version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("database migrations completed", zap.Uint("version", version))

	return nil
}
