// Package db embeds the schema migrations for every supported database driver.
package db

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS

func NewPostgresMigrate(postgresURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(Migrations, "migrations/postgres")
	if err != nil {
		return nil, err
	}

	return migrate.NewWithSourceInstance("iofs", source, postgresURL)
}

// NewSQLiteMigrate shares the handle with the repositories, so the returned
// instance must not be closed while the database is in use.
func NewSQLiteMigrate(sqlDB *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(Migrations, "migrations/sqlite")
	if err != nil {
		return nil, err
	}

	driver, err := sqlite.WithInstance(sqlDB, &sqlite.Config{})
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, "sqlite", driver)
}
