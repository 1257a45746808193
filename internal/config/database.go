package config

import (
	"database/sql"

	"github.com/ferdian3456/postapi/internal/repository"
	"github.com/ferdian3456/postapi/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database holds whichever connection DB_DRIVER selected.
type Database struct {
	Driver string
	Pool   *pgxpool.Pool
	SQL    *sql.DB
}

func NewDatabase(config *koanf.Koanf, log *zap.Logger) *Database {
	driver := config.String("DB_DRIVER")

	switch driver {
	case DriverPostgres:
		return &Database{Driver: driver, Pool: NewPostgresqlPool(config, log)}
	case DriverSQLite:
		return &Database{Driver: driver, SQL: NewSQLite(config, log)}
	default:
		log.Fatal("unsupported database driver", zap.String("driver", driver))
	}

	return nil
}

func (database *Database) PostStore(log *zap.Logger) usecase.PostStore {
	if database.Driver == DriverSQLite {
		return repository.NewSQLPostRepository(log, database.SQL)
	}

	return repository.NewPostRepository(log, database.Pool)
}

func (database *Database) UserStore(log *zap.Logger) usecase.UserStore {
	if database.Driver == DriverSQLite {
		return repository.NewSQLUserRepository(log, database.SQL)
	}

	return repository.NewUserRepository(log, database.Pool)
}

func (database *Database) Close() {
	if database.Pool != nil {
		database.Pool.Close()
	}

	if database.SQL != nil {
		_ = database.SQL.Close()
	}
}
