package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/questx-lab/person-api/config"
	"github.com/questx-lab/person-api/internal/entity"
	"github.com/questx-lab/person-api/pkg/logger"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

//go:embed mysql/*.sql postgres/*.sql
var migrationFS embed.FS

// Up applies every pending versioned migration of the configured database.
func Up(ctx context.Context) error {
	m, err := newMigrator(ctx)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Down reverts the given number of migrations.
func Down(ctx context.Context, steps int) error {
	m, err := newMigrator(ctx)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// AutoMigrate lets gorm create the tables. Used for SQLite, which has no versioned
// migrations.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}

func newMigrator(ctx context.Context) (*migrate.Migrate, error) {
	cfg := xcontext.Configs(ctx).Database

	db, err := xcontext.DB(ctx).DB()
	if err != nil {
		return nil, err
	}

	var driver database.Driver
	switch cfg.Driver {
	case config.MySQL:
		driver, err = mysql.WithInstance(db, &mysql.Config{DatabaseName: cfg.Database})
	case config.Postgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{DatabaseName: cfg.Database})
	default:
		return nil, fmt.Errorf("no versioned migrations for driver %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationFS, cfg.Driver)
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Database, driver)
	if err != nil {
		return nil, err
	}

	m.Log = &migrateLogger{logger: xcontext.Logger(ctx)}
	return m, nil
}

type migrateLogger struct {
	logger logger.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
