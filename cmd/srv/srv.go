package main

import (
	"context"
	"net/http"

	"github.com/questx-lab/person-api/config"
	"github.com/questx-lab/person-api/internal/domain"
	"github.com/questx-lab/person-api/internal/repository"
	"github.com/questx-lab/person-api/pkg/dateutil"
	"github.com/questx-lab/person-api/pkg/logger"
	"github.com/questx-lab/person-api/pkg/router"
	"github.com/questx-lab/person-api/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	personRepo   repository.PersonRepository
	personDomain domain.PersonDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	s.logger = logger.NewZapLogger(s.configs.LogLevel, s.configs.Env == "local")
}

// loadContext prepares the context shared by commands: configs, logger and database.
func (s *srv) loadContext(c *cli.Context) error {
	if err := s.loadConfig(c); err != nil {
		return err
	}
	s.loadLogger()

	db, err := s.newDatabase()
	if err != nil {
		return err
	}
	s.db = db

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, *s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
	s.ctx = xcontext.WithDB(s.ctx, s.db)
	return nil
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := s.configs.Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.MySQL:
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(), // data source name
			DefaultStringSize:         256,                    // default size for string fields
			DisableDatetimePrecision:  false,                  // keep millisecond timestamps
			DontSupportRenameIndex:    true,                   // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,                   // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false,                  // auto configure based on currently MySQL version
		})
	case config.Postgres:
		dialector = postgres.Open(cfg.ConnectionString())
	default:
		dialector = sqlite.Open(cfg.ConnectionString())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(s.logger, cfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.Driver == config.SQLite {
		// sqlite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func (s *srv) loadRepos() {
	s.personRepo = repository.NewPersonRepository()
}

func (s *srv) loadDomains() {
	s.personDomain = domain.NewPersonDomain(s.personRepo, dateutil.NewSystemClock())
}
