package main

import (
	"github.com/questx-lab/person-api/config"
	"github.com/questx-lab/person-api/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(c *cli.Context) error {
	if err := s.loadContext(c); err != nil {
		return err
	}

	if s.configs.Database.Driver == config.SQLite {
		s.logger.Infof("Creating tables with gorm for sqlite")
		return migration.AutoMigrate(s.ctx)
	}

	if steps := c.Int("down"); steps > 0 {
		s.logger.Infof("Reverting %d migrations", steps)
		return migration.Down(s.ctx, steps)
	}

	s.logger.Infof("Applying migrations")
	return migration.Up(s.ctx)
}
