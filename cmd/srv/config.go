package main

import (
	"github.com/questx-lab/person-api/config"
	"github.com/urfave/cli/v2"
)

func (s *srv) loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	overrideString(c, "env", &cfg.Env)
	overrideString(c, "log-level", &cfg.LogLevel)
	overrideString(c, "db-driver", &cfg.Database.Driver)
	overrideString(c, "db-host", &cfg.Database.Host)
	overrideString(c, "db-port", &cfg.Database.Port)
	overrideString(c, "db-name", &cfg.Database.Database)
	overrideString(c, "db-user", &cfg.Database.User)
	overrideString(c, "db-password", &cfg.Database.Password)
	overrideString(c, "sqlite-path", &cfg.Database.SQLitePath)
	overrideString(c, "port", &cfg.ApiServer.Port)

	s.configs = &cfg
	return nil
}

// overrideString replaces the value from the config file when the flag or its
// environment variable is set.
func overrideString(c *cli.Context, name string, target *string) {
	if c.IsSet(name) {
		*target = c.String(name)
	}
}
