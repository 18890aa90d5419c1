package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "person-api"
	app.Usage = "CRUD service for persons"
	app.Flags = globalFlags()
	app.Commands = []*cli.Command{
		{
			Action:   server.startApi,
			Name:     "api",
			Usage:    "Start service api",
			Category: "Api",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "port",
					Usage:   "port of the api server",
					EnvVars: []string{"API_PORT", "PORT"},
				},
				&cli.BoolFlag{
					Name:    "auto-migrate",
					Usage:   "create or alter tables with gorm before serving, always on for sqlite",
					EnvVars: []string{"AUTO_MIGRATE"},
				},
			},
			Description: `Serves the /api/persons REST endpoints, /health and /metrics.`,
		},
		{
			Action:   server.startMigrate,
			Name:     "migrate",
			Usage:    "Apply database migrations",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "down",
					Usage: "revert the given number of migrations instead of applying pending ones",
				},
			},
			Description: `Applies the versioned SQL migrations of the configured MySQL or PostgreSQL
database. For SQLite the tables are created by gorm.`,
		},
	}

	s.app = app
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path of the toml config file", EnvVars: []string{"CONFIG_FILE"}},
		&cli.StringFlag{Name: "env", Usage: "local or prod", EnvVars: []string{"ENV"}},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", EnvVars: []string{"LOG_LEVEL"}},
		&cli.StringFlag{Name: "db-driver", Usage: "mysql, postgres or sqlite", EnvVars: []string{"DB_DRIVER"}},
		&cli.StringFlag{Name: "db-host", EnvVars: []string{"DB_HOST"}},
		&cli.StringFlag{Name: "db-port", EnvVars: []string{"DB_PORT"}},
		&cli.StringFlag{Name: "db-name", EnvVars: []string{"DB_NAME"}},
		&cli.StringFlag{Name: "db-user", EnvVars: []string{"DB_USER"}},
		&cli.StringFlag{Name: "db-password", EnvVars: []string{"DB_PASSWORD"}},
		&cli.StringFlag{Name: "sqlite-path", EnvVars: []string{"SQLITE_PATH"}},
	}
}
