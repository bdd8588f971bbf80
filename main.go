package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/customeros/notestack/config"
	"github.com/customeros/notestack/internal/database"
	"github.com/customeros/notestack/internal/repository"
	"github.com/customeros/notestack/server"
)

func main() {
	app := &cli.App{
		Name:  "notestack",
		Usage: "turns scanned documents relayed by email into notes",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Run database migrations",
				Action: migrate,
			},
			{
				Name:   "server",
				Usage:  "Start the application server",
				Action: serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (*config.Config, *database.DatabaseConfig, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, nil, err
	}

	dbCfg := &database.DatabaseConfig{
		DBName:          cfg.NotestackDatabaseConfig.DBName,
		Host:            cfg.NotestackDatabaseConfig.Host,
		Port:            cfg.NotestackDatabaseConfig.Port,
		User:            cfg.NotestackDatabaseConfig.User,
		Password:        cfg.NotestackDatabaseConfig.Password,
		MaxConn:         cfg.NotestackDatabaseConfig.MaxConn,
		MaxIdleConn:     cfg.NotestackDatabaseConfig.MaxIdleConn,
		ConnMaxLifetime: cfg.NotestackDatabaseConfig.ConnMaxLifetime,
		LogLevel:        cfg.NotestackDatabaseConfig.LogLevel,
		SSLMode:         cfg.NotestackDatabaseConfig.SSLMode,
	}
	return cfg, dbCfg, nil
}

func migrate(_ *cli.Context) error {
	_, dbCfg, err := setup()
	if err != nil {
		return err
	}

	db, err := database.InitNotestackDatabase(dbCfg)
	if err != nil {
		return err
	}

	if err := repository.MigrateDB(db); err != nil {
		return err
	}
	log.Println("Database migration completed successfully")
	return nil
}

func serve(_ *cli.Context) error {
	cfg, dbCfg, err := setup()
	if err != nil {
		return err
	}

	db, err := database.InitNotestackDatabase(dbCfg)
	if err != nil {
		return err
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("notestack starting up...")

	srv, err := server.NewServer(cfg, db)
	if err != nil {
		return err
	}

	if err := srv.Run(); err != nil {
		return err
	}

	log.Println("Shutdown complete")
	return nil
}
