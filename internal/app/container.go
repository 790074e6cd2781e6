package app

import (
	"context"
	"log"
	"time"

	"job-assist/internal/config"
	"job-assist/internal/database"
	"job-assist/internal/database/migration"
	dbpostgres "job-assist/internal/database/postgres"
	"job-assist/internal/infrastructure/cache"
	"job-assist/internal/ws"
)

type Container struct {
	Config     config.Config
	DB         database.DB
	Completion *cache.Completion
	Hub        *ws.Hub
	Logger     *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	completion := cache.NewCompletion(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	return &Container{
		Config:     cfg,
		DB:         db,
		Completion: completion,
		Hub:        hub,
		Logger:     logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Completion != nil {
		_ = c.Completion.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
