package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/quizkeep/quizkeep/internal/config"
	"github.com/quizkeep/quizkeep/internal/database"
)

func openDatabase() (*sqlx.DB, *config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, cfg, nil
}
