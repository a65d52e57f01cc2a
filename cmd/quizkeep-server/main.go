package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/quizkeep/quizkeep/internal/activity"
	"github.com/quizkeep/quizkeep/internal/config"
	"github.com/quizkeep/quizkeep/internal/database"
	"github.com/quizkeep/quizkeep/internal/review"
	"github.com/quizkeep/quizkeep/internal/server"
	"github.com/quizkeep/quizkeep/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("QUIZKEEP_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	var pacing settings.PacingReader
	if cfg.Settings.RemoteURL != "" {
		remote := settings.NewRemotePacingReader(cfg.Settings.RemoteURL, cfg.Settings.RetryAttempts)
		defer func() {
			_ = remote.Close()
		}()
		pacing = remote
	} else {
		pacing = settings.NewDBPacingReader(db)
	}

	counter := activity.NewCounter(db, activity.DefaultRetryAttempts)
	service := review.NewService(db, review.NewDBItemRepository(), pacing, counter)

	handler, err := server.NewReviewHandler(service)
	if err != nil {
		return fmt.Errorf("server.NewReviewHandler() > %w", err)
	}
	srv := server.New(db, handler, cfg.Server.CORSAllowOrigin)

	log.Printf("Starting server on %s", cfg.Server.Addr)
	return http.ListenAndServe(cfg.Server.Addr, h2c.NewHandler(srv.Handler(), &http2.Server{}))
}
