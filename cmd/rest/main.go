package main

import (
	"context"
	"log"

	"matcha-match-be/internal/bootstrap"
	"matcha-match-be/internal/config"
	"matcha-match-be/internal/model"
	"matcha-match-be/internal/server"
	"matcha-match-be/internal/tracer"
	"matcha-match-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Conversation{},
		&model.Message{},
		&model.SentimentResult{},
		&model.Preference{},
		&model.Recommendation{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
