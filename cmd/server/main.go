package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads a .env file in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/stackpoker/stackweb/internal/config"     // Internal config loader
	"github.com/stackpoker/stackweb/internal/database"   // MySQL connection pool
	"github.com/stackpoker/stackweb/internal/handler"    // HTTP handlers
	"github.com/stackpoker/stackweb/internal/queue"      // hand.viewed consumer
	"github.com/stackpoker/stackweb/internal/repository" // document-store repositories
	"github.com/stackpoker/stackweb/internal/router"     // Internal router setup
)

func main() {
	// A missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Nil when Redis is not configured; cache and rate limiter degrade to no-ops.
	rdb := config.NewRedisClient()

	shares := repository.NewShareRepo(db)
	hands := repository.NewHandRepo(db)
	invites := repository.NewInviteRepo(db)

	// Fold queued view events into share counters for as long as the server runs.
	go func() {
		if err := queue.StartHandViewConsumer(shares); err != nil {
			log.Printf("view consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	e.HideBanner = true

	router.RegisterRoutes(e, handler.NewHandHandler(cfg, shares, hands), rdb, cfg.StaticDir)
	router.RegisterInvites(e, handler.NewInviteHandler(cfg, invites), rdb, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
