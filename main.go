package main

import (
	"flag"
	"log"

	"pattern_edu_backend/internal/app"
	"pattern_edu_backend/internal/config"
)

// @title Design Pattern Learning Platform API
// @version 1.0
// @description Backend for the design pattern learning platform: accounts and
// @description sessions, pattern catalogue, reflective forms, practice, UML
// @description exercises, the final quiz, and educator dashboards.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	if cfg.MigrateOnly {
		log.Println("Migrations complete, exiting")
		return
	}
	application.Run()
}
