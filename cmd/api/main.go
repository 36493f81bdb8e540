package main

import (
	"log"

	"peluqueria/internal/config"
	"peluqueria/internal/db"
	"peluqueria/internal/server"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := server.New(gormDB, cfg)
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
