package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/toughlife/community-backend/internal/config"
	"github.com/toughlife/community-backend/internal/server"
)

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	srv.Run()
}
