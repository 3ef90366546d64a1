package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/LeHoanggggedu/RentAI-backend/internal/app"
	"github.com/LeHoanggggedu/RentAI-backend/internal/config"
)

func main() {
	// Local development keeps secrets in .env; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
