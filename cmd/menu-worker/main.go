package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/db"

	"github.com/joho/godotenv"
)

// Standalone menu ingest worker, for deployments that want workbook parsing
// out of the API process. cmd/api runs the same loop in-process by default.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 Menu worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	repo := catalog.NewPostgresRepository(pgDB)
	ingester := catalog.NewIngester(repo)

	log.Println("✅ Menu worker initialized and running...")
	log.Println("Processing menu uploads every 2 seconds. Press Ctrl+C to stop.")

	ingester.Run(context.Background(), 2*time.Second)
}
