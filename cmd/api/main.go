package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/rinisriranganathan/RestBot/internal/auth"
	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/db"
	"github.com/rinisriranganathan/RestBot/internal/llm"
	"github.com/rinisriranganathan/RestBot/internal/router"
	"github.com/rinisriranganathan/RestBot/internal/session"
	"github.com/rinisriranganathan/RestBot/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	// The active provider's API key is required up front rather than on the
	// first chat.
	switch os.Getenv("LLM_PROVIDER") {
	case "openai":
		required = append(required, "OPENAI_API_KEY")
	default:
		required = append(required, "GEMINI_API_KEY")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── LLM ─────────────────────────
	llmClient, err := llm.NewClientFromEnv()
	if err != nil {
		log.Fatal("❌ LLM init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo, r2Client)

	billRepo := bill.NewPostgresRepository(pgDB)
	billService := bill.NewService(billRepo, r2Client)

	taxBasisPoints := int64(bill.DefaultTaxBasisPoints)
	if v := os.Getenv("TAX_BASIS_POINTS"); v != "" {
		bp, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("❌ Invalid TAX_BASIS_POINTS: %v", err)
		}
		taxBasisPoints = bp
	}

	sessionService := session.NewService(
		session.NewManager(),
		catalogService,
		billService,
		llmClient,
		taxBasisPoints,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(catalogService),
		Bills:    bill.NewHandler(billService),
		Sessions: session.NewHandler(sessionService, auth.SessionTokens{}),
	})

	// ───────────────────────── MENU INGEST WORKER ─────────────────────────
	ingester := catalog.NewIngester(catalogRepo)
	go ingester.Run(context.Background(), 2*time.Second)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
