// Command carescoped is the hosted Carescope service.
// It serves the assessment submission endpoint, the outcome read endpoints,
// and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/carescope/carescope/internal/api"
	"github.com/carescope/carescope/internal/intake"
	"github.com/carescope/carescope/internal/partner"
	"github.com/carescope/carescope/internal/platform"
	"github.com/carescope/carescope/internal/store"
	"github.com/carescope/carescope/pkg/scoring"
)

type config struct {
	Port            string
	DatabaseURL     string
	APIKey          string
	StorageBackend  string // local, s3, gcs
	LocalPath       string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	GCSBucket       string
	PartnerRegistry string // path to yaml registry; empty = builtin
}

func loadConfig() config {
	return config{
		Port:            envOrDefault("PORT", "8080"),
		DatabaseURL:     envOrDefault("DATABASE_URL", "postgres://localhost:5432/carescope?sslmode=disable"),
		APIKey:          os.Getenv("API_KEY"),
		StorageBackend:  envOrDefault("STORAGE_BACKEND", "local"),
		LocalPath:       envOrDefault("LOCAL_STORAGE_PATH", "/tmp/carescope-data"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
		PartnerRegistry: os.Getenv("PARTNER_REGISTRY"),
	}
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	db, err := platform.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	partners := partner.BuiltinRegistry()
	if cfg.PartnerRegistry != "" {
		partners, err = partner.LoadRegistry(cfg.PartnerRegistry)
		if err != nil {
			log.Fatalf("partner registry: %v", err)
		}
	}

	// Initialize services
	storeSvc := store.NewService(db)
	engine := scoring.NewEngine(scoring.DefaultScorers()...)
	intakeSvc := intake.NewService(storeSvc, storage, engine)

	handler := api.NewHandler(storeSvc, intakeSvc, partners, nil)

	// Set up HTTP routes. The health check stays outside the API key gate.
	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting carescoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newStorage selects the blob storage backend from config.
func newStorage(ctx context.Context, cfg config) (intake.StorageClient, error) {
	switch cfg.StorageBackend {
	case "s3":
		return intake.NewS3Storage(ctx, intake.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return intake.NewGCSStorage(ctx, cfg.GCSBucket)
	default:
		return intake.NewLocalStorage(cfg.LocalPath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
