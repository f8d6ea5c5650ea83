package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quartermaster/internal/api"
	"quartermaster/internal/config"
	"quartermaster/internal/database"
	"quartermaster/internal/distribution"
	"quartermaster/internal/inventory"
	"quartermaster/internal/monitoring"
	"quartermaster/internal/onboarding"
	"quartermaster/internal/storage"
	"quartermaster/internal/suggest"
	"quartermaster/internal/taxonomy"
	"quartermaster/internal/vendors"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Secrets come from the environment; .env is a development nicety.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	// Initialize database
	if err := database.InitDB(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()
	db := database.GetDB()

	// Inventory source
	invService := inventory.NewService(db, taxonomy.NewDeriver(nil), inventory.NewTableABCSource(db))
	if err := invService.Migrate(); err != nil {
		log.Fatalf("Failed to migrate inventory tables: %v", err)
	}
	inventory.SeedDefaultData(db)

	// Durable key-value store for the procurement state
	kv, err := storage.NewGormKV(db)
	if err != nil {
		log.Fatalf("Failed to initialize key-value store: %v", err)
	}

	// Preferred vendors, seeded from the bulk vendor list on first run
	prefs := vendors.NewPreferenceStore(kv)
	if bulk, err := invService.Vendors(); err != nil {
		log.Printf("Vendor list unavailable, skipping preference seeding: %v", err)
	} else {
		prefs.SeedFromVendors(bulk)
	}

	// Onboarding phase resolver
	resolver := onboarding.NewResolver(kv,
		onboarding.WithForceAllItems(cfg.Onboarding.ForceAllItems))

	suggester := initializeSuggester(cfg)

	// Distribution engine
	metricsCollector := monitoring.NewMetricsCollector()
	progress := api.NewProgressHub()
	submitter := distribution.NewHTTPSubmitter(cfg.Submission.BaseURL, cfg.SubmissionAuthToken)
	engine := distribution.NewEngine(submitter, progress, metricsCollector)

	// Initialize API server
	procurementAPI := api.NewProcurementAPI(api.Options{
		Inventory: invService,
		Prefs:     prefs,
		Resolver:  resolver,
		Suggester: suggester,
		Engine:    engine,
		Progress:  progress,
		JWTSecret: cfg.JWTSecret,
	})

	// Start metrics server
	go startMetricsServer(cfg.Server.MetricsPort, metricsCollector)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: procurementAPI.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// initializeSuggester picks the server-ranked suggestion provider. The
// suggestion service is a soft upgrade, so any initialization failure
// just disables it.
func initializeSuggester(cfg *config.Config) onboarding.Suggester {
	switch cfg.Suggestions.Provider {
	case "http":
		return suggest.NewHTTPSuggester(cfg.Suggestions.BaseURL)
	case "openai":
		s, err := suggest.NewOpenAISuggester(cfg.OpenAIKey, cfg.Suggestions.Model)
		if err != nil {
			log.Printf("Suggestion provider disabled: %v", err)
			return nil
		}
		return s
	default:
		return nil
	}
}

func startMetricsServer(port int, collector *monitoring.MetricsCollector) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
