package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/fundsite/config"
	"github.com/epeers/fundsite/internal/database"
	"github.com/epeers/fundsite/internal/handlers"
	"github.com/epeers/fundsite/internal/repository"
	"github.com/epeers/fundsite/internal/router"
	"github.com/epeers/fundsite/internal/services"
	"github.com/epeers/fundsite/web"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// @title Fund Catalog API
// @version 1.0
// @description Lists investment funds and looks up a single fund by id.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection only when a catalog lives in Postgres
	var pool *pgxpool.Pool
	if cfg.UsesPostgres() {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		pool = db.Pool
	}

	// Initialize repositories
	listing := newCatalog(cfg.ListingSource, cfg, pool)
	detail := newCatalog(cfg.DetailSource, cfg, pool)
	log.Infof("Listing catalog: %s, detail catalog: %s", listing.Source(), detail.Source())

	// Initialize services
	fundSvc := services.NewFundService(listing, detail)
	consistencySvc := services.NewConsistencyService(listing, detail)

	// Initialize handlers
	fundHandler := handlers.NewFundHandler(fundSvc, consistencySvc)

	tmpl, err := web.Templates(cfg.NAVCurrency)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(fundHandler, tmpl),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Give outstanding requests 5 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
		os.Exit(1)
	}
	log.Info("Server exited")
}

// newCatalog builds the repository for a configured source name
func newCatalog(source string, cfg *config.Config, pool *pgxpool.Pool) services.FundCatalog {
	switch source {
	case config.SourceStatic:
		return repository.NewStaticFundRepository()
	case config.SourcePostgres:
		return repository.NewPGFundRepository(pool)
	default:
		return repository.NewFileFundRepository(cfg.ContentRoot, cfg.FundsFile)
	}
}
