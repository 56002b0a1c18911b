package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/gopostr/gopos/handler"
	"github.com/gopostr/gopos/infra/audit"
	"github.com/gopostr/gopos/infra/config"
	"github.com/gopostr/gopos/infra/logger"
	"github.com/gopostr/gopos/infra/middle"
	"github.com/gopostr/gopos/infra/opensearch"
	"github.com/gopostr/gopos/pos"
	"github.com/gopostr/gopos/router"

	_ "github.com/gopostr/gopos/pos/akbank"
	_ "github.com/gopostr/gopos/pos/estpos"
	_ "github.com/gopostr/gopos/pos/garanti"
	_ "github.com/gopostr/gopos/pos/interpos"
	_ "github.com/gopostr/gopos/pos/kuveyt"
	_ "github.com/gopostr/gopos/pos/parampos"
	_ "github.com/gopostr/gopos/pos/payflexcp"
	_ "github.com/gopostr/gopos/pos/payflexv4"
	_ "github.com/gopostr/gopos/pos/payfor"
	_ "github.com/gopostr/gopos/pos/posnet"
	_ "github.com/gopostr/gopos/pos/posnetv1"
	_ "github.com/gopostr/gopos/pos/tosla"
	_ "github.com/gopostr/gopos/pos/vakifkatilim"
)

const version = "1.0.0"

// auditTee fans every audit event out to all configured sinks. Sinks
// handle their own failures; none of them returns an error.
type auditTee []pos.AuditSink

func (t auditTee) HashVerification(ctx context.Context, gateway, orderID string, ok bool, provided, computed string) {
	for _, sink := range t {
		sink.HashVerification(ctx, gateway, orderID, ok, provided, computed)
	}
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	config.App()
}

func main() {
	cfg := config.GetAppConfig()

	// OpenSearch is optional. When it is unreachable the service still
	// verifies callbacks; only the searchable audit trail is lost.
	var osLogger *opensearch.Logger
	if cfg.EnableLogging {
		osClient, err := opensearch.NewClient(cfg)
		if err != nil {
			log.Printf("opensearch disabled: %v", err)
		} else if osClient.IsEnabled() {
			osLogger = opensearch.NewLogger(osClient)
		}
	}
	logger.InitGlobalLogger(osLogger)

	store, err := audit.NewStore(cfg.AuditDBPath)
	if err != nil {
		log.Fatalf("failed to open audit store: %v", err)
	}
	defer store.Close()
	go purgeLoop(store, cfg.LogRetentionDays)

	sinks := auditTee{store}
	if osLogger != nil {
		sinks = append(sinks, osLogger)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middle.RequestIDMiddleware())
	r.Use(middle.RequestLoggingMiddleware())
	r.Use(middle.PanicRecoveryMiddleware())
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middle.SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Register(r, handler.NewCallbackHandler(sinks), router.Options{
		Version:           version,
		OpenSearchEnabled: osLogger != nil,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", logger.LogContext{Fields: map[string]any{
			"port":        cfg.Port,
			"environment": cfg.Environment,
			"version":     version,
		}})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", err)
	}
}

// purgeLoop trims audit rows older than the configured retention once a
// day. Zero retention keeps everything.
func purgeLoop(store *audit.Store, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	retention := time.Duration(retentionDays) * 24 * time.Hour
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		n, err := store.Purge(context.Background(), retention)
		if err != nil {
			logger.Warn("audit purge failed", logger.LogContext{Fields: map[string]any{"error": err.Error()}})
			continue
		}
		if n > 0 {
			logger.Info("audit purge completed", logger.LogContext{Fields: map[string]any{"deleted": n}})
		}
	}
}
