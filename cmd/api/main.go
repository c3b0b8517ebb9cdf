package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ikonnect/website/backend/internal/config"
	"github.com/ikonnect/website/backend/internal/engine"
	"github.com/ikonnect/website/backend/internal/handler"
	"github.com/ikonnect/website/backend/internal/model/catalog"
	"github.com/ikonnect/website/backend/internal/service/ai"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
	"github.com/ikonnect/website/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The event log lives for the process lifetime; a restart clears it.
	eventLog := store.New()
	catalogs := catalog.NewMemoryStore(catalog.Seed())

	// Initialize AI service; without credentials the chat widget falls back
	// to the canned responder so the funnel keeps working.
	var aiSvc *ai.Service
	if cfg.AI.Enabled() {
		aiSvc, err = ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with the static chat responder")
			aiSvc = nil
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, using the static chat responder")
	}

	var generator chatservice.Generator = chatservice.StaticResponder{}
	if aiSvc != nil {
		generator = aiSvc
	}

	threads := chatservice.NewService(eventLog, generator)
	eng := engine.NewLocal(eventLog, threads)

	if cfg.Admin.JWTSecret == "" {
		log.Println("ADMIN_JWT_SECRET not configured, analytics summary disabled")
	}

	router := handler.NewRouter(eng, catalogs, aiSvc, eventLog, cfg.Admin.JWTSecret)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Ikonnect backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
