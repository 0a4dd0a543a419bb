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

	"github.com/rmncha/health-assistant/backend/internal/analysis/topic"
	"github.com/rmncha/health-assistant/backend/internal/config"
	"github.com/rmncha/health-assistant/backend/internal/handler"
	"github.com/rmncha/health-assistant/backend/internal/model/asha"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/model/registration"
	"github.com/rmncha/health-assistant/backend/internal/model/scheme"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	"github.com/rmncha/health-assistant/backend/internal/service/chat"
	registrationservice "github.com/rmncha/health-assistant/backend/internal/service/registration"
	"github.com/rmncha/health-assistant/backend/internal/store"
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

	table := locale.MustDefault()
	for _, gap := range topic.Coverage() {
		if gap.Missing == "" {
			log.Printf("keyword coverage: %s has no triggers for %s", gap.Language, gap.Topic)
			continue
		}
		log.Printf("keyword coverage: %s has no equivalent of %q for %s", gap.Language, gap.Missing, gap.Topic)
	}

	assistantService := assistant.NewService(table, assistant.WithDelay(cfg.Assistant.ResponseDelay))
	chatService := chat.NewService(table, assistantService,
		chat.WithSessionTTL(cfg.Session.TTL),
		chat.WithDefaultLanguage(cfg.Assistant.DefaultLanguage),
	)
	go chatService.Run(ctx, cfg.Session.TTL/2)

	registrations, closeStore, err := openRegistrationStore(cfg.Store)
	if err != nil {
		log.Fatalf("failed to open registration store: %v", err)
	}
	defer closeStore()

	if cfg.Speech.Enabled {
		log.Println("speech bridge enabled on /api/chat/ws")
	} else {
		log.Println("speech bridge disabled by configuration")
	}

	router := handler.NewRouter(handler.Dependencies{
		Table:          table,
		Chat:           chatService,
		Registrations:  registrationservice.NewService(registrations),
		Schemes:        scheme.NewMemoryStore(scheme.Seed()),
		Workers:        asha.NewMemoryStore(asha.Seed()),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ResponseDelay:  cfg.Assistant.ResponseDelay,
		SpeechEnabled:  cfg.Speech.Enabled,
	})

	startServer(ctx, cfg.Server, router)
}

func openRegistrationStore(cfg config.StoreConfig) (registration.Store, func(), error) {
	if cfg.Driver != config.StoreSQLite {
		log.Println("registrations kept in memory")
		return registration.NewMemoryStore(), func() {}, nil
	}

	db, err := store.NewSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("registrations stored in sqlite database %s", cfg.SQLitePath)
	return db, func() {
		if err := db.Close(); err != nil {
			log.Printf("warning: failed to close sqlite store: %v", err)
		}
	}, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("RMNCHA health assistant listening on %s", addr)
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
