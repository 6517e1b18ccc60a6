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

	"github.com/yujin6121/maeum/backend/internal/config"
	"github.com/yujin6121/maeum/backend/internal/handler"
	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	"github.com/yujin6121/maeum/backend/internal/model/resource"
	"github.com/yujin6121/maeum/backend/internal/service/counseling"
	"github.com/yujin6121/maeum/backend/internal/service/fallback"
	"github.com/yujin6121/maeum/backend/internal/service/session"
	"github.com/yujin6121/maeum/backend/internal/storage"
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

	store, closeStore, err := openStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	if closeStore != nil {
		defer closeStore()
	}
	log.Printf("storage ready (driver=%s)", cfg.Storage.Driver)

	sessions := session.NewStore(store)
	draft := session.NewDraftStore(store)

	generator := fallback.NewGenerator()
	client := counseling.NewClient(counseling.Config{
		BaseURL:    cfg.Counseling.BaseURL,
		UseBackend: cfg.Counseling.UseBackend,
		Timeout:    cfg.Counseling.Timeout,
	}, generator)
	if cfg.Counseling.UseBackend {
		log.Printf("counseling backend enabled at %s", cfg.Counseling.BaseURL)
	} else {
		log.Println("상담 백엔드 비활성화 모드: 폴백 응답을 사용합니다")
	}

	emotions := emotion.NewMemoryStore(emotion.Seed())
	resources := resource.Seed()

	router := handler.NewRouter(client, sessions, draft, emotions, resources, cfg.CORS.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func openStorage(cfg config.StorageConfig) (storage.Store, func() error, error) {
	switch cfg.Driver {
	case "memory":
		return storage.NewMemoryStore(), nil, nil
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		store, err := storage.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Maeum counseling backend listening on %s", addr)
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
