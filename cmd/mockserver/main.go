package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/wb-order-client/internal/adapter/cache"
	"github.com/example/wb-order-client/internal/adapter/httpapi"
	"github.com/example/wb-order-client/internal/config"
	"github.com/example/wb-order-client/internal/lib/logger"
)

func main() {
	cfg, err := config.LoadMockServer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := cache.NewMemoryOrderStore()
	n, err := store.SeedFile(cfg.OrdersFile)
	if err != nil {
		zl.Fatal("seed orders", zap.Error(err), zap.String("file", cfg.OrdersFile))
	}
	zl.Info("orders seeded", zap.Int("count", n), zap.String("file", cfg.OrdersFile))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewServer(store, zl).Router,
	}
	go func() {
		zl.Info("http listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
