package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Korichi-ishak/traducteur-pro/internal/client"
	"github.com/Korichi-ishak/traducteur-pro/internal/config"
	"github.com/Korichi-ishak/traducteur-pro/internal/repository"
	"github.com/Korichi-ishak/traducteur-pro/internal/server"
	"github.com/Korichi-ishak/traducteur-pro/internal/service"
	"github.com/Korichi-ishak/traducteur-pro/internal/storage/db"
	"github.com/Korichi-ishak/traducteur-pro/internal/storage/memory"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	var repo service.RepositoryI
	if cfg.DB.Conn.Host != "" {
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}
		defer conn.Close()

		repo = repository.NewRepository(conn)
		logger.Info("using postgres store", zap.String("host", cfg.DB.Conn.Host))
	} else {
		repo = memory.NewStore()
		logger.Info("using in-memory store")
	}

	clients := client.InitClients()
	services := service.InitServices(clients, repo, cfg, logger)

	handler := server.NewHandler(services, logger)
	srv := server.NewServer(cfg.HTTP, handler.Routes(), logger)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed shutdown server", zap.Error(err))
	}
}
