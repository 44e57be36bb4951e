package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tagvorto/internal/config"
	"tagvorto/internal/game"
	"tagvorto/internal/handler"
	"tagvorto/internal/logger"
	"tagvorto/internal/puzzle"
	"tagvorto/internal/service"
	"tagvorto/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)
	logger.Info("starting tagvorto", "env", cfg.Server.Env)

	var backing store.Store
	if cfg.Database.DSN != "" {
		gs, err := store.NewGormStore(cfg.Database.DSN)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		backing = gs
		logger.Info("using postgres store")
	} else {
		backing = store.NewMemoryStore()
		logger.Warn("no database configured, using in-memory store")
	}

	var puzzles store.PuzzleStore = backing
	if cfg.Redis.Addr != "" {
		puzzles = store.NewCachedPuzzleStore(backing, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
		logger.Info("puzzle cache enabled", "addr", cfg.Redis.Addr)
	}

	opts := []service.Option{service.WithAllowPastDates(cfg.Game.AllowPastDates)}
	if cfg.Game.AcceptedWordsFile != "" {
		dict, err := game.LoadDictionary(cfg.Game.AcceptedWordsFile)
		if err != nil {
			logger.Error("failed to load accepted words", "err", err)
			os.Exit(1)
		}
		logger.Info("loaded accepted words", "count", dict.Len())
		opts = append(opts, service.WithDictionary(dict))
	}

	source := puzzle.NewHTTPSource(cfg.Source.BaseURL, cfg.Source.Timeout)
	svc := service.NewGuessService(puzzles, backing, source, opts...)

	router := handler.NewRouter(cfg, svc)
	startServer(router, cfg)
}

// startServer runs the HTTP server and shuts it down gracefully on SIGINT or
// SIGTERM.
func startServer(router *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logger.Info("shutdown signal received, shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("http server shutdown", "err", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("server starting", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("server failed to start", "err", err)
		os.Exit(1)
	}
	<-idleConnsClosed
	logger.Info("server shutdown complete")
}
