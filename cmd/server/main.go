package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatsearch/internal/cache"
	"chatsearch/internal/config"
	"chatsearch/internal/handler"
	"chatsearch/internal/logging"
	"chatsearch/internal/repository"
	"chatsearch/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "chatsearch",
	})
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("starting property search service")
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Load the dataset once; it is read-only from here on
	src, closeSource, err := repository.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Dataset.Source).Msg("failed to open dataset source")
	}
	loadStart := time.Now()
	ds, err := repository.LoadDataset(ctx, src, cfg.DatasetRules())
	if cerr := closeSource(); cerr != nil {
		log.Warn().Err(cerr).Msg("failed to close dataset source")
	}
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Dataset.Source).Msg("failed to load dataset")
	}
	log.Info().
		Str("source", cfg.Dataset.Source).
		Int("records", ds.Len()).
		Dur("took", time.Since(loadStart)).
		Msg("dataset loaded")

	// Optional response cache
	var responses cache.ResponseCache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, response cache disabled")
		} else {
			responses = rc
			defer rc.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("response cache enabled")
		}
	}

	searchService := service.NewSearchService(ds, service.NewQueryParser(), responses, log)

	router := handler.NewRouter(searchService, handler.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DefaultLimit:   cfg.Search.DefaultMaxResults,
		MaxLimit:       cfg.Search.MaxResultsLimit,
		AccessLog:      cfg.Server.AccessLog,
		Web:            webAssets(cfg.Server.WebDir, log),
		Build: handler.BuildInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		},
		Logger: log,
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}

// webAssets returns the frontend directory, or nil when it does not exist
func webAssets(dir string, log zerolog.Logger) fs.FS {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Info().Str("dir", dir).Msg("no frontend assets found, static serving disabled")
		return nil
	}
	log.Info().Str("dir", dir).Msg("serving frontend assets")
	return os.DirFS(dir)
}
