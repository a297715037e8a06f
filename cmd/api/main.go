package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"exolens/internal/adapter/repo"
	"exolens/internal/cache"
	"exolens/internal/http/handlers"
	httpapi "exolens/internal/http/httpapi"
	"exolens/internal/infra"
	"exolens/internal/infra/geoip"
	"exolens/internal/nasa"
	"exolens/internal/providers/predictor"
	"exolens/internal/storage"
	"exolens/internal/texture"
)

func main() {
	infra.LoadDotEnv()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	textureOpts := texture.Options{Logger: &logger}

	dbpool, err := infra.NewDBPool(ctx, cfg)
	switch {
	case errors.Is(err, infra.ErrNoDatabase):
		logger.Warn().Msg("DATABASE_URL not set, texture history disabled")
	case err != nil:
		logger.Fatal().Err(err).Msg("failed to connect database")
	default:
		defer dbpool.Close()
		textures := repo.NewTextureRepository(infra.NewSQLRunner(dbpool, logger))
		if err := textures.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to create texture schema")
		}
		store, err := storage.NewFileStore(cfg.TextureStoragePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare texture storage")
		}
		textureOpts.Repository = textures
		textureOpts.Store = store
	}

	generator, err := newGenerator(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("image provider unavailable, serving placeholders")
	}
	textureOpts.Generator = generator

	archiveOpts := nasa.Options{BaseURL: cfg.NASATapURL, Logger: &logger}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, "exolens:")
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
		} else {
			defer rc.Close()
			archiveOpts.Cache = rc
		}
	}

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
		geo = nil
	}
	if closer, ok := geo.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	app := &handlers.App{
		Textures:   texture.NewService(textureOpts),
		Archive:    nasa.NewClient(archiveOpts),
		Classifier: predictor.NewClient(predictor.Options{URL: cfg.PredictorURL, Logger: &logger}),
		Logger:     &logger,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          &logger,
		Geo:             geo,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Bool("history", app.Textures.HistoryEnabled()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
