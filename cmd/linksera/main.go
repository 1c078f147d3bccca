package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/linksera/internal/config"
	"github.com/totegamma/linksera/internal/infrastructure/providers"
	"github.com/totegamma/linksera/internal/infrastructure/repository"
	"github.com/totegamma/linksera/internal/present/rest"
	"github.com/totegamma/linksera/internal/service"
	"github.com/totegamma/linksera/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupLogger(conf.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := providers.NewTracerProvider(ctx, conf.Trace)
	if err != nil {
		slog.Error("failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closer, err := providers.NewBlobStore(ctx, conf.Store)
	if err != nil {
		slog.Error("failed to open store", slog.String("error", err.Error()), slog.String("backend", conf.Store.Backend))
		os.Exit(1)
	}
	defer closer.Close()

	listingRepo, err := repository.NewListingRepository(ctx, store, conf.Store.BlobKey)
	if err != nil {
		slog.Error("failed to load listings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb, err := providers.NewRedis(ctx, conf.Store)
	if err != nil {
		slog.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
	}
	signalService := service.NewSignalService(rdb)
	go signalService.Run(ctx)

	handler, err := rest.NewHandler(
		usecase.NewListingUsecase(listingRepo, signalService),
		usecase.NewTableUsecase(listingRepo, conf.UI.PageSize),
		signalService,
	)
	if err != nil {
		slog.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("linksera"))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	handler.RegisterRoutes(e)

	go func() {
		slog.Info("server started",
			slog.String("listen", conf.Server.Listen),
			slog.String("store", conf.Store.Backend),
			slog.Int("listings", listingRepo.Count(ctx)),
		)
		if err := e.Start(conf.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("tracer shutdown failed", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}

func setupLogger(conf config.Server) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(conf.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
