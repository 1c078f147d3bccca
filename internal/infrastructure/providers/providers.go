package providers

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/totegamma/linksera/internal/config"
	"github.com/totegamma/linksera/internal/infrastructure/blob"
	"github.com/totegamma/linksera/internal/infrastructure/database"
	"github.com/totegamma/linksera/internal/infrastructure/repository"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewBlobStore opens the configured backend. The closer releases its
// connection on shutdown.
func NewBlobStore(ctx context.Context, conf config.Store) (repository.BlobStore, io.Closer, error) {
	switch conf.Backend {
	case "", "memory":
		return blob.NewMemoryStore(), nopCloser{}, nil

	case "sqlite":
		db, err := database.NewSQLite(conf.SQLitePath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "sqlite")
		}
		return blob.NewSQLiteStore(db), db, nil

	case "postgres":
		db, err := database.NewPostgres(conf.PostgresDsn)
		if err != nil {
			return nil, nil, errors.Wrap(err, "postgres")
		}
		if err := database.MigratePostgres(db); err != nil {
			return nil, nil, errors.Wrap(err, "postgres migrate")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, errors.Wrap(err, "postgres")
		}
		return blob.NewPostgresStore(db), sqlDB, nil

	case "redis":
		rdb, err := NewRedis(ctx, conf)
		if err != nil {
			return nil, nil, err
		}
		if rdb == nil {
			return nil, nil, fmt.Errorf("redis store needs redisAddr")
		}
		return blob.NewRedisStore(rdb, conf.KeyPrefix), rdb, nil

	case "memcached":
		mc := database.NewMemcached(conf.MemcachedAddr)
		return blob.NewMemcachedStore(mc, conf.KeyPrefix), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", conf.Backend)
}

// NewRedis returns a client when a redis address is configured, nil otherwise.
func NewRedis(ctx context.Context, conf config.Store) (*redis.Client, error) {
	if conf.RedisAddr == "" {
		return nil, nil
	}
	return database.NewRedis(ctx, conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
}

// NewTracerProvider installs the global tracer provider exporting over OTLP/HTTP.
// With tracing disabled it returns a no-op shutdown.
func NewTracerProvider(ctx context.Context, conf config.Trace) (func(context.Context) error, error) {
	if !conf.Enable {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(conf.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "otlptracehttp")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "linksera"),
		)),
	)
	otel.SetTracerProvider(tp)

	slog.InfoContext(ctx, "tracing enabled",
		slog.String("endpoint", conf.Endpoint),
		slog.String("module", "providers"),
	)

	return tp.Shutdown, nil
}
