package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/project/catalog/config"
	"github.com/project/catalog/internal/controller"
	"github.com/project/catalog/internal/usecase/library"
	"github.com/project/catalog/internal/usecase/repository"
	"github.com/project/catalog/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	shutDownSeconds          = 3
	readHeaderTimeoutSeconds = 5
)

func Run(zapLogger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tp := setupTracing()
	defer shutdownTracing(zapLogger, tp)

	fs := afero.NewOsFs()

	repo := repository.New(logger.Enabled(zapLogger, cfg.Log.LogRepo), fs)
	transactor := repository.NewTransactor(logger.Enabled(zapLogger, cfg.Log.LogTransactor), fs)
	catalog := library.New(logger.Enabled(zapLogger, cfg.Log.LogUseCase), repo, transactor)

	if cfg.Catalog.AutoLoad {
		autoLoad(ctx, zapLogger, fs, catalog, cfg.Catalog.File)
	}

	if cfg.Observability.MetricsPort != "" {
		server := newMetricsServer(cfg.Observability.MetricsPort)
		go runMetrics(zapLogger, server)
		defer shutdownMetrics(zapLogger, server)
	}

	ctrl := controller.New(logger.Enabled(zapLogger, cfg.Log.LogController), catalog, catalog, catalog, cfg.Catalog.File)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case <-ctx.Done():
		zapLogger.Info("shutdown signal received")
	case err := <-done:
		if err != nil {
			zapLogger.Error("shell stopped with error", zap.Error(err))
		}
	}
}

// setupTracing installs a global provider without exporters, so spans get
// real trace IDs for the logs.
func setupTracing() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp
}

func shutdownTracing(zapLogger *zap.Logger, tp *sdktrace.TracerProvider) {
	ctx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer cancel()

	if err := tp.Shutdown(ctx); err != nil {
		zapLogger.Error("tracer provider shutdown error", zap.Error(err))
	}
}

// autoLoad imports the configured file when it exists. A failed import keeps the empty catalog.
func autoLoad(ctx context.Context, zapLogger *zap.Logger, fs afero.Fs, catalog library.StorageUseCase, path string) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		zapLogger.Error("can not check catalog file", zap.String("path", path), zap.Error(err))
		return
	}
	if !exists {
		zapLogger.Info("catalog file does not exist, starting empty", zap.String("path", path))
		return
	}

	if err = catalog.Import(ctx, path); err != nil {
		zapLogger.Error("can not load catalog at startup", zap.String("path", path), zap.Error(err))
		fmt.Printf("Library was not loaded from %s: %s\n", path, err)
	}
}

func newMetricsServer(port string) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}
}

func runMetrics(zapLogger *zap.Logger, server *http.Server) {
	zapLogger.Info("metrics listening at port", zap.String("port", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zapLogger.Error("metrics listen error", zap.Error(err))
	}
}

func shutdownMetrics(zapLogger *zap.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("metrics shutdown error", zap.Error(err))
	}
}
