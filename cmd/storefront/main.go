// Command storefront runs the RED-metrics demo service: a fake product
// catalog and prediction API instrumented with Prometheus request metrics.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/api"
	"github.com/redlabs/storefront/internal/catalog"
	"github.com/redlabs/storefront/internal/config"
	"github.com/redlabs/storefront/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := newLogger(cfg)

	log.WithFields(logrus.Fields{
		"service": cfg.ServiceLabel,
		"version": config.Version,
		"addr":    cfg.Addr(),
	}).Info("starting storefront")

	m := metrics.New(metrics.Config{
		Buckets:      cfg.Buckets,
		ExcludePaths: cfg.ExcludePaths,
		ServiceLabel: cfg.ServiceLabel,
	})

	sim := catalog.NewSimulator(cfg.LatencyScale)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(&api.RouterDeps{
		Log:         log,
		Metrics:     m,
		Catalog:     catalog.NewService(sim, log),
		Predictions: catalog.NewPredictor(sim, log),
		CORSOrigins: cfg.CORSOrigins,
		ServiceName: cfg.AppName,
		Version:     config.Version,
	})

	server := &http.Server{
		Handler: router,
		// No WriteTimeout: the prediction endpoint legitimately takes up
		// to a minute and the live feed holds its connection open.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.WithError(err).Fatal("listen failed")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(server, ln, log, quit); err != nil {
		log.WithError(err).Fatal("server failed")
	}

	log.Info("storefront stopped")
}

// serve runs the server on ln until a signal arrives, then drains in-flight
// requests, bounded by shutdownTimeout, before returning. Serve itself
// unblocks as soon as Shutdown is called, while requests are still being
// drained, so serve waits for Shutdown to finish before returning.
func serve(server *http.Server, ln net.Listener, log *logrus.Logger, quit <-chan os.Signal) error {
	done := make(chan struct{})

	go func() {
		defer close(done)
		<-quit

		log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("forced shutdown")
		}
	}()

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}

// newLogger builds the process logger from config. Bad levels fall back to
// info rather than refusing to start a demo.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
