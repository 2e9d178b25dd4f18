// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/huewheel/internal/backup"
	"github.com/thatcatcamp/huewheel/internal/config"
	"github.com/thatcatcamp/huewheel/internal/db"
	"github.com/thatcatcamp/huewheel/internal/handlers"
	"github.com/thatcatcamp/huewheel/internal/library"
	"github.com/thatcatcamp/huewheel/internal/logging"
	"github.com/thatcatcamp/huewheel/internal/metrics"
	"github.com/thatcatcamp/huewheel/internal/middleware"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the huewheel HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		logger, err := logging.New(config.GetString("log.level"))
		exitOnError(err)
		defer logger.Sync()

		if count, err := library.Count(db.GetDB()); err == nil {
			metrics.LibraryPalettes.Set(float64(count))
		}

		// Periodic library snapshots
		if config.GetBool("backup.enabled") {
			scheduler := backup.NewScheduler(newBackupManager(), db.GetDB(), logger)
			if interval := config.GetDuration("backup.interval"); interval > 0 {
				scheduler.SetInterval(interval)
			}
			schedulerDone := scheduler.Start()
			logger.Info("backup scheduler started", zap.Duration("interval", scheduler.BackupInterval))
			defer func() {
				scheduler.Stop()
				<-schedulerDone
			}()
		}

		// Rate limiter for API routes
		rateLimit := config.GetInt("server.rate_limit")
		rateInterval := config.GetDuration("server.rate_interval")
		if rateLimit <= 0 {
			rateLimit = 60
		}
		if rateInterval <= 0 {
			rateInterval = time.Minute
		}
		limiter := middleware.NewRateLimiter(rateLimit, rateInterval)
		defer limiter.Stop()

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.RequestLogger(logger))
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.blocked_ips")))
		r.Use(middleware.RateLimitMiddleware(limiter, "/api/"))

		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
		handlers.NewHandler(db.GetDB(), logger).RegisterRoutes(r)

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("starting HTTP server",
				zap.String("addr", httpAddr),
				zap.Int("rate_limit", rateLimit),
				zap.Duration("rate_interval", rateInterval))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				logger.Error("server error", zap.Error(err))
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
