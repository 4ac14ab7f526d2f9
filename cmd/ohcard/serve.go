package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/middleware"
	"github.com/ohcard-dev/ohcard/internal/router"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return err
			}

			if _, err := db.SeedDecks(nil); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if logrus.GetLevel() < logrus.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
			limiter.StartCleanup(ctx, 10*time.Minute)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           router.NewRouter(limiter),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logrus.WithField("port", cfg.Port).Info("Server listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logrus.Info("Shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
