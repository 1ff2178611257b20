package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/insighthub/landing/internal/repositories"
	"github.com/insighthub/landing/internal/server"
	"github.com/insighthub/landing/internal/web"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Serve hosts the landing page and the feedback API.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	port := config.Server.Port
	if cmd.Int("port") > 0 {
		port = cmd.Int("port")
	}

	store := r.store
	if store == nil {
		db, err := r.openStore(config)
		if err != nil {
			return err
		}
		defer db.Close()
		store = repositories.NewFeedbackRepository(db)
	}

	static, err := web.Handler()
	if err != nil {
		return fmt.Errorf("failed to load embedded assets: %w", err)
	}

	limiter := rate.NewLimiter(rate.Limit(config.Server.FeedbackPerMin/60.0), config.Server.FeedbackBurst)
	feedback := server.RateLimitMiddleware(limiter)(server.NewFeedbackHandler(store, r.logger))

	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger))
	router.Handle(http.MethodGet, "/", static)
	router.Handle(http.MethodPost, "/api/feedback", feedback)
	router.Handler(&server.HealthHandler{})

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("serving landing page at http://%v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		r.logger.Info("shutting down")
	case <-ctx.Done():
		r.logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	return nil
}
