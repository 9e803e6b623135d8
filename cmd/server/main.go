// Package main provides the entry point for the HTTP server.
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
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/config"
	countryRouter "github.com/festy23/fantasy_league/internal/country/router"
	"github.com/festy23/fantasy_league/internal/database/database"
	"github.com/festy23/fantasy_league/internal/database/migrate"
	"github.com/festy23/fantasy_league/internal/health"
	"github.com/festy23/fantasy_league/internal/league"
	"github.com/festy23/fantasy_league/internal/middleware"
	"github.com/festy23/fantasy_league/internal/notify"
	playerRouter "github.com/festy23/fantasy_league/internal/player/router"
	statisticsRouter "github.com/festy23/fantasy_league/internal/statistics/router"
	teamRouter "github.com/festy23/fantasy_league/internal/team/router"
	transferRouter "github.com/festy23/fantasy_league/internal/transfer/router"
	transferService "github.com/festy23/fantasy_league/internal/transfer/service"
	"github.com/festy23/fantasy_league/internal/transfer/valuation"
	userRouter "github.com/festy23/fantasy_league/internal/user/router"
	userService "github.com/festy23/fantasy_league/internal/user/service"
	"github.com/festy23/fantasy_league/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.New(log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, err := newPublisher(ctx, cfg.Notify, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("failed to close publisher", "error", err)
		}
	}()

	dispatcher := notify.NewDispatcher(publisher, notify.DispatcherConfig{
		QueueSize:   cfg.Notify.QueueSize,
		Workers:     cfg.Notify.Workers,
		MaxAttempts: cfg.Notify.MaxAttempts,
		RetryDelay:  cfg.Notify.RetryDelay,
	}, log)
	if err := dispatcher.Start(context.Background()); err != nil {
		return err
	}

	sampler, err := valuation.NewUniformSampler(cfg.Market.InflationMin, cfg.Market.InflationMax)
	if err != nil {
		return fmt.Errorf("invalid market inflation bounds: %w", err)
	}

	clock := clockwork.NewRealClock()
	mailer := notify.NewMailer(dispatcher, cfg.Notify.FromAddress, cfg.Domain, clock, log)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	registerRoutes(r, db, cfg, routeDeps{
		mailer:     mailer,
		dispatcher: dispatcher,
		sampler:    sampler,
		clock:      clock,
	}, log)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddress(),
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Warnw("notification queue not drained", "error", err)
	}

	log.Info("server stopped")
	return nil
}

type routeDeps struct {
	mailer     *notify.Mailer
	dispatcher *notify.Dispatcher
	sampler    valuation.Sampler
	clock      clockwork.Clock
}

func registerRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, deps routeDeps, log *zap.SugaredLogger) {
	h := health.New(log,
		health.DatabaseProbe(db),
		health.Probe{
			Name: "notify",
			Check: func(context.Context) error {
				if !deps.dispatcher.Running() {
					return errors.New("dispatcher is not running")
				}
				return nil
			},
		},
	)
	r.GET("/health", h.Check)

	countryRouter.RegisterRoutes(r)
	teamRouter.RegisterRoutes(r, db, cfg.Market, log)
	playerRouter.RegisterRoutes(r, db, log)
	transferRouter.RegisterRoutes(r, db, transferService.Config{
		Sampler:     deps.sampler,
		Clock:       deps.clock,
		LockTimeout: cfg.Market.LockTimeout,
	}, log)
	statisticsRouter.RegisterRoutes(r, db, log)
	userRouter.RegisterRoutes(r, db, userService.Config{
		Mailer: deps.mailer,
		Teams:  league.NewBuilder(league.NewGenerator(0), log),
	}, log)
}

func newPublisher(ctx context.Context, cfg config.NotifyConfig, log *zap.SugaredLogger) (notify.Publisher, error) {
	if cfg.Backend != config.NotifyBackendNATS {
		return notify.NewLogPublisher(log), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	p, err := notify.NewNATSPublisher(connectCtx,
		notify.DefaultNATSConfig(cfg.NATSURL, cfg.Subject, cfg.StreamName), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}
	return p, nil
}
