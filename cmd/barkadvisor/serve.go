package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bark-advisor/internal/adapters/storage/postgres"
	"bark-advisor/internal/config"
	"bark-advisor/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var autoMigrate bool

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply the Postgres schema before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := newLogger(cfg)
	defer syncLogger(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, closeCache, err := buildCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	opts := router.Options{
		Logger:             log,
		Cache:              c,
		SearchTTL:          cfg.Search.CacheTTL,
		AffiliateTag:       cfg.Search.AmazonAffiliateTag,
		ProfileAPIBaseURL:  cfg.Profiles.APIBaseURL,
		RateLimitRPS:       cfg.HTTP.RateLimitRPS,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}

	if opts.AuthVerifier, err = buildVerifier(cfg, c, log); err != nil {
		return err
	}
	if opts.Recommender, err = buildRecommender(cfg); err != nil {
		return err
	}

	if cfg.DB.DSN != "" {
		db, err := postgres.Open(cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if autoMigrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
