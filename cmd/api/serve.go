package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/placeholder-api/internal/api"
	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/seed"
	"github.com/baharkarakas/placeholder-api/internal/services"
	"github.com/baharkarakas/placeholder-api/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log := setup()
	metrics.Init()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}

	ran, res, err := seed.EnsureSeeded(ctx, st.Repos, seed.Options{Count: cfg.SeedUsers, HashCost: cfg.BcryptCost}, log)
	if err != nil {
		st.Close()
		log.Error("seed", "err", err)
		os.Exit(1)
	}
	if ran {
		log.Info("seeded empty database", "users", res.UsersCreated, "posts", res.PostsCreated)
	}

	r := api.NewRouter(api.RouterDeps{
		Log:     log,
		UserSvc: services.NewUserService(st.Repos.Users, st.Repos.Posts, cfg.BcryptCost),
		PostSvc: services.NewPostService(st.Repos.Posts, st.Repos.Users),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "backend", st.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		st.Close()
		log.Error("server", "err", err)
		os.Exit(1)
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	st.Close()
	log.Info("database connection closed")
	return nil
}
