package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ojt-tracker/internal/config"
	domainEntry "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/infra/memory"
	"github.com/BruksfildServices01/ojt-tracker/internal/infra/oauth"
	infraRepo "github.com/BruksfildServices01/ojt-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/ojt-tracker/internal/routes"
	"github.com/BruksfildServices01/ojt-tracker/internal/session"
)

const shutdownTimeout = 10 * time.Second

var (
	serveInMemory bool
	serveMigrate  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	bindServeFlags(serveCmd)
}

func bindServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&serveInMemory, "in-memory", false, "Keep entries and users in process memory instead of Postgres")
	cmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Run schema migration before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "changeme" {
		logger.Warn("JWT_SECRET is the default value, sessions can be forged")
	}

	entries, users, err := openStores(cfg, logger)
	if err != nil {
		return err
	}

	store, err := openSessionStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if logger.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(routes.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Entries:  entries,
		Users:    users,
		Sessions: session.NewManager(store, cfg.JWTSecret, cfg.SessionTTL),
		Provider: oauth.NewGoogleProvider(oauth.GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
		}),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openStores(cfg *config.Config, logger *zap.Logger) (domainEntry.Repository, user.Repository, error) {
	if serveInMemory {
		logger.Warn("using in-memory storage, data is lost on exit")
		return memory.NewEntryStore(), memory.NewUserStore(), nil
	}

	db, err := openDB(cfg, logger, serveMigrate)
	if err != nil {
		return nil, nil, err
	}
	return infraRepo.NewEntryGormRepository(db), infraRepo.NewUserGormRepository(db), nil
}

func openSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, sessions are kept in process memory")
		return session.NewMemoryStore(), nil
	}

	client, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(client), nil
}
