package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
	appdb "github.com/Flarenzy/coffee-shop-api/internal/db"
	sqlcdb "github.com/Flarenzy/coffee-shop-api/internal/db/sqlc"
	"github.com/Flarenzy/coffee-shop-api/internal/domain"
	apihttp "github.com/Flarenzy/coffee-shop-api/internal/http"
)

const shutdownTimeout = 5 * time.Second

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on listener until ctx is done, then shuts down
// gracefully. The listener is closed on return.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	if err := cfg.Validate(); err != nil {
		_ = listener.Close()
		return err
	}
	logger := newLogger(cfg, os.Stdout)

	authCfg := cfg.AuthConfig()
	keys, err := newKeySet(ctx, cfg, logger)
	if err != nil {
		_ = listener.Close()
		return err
	}
	verifier, err := auth.NewVerifier(authCfg, keys)
	if err != nil {
		_ = listener.Close()
		return err
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		_ = listener.Close()
		return err
	}
	defer pool.Close()

	drinks := domain.NewLoggingDrinkService(logger, domain.NewDrinkService(appdb.NewDrinkRepository(sqlcdb.New(pool))))
	api := apihttp.NewAPI(logger, pool, drinks, auth.NewLoggingVerifier(logger, verifier))

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String(), "issuer", authCfg.Issuer(), "audience", authCfg.Audience)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// newKeySet picks the signing key source. The in-process cache is the default;
// JWKS_BACKGROUND_REFRESH switches to keyfunc's background refresher.
func newKeySet(ctx context.Context, cfg Config, logger *slog.Logger) (auth.KeySet, error) {
	authCfg := cfg.AuthConfig()
	if cfg.JWKSBackgroundRefresh {
		return auth.NewKeyfuncKeySet(ctx, authCfg, logger)
	}

	cache := auth.NewKeySetCache(authCfg, logger)
	// Start-up proceeds with a cold cache; the first lookup fetches again.
	if err := cache.Refresh(ctx); err != nil {
		logger.WarnContext(ctx, "initial jwks fetch failed", "url", authCfg.KeySetURL(), "err", err.Error())
	}
	return cache, nil
}
