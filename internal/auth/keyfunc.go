package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"golang.org/x/time/rate"
)

// keyfuncKeySet serves keys out of a keyfunc storage that refreshes itself in
// the background.
type keyfuncKeySet struct {
	jwks keyfunc.Keyfunc
}

// NewKeyfuncKeySet builds a key set refreshed by keyfunc's background
// goroutine, which runs until ctx is done. FetchTimeout bounds every request,
// RefreshInterval sets the ticker (zero keeps keyfunc's hourly default) and
// MinRefreshInterval throttles refetches for unknown key ids.
func NewKeyfuncKeySet(ctx context.Context, cfg Config, logger *slog.Logger) (KeySet, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	jwksURL := cfg.KeySetURL()

	kf, err := keyfunc.NewDefaultOverrideCtx(ctx, []string{jwksURL}, keyfunc.Override{
		HTTPTimeout:       cfg.FetchTimeout,
		RefreshInterval:   cfg.RefreshInterval,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(cfg.MinRefreshInterval), 1),
		RateLimitWaitMax:  cfg.FetchTimeout,
		RefreshErrorHandlerFunc: func(u string) func(context.Context, error) {
			return func(ctx context.Context, err error) {
				logger.WarnContext(ctx, "jwks refresh failed", "url", u, "err", err.Error())
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch jwks from %s: %w", ErrKeySetUnavailable, jwksURL, err)
	}
	return &keyfuncKeySet{jwks: kf}, nil
}

func (k *keyfuncKeySet) Key(ctx context.Context, kid string) (SigningKey, error) {
	storage := k.jwks.Storage()
	if storage == nil {
		return SigningKey{}, fmt.Errorf("%w: no jwk storage", ErrKeySetUnavailable)
	}

	jwk, err := storage.KeyRead(ctx, kid)
	if err != nil {
		if errors.Is(err, jwkset.ErrKeyNotFound) {
			return SigningKey{}, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
		}
		if ctx.Err() != nil {
			return SigningKey{}, fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
		}
		// A throttled refetch for an unknown kid still leaves the kid unknown.
		return SigningKey{}, fmt.Errorf("%w: kid %q: %w", ErrKeyNotFound, kid, err)
	}

	key, err := signingKeyFromJWK(jwk)
	if err != nil {
		// Non-RSA keys cannot verify an allowed token, so they count as absent.
		return SigningKey{}, fmt.Errorf("%w: kid %q: %w", ErrKeyNotFound, kid, err)
	}
	return key, nil
}
