package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

const maxKeySetBytes = 1 << 20

// SigningKey is one RSA verification key published by the identity provider.
type SigningKey struct {
	KeyID     string
	KeyType   string
	Use       string
	Algorithm string
	Modulus   string
	Exponent  string
	PublicKey *rsa.PublicKey
}

type KeySet interface {
	// Key returns the key whose kid matches exactly. It returns an error
	// wrapping ErrKeyNotFound when the set has no such key and one wrapping
	// ErrKeySetUnavailable when the set could not be fetched.
	Key(ctx context.Context, kid string) (SigningKey, error)
}

type keySnapshot struct {
	keys      map[string]SigningKey
	fetchedAt time.Time
}

// KeySetCache serves lookups from an immutable snapshot of the remote key set
// and replaces the snapshot wholesale when it gets older than the refresh
// interval.
type KeySetCache struct {
	url                string
	client             *http.Client
	logger             *slog.Logger
	refreshInterval    time.Duration
	minRefreshInterval time.Duration
	fetchTimeout       time.Duration
	fetchRetries       uint64
	now                func() time.Time

	snapshot atomic.Pointer[keySnapshot]
	// failedAt holds the unix nanos of the last failed fetch, zero once a
	// fetch succeeds.
	failedAt atomic.Int64
	group    singleflight.Group
}

type KeySetOption func(*KeySetCache)

func WithHTTPClient(client *http.Client) KeySetOption {
	return func(c *KeySetCache) {
		if client != nil {
			c.client = client
		}
	}
}

func WithKeySetClock(now func() time.Time) KeySetOption {
	return func(c *KeySetCache) {
		if now != nil {
			c.now = now
		}
	}
}

func NewKeySetCache(cfg Config, logger *slog.Logger, opts ...KeySetOption) *KeySetCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &KeySetCache{
		url:                cfg.KeySetURL(),
		client:             http.DefaultClient,
		logger:             logger,
		refreshInterval:    cfg.RefreshInterval,
		minRefreshInterval: cfg.MinRefreshInterval,
		fetchTimeout:       cfg.FetchTimeout,
		fetchRetries:       uint64(max(cfg.FetchRetries, 0)),
		now:                time.Now,
	}
	if c.fetchTimeout <= 0 {
		c.fetchTimeout = DefaultFetchTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *KeySetCache) Key(ctx context.Context, kid string) (SigningKey, error) {
	snap, attempted, err := c.current(ctx)
	if err != nil {
		return SigningKey{}, err
	}
	if key, ok := snap.keys[kid]; ok {
		return key, nil
	}

	// The provider may have rotated keys since the snapshot was taken.
	if !attempted && c.now().Sub(snap.fetchedAt) >= c.minRefreshInterval && !c.recentlyFailed() {
		rotated, err := c.refresh(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "jwks refresh for unknown kid failed", "kid", kid, "err", err.Error())
		} else if key, ok := rotated.keys[kid]; ok {
			return key, nil
		}
	}

	return SigningKey{}, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
}

// Refresh fetches the key set now, regardless of the snapshot age.
func (c *KeySetCache) Refresh(ctx context.Context) error {
	_, err := c.refresh(ctx)
	return err
}

// current returns the snapshot to serve from and whether this call already
// tried to refresh it. A stale snapshot is served without waiting while a
// background refresh runs, and a failed fetch is not retried before
// MinRefreshInterval has passed.
func (c *KeySetCache) current(ctx context.Context) (*keySnapshot, bool, error) {
	snap := c.snapshot.Load()
	if snap == nil {
		if c.recentlyFailed() {
			return nil, true, fmt.Errorf("%w: last fetch from %s failed", ErrKeySetUnavailable, c.url)
		}
		fresh, err := c.refresh(ctx)
		if err != nil {
			return nil, true, err
		}
		return fresh, true, nil
	}

	if c.refreshInterval > 0 && c.now().Sub(snap.fetchedAt) < c.refreshInterval {
		return snap, false, nil
	}
	if c.recentlyFailed() {
		return snap, true, nil
	}
	if c.refreshInterval > 0 {
		c.group.DoChan("jwks", c.load(ctx))
		return snap, false, nil
	}

	fresh, err := c.refresh(ctx)
	if err != nil {
		return snap, true, nil
	}
	return fresh, true, nil
}

func (c *KeySetCache) recentlyFailed() bool {
	failed := c.failedAt.Load()
	return failed != 0 && c.now().Sub(time.Unix(0, failed)) < c.minRefreshInterval
}

func (c *KeySetCache) refresh(ctx context.Context) (*keySnapshot, error) {
	ch := c.group.DoChan("jwks", c.load(ctx))

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*keySnapshot), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrKeySetUnavailable, ctx.Err())
	}
}

// load is the shared fetch. It outlives the caller that started it.
func (c *KeySetCache) load(ctx context.Context) func() (any, error) {
	return func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		snap, err := c.fetch(ctx)
		if err != nil {
			c.failedAt.Store(c.now().UnixNano())
			if prev := c.snapshot.Load(); prev != nil {
				c.logger.WarnContext(ctx, "jwks refresh failed, serving previous key set",
					"url", c.url, "age", c.now().Sub(prev.fetchedAt).String(), "err", err.Error())
			}
			return nil, err
		}
		c.failedAt.Store(0)
		c.snapshot.Store(snap)
		c.logger.DebugContext(ctx, "jwks refreshed", "url", c.url, "keys", len(snap.keys))
		return snap, nil
	}
}

func (c *KeySetCache) fetch(ctx context.Context) (*keySnapshot, error) {
	var keys map[string]SigningKey
	attempt := 0
	op := func() error {
		attempt++
		fetched, err := c.fetchOnce(ctx)
		if err != nil {
			c.logger.DebugContext(ctx, "jwks fetch attempt failed", "url", c.url, "attempt", attempt, "err", err.Error())
			return err
		}
		keys = fetched
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = fetchBackoffInitial
	policy.MaxInterval = fetchBackoffMax
	b := backoff.WithContext(backoff.WithMaxRetries(policy, c.fetchRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}

	return &keySnapshot{keys: keys, fetchedAt: c.now()}, nil
}

func (c *KeySetCache) fetchOnce(ctx context.Context) (map[string]SigningKey, error) {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build jwks request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxKeySetBytes))
		err := fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	var set jwkset.JWKSMarshal
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxKeySetBytes)).Decode(&set); err != nil {
		if IsTimeout(err) {
			return nil, fmt.Errorf("read jwks body: %w", err)
		}
		return nil, backoff.Permanent(fmt.Errorf("decode jwks: %w", err))
	}

	return c.signingKeys(ctx, set.Keys), nil
}

func (c *KeySetCache) signingKeys(ctx context.Context, marshaled []jwkset.JWKMarshal) map[string]SigningKey {
	keys := make(map[string]SigningKey, len(marshaled))
	for _, m := range marshaled {
		if m.KID == "" || m.KTY != jwkset.KtyRSA || (m.USE != "" && m.USE != jwkset.UseSig) {
			continue
		}
		jwk, err := jwkset.NewJWKFromMarshal(m, jwkset.JWKMarshalOptions{}, jwkset.JWKValidateOptions{})
		if err != nil {
			c.logger.WarnContext(ctx, "skipping unusable jwk", "kid", m.KID, "err", err.Error())
			continue
		}
		key, err := signingKeyFromJWK(jwk)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping unusable jwk", "kid", m.KID, "err", err.Error())
			continue
		}
		keys[key.KeyID] = key
	}
	return keys
}

func signingKeyFromJWK(jwk jwkset.JWK) (SigningKey, error) {
	pub, ok := jwk.Key().(*rsa.PublicKey)
	if !ok {
		return SigningKey{}, errors.New("jwk is not an rsa public key")
	}
	m := jwk.Marshal()
	return SigningKey{
		KeyID:     m.KID,
		KeyType:   string(m.KTY),
		Use:       string(m.USE),
		Algorithm: string(m.ALG),
		Modulus:   m.N,
		Exponent:  m.E,
		PublicKey: pub,
	}, nil
}
