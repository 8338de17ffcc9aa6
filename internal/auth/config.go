package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultRefreshInterval    = 10 * time.Minute
	DefaultMinRefreshInterval = 30 * time.Second
	DefaultFetchTimeout       = time.Second
	DefaultFetchRetries       = 1

	fetchBackoffInitial = 100 * time.Millisecond
	fetchBackoffMax     = time.Second
)

var rsaAlgorithms = map[string]bool{
	"RS256": true,
	"RS384": true,
	"RS512": true,
}

// Config is built once at start-up and never mutated afterwards.
type Config struct {
	Domain   string
	Audience string
	// IssuerURL defaults to https://{Domain}/.
	IssuerURL string
	// JWKSURL defaults to https://{Domain}/.well-known/jwks.json.
	JWKSURL    string
	Algorithms []string
	Leeway     time.Duration

	// RefreshInterval of zero fetches the key set on every lookup.
	RefreshInterval    time.Duration
	MinRefreshInterval time.Duration
	FetchTimeout       time.Duration
	FetchRetries       int
}

func DefaultConfig(domain, audience string) Config {
	return Config{
		Domain:             domain,
		Audience:           audience,
		Algorithms:         []string{"RS256"},
		RefreshInterval:    DefaultRefreshInterval,
		MinRefreshInterval: DefaultMinRefreshInterval,
		FetchTimeout:       DefaultFetchTimeout,
		FetchRetries:       DefaultFetchRetries,
	}
}

func (c Config) Issuer() string {
	if c.IssuerURL != "" {
		return c.IssuerURL
	}
	return "https://" + c.Domain + "/"
}

func (c Config) KeySetURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return "https://" + c.Domain + "/.well-known/jwks.json"
}

// MaxFetchDuration is the longest a single key set refresh can take, counting
// every attempt and the randomized pauses between them.
func (c Config) MaxFetchDuration() time.Duration {
	retries := max(c.FetchRetries, 0)
	total := c.FetchTimeout * time.Duration(retries+1)
	interval := fetchBackoffInitial
	for range retries {
		total += time.Duration(float64(min(interval, fetchBackoffMax)) * (1 + backoff.DefaultRandomizationFactor))
		interval = time.Duration(float64(interval) * backoff.DefaultMultiplier)
	}
	return total
}

func (c Config) Validate() error {
	var errs []error
	if c.Domain == "" && (c.IssuerURL == "" || c.JWKSURL == "") {
		errs = append(errs, errors.New("auth domain is empty"))
	}
	if c.Audience == "" {
		errs = append(errs, errors.New("auth audience is empty"))
	}
	if len(c.Algorithms) == 0 {
		errs = append(errs, errors.New("no signing algorithms allowed"))
	}
	for _, alg := range c.Algorithms {
		if !rsaAlgorithms[alg] {
			errs = append(errs, fmt.Errorf("signing algorithm %q is not an RSA algorithm", alg))
		}
	}
	if c.Leeway < 0 || c.RefreshInterval < 0 || c.MinRefreshInterval < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("jwks fetch timeout must be positive"))
	}
	if c.FetchRetries < 0 {
		errs = append(errs, errors.New("jwks fetch retries must not be negative"))
	}
	return errors.Join(errs...)
}

// ParseAlgorithms splits a comma-separated algorithm list.
func ParseAlgorithms(value string) []string {
	var out []string
	for _, alg := range strings.Split(value, ",") {
		if alg = strings.TrimSpace(alg); alg != "" {
			out = append(out, alg)
		}
	}
	return out
}
