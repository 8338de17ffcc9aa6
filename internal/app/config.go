package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
	"github.com/joeshaw/envdecode"
)

type Config struct {
	Port         string        `env:"PORT,default=4040"`
	DSN          string        `env:"DB_CONN,required"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=3s"`
	LogLevel     string        `env:"LOG_LEVEL,default=info"`
	LogFormat    string        `env:"LOG_FORMAT,default=json"`

	Auth0Domain string        `env:"AUTH0_DOMAIN"`
	Audience    string        `env:"API_AUDIENCE,required"`
	Issuer      string        `env:"AUTH_ISSUER"`
	JWKSURL     string        `env:"AUTH_JWKS_URL"`
	Algorithms  string        `env:"AUTH_ALGORITHMS,default=RS256"`
	Leeway      time.Duration `env:"AUTH_LEEWAY,default=0s"`

	JWKSRefreshInterval    time.Duration `env:"JWKS_REFRESH_INTERVAL,default=10m"`
	JWKSMinRefreshInterval time.Duration `env:"JWKS_MIN_REFRESH_INTERVAL,default=30s"`
	JWKSFetchTimeout       time.Duration `env:"JWKS_FETCH_TIMEOUT,default=1s"`
	JWKSFetchRetries       int           `env:"JWKS_FETCH_RETRIES,default=1"`
	JWKSBackgroundRefresh  bool          `env:"JWKS_BACKGROUND_REFRESH,default=false"`
}

// LoadConfig reads the process configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.DSN == "" {
		errs = append(errs, errors.New("missing required environment variable: DB_CONN"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("port is empty"))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "json" && f != "text" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	authCfg := c.AuthConfig()
	if err := authCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.WriteTimeout > 0 && authCfg.MaxFetchDuration() >= c.WriteTimeout {
		errs = append(errs, fmt.Errorf("jwks fetch can take up to %s, which exceeds WRITE_TIMEOUT %s",
			authCfg.MaxFetchDuration(), c.WriteTimeout))
	}
	return errors.Join(errs...)
}

// AuthConfig is the immutable token verification configuration.
func (c Config) AuthConfig() auth.Config {
	return auth.Config{
		Domain:             c.Auth0Domain,
		Audience:           c.Audience,
		IssuerURL:          c.Issuer,
		JWKSURL:            c.JWKSURL,
		Algorithms:         auth.ParseAlgorithms(c.Algorithms),
		Leeway:             c.Leeway,
		RefreshInterval:    c.JWKSRefreshInterval,
		MinRefreshInterval: c.JWKSMinRefreshInterval,
		FetchTimeout:       c.JWKSFetchTimeout,
		FetchRetries:       c.JWKSFetchRetries,
	}
}
