package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Verifier struct {
	algorithms []string
	keys       KeySet
	parser     *jwt.Parser
}

type VerifierOption func(*verifierOptions)

type verifierOptions struct {
	now func() time.Time
}

// WithClock replaces the time source used for exp/nbf/iat checks.
func WithClock(now func() time.Time) VerifierOption {
	return func(o *verifierOptions) {
		o.now = now
	}
}

func NewVerifier(cfg Config, keys KeySet, opts ...VerifierOption) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if keys == nil {
		return nil, errors.New("key set is required")
	}

	o := verifierOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	algorithms := slices.Clone(cfg.Algorithms)
	parser := jwt.NewParser(
		jwt.WithValidMethods(algorithms),
		jwt.WithIssuer(cfg.Issuer()),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(o.now),
	)

	return &Verifier{
		algorithms: algorithms,
		keys:       keys,
		parser:     parser,
	}, nil
}

// Verify checks the token signature against the provider key named by its kid
// header and validates exp, aud and iss. Rejections are *AuthError values; a
// key set that cannot be fetched is reported as ErrKeySetUnavailable instead.
func (v *Verifier) Verify(ctx context.Context, token string) (ClaimSet, error) {
	unverified, _, err := v.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ClaimSet{}, errUnverifiable("Unable to parse authentication token.")
	}

	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return ClaimSet{}, errMalformedHeader("Authorization malformed.")
	}

	key, err := v.keys.Key(ctx, kid)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return ClaimSet{}, errUnverifiable("Unable to find the appropriate key.")
		}
		return ClaimSet{}, err
	}

	claims := jwt.MapClaims{}
	_, err = v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Only RSA methods from the configured allow-list may use an RSA key,
		// whatever the header claims.
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok || !slices.Contains(v.algorithms, t.Method.Alg()) {
			return nil, fmt.Errorf("disallowed alg: %s", t.Method.Alg())
		}
		return key.PublicKey, nil
	})
	if err != nil {
		return ClaimSet{}, classify(err)
	}

	cs, err := newClaimSet(claims)
	if err != nil {
		return ClaimSet{}, newAuthError(CodeInvalidClaims, http.StatusUnauthorized, "Incorrect claims. Permissions are malformed.")
	}
	return cs, nil
}

func classify(err error) *AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return newAuthError(CodeTokenExpired, http.StatusUnauthorized, "Token expired.")
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return newAuthError(CodeInvalidClaims, http.StatusUnauthorized, "Incorrect claims. Please, check the audience and issuer.")
	default:
		return errUnverifiable("Unable to parse authentication token.")
	}
}
