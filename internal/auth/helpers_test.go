package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testDomain   = "coffee.test.auth0.com"
	testIssuer   = "https://coffee.test.auth0.com/"
	testAudience = "coffee"
)

var (
	primaryKey   = sync.OnceValue(func() *rsa.PrivateKey { return mustRSAKey() })
	secondaryKey = sync.OnceValue(func() *rsa.PrivateKey { return mustRSAKey() })
)

func mustRSAKey() *rsa.PrivateKey {
	pk, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return pk
}

type staticKeySet struct {
	keys map[string]*rsa.PublicKey
	err  error
}

func (s staticKeySet) Key(_ context.Context, kid string) (SigningKey, error) {
	if s.err != nil {
		return SigningKey{}, s.err
	}
	pub, ok := s.keys[kid]
	if !ok {
		return SigningKey{}, ErrKeyNotFound
	}
	return SigningKey{KeyID: kid, KeyType: "RSA", Use: "sig", Algorithm: "RS256", PublicKey: pub}, nil
}

func newStaticKeySet(kid string, pk *rsa.PrivateKey) staticKeySet {
	return staticKeySet{keys: map[string]*rsa.PublicKey{kid: &pk.PublicKey}}
}

func testConfig() Config {
	return DefaultConfig(testDomain, testAudience)
}

func makeClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":         testIssuer,
		"sub":         "auth0|barista",
		"aud":         []string{testAudience, "https://coffee.test.auth0.com/userinfo"},
		"iat":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
		"azp":         "client-1",
		"scope":       "openid profile",
		"permissions": []string{"get:drinks", "get:drinks-detail"},
	}
}

func signToken(t *testing.T, pk *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	return signTokenWith(t, jwt.SigningMethodRS256, pk, kid, claims)
}

func signTokenWith(t *testing.T, method jwt.SigningMethod, key any, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(method, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func jwksDocument(t *testing.T, keys map[string]*rsa.PrivateKey) []byte {
	t.Helper()

	set := struct {
		Keys []jose.JSONWebKey `json:"keys"`
	}{Keys: []jose.JSONWebKey{}}
	for kid, pk := range keys {
		set.Keys = append(set.Keys, jose.JSONWebKey{Key: &pk.PublicKey, KeyID: kid, Algorithm: "RS256", Use: "sig"})
	}
	b, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal jwks: %v", err)
	}
	return b
}

// jwksServer serves whatever document is currently stored and counts requests.
type jwksServer struct {
	*httptest.Server
	hits     atomic.Int32
	document atomic.Pointer[[]byte]
	status   atomic.Int32
	delay    atomic.Int64
}

func newJWKSServer(t *testing.T, document []byte) *jwksServer {
	t.Helper()

	s := &jwksServer{}
	s.setDocument(document)
	s.status.Store(http.StatusOK)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if r.URL.Path != "/.well-known/jwks.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if delay := time.Duration(s.delay.Load()); delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		status := int(s.status.Load())
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(*s.document.Load())
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *jwksServer) setDocument(document []byte) {
	s.document.Store(&document)
}

func (s *jwksServer) config() Config {
	cfg := testConfig()
	cfg.JWKSURL = s.URL + "/.well-known/jwks.json"
	cfg.FetchTimeout = time.Second
	cfg.FetchRetries = 0
	return cfg
}

func assertAuthError(t *testing.T, err error, code Code, status int) {
	t.Helper()

	authErr, ok := AsAuthError(err)
	if !ok {
		t.Fatalf("expected auth error %s/%d, got %v", code, status, err)
	}
	if authErr.Code != code || authErr.Status != status {
		t.Fatalf("expected %s/%d, got %s/%d (%s)", code, status, authErr.Code, authErr.Status, authErr.Description)
	}
}
