package auth

import "context"

// TokenVerifier turns a raw bearer credential into a verified claim set.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (ClaimSet, error)
}
