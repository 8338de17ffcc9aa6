package auth

import (
	"context"
	"errors"
	"net/http"
)

// CheckPermission passes when permission is empty or granted by claims.
func CheckPermission(claims ClaimSet, permission string) error {
	if permission == "" {
		return nil
	}
	if !claims.HasPermissionsClaim() {
		return newAuthError(CodeInvalidClaims, http.StatusBadRequest, "Permissions not included in JWT.")
	}
	if !claims.HasPermission(permission) {
		return newAuthError(CodeUnauthorized, http.StatusForbidden, "Permission not found.")
	}
	return nil
}

// Guard runs the extract, verify and permission stages in order. The first
// stage that fails ends the chain.
type Guard struct {
	verifier TokenVerifier
}

func NewGuard(verifier TokenVerifier) (*Guard, error) {
	if verifier == nil {
		return nil, errors.New("token verifier is required")
	}
	return &Guard{verifier: verifier}, nil
}

// Authorize checks the Authorization header value against permission and
// returns the verified claims for the protected operation.
func (g *Guard) Authorize(ctx context.Context, authorization, permission string) (ClaimSet, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return ClaimSet{}, err
	}

	claims, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return ClaimSet{}, err
	}

	if err := CheckPermission(claims, permission); err != nil {
		return ClaimSet{}, err
	}
	return claims, nil
}
