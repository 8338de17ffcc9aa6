package auth

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const permissionsClaim = "permissions"

// ClaimSet is the decoded payload of a verified token. It lives for a single
// request.
type ClaimSet struct {
	Issuer          string
	Subject         string
	Audience        []string
	ExpiresAt       time.Time
	IssuedAt        time.Time
	AuthorizedParty string
	Scope           string
	Permissions     []string
	// Raw holds every payload field, including the ones above.
	Raw map[string]any
}

// HasPermissionsClaim reports whether the token carried a permissions claim at
// all, as opposed to carrying an empty one.
func (c ClaimSet) HasPermissionsClaim() bool {
	_, ok := c.Raw[permissionsClaim]
	return ok
}

func (c ClaimSet) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

func newClaimSet(claims jwt.MapClaims) (ClaimSet, error) {
	cs := ClaimSet{
		Issuer:          stringClaim(claims, "iss"),
		Subject:         stringClaim(claims, "sub"),
		AuthorizedParty: stringClaim(claims, "azp"),
		Scope:           stringClaim(claims, "scope"),
		Raw:             claims,
	}

	if aud, err := claims.GetAudience(); err == nil {
		cs.Audience = aud
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		cs.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		cs.IssuedAt = iat.Time
	}

	raw, ok := claims[permissionsClaim]
	if !ok {
		return cs, nil
	}
	permissions, err := stringList(raw)
	if err != nil {
		return ClaimSet{}, fmt.Errorf("permissions claim: %w", err)
	}
	cs.Permissions = permissions
	return cs, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}

func stringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected element type %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected type %T", raw)
	}
}
