package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
)

const retryAfterSeconds = "5"

// ProtectedHandlerFunc receives the verified claims of the caller.
type ProtectedHandlerFunc func(w http.ResponseWriter, r *http.Request, claims auth.ClaimSet)

// requirePermission gates next behind a verified bearer token carrying
// permission. An empty permission only requires authentication.
func (a *API) requirePermission(permission string, next ProtectedHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if a.guard == nil {
			a.Logger.ErrorContext(ctx, "protected route hit without a token verifier", "path", r.URL.Path)
			a.respondError(w, r, http.StatusInternalServerError, "", "internal server error")
			return
		}

		claims, err := a.guard.Authorize(ctx, r.Header.Get("Authorization"), permission)
		if err != nil {
			a.writeAuthFailure(w, r, err)
			return
		}

		next(w, r, claims)
	})
}

func (a *API) writeAuthFailure(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	if authErr, ok := auth.AsAuthError(err); ok {
		a.Logger.DebugContext(ctx, "request rejected", "code", string(authErr.Code), "status", authErr.Status, "path", r.URL.Path)
		a.respondError(w, r, authErr.Status, string(authErr.Code), authErr.Description)
		return
	}

	if errors.Is(err, auth.ErrKeySetUnavailable) {
		a.Logger.ErrorContext(ctx, "signing keys unavailable", "timeout", auth.IsTimeout(err), "err", err.Error())
		w.Header().Set("Retry-After", retryAfterSeconds)
		a.respondError(w, r, http.StatusServiceUnavailable, "", "authentication service unavailable")
		return
	}

	a.Logger.ErrorContext(ctx, "unexpected authorization failure", "err", err.Error())
	a.respondError(w, r, http.StatusInternalServerError, "", "internal server error")
}
