package auth

import (
	"context"
	"log/slog"
)

type loggingVerifier struct {
	logger *slog.Logger
	next   TokenVerifier
}

func NewLoggingVerifier(logger *slog.Logger, next TokenVerifier) TokenVerifier {
	if logger == nil || next == nil {
		return next
	}

	return &loggingVerifier{
		logger: logger,
		next:   next,
	}
}

func (v *loggingVerifier) Verify(ctx context.Context, token string) (ClaimSet, error) {
	claims, err := v.next.Verify(ctx, token)
	if err != nil {
		if authErr, ok := AsAuthError(err); ok {
			v.logger.InfoContext(ctx, "token rejected", "code", string(authErr.Code), "status", authErr.Status)
			return ClaimSet{}, err
		}
		v.logger.ErrorContext(ctx, "token verification unavailable", "timeout", IsTimeout(err), "err", err.Error())
		return ClaimSet{}, err
	}

	v.logger.DebugContext(ctx, "token verified", "sub", claims.Subject, "permissions", len(claims.Permissions))
	return claims, nil
}
