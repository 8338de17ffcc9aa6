package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
	"github.com/Flarenzy/coffee-shop-api/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger *slog.Logger
	health HealthChecker
	drinks domain.DrinkService
	guard  *auth.Guard
}

// NewAPI wires the handlers. With a nil verifier every protected route
// answers 500.
func NewAPI(logger *slog.Logger, health HealthChecker, drinks domain.DrinkService, verifier auth.TokenVerifier) *API {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &API{
		Logger: logger,
		health: health,
		drinks: drinks,
	}
	if verifier != nil {
		// NewGuard only fails on a nil verifier.
		a.guard, _ = auth.NewGuard(verifier)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /drinks", a.requirePermission("get:drinks", a.handleListDrinks))
	mux.Handle("GET /drinks-detail", a.requirePermission("get:drinks-detail", a.handleListDrinksDetail))
	mux.Handle("GET /drinks/{id}", a.requirePermission("get:drinks-detail", a.handleGetDrink))
	mux.Handle("POST /drinks", a.requirePermission("post:drinks", a.handleCreateDrink))
	mux.Handle("PATCH /drinks/{id}", a.requirePermission("patch:drinks", a.handleUpdateDrink))
	mux.Handle("DELETE /drinks/{id}", a.requirePermission("delete:drinks", a.handleDeleteDrink))
	mux.Handle("GET /me", a.requirePermission("", a.handleMe))

	return a.requestID(a.accessLog(mux))
}
