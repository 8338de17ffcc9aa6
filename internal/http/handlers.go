package http

import (
	"net/http"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.health == nil {
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	if err := a.health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List drinks
// @Description Recipes are shortened to color and parts.
// @Tags drinks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ShortDrinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /drinks [get]
func (a *API) handleListDrinks(w http.ResponseWriter, r *http.Request, _ auth.ClaimSet) {
	drinks, err := a.drinks.ListDrinks(r.Context())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, ShortDrinksResponse{Success: true, Drinks: drinksToShort(drinks)})
}

// @Summary List drinks with full recipes
// @Tags drinks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LongDrinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /drinks-detail [get]
func (a *API) handleListDrinksDetail(w http.ResponseWriter, r *http.Request, _ auth.ClaimSet) {
	drinks, err := a.drinks.ListDrinks(r.Context())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, LongDrinksResponse{Success: true, Drinks: drinksToLong(drinks)})
}

// @Summary Get drink
// @Tags drinks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drink ID"
// @Success 200 {object} LongDrinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /drinks/{id} [get]
func (a *API) handleGetDrink(w http.ResponseWriter, r *http.Request, _ auth.ClaimSet) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid drink id", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "", "bad request")
		return
	}

	drink, err := a.drinks.GetDrink(ctx, id)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, LongDrinksResponse{Success: true, Drinks: []DrinkLong{drinkToLong(drink)}})
}

// @Summary Create drink
// @Tags drinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param drink body CreateDrinkRequest true "Drink payload"
// @Success 201 {object} LongDrinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drinks [post]
func (a *API) handleCreateDrink(w http.ResponseWriter, r *http.Request, claims auth.ClaimSet) {
	ctx := r.Context()
	if !isJSON(r) {
		a.respondError(w, r, http.StatusUnsupportedMediaType, "", "content-type must be application/json")
		return
	}

	req, err := decode[CreateDrinkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling drink from request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "", "bad request")
		return
	}

	drink, err := a.drinks.CreateDrink(ctx, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.Logger.DebugContext(ctx, "drink created by caller", "id", drink.ID, "sub", claims.Subject)
	a.respond(w, r, http.StatusCreated, LongDrinksResponse{Success: true, Drinks: []DrinkLong{drinkToLong(drink)}})
}

// @Summary Update drink
// @Description Only fields present in the payload are changed.
// @Tags drinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drink ID"
// @Param drink body UpdateDrinkRequest true "Fields to change"
// @Success 200 {object} LongDrinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drinks/{id} [patch]
func (a *API) handleUpdateDrink(w http.ResponseWriter, r *http.Request, _ auth.ClaimSet) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid drink id", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "", "bad request")
		return
	}
	if !isJSON(r) {
		a.respondError(w, r, http.StatusUnsupportedMediaType, "", "content-type must be application/json")
		return
	}

	req, err := decode[UpdateDrinkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling drink update from request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "", "bad request")
		return
	}

	drink, err := a.drinks.UpdateDrink(ctx, id, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, LongDrinksResponse{Success: true, Drinks: []DrinkLong{drinkToLong(drink)}})
}

// @Summary Delete drink
// @Tags drinks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drink ID"
// @Success 200 {object} DeleteDrinkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drinks/{id} [delete]
func (a *API) handleDeleteDrink(w http.ResponseWriter, r *http.Request, _ auth.ClaimSet) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid drink id", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "", "bad request")
		return
	}

	if err := a.drinks.DeleteDrink(ctx, id); err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, DeleteDrinkResponse{Success: true, Delete: id})
}

// @Summary Current caller
// @Description Any valid token is accepted; no permission is required.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /me [get]
func (a *API) handleMe(w http.ResponseWriter, r *http.Request, claims auth.ClaimSet) {
	a.respond(w, r, http.StatusOK, claimsToMe(claims))
}
