package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Flarenzy/coffee-shop-api/internal/domain"
	"github.com/elnormous/contenttype"
)

const maxBodyBytes = 1 << 20

var jsonMediaType = contenttype.NewMediaType("application/json")

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func isJSON(r *http.Request) bool {
	ctype, err := contenttype.GetMediaType(r)
	return err == nil && ctype.Matches(jsonMediaType)
}

func parsePathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive", name)
	}
	return id, nil
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

func (a *API) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	a.respond(w, r, status, ErrorResponse{
		Success: false,
		Error:   status,
		Code:    code,
		Message: message,
	})
}

// respondServiceError maps domain errors onto statuses; anything unknown is a 500.
func (a *API) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.respondError(w, r, http.StatusBadRequest, "", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.respondError(w, r, http.StatusNotFound, "", "resource not found")
	case errors.Is(err, domain.ErrConflict):
		a.respondError(w, r, http.StatusConflict, "", "drink already exists")
	default:
		a.Logger.ErrorContext(r.Context(), "unhandled service error", "err", err.Error())
		a.respondError(w, r, http.StatusInternalServerError, "", "internal server error")
	}
}
