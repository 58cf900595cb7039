package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/errutil"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP status codes and writes the
// error response.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrMilestoneNotFound),
		errors.Is(err, usecase.ErrActionNotFound),
		errors.Is(err, usecase.ErrDependencyNotFound),
		errors.Is(err, usecase.ErrReportNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrSelfDependency),
		errors.Is(err, usecase.ErrMilestoneMismatch),
		errors.Is(err, usecase.ErrUnknownReportType),
		errors.Is(err, dates.ErrInvalidDate),
		errors.Is(err, dates.ErrInvalidDuration):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidSession):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(usecase.ErrInvalidInput, "invalid ID", goerr.V("id", raw))
	}
	return id, nil
}

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return goerr.Wrap(usecase.ErrInvalidInput, "invalid request body")
	}
	return nil
}
