package summary

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fidel-summary/internal/common/pagination"
	"fidel-summary/internal/domain/entity"
	"fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/respond"
	"fidel-summary/internal/observability/logging"
	"fidel-summary/internal/repository"
	sumUC "fidel-summary/internal/usecase/summary"
)

type ListHandler struct {
	Svc    *sumUC.Service
	Logger *slog.Logger
}

// listResponse is one page of summaries plus pagination metadata.
type listResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

// ServeHTTP returns the caller's summaries, newest first.
//
// Query parameters: page, limit, variant (repeatable), from, to (RFC3339).
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.FromRequest(r)
	filters, err := parseFilters(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, sumUC.ListInput{
		OwnerID:    auth.OwnerFromContext(ctx),
		Filters:    filters,
		Pagination: params,
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		logger.Error("failed to list summaries",
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item))
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Data:       dtos,
		Pagination: result.Pagination,
	})
}

func parseFilters(r *http.Request) (repository.SummaryListFilters, error) {
	var filters repository.SummaryListFilters
	q := r.URL.Query()

	if variants, ok := q["variant"]; ok {
		filters.Variants = variants
	}

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("from must be in RFC3339 format")
		}
		filters.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("to must be in RFC3339 format")
		}
		filters.To = &t
	}

	return filters, nil
}
