package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"fidel-summary/internal/domain/entity"
	"fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/respond"
	"fidel-summary/internal/summarize"
	sumUC "fidel-summary/internal/usecase/summary"
)

type CreateHandler struct{ Svc *sumUC.Service }

// ServeHTTP produces and stores a summary for submitted text or a URL.
// Exactly one of text and url must be set; text wins when both are present.
// An unrecognized variant silently falls back to the default strategy, the
// response's variant field reports what actually ran.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text    string `json:"text"`
		URL     string `json:"url"`
		Variant string `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Create(r.Context(), sumUC.CreateInput{
		OwnerID: auth.OwnerFromContext(r.Context()),
		Text:    req.Text,
		URL:     req.URL,
		Variant: req.Variant,
	})
	if err != nil {
		respond.SafeError(w, createErrorCode(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(result))
}

// createErrorCode maps creation failures to HTTP status codes.
func createErrorCode(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, summarize.ErrNoContent),
		errors.Is(err, sumUC.ErrInvalidURL),
		errors.Is(err, sumUC.ErrPrivateIP):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnsupportedScript):
		return http.StatusUnprocessableEntity
	case errors.Is(err, sumUC.ErrFetchTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, sumUC.ErrBodyTooLarge),
		errors.Is(err, sumUC.ErrTooManyRedirects),
		errors.Is(err, sumUC.ErrExtractionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
