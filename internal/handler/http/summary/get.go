package summary

import (
	"errors"
	"net/http"

	"fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/pathutil"
	"fidel-summary/internal/handler/http/respond"
	sumUC "fidel-summary/internal/usecase/summary"
)

type GetHandler struct{ Svc *sumUC.Service }

// ServeHTTP returns one summary owned by the caller. A summary owned by
// another user reads as 404.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/summaries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Get(r.Context(), id, auth.OwnerFromContext(r.Context()))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, sumUC.ErrInvalidSummaryID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, sumUC.ErrSummaryNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(result))
}
