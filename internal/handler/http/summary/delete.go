package summary

import (
	"errors"
	"net/http"

	"fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/pathutil"
	"fidel-summary/internal/handler/http/respond"
	sumUC "fidel-summary/internal/usecase/summary"
)

type DeleteHandler struct{ Svc *sumUC.Service }

// ServeHTTP deletes one summary owned by the caller.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/summaries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, auth.OwnerFromContext(r.Context())); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, sumUC.ErrInvalidSummaryID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, sumUC.ErrSummaryNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
