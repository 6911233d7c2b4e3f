package summary

import (
	"log/slog"
	"net/http"

	sumUC "fidel-summary/internal/usecase/summary"
)

// Register registers all summary HTTP handlers with the given mux. The mux is
// expected to be wrapped by the auth middleware; every route here is owner
// scoped.
func Register(mux *http.ServeMux, svc *sumUC.Service, logger *slog.Logger) {
	mux.Handle("POST   /summaries", CreateHandler{svc})
	mux.Handle("GET    /summaries", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /summaries/", GetHandler{svc})
	mux.Handle("DELETE /summaries/", DeleteHandler{svc})
}
