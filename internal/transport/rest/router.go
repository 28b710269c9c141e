// Package rest wires the material tracker HTTP surface: the browser client
// POSTs JSON to a small set of verb-style endpoints.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/transport/middleware"
)

// RouterDeps carries everything NewRouter needs.
type RouterDeps struct {
	Requests *RequestHandler
	Upload   *UploadHandler
	Health   *HealthHandler
	Identity middleware.Middleware
	CORS     config.CORSConfig
	Limiter  middleware.Middleware
	Logger   *slog.Logger
}

// NewRouter builds the HTTP handler with the full middleware chain.
// All tracker endpoints are POST-only; the CORS middleware answers
// preflight OPTIONS before the method gate runs.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/list-requests", postOnly(deps.Requests.ListRequests))
	mux.HandleFunc("/create-request", postOnly(deps.Requests.CreateRequest))
	mux.HandleFunc("/update-status", postOnly(deps.Requests.UpdateStatus))
	mux.HandleFunc("/upload-image", postOnly(deps.Upload.UploadImage))

	mux.HandleFunc("/live", deps.Health.Live)
	mux.HandleFunc("/health", deps.Health.Health)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.Identity,
		deps.Limiter,
	)

	return chain(mux)
}
