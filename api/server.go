/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in pricing logs
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for browser clients

ROUTE GROUPS:
  /api/pay              Pricing
  /api/segments         Segmentation
  /api/rates/*          Rate tables
  /api/scenarios/*      Demo scenarios
  /healthz              Liveness
  /                     Endpoint index

SECURITY NOTE:
  No authentication middleware. The service is stateless and exposes no
  data beyond what the caller sends it.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/pay", h.ComputePay)
		r.Post("/segments", h.Segments)

		r.Route("/rates", func(r chi.Router) {
			r.Get("/default", h.DefaultRates)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/{id}", h.GetScenario)
			r.Post("/{id}/run", h.RunScenario)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Robot Pay Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Robot Pay Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/pay - Price a shift ({"shift": ..., "roboRate": ...})</li>
<li>POST /api/segments - Uniform-rate segments of a shift</li>
<li><a href="/api/rates/default">/api/rates/default</a> - Reference rate table</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
<li><a href="/healthz">/healthz</a> - Health check</li>
</ul>
</body>
</html>`))
	})

	return r
}
