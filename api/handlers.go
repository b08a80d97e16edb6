/*
handlers.go - HTTP API handlers for the robot pay engine

PURPOSE:
  Exposes the shift pay calculator via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the payroll package.

ENDPOINTS:
  Pricing:
    POST   /api/pay                    Price one shift ({"value": N})
    POST   /api/pay?breakdown=true     ...with per-class minutes and break time
    POST   /api/segments               Uniform-rate segments of a shift

  Rates:
    GET    /api/rates/default          Reference rate table

  Scenarios:
    GET    /api/scenarios              List demo scenarios
    GET    /api/scenarios/{id}         Scenario with its input document
    POST   /api/scenarios/{id}/run     Price a scenario

  Health:
    GET    /healthz

ARCHITECTURE:
  Handler holds the configured payroll.Calculator and a logger. It has no
  mutable state, so a single Handler serves all requests concurrently.

REQUEST FLOW:
  1. Decode body via factory.ReadInput
  2. Compute with the calculator
  3. Render via factory output types
  4. Map errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: invalid_shift, invalid_rate_window, malformed_input
  - 404: unknown scenario
  - 413: body_too_large (over maxBodyBytes)
  - 500: anything else

SEE ALSO:
  - dto.go: API-only response types
  - scenarios.go: Demo scenarios
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/warp/robot-pay/factory"
	"github.com/warp/robot-pay/generic"
	"github.com/warp/robot-pay/payroll"
)

// maxBodyBytes bounds request bodies; a pricing request is a few hundred bytes.
const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calculator payroll.Calculator
	Logger     *slog.Logger
}

// NewHandler creates a new handler. A nil logger discards output.
func NewHandler(calc payroll.Calculator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{Calculator: calc, Logger: logger}
}

// =============================================================================
// PRICING HANDLERS
// =============================================================================

// ComputePay prices the shift in the request body.
// POST /api/pay[?breakdown=true]
func (h *Handler) ComputePay(w http.ResponseWriter, r *http.Request) {
	in, err := readInput(w, r)
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}

	b, err := h.Calculator.Compute(in.Shift, in.Rates)
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}
	h.logPriced(r, in.Shift, b)

	if wantBreakdown(r) {
		writeJSON(w, http.StatusOK, factory.ToBreakdownJSON(b, in.Rates))
		return
	}
	writeJSON(w, http.StatusOK, factory.ToResultJSON(b.Total.Value))
}

// Segments returns the uniform-rate segments of the shift in the request body.
// POST /api/segments
func (h *Handler) Segments(w http.ResponseWriter, r *http.Request) {
	in, err := readInput(w, r)
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}

	segs, err := payroll.Segments(in.Shift, in.Rates)
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, factory.ToSegmentsJSON(segs))
}

// DefaultRates returns the reference rate table in input-document form.
// GET /api/rates/default
func (h *Handler) DefaultRates(w http.ResponseWriter, r *http.Request) {
	doc := factory.ToJSON(payroll.Shift{}, payroll.ReferenceRateTable())
	writeJSON(w, http.StatusOK, doc.RoboRate)
}

// Health reports liveness and the active calculator settings.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	strategy := h.Calculator.Strategy
	if strategy == "" {
		strategy = payroll.StrategySegments
	}
	breaks := h.Calculator.Breaks
	if breaks.IsZero() {
		breaks = payroll.DefaultBreakPolicy
	}
	writeJSON(w, http.StatusOK, HealthDTO{
		Status:      "ok",
		Strategy:    string(strategy),
		BreakPolicy: breaks.String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func readInput(w http.ResponseWriter, r *http.Request) (factory.Input, error) {
	return factory.ReadInput(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

func wantBreakdown(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("breakdown"))
	return err == nil && v
}

func (h *Handler) logPriced(r *http.Request, shift payroll.Shift, b payroll.Breakdown, extra ...any) {
	args := []any{
		"request_id", middleware.GetReqID(r.Context()),
		"shift", shift.String(),
		"value", b.Total.String(),
		"worked", b.Worked().String(),
		"break", b.Break.String(),
	}
	h.Logger.InfoContext(r.Context(), "priced shift", append(args, extra...)...)
}

// writeCalcError maps engine errors to HTTP responses.
func (h *Handler) writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", "body_too_large", err)
	case generic.IsClientError(err):
		h.Logger.DebugContext(r.Context(), "rejected request", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusBadRequest, "Invalid pricing request", generic.ErrorCode(err), err)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", generic.ErrorCode(err), err)
	default:
		h.Logger.ErrorContext(r.Context(), "pricing failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to price shift", generic.ErrorCode(err), err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
