/*
scenarios.go - Built-in demo shifts

PURPOSE:

	Provides named, ready-made pricing requests for demos and smoke tests.
	Each scenario is a shift plus the reference rate table; running one goes
	through exactly the same calculator as POST /api/pay.

AVAILABLE SCENARIOS:

	friday-night:       Friday evening into Saturday, weekday->weekend at midnight
	weekday-overtime:   Eight hours and one minute, last minute is break
	break-at-night:     Break lands on the night window and is unpaid
	sunday-into-monday: Weekend->weekday at midnight
	long-haul:          Two full weekdays, several break cycles
	weekend-marathon:   Saturday morning to Sunday night

USAGE VIA API:

	GET  /api/scenarios
	GET  /api/scenarios/friday-night
	POST /api/scenarios/friday-night/run?breakdown=true

ADDING NEW SCENARIOS:
 1. Add an entry to 'scenarios' with ID, name, description and timestamps
 2. Nothing else; handlers and the CLI pick it up from Scenarios()

SEE ALSO:
  - handlers.go: Scenario handlers
  - cmd/robopay: `robopay scenarios`
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/robot-pay/factory"
	"github.com/warp/robot-pay/generic"
	"github.com/warp/robot-pay/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Scenario is a named pricing request.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Category    string
	Start       string // local date-time
	End         string
}

var scenarios = []Scenario{
	{
		ID:          "friday-night",
		Name:        "Friday Night",
		Description: "Friday 20:15 to Saturday 04:15; exactly eight hours, no break taken",
		Category:    "mixed",
		Start:       "2038-01-01T20:15:00",
		End:         "2038-01-02T04:15:00",
	},
	{
		ID:          "weekday-overtime",
		Name:        "Weekday Overtime",
		Description: "Monday 08:00 to 16:01; the 481st minute is unpaid break",
		Category:    "weekday",
		Start:       "2025-03-10T08:00:00",
		End:         "2025-03-10T16:01:00",
	},
	{
		ID:          "break-at-night",
		Name:        "Break At Night",
		Description: "Monday 15:00 to midnight; the break covers the whole night hour",
		Category:    "weekday",
		Start:       "2025-03-10T15:00:00",
		End:         "2025-03-11T00:00:00",
	},
	{
		ID:          "sunday-into-monday",
		Name:        "Sunday Into Monday",
		Description: "Sunday 22:00 to Monday 02:00; extra rates switch to standard at midnight",
		Category:    "mixed",
		Start:       "2038-01-03T22:00:00",
		End:         "2038-01-04T02:00:00",
	},
	{
		ID:          "long-haul",
		Name:        "Long Haul",
		Description: "Monday 06:00 to Wednesday 06:00; 48 hours with repeated breaks",
		Category:    "weekday",
		Start:       "2025-03-10T06:00:00",
		End:         "2025-03-12T06:00:00",
	},
	{
		ID:          "weekend-marathon",
		Name:        "Weekend Marathon",
		Description: "Saturday 07:00 to Sunday 23:00 at extra rates",
		Category:    "weekend",
		Start:       "2038-01-02T07:00:00",
		End:         "2038-01-03T23:00:00",
	},
}

// Scenarios returns every built-in scenario.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// FindScenario looks a scenario up by ID.
func FindScenario(id string) (Scenario, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %s", generic.ErrScenarioNotFound, id)
}

// Input builds the scenario's pricing request at the reference rates.
func (s Scenario) Input() (factory.Input, error) {
	start, err := generic.ParseTimePoint(s.Start)
	if err != nil {
		return factory.Input{}, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	end, err := generic.ParseTimePoint(s.End)
	if err != nil {
		return factory.Input{}, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	return factory.Input{
		Shift: payroll.Shift{Start: start, End: end},
		Rates: payroll.ReferenceRateTable(),
	}, nil
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toScenarioDTOs(scenarios))
}

// GetScenario returns one scenario with its input document.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, in, err := scenarioInput(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ScenarioDetailDTO{
		ScenarioDTO: toScenarioDTO(s),
		Input:       factory.ToJSON(in.Shift, in.Rates),
	})
}

// RunScenario prices a scenario.
// POST /api/scenarios/{id}/run[?breakdown=true]
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	s, in, err := scenarioInput(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}

	b, err := h.Calculator.Compute(in.Shift, in.Rates)
	if err != nil {
		h.writeCalcError(w, r, err)
		return
	}
	h.logPriced(r, in.Shift, b, "scenario", s.ID)

	resp := ScenarioRunDTO{ScenarioID: s.ID, Result: factory.ToResultJSON(b.Total.Value)}
	if wantBreakdown(r) {
		bd := factory.ToBreakdownJSON(b, in.Rates)
		resp.Breakdown = &bd
	}
	writeJSON(w, http.StatusOK, resp)
}

func scenarioInput(id string) (Scenario, factory.Input, error) {
	s, err := FindScenario(id)
	if err != nil {
		return Scenario{}, factory.Input{}, err
	}
	in, err := s.Input()
	if err != nil {
		return Scenario{}, factory.Input{}, err
	}
	return s, in, nil
}
