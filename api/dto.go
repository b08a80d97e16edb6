/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures specific to the HTTP API. The pricing request
  and result shapes live in the factory package because the CLI shares them;
  this file only adds what the API needs on top.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Wrappers and error bodies

TYPES:
  Scenarios:
    ScenarioDTO, ScenarioDetailDTO, ScenarioRunDTO

  Errors:
    ErrorResponse

SEE ALSO:
  - handlers.go: Uses these types
  - factory/input.go, factory/output.go: Pricing request/response shapes
*/
package api

import (
	"github.com/warp/robot-pay/factory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ScenarioDTO represents a demo scenario in listings.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"` // "weekday", "weekend", "mixed"
}

// ScenarioDetailDTO includes the input document the scenario prices.
type ScenarioDetailDTO struct {
	ScenarioDTO
	Input factory.InputJSON `json:"input"`
}

// ScenarioRunDTO is the result of running a scenario.
type ScenarioRunDTO struct {
	ScenarioID string                 `json:"scenario_id"`
	Result     factory.ResultJSON     `json:"result"`
	Breakdown  *factory.BreakdownJSON `json:"breakdown,omitempty"`
}

// HealthDTO is returned by the health check.
type HealthDTO struct {
	Status      string `json:"status"`
	Strategy    string `json:"strategy"`
	BreakPolicy string `json:"break_policy"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toScenarioDTO(s Scenario) ScenarioDTO {
	return ScenarioDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
	}
}

func toScenarioDTOs(list []Scenario) []ScenarioDTO {
	dtos := make([]ScenarioDTO, len(list))
	for i, s := range list {
		dtos[i] = toScenarioDTO(s)
	}
	return dtos
}
