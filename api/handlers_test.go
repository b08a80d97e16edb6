/*
handlers_test.go - Tests for the HTTP API

Tests for:
- Pricing with and without breakdown
- Error status mapping
- Segments, default rates, scenarios, health
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/robot-pay/factory"
	"github.com/warp/robot-pay/payroll"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(payroll.Calculator{}, nil), []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func sampleInput(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("../factory/testdata/input.json")
	require.NoError(t, err)
	return data
}

func post(t *testing.T, url string, body []byte) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return readResponse(t, resp)
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return readResponse(t, resp)
}

func readResponse(t *testing.T, resp *http.Response) (*http.Response, []byte) {
	t.Helper()
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

// =============================================================================
// PRICING
// =============================================================================

func TestComputePay_Sample(t *testing.T) {
	// GIVEN: The sample input document
	// WHEN: POSTing it to /api/pay
	// THEN: {"value": 13725}
	srv := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/pay", sampleInput(t))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"value": 13725}`, string(body))
}

func TestComputePay_Breakdown(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/pay?breakdown=true", sampleInput(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got factory.BreakdownJSON
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, json.Number("13725"), got.Value)
	assert.Equal(t, json.Number("480"), got.WorkedMinutes)
	require.Len(t, got.Classes, 4)
	assert.Equal(t, "extraNight", got.Classes[3].Class)
	assert.Equal(t, json.Number("8925"), got.Classes[3].Amount)
}

func TestComputePay_Errors(t *testing.T) {
	srv := newTestServer(t)
	sample := string(sampleInput(t))

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"shift": [`, "malformed_input"},
		{"bad timestamp", strings.Replace(sample, "2038-01-01T20:15:00", "Friday", 1), "malformed_input"},
		{"zero-length shift", strings.Replace(sample, "2038-01-02T04:15:00", "2038-01-01T20:15:00", 1), "invalid_shift"},
		{"non-complementary night", strings.Replace(sample, `"start": "23:00:00"`, `"start": "22:00:00"`, 1), "invalid_rate_window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/api/pay", []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.Equal(t, tt.code, errResp.Code)
			assert.NotEmpty(t, errResp.Details)
		})
	}
}

func TestComputePay_BodyTooLarge(t *testing.T) {
	// GIVEN: A body one byte over the limit
	// WHEN: POSTing it to /api/pay
	// THEN: 413 rather than a malformed-input 400
	router := NewRouter(NewHandler(payroll.Calculator{}, nil), nil)
	body := bytes.Repeat([]byte(" "), maxBodyBytes+1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pay", bytes.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "body_too_large", errResp.Code)
}

func TestComputePay_UsesConfiguredCalculator(t *testing.T) {
	// A 4h work span forces a break inside the sample shift.
	calc, err := payroll.NewCalculator(payroll.BreakPolicy{Work: 4 * time.Hour, Break: time.Hour}, payroll.StrategyMinuteSweep)
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(NewHandler(calc, nil), nil))
	defer srv.Close()

	resp, body := post(t, srv.URL+"/api/pay?breakdown=1", sampleInput(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got factory.BreakdownJSON
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, json.Number("60"), got.BreakMinutes)
	assert.Equal(t, json.Number("420"), got.WorkedMinutes)
	// Four hours after 20:15 Friday.
	assert.Equal(t, []factory.BreakJSON{
		{Start: "2038-01-02T00:15:00", End: "2038-01-02T01:15:00", Minutes: "60"},
	}, got.Breaks)
}

// =============================================================================
// SEGMENTS / RATES / HEALTH
// =============================================================================

func TestSegments(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/segments", sampleInput(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var segs []factory.SegmentJSON
	require.NoError(t, json.Unmarshal(body, &segs))
	require.Len(t, segs, 3)
	assert.Equal(t, "standardDay", segs[0].Class)
	assert.Equal(t, "standardNight", segs[1].Class)
	assert.Equal(t, "extraNight", segs[2].Class)
	assert.Equal(t, json.Number("165"), segs[0].Minutes)
}

func TestDefaultRates(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/rates/default")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.JSONEq(t, `{
		"standardDay":   {"start": "07:00:00", "end": "23:00:00", "value": 20},
		"standardNight": {"start": "23:00:00", "end": "07:00:00", "value": 25},
		"extraDay":      {"start": "07:00:00", "end": "23:00:00", "value": 30},
		"extraNight":    {"start": "23:00:00", "end": "07:00:00", "value": 35}
	}`, string(body))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var h HealthDTO
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "segments", h.Strategy)
	assert.Equal(t, "1h0m0s break every 8h0m0s", h.BreakPolicy)
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestScenarios_ExpectedTotals(t *testing.T) {
	srv := newTestServer(t)

	want := map[string]string{
		"friday-night":       "13725",
		"weekday-overtime":   "9600",
		"break-at-night":     "9600",
		"sunday-into-monday": "6900",
		"long-haul":          "55800",
		"weekend-marathon":   "66900",
	}

	resp, body := get(t, srv.URL+"/api/scenarios")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []ScenarioDTO
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, len(want))

	for _, s := range list {
		t.Run(s.ID, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/api/scenarios/"+s.ID+"/run", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var run struct {
				ScenarioID string `json:"scenario_id"`
				Result     struct {
					Value json.Number `json:"value"`
				} `json:"result"`
			}
			require.NoError(t, json.Unmarshal(body, &run))
			assert.Equal(t, s.ID, run.ScenarioID)
			assert.Equal(t, json.Number(want[s.ID]), run.Result.Value)
		})
	}
}

func TestGetScenario(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/scenarios/friday-night")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		ID    string          `json:"id"`
		Input json.RawMessage `json:"input"`
	}
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "friday-night", detail.ID)

	// The echoed input is itself a valid pricing request.
	resp, body = post(t, srv.URL+"/api/pay", detail.Input)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"value": 13725}`, string(body))
}

func TestScenario_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/scenarios/night-owl/run", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "not_found", errResp.Code)
}
